package ping_get

import (
	"net/http"

	"foodbank/internal/generated/dto"
	"foodbank/internal/handlers/rest/common"
	"foodbank/pkg/logger"
)

type Handler struct {
	log handlerLogger
	db  pinger
}

func New(log handlerLogger, db pinger) *Handler {
	handlerLog := log.With(logger.NewField("handler", "ping_get"))

	return &Handler{
		log: handlerLog,
		db:  db,
	}
}

// ServeHTTP отвечает pong, только если доступна база.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Warn("database ping failed", logger.NewField("error", err))
		common.WriteError(w, h.log, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	message := "pong"
	common.WriteJSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: &message,
	})
}
