package noshow_followups_get

import (
	"net/http"

	"foodbank/internal/generated/dto"
	"foodbank/internal/handlers/rest/common"
	"foodbank/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "noshow_followups_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	followups, err := h.service.ListFollowups(r.Context())
	if err != nil {
		h.log.Error("list no-show followups", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.NoShowFollowupsResponse{
		Followups: make([]dto.NoShowFollowup, 0, len(followups)),
	}
	for _, f := range followups {
		response.Followups = append(response.Followups, dto.NoShowFollowup{
			HouseholdId:        f.HouseholdID,
			FirstName:          f.FirstName,
			LastName:           f.LastName,
			TotalNoShows:       f.TotalNoShows,
			ConsecutiveNoShows: f.ConsecutiveNoShows,
			LastNoShowAt:       f.LastNoShowAt,
		})
	}

	common.WriteJSON(w, h.log, http.StatusOK, response)
}
