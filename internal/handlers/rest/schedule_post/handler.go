package schedule_post

import (
	"encoding/json"
	"net/http"

	"foodbank/internal/generated/dto"
	"foodbank/internal/handlers/rest/common"
	"foodbank/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "schedule_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	locationID := mux.Vars(r)["id"]

	var scheduleDTO dto.ScheduleRequest
	err := json.NewDecoder(r.Body).Decode(&scheduleDTO)
	if err != nil {
		common.WriteError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	scheduleModify, err := common.ScheduleModifyFromDTO(locationID, nil, scheduleDTO)
	if err != nil {
		common.WriteError(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.CreateSchedule(r.Context(), scheduleModify)
	if err != nil {
		if status, ok := common.ScheduleErrorStatus(err); ok {
			common.WriteError(w, h.log, status, err.Error())
			return
		}
		h.log.Error("create schedule", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	common.WriteJSON(w, h.log, http.StatusCreated, common.ScheduleToDTO(*created))
}
