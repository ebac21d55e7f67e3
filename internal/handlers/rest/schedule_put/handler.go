package schedule_put

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
	handlerLog := log.With(logger.NewField("handler", "schedule_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID := vars["id"]
	scheduleID := vars["scheduleId"]

	var scheduleDTO dto.ScheduleRequest
	err := json.NewDecoder(r.Body).Decode(&scheduleDTO)
	if err != nil {
		common.WriteError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	scheduleModify, err := common.ScheduleModifyFromDTO(locationID, &scheduleID, scheduleDTO)
	if err != nil {
		common.WriteError(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.UpdateSchedule(r.Context(), scheduleModify)
	if err != nil {
		if status, ok := common.ScheduleErrorStatus(err); ok {
			common.WriteError(w, h.log, status, err.Error())
			return
		}
		h.log.Error("update schedule", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	common.WriteJSON(w, h.log, http.StatusOK, common.ScheduleToDTO(*updated))
}
