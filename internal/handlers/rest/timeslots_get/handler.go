package timeslots_get

import (
	"net/http"
	"time"

	"foodbank/internal/generated/dto"
	"foodbank/internal/handlers/rest/common"
	"foodbank/internal/pkg/timeslot"
	"foodbank/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "timeslots_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	locationID := mux.Vars(r)["id"]

	date, err := time.Parse(time.DateOnly, r.URL.Query().Get("date"))
	if err != nil {
		common.WriteError(w, h.log, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	daySlots, err := h.service.DayTimeSlots(r.Context(), locationID, date)
	if err != nil {
		if status, ok := common.ScheduleErrorStatus(err); ok {
			common.WriteError(w, h.log, status, err.Error())
			return
		}
		h.log.Error("day time slots", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.DaySlots{
		LocationId:          daySlots.LocationID,
		Date:                daySlots.Date.Format(time.DateOnly),
		SlotDurationMinutes: daySlots.SlotDurationMinutes,
		IsOpen:              daySlots.Hours.IsOpen,
		Slots:               daySlots.Slots,
		Gaps:                make([]dto.TimeGap, 0, len(daySlots.Gaps)),
	}
	if response.Slots == nil {
		response.Slots = []string{}
	}
	if daySlots.Hours.IsOpen {
		opening := timeslot.FormatClock(daySlots.Hours.Opening)
		closing := timeslot.FormatClock(daySlots.Hours.Closing)
		response.OpeningTime = &opening
		response.ClosingTime = &closing
	}
	for _, gap := range daySlots.Gaps {
		response.Gaps = append(response.Gaps, dto.TimeGap{
			StartTime:       gap.StartTime,
			EndTime:         gap.EndTime,
			DurationMinutes: gap.DurationMinutes,
		})
	}

	common.WriteJSON(w, h.log, http.StatusOK, response)
}
