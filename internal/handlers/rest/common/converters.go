package common

import (
	"fmt"
	"time"

	"foodbank/internal/entities"
	"foodbank/internal/generated/dto"
)

func ParcelToDTO(p entities.Parcel) dto.Parcel {
	return dto.Parcel{
		Id:                 p.ID,
		HouseholdId:        p.HouseholdID,
		PickupLocationId:   p.PickupLocationID,
		PickupEarliestTime: p.PickupEarliestTime,
		PickupLatestTime:   p.PickupLatestTime,
		IsPickedUp:         p.IsPickedUp,
		PickedUpAt:         p.PickedUpAt,
		NoShowAt:           p.NoShowAt,
	}
}

func ParcelsToDTO(parcels []entities.Parcel) []dto.Parcel {
	result := make([]dto.Parcel, 0, len(parcels))
	for _, p := range parcels {
		result = append(result, ParcelToDTO(p))
	}
	return result
}

func SmsToDTO(s entities.OutgoingSms) dto.OutgoingSms {
	result := dto.OutgoingSms{
		Id:               s.ID,
		Intent:           s.Intent.String(),
		ParcelId:         s.ParcelID,
		Status:           s.Status.String(),
		AttemptCount:     s.AttemptCount,
		NextAttemptAt:    s.NextAttemptAt,
		LastErrorMessage: s.LastErrorMessage,
		SentAt:           s.SentAt,
		CreatedAt:        s.CreatedAt,
	}
	if s.ProviderStatus != nil {
		providerStatus := s.ProviderStatus.String()
		result.ProviderStatus = &providerStatus
	}
	return result
}

func ScheduleToDTO(s entities.Schedule) dto.Schedule {
	days := make([]dto.ScheduleDay, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, dto.ScheduleDay{
			Weekday:     int(d.Weekday),
			IsOpen:      d.IsOpen,
			OpeningTime: d.OpeningTime,
			ClosingTime: d.ClosingTime,
		})
	}

	return dto.Schedule{
		Id:         s.ID,
		LocationId: s.LocationID,
		Name:       s.Name,
		StartDate:  s.StartDate.Format(time.DateOnly),
		EndDate:    s.EndDate.Format(time.DateOnly),
		Days:       days,
	}
}

func ValidationDetailsToDTO(d entities.ValidationDetails) *dto.ValidationErrorDetails {
	if d == (entities.ValidationDetails{}) {
		return nil
	}
	return &dto.ValidationErrorDetails{
		Current:          d.Current,
		Maximum:          d.Maximum,
		Date:             d.Date,
		LocationId:       d.LocationID,
		SlotTime:         d.SlotTime,
		ExistingParcelId: d.ExistingParcelID,
		Reason:           d.Reason,
	}
}

// ScheduleModifyFromDTO разбирает даты расписания в формате YYYY-MM-DD.
func ScheduleModifyFromDTO(locationID string, scheduleID *string, req dto.ScheduleRequest) (entities.ScheduleModify, error) {
	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return entities.ScheduleModify{}, fmt.Errorf("parse start date: %w", err)
	}
	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return entities.ScheduleModify{}, fmt.Errorf("parse end date: %w", err)
	}

	days := make([]entities.ScheduleDay, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, entities.ScheduleDay{
			Weekday:     time.Weekday(d.Weekday),
			IsOpen:      d.IsOpen,
			OpeningTime: d.OpeningTime,
			ClosingTime: d.ClosingTime,
		})
	}

	return entities.ScheduleModify{
		ID:         scheduleID,
		LocationID: &locationID,
		Name:       &req.Name,
		StartDate:  &startDate,
		EndDate:    &endDate,
		Days:       days,
	}, nil
}
