package parcel

import (
	"foodbank/internal/entities"
	"foodbank/internal/pkg/i18n"
)

const (
	msgParcelNotFound      = "validation.parcel_not_found"
	msgLocationNotFound    = "validation.location_not_found"
	msgDailyCapacity       = "validation.daily_capacity %[1]s %[2]s %[3]d %[4]d"
	msgDailyCapacityShort  = "validation.daily_capacity"
	msgSlotCapacity        = "validation.slot_capacity %[1]s %[2]s %[3]d"
	msgSlotCapacityShort   = "validation.slot_capacity"
	msgTimeSlotConflict    = "validation.time_slot_conflict"
	msgOutsideHours        = "validation.outside_hours %[1]s %[2]s"
	msgOutsideHoursShort   = "validation.outside_hours"
	msgPastTimeSlot        = "validation.past_time_slot"
	msgDoubleBooking       = "validation.double_booking %[1]s"
	msgDoubleBookingShort  = "validation.double_booking"
	msgInvalidTimeSlot     = "validation.invalid_time_slot"
	msgUnknownLocationName = "validation.unknown_location"
)

func init() {
	i18n.Register(
		i18n.Entry{
			Key:     msgParcelNotFound,
			English: "The parcel could not be found.",
			Swedish: "Matkassen kunde inte hittas.",
		},
		i18n.Entry{
			Key:     msgLocationNotFound,
			English: "The pickup location could not be found.",
			Swedish: "Utlämningsstället kunde inte hittas.",
		},
		i18n.Entry{
			Key:     msgDailyCapacity,
			English: "%[1]s is fully booked on %[2]s (%[3]d of %[4]d parcels).",
			Swedish: "%[1]s är fullbokat den %[2]s (%[3]d av %[4]d matkassar).",
		},
		i18n.Entry{
			Key:     msgDailyCapacityShort,
			English: "The pickup location is fully booked on this day.",
			Swedish: "Utlämningsstället är fullbokat denna dag.",
		},
		i18n.Entry{
			Key:     msgSlotCapacity,
			English: "The %[2]s time slot at %[1]s is full (maximum %[3]d parcels).",
			Swedish: "Tiden %[2]s på %[1]s är fullbokad (max %[3]d matkassar).",
		},
		i18n.Entry{
			Key:     msgSlotCapacityShort,
			English: "This time slot is fully booked.",
			Swedish: "Denna tid är fullbokad.",
		},
		i18n.Entry{
			Key:     msgTimeSlotConflict,
			English: "This time slot conflicts with another booking.",
			Swedish: "Tiden krockar med en annan bokning.",
		},
		i18n.Entry{
			Key:     msgOutsideHours,
			English: "%[1]s is not open at the selected time: %[2]s.",
			Swedish: "%[1]s har inte öppet vid vald tid: %[2]s.",
		},
		i18n.Entry{
			Key:     msgOutsideHoursShort,
			English: "The selected time is outside the opening hours.",
			Swedish: "Vald tid är utanför öppettiderna.",
		},
		i18n.Entry{
			Key:     msgPastTimeSlot,
			English: "Pickup times in the past cannot be booked.",
			Swedish: "Det går inte att boka en tid som redan har passerat.",
		},
		i18n.Entry{
			Key:     msgDoubleBooking,
			English: "The household already has a parcel on %[1]s.",
			Swedish: "Hushållet har redan en matkasse den %[1]s.",
		},
		i18n.Entry{
			Key:     msgDoubleBookingShort,
			English: "The household already has a parcel on this day.",
			Swedish: "Hushållet har redan en matkasse denna dag.",
		},
		i18n.Entry{
			Key:     msgInvalidTimeSlot,
			English: "The pickup window is invalid.",
			Swedish: "Utlämningstiden är ogiltig.",
		},
		i18n.Entry{
			Key:     msgUnknownLocationName,
			English: "The pickup location",
			Swedish: "Utlämningsstället",
		},
	)
}

// FormatValidationError переводит код нарушения в сообщение для пользователя.
// Для неизвестного кода возвращается исходное сообщение.
func FormatValidationError(validationErr entities.ValidationError, locationName string, locales ...string) string {
	p := i18n.Printer(locales...)
	d := validationErr.Details

	if locationName == "" {
		locationName = p.Sprintf(msgUnknownLocationName)
	}

	switch validationErr.Code {
	case entities.CodeParcelNotFound:
		return p.Sprintf(msgParcelNotFound)
	case entities.CodeLocationNotFound:
		return p.Sprintf(msgLocationNotFound)
	case entities.CodeMaxDailyCapacityReached, entities.CodeCapacityReached:
		if d.Date == nil || d.Current == nil || d.Maximum == nil {
			return p.Sprintf(msgDailyCapacityShort)
		}
		return p.Sprintf(msgDailyCapacity, locationName, *d.Date, *d.Current, *d.Maximum)
	case entities.CodeMaxSlotCapacityReached, entities.CodeSlotCapacityReached:
		if d.SlotTime == nil || d.Maximum == nil {
			return p.Sprintf(msgSlotCapacityShort)
		}
		return p.Sprintf(msgSlotCapacity, locationName, *d.SlotTime, *d.Maximum)
	case entities.CodeTimeSlotConflict:
		return p.Sprintf(msgTimeSlotConflict)
	case entities.CodeOutsideOperatingHours:
		if d.Reason == nil {
			return p.Sprintf(msgOutsideHoursShort)
		}
		return p.Sprintf(msgOutsideHours, locationName, *d.Reason)
	case entities.CodePastTimeSlot, entities.CodePastPickupTime:
		return p.Sprintf(msgPastTimeSlot)
	case entities.CodeHouseholdDoubleBooking, entities.CodeDoubleBooking:
		if d.Date == nil {
			return p.Sprintf(msgDoubleBookingShort)
		}
		return p.Sprintf(msgDoubleBooking, *d.Date)
	case entities.CodeInvalidTimeSlot:
		return p.Sprintf(msgInvalidTimeSlot)
	}

	return validationErr.Message
}

func defaultMessage(code entities.ValidationErrorCode, details entities.ValidationDetails) string {
	return FormatValidationError(entities.ValidationError{Code: code, Details: details}, "")
}
