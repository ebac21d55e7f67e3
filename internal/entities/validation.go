package entities

type ValidationErrorCode string

const (
	CodeParcelNotFound          ValidationErrorCode = "PARCEL_NOT_FOUND"
	CodeLocationNotFound        ValidationErrorCode = "LOCATION_NOT_FOUND"
	CodeMaxDailyCapacityReached ValidationErrorCode = "MAX_DAILY_CAPACITY_REACHED"
	CodeMaxSlotCapacityReached  ValidationErrorCode = "MAX_SLOT_CAPACITY_REACHED"
	CodeTimeSlotConflict        ValidationErrorCode = "TIME_SLOT_CONFLICT"
	CodeOutsideOperatingHours   ValidationErrorCode = "OUTSIDE_OPERATING_HOURS"
	CodePastTimeSlot            ValidationErrorCode = "PAST_TIME_SLOT"
	CodeHouseholdDoubleBooking  ValidationErrorCode = "HOUSEHOLD_DOUBLE_BOOKING"
	CodeInvalidTimeSlot         ValidationErrorCode = "INVALID_TIME_SLOT"
	CodeDoubleBooking           ValidationErrorCode = "DOUBLE_BOOKING"
	CodeCapacityReached         ValidationErrorCode = "CAPACITY_REACHED"
	CodeSlotCapacityReached     ValidationErrorCode = "SLOT_CAPACITY_REACHED"
	CodePastPickupTime          ValidationErrorCode = "PAST_PICKUP_TIME"
)

// ValidationErrorCodes - полный закрытый список кодов.
var ValidationErrorCodes = []ValidationErrorCode{
	CodeParcelNotFound,
	CodeLocationNotFound,
	CodeMaxDailyCapacityReached,
	CodeMaxSlotCapacityReached,
	CodeTimeSlotConflict,
	CodeOutsideOperatingHours,
	CodePastTimeSlot,
	CodeHouseholdDoubleBooking,
	CodeInvalidTimeSlot,
	CodeDoubleBooking,
	CodeCapacityReached,
	CodeSlotCapacityReached,
	CodePastPickupTime,
}

func (c ValidationErrorCode) String() string {
	return string(c)
}

func (c ValidationErrorCode) IsValid() bool {
	for _, code := range ValidationErrorCodes {
		if c == code {
			return true
		}
	}
	return false
}

type ValidationDetails struct {
	Current          *int
	Maximum          *int
	Date             *string
	LocationID       *string
	SlotTime         *string
	ExistingParcelID *string
	Reason           *string
}

type ValidationError struct {
	Field   string
	Code    ValidationErrorCode
	Message string
	Details ValidationDetails
	// Index - позиция кандидата в пакетной проверке.
	Index *int
}
