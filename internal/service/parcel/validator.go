package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodbank/internal/entities"
	"foodbank/internal/pkg/timeslot"
	"foodbank/internal/service/schedule"

	"github.com/AlekSi/pointer"
)

// Validator проверяет допустимость назначения выдачи. Должен вызываться
// внутри транзакции, в которой затем пишется выдача.
type Validator struct {
	parcels   Repository
	locations LocationRepository
	clock     Clock
	calendar  *timeslot.Calendar
}

func NewValidator(
	parcels Repository,
	locations LocationRepository,
	clock Clock,
	calendar *timeslot.Calendar,
) *Validator {
	return &Validator{
		parcels:   parcels,
		locations: locations,
		clock:     clock,
		calendar:  calendar,
	}
}

// Validate проверяет одну выдачу и останавливается на первом нарушении.
func (v *Validator) Validate(ctx context.Context, candidate entities.ParcelCandidate) ([]entities.ValidationError, error) {
	check := v.newRun(candidate, nil, true)
	if err := check.run(ctx); err != nil {
		return nil, err
	}
	return check.errs, nil
}

// ValidateBulk проверяет все выдачи пакета и накапливает нарушения.
// Выдачи пакета учитываются друг против друга так, как будто уже записаны.
func (v *Validator) ValidateBulk(ctx context.Context, candidates []entities.ParcelCandidate) ([]entities.ValidationError, error) {
	batch := &batchState{}
	for _, c := range candidates {
		if c.ID != nil {
			batch.excludeIDs = append(batch.excludeIDs, *c.ID)
		}
	}

	var all []entities.ValidationError
	for i, candidate := range candidates {
		check := v.newRun(candidate, batch, false)
		if err := check.run(ctx); err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}

		if len(check.errs) == 0 {
			batch.accepted = append(batch.accepted, candidate)
			continue
		}
		for _, e := range check.errs {
			e.Index = pointer.To(i)
			all = append(all, e)
		}
	}
	return all, nil
}

type batchState struct {
	accepted   []entities.ParcelCandidate
	excludeIDs []string
}

type validationRun struct {
	*Validator
	candidate    entities.ParcelCandidate
	batch        *batchState
	shortCircuit bool

	location *entities.PickupLocation
	date     time.Time
	errs     []entities.ValidationError
}

func (v *Validator) newRun(candidate entities.ParcelCandidate, batch *batchState, shortCircuit bool) *validationRun {
	return &validationRun{
		Validator:    v,
		candidate:    candidate,
		batch:        batch,
		shortCircuit: shortCircuit,
		date:         v.calendar.Date(candidate.PickupEarliestTime),
	}
}

func (r *validationRun) run(ctx context.Context) error {
	if !r.checkTimeWindow() {
		return nil
	}

	steps := []func(ctx context.Context) (bool, error){
		r.checkParcelExists,
		r.checkLocation,
		r.checkPastTime,
		r.checkOperatingHours,
		r.checkDailyCapacity,
		r.checkSlotCapacity,
		r.checkDoubleBooking,
	}
	for _, step := range steps {
		ok, err := step(ctx)
		if err != nil {
			return err
		}
		if !ok && r.shortCircuit {
			return nil
		}
		// остальные проверки требуют пункт выдачи
		if r.location == nil && len(r.errs) > 0 {
			return nil
		}
	}
	return nil
}

func (r *validationRun) fail(field string, code entities.ValidationErrorCode, details entities.ValidationDetails) {
	r.errs = append(r.errs, entities.ValidationError{
		Field:   field,
		Code:    code,
		Message: defaultMessage(code, details),
		Details: details,
	})
}

func (r *validationRun) excludeIDs() []string {
	var ids []string
	if r.candidate.ID != nil {
		ids = append(ids, *r.candidate.ID)
	}
	if r.batch != nil {
		ids = append(ids, r.batch.excludeIDs...)
	}
	return ids
}

func (r *validationRun) checkTimeWindow() bool {
	c := r.candidate
	if c.PickupEarliestTime.IsZero() || c.PickupLatestTime.IsZero() ||
		c.PickupEarliestTime.After(c.PickupLatestTime) ||
		!r.calendar.SameDate(c.PickupEarliestTime, c.PickupLatestTime) {
		r.fail("pickupEarliestTime", entities.CodeInvalidTimeSlot, entities.ValidationDetails{
			Date: pointer.To(timeslot.FormatDate(r.date)),
		})
		return false
	}
	return true
}

func (r *validationRun) checkParcelExists(ctx context.Context) (bool, error) {
	if r.candidate.IsNew() {
		return true, nil
	}

	existing, err := r.parcels.GetParcel(ctx, *r.candidate.ID)
	if err != nil && !errors.Is(err, ErrParcelNotFound) {
		return false, fmt.Errorf("get parcel: %w", err)
	}
	if existing == nil || existing.IsDeleted() {
		r.fail("id", entities.CodeParcelNotFound, entities.ValidationDetails{})
		return false, nil
	}
	return true, nil
}

func (r *validationRun) checkLocation(ctx context.Context) (bool, error) {
	location, err := r.locations.GetLocation(ctx, r.candidate.PickupLocationID)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			r.fail("pickupLocationId", entities.CodeLocationNotFound, entities.ValidationDetails{
				LocationID: pointer.To(r.candidate.PickupLocationID),
			})
			return false, nil
		}
		return false, fmt.Errorf("get location: %w", err)
	}
	r.location = location
	return true, nil
}

func (r *validationRun) checkPastTime(_ context.Context) (bool, error) {
	// уже существующая выдача может законно оказаться в прошлом
	if !r.candidate.IsNew() {
		return true, nil
	}
	if r.candidate.PickupEarliestTime.Before(r.clock.Now()) {
		r.fail("pickupEarliestTime", entities.CodePastTimeSlot, entities.ValidationDetails{
			Date: pointer.To(timeslot.FormatDate(r.date)),
		})
		return false, nil
	}
	return true, nil
}

func (r *validationRun) checkOperatingHours(ctx context.Context) (bool, error) {
	schedules, err := r.locations.ListSchedules(ctx, r.location.ID)
	if err != nil {
		return false, fmt.Errorf("list schedules: %w", err)
	}
	special, err := r.locations.GetSpecialDay(ctx, r.location.ID, r.date)
	if err != nil {
		return false, fmt.Errorf("get special day: %w", err)
	}

	hours := schedule.ResolveOperatingHours(r.date, schedules, special)
	details := entities.ValidationDetails{
		Date:       pointer.To(timeslot.FormatDate(r.date)),
		LocationID: pointer.To(r.location.ID),
	}

	if !hours.IsOpen {
		details.Reason = pointer.To(fmt.Sprintf("closed on %s", timeslot.FormatDate(r.date)))
		r.fail("pickupEarliestTime", entities.CodeOutsideOperatingHours, details)
		return false, nil
	}

	earliest := r.calendar.MinutesOfDay(r.candidate.PickupEarliestTime)
	latest := r.calendar.MinutesOfDay(r.candidate.PickupLatestTime)
	if earliest < hours.Opening || latest > hours.Closing {
		details.Reason = pointer.To(fmt.Sprintf("%s-%s is outside opening hours %s-%s",
			timeslot.FormatClock(earliest),
			timeslot.FormatClock(latest),
			timeslot.FormatClock(hours.Opening),
			timeslot.FormatClock(hours.Closing),
		))
		r.fail("pickupEarliestTime", entities.CodeOutsideOperatingHours, details)
		return false, nil
	}
	return true, nil
}

func (r *validationRun) checkDailyCapacity(ctx context.Context) (bool, error) {
	if r.location.MaxParcelsPerDay == nil {
		return true, nil
	}

	from := r.calendar.StartOfDay(r.candidate.PickupEarliestTime)
	to := r.calendar.NextDay(r.candidate.PickupEarliestTime)

	count, err := r.parcels.CountParcelsInRange(ctx, r.location.ID, from, to, r.excludeIDs())
	if err != nil {
		return false, fmt.Errorf("count parcels on date: %w", err)
	}
	count += r.countBatch(from, to)

	maximum := *r.location.MaxParcelsPerDay
	if count >= maximum {
		r.fail("pickupEarliestTime", entities.CodeMaxDailyCapacityReached, entities.ValidationDetails{
			Current:    pointer.To(count),
			Maximum:    pointer.To(maximum),
			Date:       pointer.To(timeslot.FormatDate(r.date)),
			LocationID: pointer.To(r.location.ID),
		})
		return false, nil
	}
	return true, nil
}

func (r *validationRun) checkSlotCapacity(ctx context.Context) (bool, error) {
	if r.location.MaxParcelsPerSlot == nil {
		return true, nil
	}

	slotMinutes := r.location.DefaultSlotDurationMinutes
	if slotMinutes <= 0 {
		slotMinutes = entities.DefaultSlotDurationMinutes
	}
	from := r.calendar.SlotStart(r.candidate.PickupEarliestTime, slotMinutes)
	to := from.Add(time.Duration(slotMinutes) * time.Minute)

	count, err := r.parcels.CountParcelsInRange(ctx, r.location.ID, from, to, r.excludeIDs())
	if err != nil {
		return false, fmt.Errorf("count parcels in slot: %w", err)
	}
	count += r.countBatch(from, to)

	maximum := *r.location.MaxParcelsPerSlot
	if count >= maximum {
		r.fail("pickupEarliestTime", entities.CodeMaxSlotCapacityReached, entities.ValidationDetails{
			Current:    pointer.To(count),
			Maximum:    pointer.To(maximum),
			Date:       pointer.To(timeslot.FormatDate(r.date)),
			SlotTime:   pointer.To(timeslot.FormatClock(r.calendar.MinutesOfDay(from))),
			LocationID: pointer.To(r.location.ID),
		})
		return false, nil
	}
	return true, nil
}

func (r *validationRun) checkDoubleBooking(ctx context.Context) (bool, error) {
	from := r.calendar.StartOfDay(r.candidate.PickupEarliestTime)
	to := r.calendar.NextDay(r.candidate.PickupEarliestTime)

	existing, err := r.parcels.FindHouseholdParcelInRange(ctx, r.candidate.HouseholdID, from, to, r.excludeIDs())
	if err != nil {
		return false, fmt.Errorf("find household parcel on date: %w", err)
	}

	var conflictID *string
	switch {
	case existing != nil:
		conflictID = pointer.To(existing.ID)
	case r.batchConflict(from, to) != nil:
		conflictID = r.batchConflict(from, to).ID
	default:
		return true, nil
	}

	r.fail("pickupEarliestTime", entities.CodeHouseholdDoubleBooking, entities.ValidationDetails{
		Date:             pointer.To(timeslot.FormatDate(r.date)),
		LocationID:       pointer.To(r.candidate.PickupLocationID),
		ExistingParcelID: conflictID,
	})
	return false, nil
}

func (r *validationRun) batchConflict(from, to time.Time) *entities.ParcelCandidate {
	if r.batch == nil {
		return nil
	}
	for i := range r.batch.accepted {
		accepted := &r.batch.accepted[i]
		if accepted.HouseholdID == r.candidate.HouseholdID && inRange(accepted.PickupEarliestTime, from, to) {
			return accepted
		}
	}
	return nil
}

func (r *validationRun) countBatch(from, to time.Time) int {
	if r.batch == nil {
		return 0
	}
	count := 0
	for _, accepted := range r.batch.accepted {
		if accepted.PickupLocationID == r.location.ID && inRange(accepted.PickupEarliestTime, from, to) {
			count++
		}
	}
	return count
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}
