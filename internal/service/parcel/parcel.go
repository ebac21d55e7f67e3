package parcel

import (
	"context"
	"fmt"

	"foodbank/internal/entities"
	"foodbank/internal/pkg/timeslot"

	"github.com/AlekSi/pointer"
)

type Parcel struct {
	repository Repository
	households HouseholdRepository
	validator  *Validator
	notifier   SmsNotifier
	clock      Clock
	calendar   *timeslot.Calendar
	txManager  TxManager
}

func New(
	repository Repository,
	locations LocationRepository,
	households HouseholdRepository,
	notifier SmsNotifier,
	clock Clock,
	calendar *timeslot.Calendar,
	txManager TxManager,
) *Parcel {
	return &Parcel{
		repository: repository,
		households: households,
		validator:  NewValidator(repository, locations, clock, calendar),
		notifier:   notifier,
		clock:      clock,
		calendar:   calendar,
		txManager:  txManager,
	}
}

func (p *Parcel) CreateParcel(ctx context.Context, candidate entities.ParcelCandidate) (*entities.Parcel, error) {
	candidate.ID = nil
	if !hasRequiredFields(candidate) {
		return nil, ErrMissingRequiredFields
	}

	var created *entities.Parcel
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		if err := p.checkHousehold(ctx, candidate.HouseholdID); err != nil {
			return err
		}

		validationErrs, err := p.validator.Validate(ctx, candidate)
		if err != nil {
			return fmt.Errorf("validate parcel: %w", err)
		}
		if len(validationErrs) > 0 {
			return &ValidationFailedError{Errors: validationErrs}
		}

		parcel, err := p.repository.CreateParcel(ctx, candidate)
		if err != nil {
			return fmt.Errorf("create parcel: %w", err)
		}

		if err := p.notifier.OnParcelCreated(ctx, *parcel); err != nil {
			return fmt.Errorf("queue pickup reminder: %w", err)
		}

		created = parcel
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (p *Parcel) UpdateParcel(ctx context.Context, candidate entities.ParcelCandidate) (*entities.Parcel, error) {
	if candidate.ID == nil || !isValidID(*candidate.ID) || !isValidID(candidate.PickupLocationID) {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Parcel
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		before, err := p.repository.GetParcel(ctx, *candidate.ID)
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("get parcel: %w", err)
		}
		if before != nil {
			if before.HasOutcome() {
				return ErrOutcomeAlreadyRecorded
			}
			// домохозяйство выдачи не меняется
			candidate.HouseholdID = before.HouseholdID
		}

		validationErrs, err := p.validator.Validate(ctx, candidate)
		if err != nil {
			return fmt.Errorf("validate parcel: %w", err)
		}
		if len(validationErrs) > 0 {
			return &ValidationFailedError{Errors: validationErrs}
		}

		after, err := p.repository.UpdateParcel(ctx, entities.ParcelModify{
			ID:                 candidate.ID,
			PickupLocationID:   pointer.To(candidate.PickupLocationID),
			PickupEarliestTime: pointer.To(candidate.PickupEarliestTime),
			PickupLatestTime:   pointer.To(candidate.PickupLatestTime),
		})
		if err != nil {
			return fmt.Errorf("update parcel: %w", err)
		}

		if err := p.notifier.OnParcelUpdated(ctx, *before, *after); err != nil {
			return fmt.Errorf("reschedule sms: %w", err)
		}

		updated = after
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ReplaceHouseholdParcels заменяет будущие выдачи домохозяйства новым набором.
// Любое нарушение откатывает всю замену.
func (p *Parcel) ReplaceHouseholdParcels(
	ctx context.Context,
	householdID string,
	candidates []entities.ParcelCandidate,
	userID *string,
) (*entities.ParcelReplaceResult, error) {
	if !isValidID(householdID) {
		return nil, ErrMissingRequiredFields
	}
	for i := range candidates {
		candidates[i].HouseholdID = householdID
		if !hasRequiredFields(candidates[i]) {
			return nil, ErrMissingRequiredFields
		}
	}

	result := &entities.ParcelReplaceResult{}
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		*result = entities.ParcelReplaceResult{}

		if err := p.checkHousehold(ctx, householdID); err != nil {
			return err
		}

		upcoming, err := p.repository.ListUpcomingHouseholdParcels(ctx, householdID, p.calendar.StartOfDay(p.clock.Now()))
		if err != nil {
			return fmt.Errorf("list upcoming parcels: %w", err)
		}

		plan := planReplacement(upcoming, candidates)

		if len(plan.removed) > 0 {
			ids := make([]string, 0, len(plan.removed))
			for _, removed := range plan.removed {
				ids = append(ids, removed.ID)
			}
			if err := p.repository.SoftDeleteParcels(ctx, ids, p.clock.Now(), userID); err != nil {
				return fmt.Errorf("delete deselected parcels: %w", err)
			}
			result.Cancelled = ids
		}

		validationErrs, err := p.validator.ValidateBulk(ctx, plan.writes)
		if err != nil {
			return fmt.Errorf("validate parcels: %w", err)
		}
		if len(validationErrs) > 0 {
			return &ValidationFailedError{Errors: validationErrs}
		}

		for _, removed := range plan.removed {
			if err := p.notifier.OnParcelCancelled(ctx, removed); err != nil {
				return fmt.Errorf("cancel sms for parcel %s: %w", removed.ID, err)
			}
		}

		for _, candidate := range plan.writes {
			if candidate.IsNew() {
				parcel, err := p.repository.CreateParcel(ctx, candidate)
				if err != nil {
					return fmt.Errorf("create parcel: %w", err)
				}
				if err := p.notifier.OnParcelCreated(ctx, *parcel); err != nil {
					return fmt.Errorf("queue pickup reminder: %w", err)
				}
				result.Created = append(result.Created, *parcel)
				continue
			}

			before := plan.existing[*candidate.ID]
			after, err := p.repository.UpdateParcel(ctx, entities.ParcelModify{
				ID:                 candidate.ID,
				PickupLocationID:   pointer.To(candidate.PickupLocationID),
				PickupEarliestTime: pointer.To(candidate.PickupEarliestTime),
				PickupLatestTime:   pointer.To(candidate.PickupLatestTime),
			})
			if err != nil {
				return fmt.Errorf("update parcel: %w", err)
			}
			if err := p.notifier.OnParcelUpdated(ctx, before, *after); err != nil {
				return fmt.Errorf("reschedule sms: %w", err)
			}
			result.Kept = append(result.Kept, *after)
		}

		result.Kept = append(result.Kept, plan.unchanged...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Parcel) CancelParcel(ctx context.Context, parcelID string, userID *string) error {
	if !isValidID(parcelID) {
		return ErrMissingRequiredFields
	}

	return p.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := p.repository.GetParcel(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		if parcel.IsDeleted() {
			return ErrParcelNotFound
		}
		if parcel.HasOutcome() {
			return ErrOutcomeAlreadyRecorded
		}

		if err := p.repository.SoftDeleteParcels(ctx, []string{parcelID}, p.clock.Now(), userID); err != nil {
			return fmt.Errorf("delete parcel: %w", err)
		}

		if err := p.notifier.OnParcelCancelled(ctx, *parcel); err != nil {
			return fmt.Errorf("cancel sms: %w", err)
		}
		return nil
	})
}

// RecordOutcome фиксирует выдачу или неявку ровно один раз.
func (p *Parcel) RecordOutcome(
	ctx context.Context,
	parcelID string,
	outcome entities.ParcelOutcomeType,
	userID *string,
) (*entities.Parcel, error) {
	if !isValidID(parcelID) {
		return nil, ErrMissingRequiredFields
	}
	if !outcome.IsValid() {
		return nil, ErrInvalidOutcome
	}

	var recorded *entities.Parcel
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := p.repository.GetParcel(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		if parcel.IsDeleted() {
			return ErrParcelNotFound
		}
		if parcel.HasOutcome() {
			return ErrOutcomeAlreadyRecorded
		}

		now := p.clock.Now()
		modify := entities.ParcelModify{ID: pointer.To(parcelID)}

		switch outcome {
		case entities.ParcelPickedUp:
			modify.IsPickedUp = pointer.To(true)
			modify.PickedUpAt = pointer.To(now)
			modify.PickedUpBy = userID
		case entities.ParcelNoShow:
			if now.Before(parcel.PickupEarliestTime) {
				return ErrNoShowBeforePickup
			}
			modify.NoShowAt = pointer.To(now)
			modify.NoShowBy = userID
		}

		recorded, err = p.repository.RecordOutcome(ctx, modify)
		if err != nil {
			return fmt.Errorf("record outcome: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recorded, nil
}

func (p *Parcel) checkHousehold(ctx context.Context, householdID string) error {
	household, err := p.households.GetHousehold(ctx, householdID)
	if err != nil {
		return fmt.Errorf("get household: %w", err)
	}
	if household.IsAnonymized() {
		return ErrHouseholdAnonymized
	}
	return nil
}

type replacementPlan struct {
	existing  map[string]entities.Parcel
	writes    []entities.ParcelCandidate
	unchanged []entities.Parcel
	removed   []entities.Parcel
}

// planReplacement сопоставляет кандидатов с будущими выдачами: по ID или по совпадению места и времени.
func planReplacement(upcoming []entities.Parcel, candidates []entities.ParcelCandidate) replacementPlan {
	plan := replacementPlan{existing: make(map[string]entities.Parcel, len(upcoming))}
	for _, parcel := range upcoming {
		plan.existing[parcel.ID] = parcel
	}

	matched := make(map[string]struct{}, len(upcoming))
	for _, candidate := range candidates {
		if candidate.ID != nil {
			if before, ok := plan.existing[*candidate.ID]; ok {
				matched[before.ID] = struct{}{}
				if sameWindow(candidate, before) {
					plan.unchanged = append(plan.unchanged, before)
				} else {
					plan.writes = append(plan.writes, candidate)
				}
				continue
			}
			// неизвестный ID создается заново
			candidate.ID = nil
		}

		if before, ok := findSameWindow(upcoming, matched, candidate); ok {
			matched[before.ID] = struct{}{}
			plan.unchanged = append(plan.unchanged, before)
			continue
		}
		plan.writes = append(plan.writes, candidate)
	}

	for _, parcel := range upcoming {
		if _, ok := matched[parcel.ID]; !ok {
			plan.removed = append(plan.removed, parcel)
		}
	}
	return plan
}

func findSameWindow(upcoming []entities.Parcel, matched map[string]struct{}, candidate entities.ParcelCandidate) (entities.Parcel, bool) {
	for _, parcel := range upcoming {
		if _, ok := matched[parcel.ID]; ok {
			continue
		}
		if sameWindow(candidate, parcel) {
			return parcel, true
		}
	}
	return entities.Parcel{}, false
}
