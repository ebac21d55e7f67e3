package household

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodbank/internal/entities"
	"foodbank/internal/pkg/timeslot"
)

type Household struct {
	repository Repository
	clock      Clock
	calendar   *timeslot.Calendar
	txManager  TxManager
}

func New(
	repository Repository,
	clock Clock,
	calendar *timeslot.Calendar,
	txManager TxManager,
) *Household {
	return &Household{
		repository: repository,
		clock:      clock,
		calendar:   calendar,
		txManager:  txManager,
	}
}

// RemoveHousehold удаляет домохозяйство без выдач или анонимизирует его.
// Выдачи на сегодня и позже блокируют удаление, время суток не учитывается.
func (h *Household) RemoveHousehold(ctx context.Context, householdID, userID string) (*entities.HouseholdRemoval, error) {
	if strings.TrimSpace(householdID) == "" || strings.TrimSpace(userID) == "" {
		return nil, ErrMissingRequiredFields
	}

	removal := &entities.HouseholdRemoval{HouseholdID: householdID}
	err := h.txManager.Do(ctx, func(ctx context.Context) error {
		household, err := h.repository.GetHousehold(ctx, householdID)
		if err != nil {
			return fmt.Errorf("get household: %w", err)
		}
		if household.IsAnonymized() {
			removal.Result = entities.HouseholdAlreadyAnonymized
			return nil
		}

		if err := h.ensureNoUpcomingParcels(ctx, householdID); err != nil {
			return err
		}

		parcels, err := h.repository.CountParcels(ctx, householdID)
		if err != nil {
			return fmt.Errorf("count parcels: %w", err)
		}

		if parcels == 0 {
			if err := h.repository.DeleteHousehold(ctx, householdID); err != nil {
				return fmt.Errorf("delete household: %w", err)
			}
			removal.Result = entities.HouseholdDeleted
			return nil
		}

		anonymized, err := h.anonymize(ctx, householdID, userID)
		if err != nil {
			return err
		}
		removal.Result = entities.HouseholdAnonymized
		if !anonymized {
			removal.Result = entities.HouseholdAlreadyAnonymized
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removal, nil
}

// AnonymizeInactive анонимизирует домохозяйства без активности за период inactivity.
// Ошибка по одному домохозяйству не прерывает обход.
func (h *Household) AnonymizeInactive(ctx context.Context, inactivity time.Duration) (*entities.AnonymizationSweepResult, error) {
	if inactivity <= 0 {
		return nil, ErrInvalidInactivity
	}

	now := h.clock.Now()
	var ids []string
	err := h.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		var err error
		ids, err = h.repository.ListInactiveHouseholds(ctx, now.Add(-inactivity), h.calendar.StartOfDay(now))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list inactive households: %w", err)
	}

	result := &entities.AnonymizationSweepResult{}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		var anonymized bool
		err := h.txManager.Do(ctx, func(ctx context.Context) error {
			household, err := h.repository.GetHousehold(ctx, id)
			if err != nil {
				return fmt.Errorf("get household: %w", err)
			}
			if household.IsAnonymized() {
				anonymized = false
				return nil
			}
			if err := h.ensureNoUpcomingParcels(ctx, id); err != nil {
				return err
			}

			anonymized, err = h.anonymize(ctx, id, entities.SystemActor)
			return err
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return result, err
			}
			result.Errors = append(result.Errors, entities.SweepError{HouseholdID: id, Err: err})
			continue
		}
		if anonymized {
			result.Anonymized++
		}
	}
	return result, nil
}

func (h *Household) ensureNoUpcomingParcels(ctx context.Context, householdID string) error {
	upcoming, err := h.repository.HasUpcomingParcels(ctx, householdID, h.calendar.StartOfDay(h.clock.Now()))
	if err != nil {
		return fmt.Errorf("check upcoming parcels: %w", err)
	}
	if upcoming {
		return ErrHasUpcomingParcels
	}
	return nil
}

func (h *Household) anonymize(ctx context.Context, householdID, by string) (bool, error) {
	sequence, err := h.repository.NextPlaceholderSequence(ctx)
	if err != nil {
		return false, fmt.Errorf("next placeholder sequence: %w", err)
	}

	if _, err := h.repository.DeleteComments(ctx, householdID); err != nil {
		return false, fmt.Errorf("delete comments: %w", err)
	}
	if _, err := h.repository.DeleteSms(ctx, householdID); err != nil {
		return false, fmt.Errorf("delete sms: %w", err)
	}

	anonymized, err := h.repository.Anonymize(ctx, householdID, PlaceholderPhone(sequence), h.clock.Now(), by)
	if err != nil {
		return false, fmt.Errorf("anonymize household: %w", err)
	}
	return anonymized, nil
}

func PlaceholderPhone(sequence int) string {
	return fmt.Sprintf("%s%06d", entities.AnonymizedPhonePrefix, sequence)
}
