package household

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodbank/internal/entities"
	"foodbank/internal/service/household"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetHousehold(ctx context.Context, householdID string) (*entities.Household, error) {
	query := `SELECT id, first_name, last_name, phone_number, locale, created_at,
			anonymized_at, anonymized_by, noshow_followup_dismissed_at, noshow_followup_dismissed_by
		FROM households
		WHERE id = $1`

	var householdModel HouseholdDB
	err := r.querier.QueryRow(ctx, query, householdID).
		Scan(
			&householdModel.ID,
			&householdModel.FirstName,
			&householdModel.LastName,
			&householdModel.PhoneNumber,
			&householdModel.Locale,
			&householdModel.CreatedAt,
			&householdModel.AnonymizedAt,
			&householdModel.AnonymizedBy,
			&householdModel.NoShowFollowupDismissedAt,
			&householdModel.NoShowFollowupDismissedBy,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, household.ErrHouseholdNotFound
		}
		return nil, fmt.Errorf("unexpected household repository get error: %w", err)
	}

	return ToDomain(&householdModel), nil
}

func (r *Repository) HasUpcomingParcels(ctx context.Context, householdID string, from time.Time) (bool, error) {
	query := `SELECT EXISTS (
			SELECT 1 FROM food_parcels
			WHERE household_id = $1
				AND deleted_at IS NULL
				AND pickup_date_time_earliest >= $2
		)`

	var exists bool
	if err := r.querier.QueryRow(ctx, query, householdID, from).Scan(&exists); err != nil {
		return false, fmt.Errorf("unexpected household repository upcoming parcels error: %w", err)
	}
	return exists, nil
}

func (r *Repository) CountParcels(ctx context.Context, householdID string) (int, error) {
	query := `SELECT COUNT(*) FROM food_parcels WHERE household_id = $1`

	var count int
	if err := r.querier.QueryRow(ctx, query, householdID).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected household repository count parcels error: %w", err)
	}
	return count, nil
}

// ListInactiveHouseholds возвращает неанонимизированные домохозяйства, созданные
// раньше inactiveSince, без выдач после inactiveSince и без будущих выдач.
func (r *Repository) ListInactiveHouseholds(ctx context.Context, inactiveSince, upcomingFrom time.Time) ([]string, error) {
	query := `SELECT h.id
		FROM households h
		WHERE h.anonymized_at IS NULL
			AND h.created_at < $1
			AND NOT EXISTS (
				SELECT 1 FROM food_parcels p
				WHERE p.household_id = h.id
					AND p.pickup_date_time_earliest >= $1
			)
			AND NOT EXISTS (
				SELECT 1 FROM food_parcels p
				WHERE p.household_id = h.id
					AND p.deleted_at IS NULL
					AND p.pickup_date_time_earliest >= $2
			)
		ORDER BY h.created_at, h.id`

	rows, err := r.querier.Query(ctx, query, inactiveSince, upcomingFrom)
	if err != nil {
		return nil, fmt.Errorf("unexpected household repository list inactive error: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0, 16)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected household repository list inactive error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected household repository list inactive error: %w", err)
	}

	return ids, nil
}

func (r *Repository) DeleteHousehold(ctx context.Context, householdID string) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM households WHERE id = $1`, householdID)
	if err != nil {
		return fmt.Errorf("unexpected household repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return household.ErrHouseholdNotFound
	}
	return nil
}

// NextPlaceholderSequence - следующий номер после максимального уже выданного плейсхолдера.
func (r *Repository) NextPlaceholderSequence(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(MAX(CAST(SUBSTRING(phone_number FROM $1::int) AS INTEGER)), 0) + 1
		FROM households
		WHERE anonymized_at IS NOT NULL
			AND phone_number ~ $2`

	prefixLen := len(entities.AnonymizedPhonePrefix)
	pattern := `^\` + entities.AnonymizedPhonePrefix + `[0-9]+$`

	var next int
	if err := r.querier.QueryRow(ctx, query, prefixLen+1, pattern).Scan(&next); err != nil {
		return 0, fmt.Errorf("unexpected household repository placeholder sequence error: %w", err)
	}
	return next, nil
}

func (r *Repository) DeleteComments(ctx context.Context, householdID string) (int64, error) {
	tag, err := r.querier.Exec(ctx, `DELETE FROM household_comments WHERE household_id = $1`, householdID)
	if err != nil {
		return 0, fmt.Errorf("unexpected household repository delete comments error: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteSms(ctx context.Context, householdID string) (int64, error) {
	tag, err := r.querier.Exec(ctx, `DELETE FROM outgoing_sms WHERE household_id = $1`, householdID)
	if err != nil {
		return 0, fmt.Errorf("unexpected household repository delete sms error: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) Anonymize(
	ctx context.Context,
	householdID, placeholderPhone string,
	anonymizedAt time.Time,
	anonymizedBy string,
) (bool, error) {
	query, args, err := qb.
		Update("households").
		Set("first_name", entities.AnonymizedFirstName).
		Set("last_name", entities.AnonymizedLastName).
		Set("phone_number", placeholderPhone).
		Set("anonymized_at", anonymizedAt).
		Set("anonymized_by", anonymizedBy).
		Where(sq.Eq{"id": householdID}).
		Where(sq.Eq{"anonymized_at": nil}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected household repository anonymize error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("unexpected household repository anonymize error: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListOutcomeRows отдает выдачи с итогом, упорядоченные для подсчета серии неявок.
func (r *Repository) ListOutcomeRows(ctx context.Context) ([]entities.ParcelOutcomeRow, error) {
	query := `SELECT h.id, h.first_name, h.last_name, h.noshow_followup_dismissed_at,
			p.id, p.pickup_date_time_earliest, p.no_show_at, p.is_picked_up
		FROM food_parcels p
		JOIN households h ON h.id = p.household_id
		WHERE h.anonymized_at IS NULL
			AND p.deleted_at IS NULL
			AND (p.is_picked_up OR p.no_show_at IS NOT NULL)
		ORDER BY h.id, p.pickup_date_time_earliest DESC, p.id DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected household repository outcome rows error: %w", err)
	}
	defer rows.Close()

	rowModels := make([]OutcomeRowDB, 0, 64)
	for rows.Next() {
		var rowModel OutcomeRowDB
		err := rows.Scan(
			&rowModel.HouseholdID,
			&rowModel.FirstName,
			&rowModel.LastName,
			&rowModel.DismissedAt,
			&rowModel.ParcelID,
			&rowModel.PickupDateTimeEarliest,
			&rowModel.NoShowAt,
			&rowModel.IsPickedUp,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected household repository outcome rows error: %w", err)
		}
		rowModels = append(rowModels, rowModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected household repository outcome rows error: %w", err)
	}

	return ToDomainOutcomeRows(rowModels), nil
}

func (r *Repository) DismissFollowup(ctx context.Context, householdID string, dismissedAt time.Time, dismissedBy string) error {
	query := `UPDATE households
		SET noshow_followup_dismissed_at = $2, noshow_followup_dismissed_by = $3
		WHERE id = $1 AND anonymized_at IS NULL`

	tag, err := r.querier.Exec(ctx, query, householdID, dismissedAt, dismissedBy)
	if err != nil {
		return fmt.Errorf("unexpected household repository dismiss followup error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return household.ErrHouseholdNotFound
	}
	return nil
}
