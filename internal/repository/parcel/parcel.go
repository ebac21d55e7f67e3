package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodbank/internal/entities"
	"foodbank/internal/repository"
	"foodbank/internal/service/parcel"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
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

func (r *Repository) GetParcel(ctx context.Context, parcelID string) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM food_parcels
		WHERE id = $1`

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, parcelID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository get error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

func (r *Repository) CountParcelsInRange(
	ctx context.Context,
	locationID string,
	from, to time.Time,
	excludeIDs []string,
) (int, error) {
	builder := qb.
		Select("COUNT(*)").
		From("food_parcels").
		Where(sq.Eq{"pickup_location_id": locationID}).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.GtOrEq{"pickup_date_time_earliest": from}).
		Where(sq.Lt{"pickup_date_time_earliest": to})
	if len(excludeIDs) > 0 {
		builder = builder.Where(sq.NotEq{"id": excludeIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository count error: %w", err)
	}

	var count int
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected parcel repository count error: %w", err)
	}
	return count, nil
}

func (r *Repository) FindHouseholdParcelInRange(
	ctx context.Context,
	householdID string,
	from, to time.Time,
	excludeIDs []string,
) (*entities.Parcel, error) {
	builder := qb.
		Select(parcelColumns).
		From("food_parcels").
		Where(sq.Eq{"household_id": householdID}).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.GtOrEq{"pickup_date_time_earliest": from}).
		Where(sq.Lt{"pickup_date_time_earliest": to}).
		OrderBy("pickup_date_time_earliest", "id").
		Limit(1)
	if len(excludeIDs) > 0 {
		builder = builder.Where(sq.NotEq{"id": excludeIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository find error: %w", err)
	}

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected parcel repository find error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

func (r *Repository) ListUpcomingHouseholdParcels(
	ctx context.Context,
	householdID string,
	from time.Time,
) ([]entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM food_parcels
		WHERE household_id = $1
			AND deleted_at IS NULL
			AND pickup_date_time_earliest >= $2
		ORDER BY pickup_date_time_earliest, id`

	rows, err := r.querier.Query(ctx, query, householdID, from)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list upcoming error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 4)
	for rows.Next() {
		parcelModel, err := scanParcel(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list upcoming error: %w", err)
		}
		parcelModels = append(parcelModels, *parcelModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list upcoming error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

func (r *Repository) CreateParcel(ctx context.Context, candidate entities.ParcelCandidate) (*entities.Parcel, error) {
	query := `INSERT INTO food_parcels (id, household_id, pickup_location_id, pickup_date_time_earliest, pickup_date_time_latest)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + parcelColumns

	parcelModel, err := scanParcel(r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		candidate.HouseholdID,
		candidate.PickupLocationID,
		candidate.PickupEarliestTime,
		candidate.PickupLatestTime,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, parcel.ErrHouseholdNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

func (r *Repository) UpdateParcel(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	builder := qb.Update("food_parcels")

	if parcelModifyModel.PickupLocationID != nil {
		builder = builder.Set("pickup_location_id", parcelModifyModel.PickupLocationID)
	}
	if parcelModifyModel.PickupDateTimeEarliest != nil {
		builder = builder.Set("pickup_date_time_earliest", parcelModifyModel.PickupDateTimeEarliest)
	}
	if parcelModifyModel.PickupDateTimeLatest != nil {
		builder = builder.Set("pickup_date_time_latest", parcelModifyModel.PickupDateTimeLatest)
	}

	builder = builder.
		Where(sq.Eq{"id": parcelModifyModel.ID}).
		Where(sq.Eq{"deleted_at": nil}).
		Suffix("RETURNING " + parcelColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, parcel.ErrLocationNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

func (r *Repository) SoftDeleteParcels(ctx context.Context, parcelIDs []string, deletedAt time.Time, deletedBy *string) error {
	if len(parcelIDs) == 0 {
		return nil
	}

	query, args, err := qb.
		Update("food_parcels").
		Set("deleted_at", deletedAt).
		Set("deleted_by", deletedBy).
		Where(sq.Eq{"id": parcelIDs}).
		Where(sq.Eq{"deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected parcel repository delete error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected parcel repository delete error: %w", err)
	}
	return nil
}

func (r *Repository) RecordOutcome(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	builder := qb.Update("food_parcels")

	// итог выдачи: либо получена, либо неявка
	if parcelModifyModel.IsPickedUp != nil {
		builder = builder.
			Set("is_picked_up", parcelModifyModel.IsPickedUp).
			Set("picked_up_at", parcelModifyModel.PickedUpAt).
			Set("picked_up_by", parcelModifyModel.PickedUpBy)
	}
	if parcelModifyModel.NoShowAt != nil {
		builder = builder.
			Set("no_show_at", parcelModifyModel.NoShowAt).
			Set("no_show_by", parcelModifyModel.NoShowBy)
	}

	builder = builder.
		Where(sq.Eq{"id": parcelModifyModel.ID}).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.Eq{"is_picked_up": false}).
		Where(sq.Eq{"no_show_at": nil}).
		Suffix("RETURNING " + parcelColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository record outcome error: %w", err)
	}

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrOutcomeAlreadyRecorded
		}
		return nil, fmt.Errorf("unexpected parcel repository record outcome error: %w", err)
	}

	return ToDomain(parcelModel), nil
}
