package location

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodbank/internal/entities"
	"foodbank/internal/repository"
	"foodbank/internal/service/schedule"

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

func (r *Repository) GetLocation(ctx context.Context, locationID string) (*entities.PickupLocation, error) {
	query := `SELECT id, name, max_parcels_per_day, max_parcels_per_slot, default_slot_duration_minutes
		FROM pickup_locations
		WHERE id = $1`

	var locationModel LocationDB
	err := r.querier.QueryRow(ctx, query, locationID).
		Scan(
			&locationModel.ID,
			&locationModel.Name,
			&locationModel.MaxParcelsPerDay,
			&locationModel.MaxParcelsPerSlot,
			&locationModel.DefaultSlotDurationMinutes,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrLocationNotFound
		}
		return nil, fmt.Errorf("unexpected location repository get error: %w", err)
	}

	return ToDomainLocation(&locationModel), nil
}

func (r *Repository) ListSchedules(ctx context.Context, locationID string) ([]entities.Schedule, error) {
	query := `SELECT id, location_id, name, start_date, end_date
		FROM pickup_location_schedules
		WHERE location_id = $1
		ORDER BY start_date, id`

	rows, err := r.querier.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository list schedules error: %w", err)
	}
	defer rows.Close()

	scheduleModels := make([]ScheduleDB, 0, 4)
	for rows.Next() {
		var scheduleModel ScheduleDB
		err := rows.Scan(
			&scheduleModel.ID,
			&scheduleModel.LocationID,
			&scheduleModel.Name,
			&scheduleModel.StartDate,
			&scheduleModel.EndDate,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected location repository list schedules error: %w", err)
		}
		scheduleModels = append(scheduleModels, scheduleModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected location repository list schedules error: %w", err)
	}

	if len(scheduleModels) == 0 {
		return []entities.Schedule{}, nil
	}

	ids := make([]string, len(scheduleModels))
	for i, s := range scheduleModels {
		ids[i] = s.ID
	}
	days, err := r.listDays(ctx, ids)
	if err != nil {
		return nil, err
	}

	schedules := make([]entities.Schedule, 0, len(scheduleModels))
	for i := range scheduleModels {
		schedules = append(schedules, *ToDomainSchedule(&scheduleModels[i], days[scheduleModels[i].ID]))
	}
	return schedules, nil
}

func (r *Repository) GetSpecialDay(ctx context.Context, locationID string, date time.Time) (*entities.SpecialDay, error) {
	query := `SELECT location_id, date, is_open, to_char(opening_time, 'HH24:MI'), to_char(closing_time, 'HH24:MI')
		FROM pickup_location_special_days
		WHERE location_id = $1 AND date = $2`

	var specialModel SpecialDayDB
	err := r.querier.QueryRow(ctx, query, locationID, date).
		Scan(
			&specialModel.LocationID,
			&specialModel.Date,
			&specialModel.IsOpen,
			&specialModel.OpeningTime,
			&specialModel.ClosingTime,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected location repository get special day error: %w", err)
	}

	return ToDomainSpecialDay(&specialModel), nil
}

func (r *Repository) CreateSchedule(ctx context.Context, scheduleModify entities.ScheduleModify) (*entities.Schedule, error) {
	query := `INSERT INTO pickup_location_schedules (id, location_id, name, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, location_id, name, start_date, end_date`

	var scheduleModel ScheduleDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		scheduleModify.LocationID,
		scheduleModify.Name,
		scheduleModify.StartDate,
		scheduleModify.EndDate,
	).Scan(
		&scheduleModel.ID,
		&scheduleModel.LocationID,
		&scheduleModel.Name,
		&scheduleModel.StartDate,
		&scheduleModel.EndDate,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, schedule.ErrLocationNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, schedule.ErrInvalidDateRange
		}
		return nil, fmt.Errorf("unexpected location repository create schedule error: %w", err)
	}

	days, err := r.replaceDays(ctx, scheduleModel.ID, scheduleModify.Days)
	if err != nil {
		return nil, err
	}

	return ToDomainSchedule(&scheduleModel, days), nil
}

func (r *Repository) UpdateSchedule(ctx context.Context, scheduleModify entities.ScheduleModify) (*entities.Schedule, error) {
	builder := qb.Update("pickup_location_schedules")

	if scheduleModify.Name != nil {
		builder = builder.Set("name", scheduleModify.Name)
	}
	if scheduleModify.StartDate != nil {
		builder = builder.Set("start_date", scheduleModify.StartDate)
	}
	if scheduleModify.EndDate != nil {
		builder = builder.Set("end_date", scheduleModify.EndDate)
	}

	builder = builder.
		Where(sq.Eq{"id": scheduleModify.ID}).
		Where(sq.Eq{"location_id": scheduleModify.LocationID}).
		Suffix("RETURNING id, location_id, name, start_date, end_date")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository update schedule error: %w", err)
	}

	var scheduleModel ScheduleDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&scheduleModel.ID,
			&scheduleModel.LocationID,
			&scheduleModel.Name,
			&scheduleModel.StartDate,
			&scheduleModel.EndDate,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrScheduleNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, schedule.ErrInvalidDateRange
		}
		return nil, fmt.Errorf("unexpected location repository update schedule error: %w", err)
	}

	days, err := r.replaceDays(ctx, scheduleModel.ID, scheduleModify.Days)
	if err != nil {
		return nil, err
	}

	return ToDomainSchedule(&scheduleModel, days), nil
}

func (r *Repository) listDays(ctx context.Context, scheduleIDs []string) (map[string][]ScheduleDayDB, error) {
	query, args, err := qb.
		Select("schedule_id", "weekday", "is_open", "to_char(opening_time, 'HH24:MI')", "to_char(closing_time, 'HH24:MI')").
		From("pickup_location_schedule_days").
		Where(sq.Eq{"schedule_id": scheduleIDs}).
		OrderBy("schedule_id", "weekday").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository list days error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository list days error: %w", err)
	}
	defer rows.Close()

	days := make(map[string][]ScheduleDayDB, len(scheduleIDs))
	for rows.Next() {
		var dayModel ScheduleDayDB
		err := rows.Scan(
			&dayModel.ScheduleID,
			&dayModel.Weekday,
			&dayModel.IsOpen,
			&dayModel.OpeningTime,
			&dayModel.ClosingTime,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected location repository list days error: %w", err)
		}
		days[dayModel.ScheduleID] = append(days[dayModel.ScheduleID], dayModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected location repository list days error: %w", err)
	}

	return days, nil
}

// replaceDays перезаписывает все семь дней расписания.
func (r *Repository) replaceDays(ctx context.Context, scheduleID string, days []entities.ScheduleDay) ([]ScheduleDayDB, error) {
	if _, err := r.querier.Exec(ctx, `DELETE FROM pickup_location_schedule_days WHERE schedule_id = $1`, scheduleID); err != nil {
		return nil, fmt.Errorf("unexpected location repository replace days error: %w", err)
	}
	if len(days) == 0 {
		return []ScheduleDayDB{}, nil
	}

	builder := qb.
		Insert("pickup_location_schedule_days").
		Columns("schedule_id", "weekday", "is_open", "opening_time", "closing_time")

	dayModels := make([]ScheduleDayDB, 0, len(days))
	for _, day := range days {
		dayModel := ScheduleDayDB{
			ScheduleID:  scheduleID,
			Weekday:     int16(day.Weekday),
			IsOpen:      day.IsOpen,
			OpeningTime: day.OpeningTime,
			ClosingTime: day.ClosingTime,
		}
		builder = builder.Values(
			dayModel.ScheduleID,
			dayModel.Weekday,
			dayModel.IsOpen,
			sq.Expr("?::time", dayModel.OpeningTime),
			sq.Expr("?::time", dayModel.ClosingTime),
		)
		dayModels = append(dayModels, dayModel)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository replace days error: %w", err)
	}
	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("unexpected location repository replace days error: %w", err)
	}

	return dayModels, nil
}
