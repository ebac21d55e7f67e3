package sms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodbank/internal/entities"
	"foodbank/internal/service/sms"

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

func (r *Repository) GetSms(ctx context.Context, smsID string) (*entities.OutgoingSms, error) {
	query := `SELECT ` + smsColumns + ` FROM outgoing_sms WHERE id = $1`

	smsModel, err := scanSms(r.querier.QueryRow(ctx, query, smsID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sms.ErrSmsNotFound
		}
		return nil, fmt.Errorf("unexpected sms repository get error: %w", err)
	}

	return ToDomain(smsModel), nil
}

func (r *Repository) ListParcelSms(ctx context.Context, parcelID string) ([]entities.OutgoingSms, error) {
	query := `SELECT ` + smsColumns + `
		FROM outgoing_sms
		WHERE parcel_id = $1
		ORDER BY created_at, id`

	return r.list(ctx, "list parcel sms", query, parcelID)
}

func (r *Repository) CountParcelSmsSince(ctx context.Context, parcelID string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM outgoing_sms WHERE parcel_id = $1 AND created_at >= $2`

	var count int
	if err := r.querier.QueryRow(ctx, query, parcelID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected sms repository count error: %w", err)
	}
	return count, nil
}

func (r *Repository) ListFailedSince(ctx context.Context, since time.Time) ([]entities.OutgoingSms, error) {
	query := `SELECT ` + smsColumns + `
		FROM outgoing_sms
		WHERE status IN ('failed', 'retrying')
			AND last_error_message IS NOT NULL
			AND COALESCE(next_attempt_at, created_at) >= $1
		ORDER BY COALESCE(next_attempt_at, created_at) DESC`

	return r.list(ctx, "list failed sms", query, since)
}

// QueueSms вставляет запись по ключу дедупликации. Конфликт с ожидающей записью
// обновляет текст и время отправки, с отправленной возвращает ее без изменений.
func (r *Repository) QueueSms(ctx context.Context, request entities.SmsQueueRequest) (*entities.OutgoingSms, error) {
	query := `INSERT INTO outgoing_sms (id, intent, parcel_id, household_id, to_e164, text, status, idempotency_key, next_attempt_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'queued', $7, $8)
		ON CONFLICT (parcel_id, intent, idempotency_key) WHERE status <> 'cancelled'
		DO UPDATE SET
			text = EXCLUDED.text,
			to_e164 = EXCLUDED.to_e164,
			next_attempt_at = EXCLUDED.next_attempt_at
		WHERE outgoing_sms.status IN ('queued', 'retrying')
		RETURNING ` + smsColumns

	smsModel, err := scanSms(r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		request.Intent.String(),
		request.ParcelID,
		request.HouseholdID,
		request.ToE164,
		request.Text,
		request.IdempotencyKey,
		request.NextAttemptAt,
	))
	if err == nil {
		return ToDomain(smsModel), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected sms repository queue error: %w", err)
	}

	// конфликт с уже отправленной записью: DO UPDATE не сработал
	existing, err := scanSms(r.querier.QueryRow(ctx, `SELECT `+smsColumns+`
		FROM outgoing_sms
		WHERE parcel_id = $1 AND intent = $2 AND idempotency_key = $3 AND status <> 'cancelled'`,
		request.ParcelID, request.Intent.String(), request.IdempotencyKey,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected sms repository queue error: %w", err)
	}
	return ToDomain(existing), nil
}

func (r *Repository) UpdateSms(ctx context.Context, smsModifyEntity entities.SmsModify) (*entities.OutgoingSms, error) {
	smsModifyModel := FromDomainModify(&smsModifyEntity)

	builder := qb.Update("outgoing_sms")

	if smsModifyModel.Status != nil {
		builder = builder.Set("status", smsModifyModel.Status)
	}
	if smsModifyModel.ProviderMessageID != nil {
		builder = builder.Set("provider_message_id", smsModifyModel.ProviderMessageID)
	}
	if smsModifyModel.NextAttemptAt != nil {
		builder = builder.Set("next_attempt_at", smsModifyModel.NextAttemptAt)
	}
	if smsModifyModel.LastErrorMessage != nil {
		builder = builder.Set("last_error_message", smsModifyModel.LastErrorMessage)
	}
	if smsModifyModel.SentAt != nil {
		builder = builder.Set("sent_at", smsModifyModel.SentAt)
	}
	if smsModifyModel.DismissedAt != nil {
		builder = builder.
			Set("dismissed_at", smsModifyModel.DismissedAt).
			Set("dismissed_by_user_id", smsModifyModel.DismissedByUserID)
	}

	builder = builder.
		Where(sq.Eq{"id": smsModifyModel.ID}).
		Suffix("RETURNING " + smsColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected sms repository update error: %w", err)
	}

	smsModel, err := scanSms(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sms.ErrSmsNotFound
		}
		return nil, fmt.Errorf("unexpected sms repository update error: %w", err)
	}

	return ToDomain(smsModel), nil
}

// ClaimDue забирает пачку готовых сообщений одним UPDATE. SKIP LOCKED не дает
// двум экземплярам диспетчера взять одну и ту же запись.
func (r *Repository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]entities.OutgoingSms, error) {
	query := `UPDATE outgoing_sms
		SET status = 'sending', attempt_count = attempt_count + 1, claimed_at = $1
		WHERE id IN (
			SELECT id FROM outgoing_sms
			WHERE status IN ('queued', 'retrying')
				AND next_attempt_at <= $1
			ORDER BY next_attempt_at, id
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + smsColumns

	return r.list(ctx, "claim due sms", query, now, limit)
}

// ReleaseStale возвращает записи, застрявшие в sending дольше аренды: в retrying
// с немедленной попыткой или в failed, если попытки исчерпаны.
func (r *Repository) ReleaseStale(ctx context.Context, claimedBefore, now time.Time, maxAttempts int) (int64, error) {
	query := `UPDATE outgoing_sms
		SET status = CASE WHEN attempt_count >= $3 THEN 'failed' ELSE 'retrying' END,
			next_attempt_at = $2,
			last_error_message = $4,
			claimed_at = NULL
		WHERE status = 'sending'
			AND (claimed_at IS NULL OR claimed_at < $1)`

	tag, err := r.querier.Exec(ctx, query, claimedBefore, now, maxAttempts, entities.SmsDispatchInterrupted)
	if err != nil {
		return 0, fmt.Errorf("unexpected sms repository release stale error: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) UpdateProviderStatus(
	ctx context.Context,
	providerMessageID string,
	status entities.SmsProviderStatus,
) (bool, error) {
	query := `UPDATE outgoing_sms SET provider_status = $2 WHERE provider_message_id = $1`

	tag, err := r.querier.Exec(ctx, query, providerMessageID, status.String())
	if err != nil {
		return false, fmt.Errorf("unexpected sms repository provider status error: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) list(ctx context.Context, op, query string, args ...interface{}) ([]entities.OutgoingSms, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected sms repository %s error: %w", op, err)
	}
	defer rows.Close()

	smsModels := make([]SmsDB, 0, 8)
	for rows.Next() {
		smsModel, err := scanSms(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected sms repository %s error: %w", op, err)
		}
		smsModels = append(smsModels, *smsModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected sms repository %s error: %w", op, err)
	}

	return ToDomainList(smsModels), nil
}
