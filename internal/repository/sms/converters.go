package sms

import (
	"foodbank/internal/entities"

	"github.com/jackc/pgx/v5"
)

const smsColumns = `id, intent, parcel_id, household_id, to_e164, text, status, provider_status,
	provider_message_id, attempt_count, next_attempt_at, last_error_message, idempotency_key,
	sent_at, created_at, dismissed_at, dismissed_by_user_id`

func scanSms(row pgx.Row) (*SmsDB, error) {
	var s SmsDB
	err := row.Scan(
		&s.ID,
		&s.Intent,
		&s.ParcelID,
		&s.HouseholdID,
		&s.ToE164,
		&s.Text,
		&s.Status,
		&s.ProviderStatus,
		&s.ProviderMessageID,
		&s.AttemptCount,
		&s.NextAttemptAt,
		&s.LastErrorMessage,
		&s.IdempotencyKey,
		&s.SentAt,
		&s.CreatedAt,
		&s.DismissedAt,
		&s.DismissedByUserID,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func ToDomain(s *SmsDB) *entities.OutgoingSms {
	if s == nil {
		return nil
	}

	sms := &entities.OutgoingSms{
		ID:                s.ID,
		Intent:            entities.SmsIntent(s.Intent),
		ParcelID:          s.ParcelID,
		HouseholdID:       s.HouseholdID,
		ToE164:            s.ToE164,
		Text:              s.Text,
		Status:            entities.SmsStatus(s.Status),
		ProviderMessageID: s.ProviderMessageID,
		AttemptCount:      s.AttemptCount,
		NextAttemptAt:     s.NextAttemptAt,
		LastErrorMessage:  s.LastErrorMessage,
		IdempotencyKey:    s.IdempotencyKey,
		SentAt:            s.SentAt,
		CreatedAt:         s.CreatedAt,
		DismissedAt:       s.DismissedAt,
		DismissedByUserID: s.DismissedByUserID,
	}
	if s.ProviderStatus != nil {
		providerStatus := entities.SmsProviderStatus(*s.ProviderStatus)
		sms.ProviderStatus = &providerStatus
	}
	return sms
}

func ToDomainList(smsDB []SmsDB) []entities.OutgoingSms {
	if len(smsDB) == 0 {
		return []entities.OutgoingSms{}
	}

	result := make([]entities.OutgoingSms, len(smsDB))
	for i, s := range smsDB {
		result[i] = *ToDomain(&s)
	}
	return result
}

func FromDomainModify(smsModify *entities.SmsModify) *SmsModifyDB {
	if smsModify == nil {
		return nil
	}

	smsDB := &SmsModifyDB{
		ID:                smsModify.ID,
		ProviderMessageID: smsModify.ProviderMessageID,
		NextAttemptAt:     smsModify.NextAttemptAt,
		LastErrorMessage:  smsModify.LastErrorMessage,
		SentAt:            smsModify.SentAt,
		DismissedAt:       smsModify.DismissedAt,
		DismissedByUserID: smsModify.DismissedByUserID,
	}
	if smsModify.Status != nil {
		status := smsModify.Status.String()
		smsDB.Status = &status
	}
	return smsDB
}
