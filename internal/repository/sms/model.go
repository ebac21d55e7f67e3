package sms

import "time"

type SmsDB struct {
	ID                string
	Intent            string
	ParcelID          *string
	HouseholdID       string
	ToE164            string
	Text              string
	Status            string
	ProviderStatus    *string
	ProviderMessageID *string
	AttemptCount      int
	NextAttemptAt     *time.Time
	LastErrorMessage  *string
	IdempotencyKey    string
	SentAt            *time.Time
	CreatedAt         time.Time
	DismissedAt       *time.Time
	DismissedByUserID *string
}

type SmsModifyDB struct {
	ID                *string
	Status            *string
	ProviderMessageID *string
	NextAttemptAt     *time.Time
	LastErrorMessage  *string
	SentAt            *time.Time
	DismissedAt       *time.Time
	DismissedByUserID *string
}
