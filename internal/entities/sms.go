package entities

import "time"

type SmsIntent string

const (
	SmsPickupReminder  SmsIntent = "pickup_reminder"
	SmsPickupUpdated   SmsIntent = "pickup_updated"
	SmsPickupCancelled SmsIntent = "pickup_cancelled"
)

func (i SmsIntent) String() string {
	return string(i)
}

type SmsStatus string

const (
	SmsQueued    SmsStatus = "queued"
	SmsSending   SmsStatus = "sending"
	SmsSent      SmsStatus = "sent"
	SmsRetrying  SmsStatus = "retrying"
	SmsFailed    SmsStatus = "failed"
	SmsCancelled SmsStatus = "cancelled"
)

func (s SmsStatus) String() string {
	return string(s)
}

// IsPending - сообщение еще ждет отправки и может быть перепланировано или отменено.
func (s SmsStatus) IsPending() bool {
	return s == SmsQueued || s == SmsRetrying
}

type SmsProviderStatus string

const (
	ProviderDelivered    SmsProviderStatus = "delivered"
	ProviderFailed       SmsProviderStatus = "failed"
	ProviderNotDelivered SmsProviderStatus = "not delivered"
)

func (s SmsProviderStatus) String() string {
	return string(s)
}

func (s SmsProviderStatus) IsValid() bool {
	switch s {
	case ProviderDelivered, ProviderFailed, ProviderNotDelivered:
		return true
	}
	return false
}

type OutgoingSms struct {
	ID                string
	Intent            SmsIntent
	ParcelID          *string
	HouseholdID       string
	ToE164            string
	Text              string
	Status            SmsStatus
	ProviderStatus    *SmsProviderStatus
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

// SmsQueueRequest описывает сообщение для постановки в очередь.
type SmsQueueRequest struct {
	Intent         SmsIntent
	ParcelID       *string
	HouseholdID    string
	ToE164         string
	Text           string
	IdempotencyKey string
	NextAttemptAt  time.Time
}

type SmsModify struct {
	ID                *string
	Status            *SmsStatus
	ProviderMessageID *string
	NextAttemptAt     *time.Time
	LastErrorMessage  *string
	SentAt            *time.Time
	DismissedAt       *time.Time
	DismissedByUserID *string
}

// SmsSendResult - ответ шлюза на отправку.
type SmsSendResult struct {
	MessageID string
}

// SmsProviderReport - отчет провайдера о доставке (webhook или kafka).
type SmsProviderReport struct {
	APIMessageID string
	Status       SmsProviderStatus
	Timestamp    *int64
	CallbackRef  *string
}

type SmsBalanceStatus struct {
	HasBalanceProblem   bool
	RecentBalanceErrors int
	Credits             *float64
	BalanceCheckError   *string
	LastFailureMessage  *string
}

type SmsDispatchResult struct {
	Released int
	Claimed  int
	Sent     int
	Retried  int
	Failed   int
}

// SmsDispatchInterrupted - текст ошибки для записи, отправка которой не завершилась.
const SmsDispatchInterrupted = "dispatch interrupted"

// SmsTextData - данные выдачи, из которых собирается текст сообщения.
type SmsTextData struct {
	ParcelID       string
	Locale         string
	LocationName   string
	PickupEarliest time.Time
	PickupLatest   time.Time
}
