//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sms_test
package sms

import (
	"context"
	"time"

	"foodbank/internal/entities"
)

type Repository interface {
	GetSms(ctx context.Context, smsID string) (*entities.OutgoingSms, error)
	ListParcelSms(ctx context.Context, parcelID string) ([]entities.OutgoingSms, error)
	// CountParcelSmsSince считает все записи по выдаче, созданные не раньше since, с любым ключом.
	CountParcelSmsSince(ctx context.Context, parcelID string, since time.Time) (int, error)
	ListFailedSince(ctx context.Context, since time.Time) ([]entities.OutgoingSms, error)

	// QueueSms вставляет запись или обновляет ожидающую по ключу дедупликации.
	// Отправленная запись возвращается без изменений.
	QueueSms(ctx context.Context, request entities.SmsQueueRequest) (*entities.OutgoingSms, error)
	UpdateSms(ctx context.Context, modify entities.SmsModify) (*entities.OutgoingSms, error)
	// ClaimDue атомарно переводит готовые к отправке записи в sending и увеличивает attempt_count.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]entities.OutgoingSms, error)
	// ReleaseStale возвращает в очередь записи, чья аренда sending истекла.
	ReleaseStale(ctx context.Context, claimedBefore, now time.Time, maxAttempts int) (int64, error)
	UpdateProviderStatus(ctx context.Context, providerMessageID string, status entities.SmsProviderStatus) (bool, error)
}

type ParcelRepository interface {
	GetParcel(ctx context.Context, parcelID string) (*entities.Parcel, error)
}

type HouseholdRepository interface {
	GetHousehold(ctx context.Context, householdID string) (*entities.Household, error)
}

type LocationRepository interface {
	GetLocation(ctx context.Context, locationID string) (*entities.PickupLocation, error)
}

type Gateway interface {
	Send(ctx context.Context, to, text string) (*entities.SmsSendResult, error)
	CheckBalance(ctx context.Context) (float64, error)
}

type TextRenderer interface {
	Render(intent entities.SmsIntent, data entities.SmsTextData) (string, error)
}

type ScheduleCalculator interface {
	CalculateSmsScheduleTime(pickupTime time.Time) time.Time
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
