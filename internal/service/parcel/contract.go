//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"
	"time"

	"foodbank/internal/entities"
)

type Repository interface {
	GetParcel(ctx context.Context, parcelID string) (*entities.Parcel, error)
	// CountParcelsInRange считает неудаленные выдачи пункта с началом окна в [from, to).
	CountParcelsInRange(ctx context.Context, locationID string, from, to time.Time, excludeIDs []string) (int, error)
	// FindHouseholdParcelInRange возвращает nil без ошибки, если выдачи нет.
	FindHouseholdParcelInRange(ctx context.Context, householdID string, from, to time.Time, excludeIDs []string) (*entities.Parcel, error)
	ListUpcomingHouseholdParcels(ctx context.Context, householdID string, from time.Time) ([]entities.Parcel, error)

	CreateParcel(ctx context.Context, candidate entities.ParcelCandidate) (*entities.Parcel, error)
	UpdateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
	SoftDeleteParcels(ctx context.Context, parcelIDs []string, deletedAt time.Time, deletedBy *string) error
	// RecordOutcome проставляет итог только если он еще не зафиксирован.
	RecordOutcome(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
}

type LocationRepository interface {
	GetLocation(ctx context.Context, locationID string) (*entities.PickupLocation, error)
	ListSchedules(ctx context.Context, locationID string) ([]entities.Schedule, error)
	GetSpecialDay(ctx context.Context, locationID string, date time.Time) (*entities.SpecialDay, error)
}

type HouseholdRepository interface {
	GetHousehold(ctx context.Context, householdID string) (*entities.Household, error)
}

type SmsNotifier interface {
	OnParcelCreated(ctx context.Context, parcel entities.Parcel) error
	OnParcelUpdated(ctx context.Context, before, after entities.Parcel) error
	OnParcelCancelled(ctx context.Context, parcel entities.Parcel) error
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
