//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=household_test
package household

import (
	"context"
	"time"

	"foodbank/internal/entities"
)

type Repository interface {
	GetHousehold(ctx context.Context, householdID string) (*entities.Household, error)
	// HasUpcomingParcels ищет неудаленные выдачи с началом окна не раньше from.
	HasUpcomingParcels(ctx context.Context, householdID string, from time.Time) (bool, error)
	// CountParcels считает все выдачи домохозяйства, включая удаленные.
	CountParcels(ctx context.Context, householdID string) (int, error)
	ListInactiveHouseholds(ctx context.Context, inactiveSince, upcomingFrom time.Time) ([]string, error)

	DeleteHousehold(ctx context.Context, householdID string) error
	NextPlaceholderSequence(ctx context.Context) (int, error)
	DeleteComments(ctx context.Context, householdID string) (int64, error)
	DeleteSms(ctx context.Context, householdID string) (int64, error)
	// Anonymize возвращает false, если домохозяйство уже анонимизировано.
	Anonymize(ctx context.Context, householdID, placeholderPhone string, anonymizedAt time.Time, anonymizedBy string) (bool, error)
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	// DoReadCommitted для чтения кандидатов обхода без сериализуемой изоляции.
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
