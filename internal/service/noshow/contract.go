//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=noshow_test
package noshow

import (
	"context"
	"time"

	"foodbank/internal/entities"
)

type Repository interface {
	// ListOutcomeRows возвращает неудаленные выдачи с итогом по неанонимизированным
	// домохозяйствам, упорядоченные по домохозяйству и времени выдачи по убыванию.
	ListOutcomeRows(ctx context.Context) ([]entities.ParcelOutcomeRow, error)
	DismissFollowup(ctx context.Context, householdID string, dismissedAt time.Time, dismissedBy string) error
}

type SettingsProvider interface {
	NoShowSettings(ctx context.Context) (entities.NoShowSettings, error)
}

type Clock interface {
	Now() time.Time
}

// TxManager нужен только для согласованного снимка строк скана.
type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
