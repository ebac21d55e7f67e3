//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_outcome_post_test
package parcel_outcome_post

import (
	"context"

	"foodbank/internal/entities"
	"foodbank/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RecordOutcome(ctx context.Context, parcelID string, outcome entities.ParcelOutcomeType, userID *string) (*entities.Parcel, error)
}
