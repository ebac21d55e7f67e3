//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=household_parcels_put_test
package household_parcels_put

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
	ReplaceHouseholdParcels(ctx context.Context, householdID string, candidates []entities.ParcelCandidate, userID *string) (*entities.ParcelReplaceResult, error)
}
