//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=household_delete_test
package household_delete

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
	RemoveHousehold(ctx context.Context, householdID, userID string) (*entities.HouseholdRemoval, error)
}
