//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_put_test
package parcel_put

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
	UpdateParcel(ctx context.Context, candidate entities.ParcelCandidate) (*entities.Parcel, error)
}
