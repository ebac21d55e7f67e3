package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"foodbank/internal/pkg/config"
	"foodbank/internal/pkg/postgres"
	"foodbank/pkg/logger/zap_adapter"
	"foodbank/pkg/querier"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// Схема накатывается goose до запуска тестов (make test-integration).
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE
			outgoing_sms,
			food_parcels,
			household_comments,
			households,
			pickup_location_special_days,
			pickup_location_schedule_days,
			pickup_location_schedules,
			pickup_locations,
			global_settings
		CASCADE;
	`)
	require.NoError(t, err)
}

// BaseFixture - локация и домохозяйство, на которые ссылается большинство тестов.
const BaseFixture = `
	INSERT INTO pickup_locations (id, name, max_parcels_per_slot, default_slot_duration_minutes)
	VALUES ('loc-1', 'Centrum', 2, 15);

	INSERT INTO households (id, first_name, last_name, phone_number, locale, created_at)
	VALUES ('hh-1', 'Anna', 'Svensson', '+46701234567', 'sv', '2024-01-10 10:00:00+00');
`
