//go:build wireinject
// +build wireinject

package app

import (
	"context"

	smsGateway "foodbank/internal/gateway/http/sms"
	"foodbank/internal/handlers/rest/household_delete"
	"foodbank/internal/handlers/rest/household_parcels_put"
	"foodbank/internal/handlers/rest/noshow_dismiss_post"
	"foodbank/internal/handlers/rest/noshow_followups_get"
	"foodbank/internal/handlers/rest/parcel_delete"
	"foodbank/internal/handlers/rest/parcel_outcome_post"
	"foodbank/internal/handlers/rest/parcel_post"
	"foodbank/internal/handlers/rest/parcel_put"
	"foodbank/internal/handlers/rest/schedule_post"
	"foodbank/internal/handlers/rest/schedule_put"
	"foodbank/internal/handlers/rest/sms_balance_get"
	"foodbank/internal/handlers/rest/sms_cancel_post"
	"foodbank/internal/handlers/rest/sms_dismiss_post"
	"foodbank/internal/handlers/rest/sms_resend_post"
	"foodbank/internal/handlers/rest/sms_status_webhook_post"
	"foodbank/internal/handlers/rest/timeslots_get"
	"foodbank/internal/pkg/config"
	"foodbank/internal/pkg/factory/sms_schedule"
	"foodbank/internal/pkg/factory/sms_text"

	householdRepo "foodbank/internal/repository/household"
	locationRepo "foodbank/internal/repository/location"
	parcelRepo "foodbank/internal/repository/parcel"
	settingsRepo "foodbank/internal/repository/settings"
	smsRepo "foodbank/internal/repository/sms"
	householdService "foodbank/internal/service/household"
	noshowService "foodbank/internal/service/noshow"
	parcelService "foodbank/internal/service/parcel"
	scheduleService "foodbank/internal/service/schedule"
	smsService "foodbank/internal/service/sms"

	"foodbank/pkg/background"
	"foodbank/pkg/logger"
	"foodbank/pkg/tx"
	"foodbank/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceParcel     ServiceParcel
	ServiceHousehold  ServiceHousehold
	ServiceSchedule   ServiceSchedule
	ServiceSms        ServiceSms
	ServiceNoShow     ServiceNoShow
	RateLimiter       *token_bucket.Keyed
	BackgroundWorkers *background.Worker
}

type ServiceParcel interface {
	parcel_post.Service
	parcel_put.Service
	parcel_delete.Service
	parcel_outcome_post.Service
	household_parcels_put.Service
}

type ServiceHousehold interface {
	household_delete.Service
}

type ServiceSchedule interface {
	schedule_post.Service
	schedule_put.Service
	timeslots_get.Service
}

type ServiceSms interface {
	sms_resend_post.Service
	sms_cancel_post.Service
	sms_dismiss_post.Service
	sms_balance_get.Service
	sms_status_webhook_post.Service
}

type ServiceNoShow interface {
	noshow_followups_get.Service
	noshow_dismiss_post.Service
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideClock,
	provideCalendar,

	provideParcelRepository,
	provideHouseholdRepository,
	provideLocationRepository,
	provideSmsRepository,
	provideSettingsRepository,
)

var smsSet = wire.NewSet(
	provideHTTPClient,
	provideSmsGateway,
	provideSmsTextFactory,
	sms_schedule.New,
	provideSmsService,

	wire.Bind(new(smsService.Repository), new(*smsRepo.Repository)),
	wire.Bind(new(smsService.ParcelRepository), new(*parcelRepo.Repository)),
	wire.Bind(new(smsService.HouseholdRepository), new(*householdRepo.Repository)),
	wire.Bind(new(smsService.LocationRepository), new(*locationRepo.Repository)),
	wire.Bind(new(smsService.Gateway), new(*smsGateway.SmsGateway)),
	wire.Bind(new(smsService.TextRenderer), new(*sms_text.TextFactory)),
	wire.Bind(new(smsService.ScheduleCalculator), new(*sms_schedule.ScheduleTimeFactory)),
	wire.Bind(new(smsService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		smsSet,

		provideParcelService,
		provideHouseholdService,
		provideScheduleService,
		provideNoShowService,

		provideRateLimiter,
		provideSmsDispatchTask,
		provideNoShowScanTask,
		provideAnonymizationTask,
		provideRateLimitSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceHousehold), new(*householdService.Household)),
		wire.Bind(new(ServiceSchedule), new(*scheduleService.Schedule)),
		wire.Bind(new(ServiceSms), new(*smsService.Sms)),
		wire.Bind(new(ServiceNoShow), new(*noshowService.NoShow)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.LocationRepository), new(*locationRepo.Repository)),
		wire.Bind(new(parcelService.HouseholdRepository), new(*householdRepo.Repository)),
		wire.Bind(new(parcelService.SmsNotifier), new(*smsService.Sms)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),

		wire.Bind(new(householdService.Repository), new(*householdRepo.Repository)),
		wire.Bind(new(householdService.TxManager), new(*tx.Manager)),

		wire.Bind(new(scheduleService.Repository), new(*locationRepo.Repository)),
		wire.Bind(new(scheduleService.TxManager), new(*tx.Manager)),

		wire.Bind(new(noshowService.Repository), new(*householdRepo.Repository)),
		wire.Bind(new(noshowService.SettingsProvider), new(*settingsRepo.Repository)),
		wire.Bind(new(noshowService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	SmsService *smsService.Sms
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-sms-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		smsSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
