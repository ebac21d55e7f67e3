package app

import (
	"context"
	"net/http"
	"time"

	smsGateway "foodbank/internal/gateway/http/sms"
	"foodbank/internal/handlers/tasks/anonymization_sweep"
	"foodbank/internal/handlers/tasks/noshow_followup_scan"
	"foodbank/internal/handlers/tasks/rate_limit_sweep"
	"foodbank/internal/handlers/tasks/sms_dispatch"
	"foodbank/internal/pkg/config"
	"foodbank/internal/pkg/factory/sms_text"
	"foodbank/internal/pkg/timeslot"

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
	"foodbank/pkg/clock"
	"foodbank/pkg/logger"
	"foodbank/pkg/querier"
	"foodbank/pkg/token_bucket"
	"foodbank/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	smsGatewayTimeout      = 10 * time.Second
	rateLimitSweepInterval = 5 * time.Minute
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClock() clock.Clock {
	return clock.Real{}
}

func provideCalendar(cfg *config.Config) *timeslot.Calendar {
	return timeslot.NewCalendar(cfg.App.Location)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideHouseholdRepository(querier *querier.Querier) *householdRepo.Repository {
	return householdRepo.New(querier)
}

func provideLocationRepository(querier *querier.Querier) *locationRepo.Repository {
	return locationRepo.New(querier)
}

func provideSmsRepository(querier *querier.Querier) *smsRepo.Repository {
	return smsRepo.New(querier)
}

func provideSettingsRepository(querier *querier.Querier) *settingsRepo.Repository {
	return settingsRepo.New(querier)
}

func provideHTTPClient() *http.Client {
	return &http.Client{Timeout: smsGatewayTimeout}
}

func provideSmsGateway(client *http.Client, cfg *config.Config) *smsGateway.SmsGateway {
	return smsGateway.New(client, smsGateway.Config{
		BaseURL:  cfg.SmsGateway.BaseURL,
		APIKey:   cfg.SmsGateway.APIKey,
		Sender:   cfg.SmsGateway.Sender,
		TestMode: cfg.SmsGateway.TestMode,
	})
}

func provideSmsTextFactory(calendar *timeslot.Calendar, cfg *config.Config) *sms_text.TextFactory {
	return sms_text.New(calendar, cfg.App.PublicBaseURL)
}

func provideSmsService(
	repository smsService.Repository,
	parcels smsService.ParcelRepository,
	households smsService.HouseholdRepository,
	locations smsService.LocationRepository,
	gateway smsService.Gateway,
	texts smsService.TextRenderer,
	scheduler smsService.ScheduleCalculator,
	clock clock.Clock,
	txManager smsService.TxManager,
	cfg *config.Config,
) *smsService.Sms {
	return smsService.New(
		repository,
		parcels,
		households,
		locations,
		gateway,
		texts,
		scheduler,
		clock,
		txManager,
		smsService.Config{MaxAttempts: cfg.SmsGateway.MaxAttempts},
	)
}

func provideParcelService(
	repository parcelService.Repository,
	locations parcelService.LocationRepository,
	households parcelService.HouseholdRepository,
	notifier parcelService.SmsNotifier,
	clock clock.Clock,
	calendar *timeslot.Calendar,
	txManager parcelService.TxManager,
) *parcelService.Parcel {
	return parcelService.New(repository, locations, households, notifier, clock, calendar, txManager)
}

func provideHouseholdService(
	repository householdService.Repository,
	clock clock.Clock,
	calendar *timeslot.Calendar,
	txManager householdService.TxManager,
) *householdService.Household {
	return householdService.New(repository, clock, calendar, txManager)
}

func provideScheduleService(
	repository scheduleService.Repository,
	txManager scheduleService.TxManager,
) *scheduleService.Schedule {
	return scheduleService.New(repository, txManager)
}

func provideNoShowService(
	repository noshowService.Repository,
	settings noshowService.SettingsProvider,
	clock clock.Clock,
	txManager noshowService.TxManager,
) *noshowService.NoShow {
	return noshowService.New(repository, settings, clock, txManager)
}

func provideRateLimiter(cfg *config.Config, clock clock.Clock) *token_bucket.Keyed {
	return token_bucket.NewKeyed(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst), clock)
}

func provideSmsDispatchTask(log logger.Logger, service *smsService.Sms, cfg *config.Config) *sms_dispatch.SmsDispatch {
	return sms_dispatch.NewSmsDispatch(log, service, cfg.Tasks.SmsDispatchInterval)
}

func provideNoShowScanTask(log logger.Logger, service *noshowService.NoShow, cfg *config.Config) *noshow_followup_scan.NoShowFollowupScan {
	return noshow_followup_scan.NewNoShowFollowupScan(log, service, cfg.Tasks.NoShowScanInterval)
}

func provideAnonymizationTask(
	log logger.Logger,
	service *householdService.Household,
	cfg *config.Config,
) *anonymization_sweep.AnonymizationSweep {
	return anonymization_sweep.NewAnonymizationSweep(log, service, cfg.Tasks.AnonymizationInterval, cfg.App.InactivityPeriod)
}

func provideRateLimitSweepTask(limiter *token_bucket.Keyed) *rate_limit_sweep.RateLimitSweep {
	return rate_limit_sweep.NewRateLimitSweep(limiter, rateLimitSweepInterval)
}

func provideTaskList(
	smsDispatchTask *sms_dispatch.SmsDispatch,
	noShowScanTask *noshow_followup_scan.NoShowFollowupScan,
	anonymizationTask *anonymization_sweep.AnonymizationSweep,
	rateLimitSweepTask *rate_limit_sweep.RateLimitSweep,
) []background.Task {
	return []background.Task{
		smsDispatchTask,
		noShowScanTask,
		anonymizationTask,
		rateLimitSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
