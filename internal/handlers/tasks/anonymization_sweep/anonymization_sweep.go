package anonymization_sweep

import (
	"context"
	"time"

	"foodbank/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var householdsAnonymizedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "households_anonymized_total",
		Help: "Total number of households processed by the inactivity sweep",
	},
	[]string{"result"},
)

type AnonymizationSweep struct {
	log        taskLogger
	service    Service
	interval   time.Duration
	inactivity time.Duration
}

func NewAnonymizationSweep(log taskLogger, service Service, interval, inactivity time.Duration) *AnonymizationSweep {
	return &AnonymizationSweep{
		log:        log,
		service:    service,
		interval:   interval,
		inactivity: inactivity,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (a *AnonymizationSweep) TTL() time.Duration {
	return a.interval
}

// Deferred - обход всех домохозяйств не выполняется на старте.
func (a *AnonymizationSweep) Deferred() bool {
	return true
}

// Do анонимизирует неактивные домохозяйства. Ошибки по отдельным
// домохозяйствам только логируются, обход продолжается.
func (a *AnonymizationSweep) Do(ctx context.Context) error {
	result, err := a.service.AnonymizeInactive(ctx, a.inactivity)
	if result != nil {
		householdsAnonymizedTotal.WithLabelValues("anonymized").Add(float64(result.Anonymized))
		householdsAnonymizedTotal.WithLabelValues("error").Add(float64(len(result.Errors)))

		for _, sweepErr := range result.Errors {
			a.log.Warn("household anonymization failed",
				logger.NewField("household_id", sweepErr.HouseholdID),
				logger.NewField("error", sweepErr.Err),
			)
		}
		if result.Anonymized > 0 {
			a.log.Info("anonymization sweep",
				logger.NewField("anonymized", result.Anonymized),
				logger.NewField("failed", len(result.Errors)),
			)
		}
	}

	return err
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (a *AnonymizationSweep) Info() string {
	return "anonymization sweep"
}
