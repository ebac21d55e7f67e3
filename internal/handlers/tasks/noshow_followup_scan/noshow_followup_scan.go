package noshow_followup_scan

import (
	"context"
	"time"

	"foodbank/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var followupsPending = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "noshow_followups_pending",
		Help: "Number of households currently needing a no-show follow-up",
	},
)

// NoShowFollowupScan пересчитывает число домохозяйств, требующих связи после неявок.
type NoShowFollowupScan struct {
	log      taskLogger
	service  Service
	interval time.Duration
	last     int
}

func NewNoShowFollowupScan(log taskLogger, service Service, interval time.Duration) *NoShowFollowupScan {
	return &NoShowFollowupScan{
		log:      log,
		service:  service,
		interval: interval,
		last:     -1,
	}
}

func (n *NoShowFollowupScan) TTL() time.Duration {
	return n.interval
}

func (n *NoShowFollowupScan) Deferred() bool {
	return true
}

func (n *NoShowFollowupScan) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, n.interval)
	defer cancel()

	followups, err := n.service.ListFollowups(ctxWithTimeout)
	if err != nil {
		return err
	}

	followupsPending.Set(float64(len(followups)))
	if len(followups) != n.last {
		n.log.Info("no-show followups changed",
			logger.NewField("pending", len(followups)),
		)
		n.last = len(followups)
	}
	return nil
}

func (n *NoShowFollowupScan) Info() string {
	return "noshow followup scan"
}
