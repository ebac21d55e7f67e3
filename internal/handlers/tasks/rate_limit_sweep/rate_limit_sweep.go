package rate_limit_sweep

import (
	"context"
	"time"
)

type Sweeper interface {
	Sweep() int
}

// RateLimitSweep освобождает память от bucket'ов клиентов, которые давно не приходили.
type RateLimitSweep struct {
	sweeper  Sweeper
	interval time.Duration
}

func NewRateLimitSweep(sweeper Sweeper, interval time.Duration) *RateLimitSweep {
	return &RateLimitSweep{
		sweeper:  sweeper,
		interval: interval,
	}
}

func (r *RateLimitSweep) TTL() time.Duration {
	return r.interval
}

func (r *RateLimitSweep) Do(context.Context) error {
	r.sweeper.Sweep()
	return nil
}

func (r *RateLimitSweep) Info() string {
	return "rate limit sweep"
}
