// Package token_bucket ограничивает частоту запросов алгоритмом token bucket,
// общим для всех клиентов или отдельным на каждый ключ.
package token_bucket

import (
	"sync"
	"time"

	"foodbank/pkg/clock"
)

type TokenBucket struct {
	mu         sync.Mutex
	clock      clock.Clock
	capacity   float64
	tokens     float64
	refillRate float64 // токенов в секунду
	lastRefill time.Time
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return NewTokenBucketWithClock(capacity, refillRate, clock.Real{})
}

func NewTokenBucketWithClock(capacity int, refillRate float64, c clock.Clock) *TokenBucket {
	return &TokenBucket{
		clock:      c,
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: c.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(t.clock.Now())

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// refill копит дробные токены между вызовами.
func (t *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}
	t.tokens = min(t.capacity, t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}

func (t *TokenBucket) full(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(now)
	return t.tokens >= t.capacity
}

// Keyed держит отдельный bucket на каждый ключ (пользователь, адрес клиента).
// Полностью восстановившиеся bucket'ы удаляются при Sweep.
type Keyed struct {
	mu         sync.Mutex
	clock      clock.Clock
	capacity   int
	refillRate float64
	buckets    map[string]*TokenBucket
}

func NewKeyed(capacity int, refillRate float64, c clock.Clock) *Keyed {
	return &Keyed{
		clock:      c,
		capacity:   capacity,
		refillRate: refillRate,
		buckets:    make(map[string]*TokenBucket),
	}
}

func (k *Keyed) Allow(key string) bool {
	k.mu.Lock()
	bucket, ok := k.buckets[key]
	if !ok {
		bucket = NewTokenBucketWithClock(k.capacity, k.refillRate, k.clock)
		k.buckets[key] = bucket
	}
	k.mu.Unlock()

	return bucket.Allow()
}

// Sweep удаляет bucket'ы, которые уже снова полны, и возвращает их число.
func (k *Keyed) Sweep() int {
	now := k.clock.Now()

	k.mu.Lock()
	defer k.mu.Unlock()

	removed := 0
	for key, bucket := range k.buckets {
		if bucket.full(now) {
			delete(k.buckets, key)
			removed++
		}
	}
	return removed
}

func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}
