package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/salonflow/dialog-server-go/internal/populartimes"
)

// BookingWatermark reports the newest booking per salon, used to detect
// cache entries computed before data changed underneath them.
type BookingWatermark interface {
	LatestBookingAt(ctx context.Context, salonID string) (*time.Time, error)
}

// CacheSweeper periodically drops popular-times cache entries that predate
// the salon's newest booking, so the next request recomputes them.
type CacheSweeper struct {
	cache    *populartimes.Cache
	history  BookingWatermark
	interval time.Duration
	done     chan struct{}
}

func NewCacheSweeper(cache *populartimes.Cache, history BookingWatermark, interval time.Duration) *CacheSweeper {
	return &CacheSweeper{
		cache:    cache,
		history:  history,
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (j *CacheSweeper) Start() {
	go j.run()
	log.Info().Dur("interval", j.interval).Msg("popular-times cache sweeper started")
}

func (j *CacheSweeper) Stop() {
	close(j.done)
	log.Info().Msg("popular-times cache sweeper stopped")
}

func (j *CacheSweeper) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.sweep()

	for {
		select {
		case <-j.done:
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *CacheSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	keys, err := j.cache.Keys(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list popular-times cache keys")
		return
	}

	var dropped int
	for _, key := range keys {
		if j.sweepKey(ctx, key) {
			dropped++
		}
	}
	if dropped > 0 {
		log.Info().Int("count", dropped).Msg("dropped stale popular-times cache entries")
	}
}

func (j *CacheSweeper) sweepKey(ctx context.Context, key string) bool {
	computedAt, err := j.cache.ComputedAt(ctx, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to read cache entry age")
		return false
	}
	if computedAt == nil {
		return false
	}

	latest, err := j.history.LatestBookingAt(ctx, populartimes.SalonFromKey(key))
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to read booking watermark")
		return false
	}
	if latest == nil || !latest.After(*computedAt) {
		return false
	}

	if err := j.cache.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to drop stale cache entry")
		return false
	}
	return true
}
