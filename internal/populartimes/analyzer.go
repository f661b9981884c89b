package populartimes

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/salonflow/dialog-server-go/internal/errors"
	"github.com/salonflow/dialog-server-go/internal/model"
)

// Recency weights for the weighted score, by booking age.
const (
	recentWeight = 2.0 // within 30 days
	midWeight    = 1.5 // 31-60 days
	oldWeight    = 1.0 // 61-90 days
)

// Config tunes the aggregation window and thresholds.
type Config struct {
	Lookback   time.Duration // history window, default 90 days
	MinCount   int           // bucket significance threshold, default 3
	MinHistory int           // below this many bookings, serve defaults
	TopN       int           // buckets returned, default 5
}

func DefaultConfig() Config {
	return Config{
		Lookback:   90 * 24 * time.Hour,
		MinCount:   3,
		MinHistory: 10,
		TopN:       5,
	}
}

// HistorySource is the slice of the booking repository the analyzer needs.
type HistorySource interface {
	ListSince(ctx context.Context, salonID, serviceID string, since time.Time) ([]model.BookingRecord, error)
	CountSince(ctx context.Context, salonID string, since time.Time) (int, error)
}

type Analyzer struct {
	history HistorySource
	cache   *Cache
	cfg     Config
}

func New(history HistorySource, cache *Cache, cfg Config) *Analyzer {
	return &Analyzer{history: history, cache: cache, cfg: cfg}
}

// Analyze returns the top recency-weighted (weekday, hour) buckets for a
// salon, optionally scoped to one service. Salons with thin history get
// industry defaults flagged with confidence 0.
func (a *Analyzer) Analyze(ctx context.Context, salonID, serviceID string) ([]model.PopularTimeBucket, error) {
	if a.cache != nil {
		if buckets, ok := a.cache.Get(ctx, salonID, serviceID); ok {
			return buckets, nil
		}
	}

	now := time.Now().UTC()
	since := now.Add(-a.cfg.Lookback)

	total, err := a.history.CountSince(ctx, salonID, since)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	var buckets []model.PopularTimeBucket
	if total < a.cfg.MinHistory {
		log.Debug().
			Str("salonId", salonID).
			Int("bookings", total).
			Msg("thin booking history, serving industry defaults")
		buckets = industryDefaults()
	} else {
		records, err := a.history.ListSince(ctx, salonID, serviceID, since)
		if err != nil {
			return nil, apperrors.Database(err)
		}
		buckets = a.aggregate(records, now)
	}

	if a.cache != nil {
		a.cache.Set(ctx, salonID, serviceID, buckets)
	}
	return buckets, nil
}

func (a *Analyzer) aggregate(records []model.BookingRecord, now time.Time) []model.PopularTimeBucket {
	type cell struct {
		count int
		score float64
	}
	cells := make(map[[2]int]*cell)

	for _, rec := range records {
		key := [2]int{int(rec.StartsAt.Weekday()), rec.StartsAt.Hour()}
		c := cells[key]
		if c == nil {
			c = &cell{}
			cells[key] = c
		}
		c.count++
		c.score += recencyWeight(now.Sub(rec.StartsAt))
	}

	buckets := make([]model.PopularTimeBucket, 0, len(cells))
	for key, c := range cells {
		if c.count < a.cfg.MinCount {
			continue
		}
		buckets = append(buckets, model.PopularTimeBucket{
			DayOfWeek:   key[0],
			Hour:        key[1],
			RawCount:    c.count,
			Score:       c.score,
			Significant: true,
			Confidence:  1,
		})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		a, b := buckets[i], buckets[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek < b.DayOfWeek
		}
		return a.Hour < b.Hour
	})

	if len(buckets) > a.cfg.TopN {
		buckets = buckets[:a.cfg.TopN]
	}
	return buckets
}

func recencyWeight(age time.Duration) float64 {
	const day = 24 * time.Hour
	switch {
	case age <= 30*day:
		return recentWeight
	case age <= 60*day:
		return midWeight
	default:
		return oldWeight
	}
}
