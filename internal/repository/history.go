package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/salonflow/dialog-server-go/internal/model"
)

// HistoryRepository reads historical bookings for the popular-times
// aggregation and its cache invalidation.
type HistoryRepository interface {
	ListSince(ctx context.Context, salonID, serviceID string, since time.Time) ([]model.BookingRecord, error)
	CountSince(ctx context.Context, salonID string, since time.Time) (int, error)
	LatestBookingAt(ctx context.Context, salonID string) (*time.Time, error)
}

type historyRepo struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) HistoryRepository {
	return &historyRepo{db: db}
}

func (r *historyRepo) ListSince(ctx context.Context, salonID, serviceID string, since time.Time) ([]model.BookingRecord, error) {
	var records []model.BookingRecord
	if serviceID == "" {
		err := r.db.SelectContext(ctx, &records, `
			SELECT salon_id, service_id, staff_id, starts_at, status
			FROM bookings
			WHERE salon_id = $1 AND starts_at >= $2 AND status <> 'cancelled'
			ORDER BY starts_at
		`, salonID, since)
		return records, err
	}
	err := r.db.SelectContext(ctx, &records, `
		SELECT salon_id, service_id, staff_id, starts_at, status
		FROM bookings
		WHERE salon_id = $1 AND service_id = $2 AND starts_at >= $3 AND status <> 'cancelled'
		ORDER BY starts_at
	`, salonID, serviceID, since)
	return records, err
}

func (r *historyRepo) CountSince(ctx context.Context, salonID string, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM bookings
		WHERE salon_id = $1 AND starts_at >= $2 AND status <> 'cancelled'
	`, salonID, since)
	return count, err
}

func (r *historyRepo) LatestBookingAt(ctx context.Context, salonID string) (*time.Time, error) {
	var latest time.Time
	err := r.db.GetContext(ctx, &latest, `
		SELECT created_at FROM bookings
		WHERE salon_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, salonID)
	return HandleNotFound(&latest, err)
}
