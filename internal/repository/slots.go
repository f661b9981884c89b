package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/salonflow/dialog-server-go/internal/model"
)

// SlotRepository reads open availability slots. Results are ordered so that
// downstream ranking is deterministic regardless of storage order.
type SlotRepository interface {
	FindExact(ctx context.Context, salonID, serviceID string, date time.Time, timeOfDay string) ([]model.CandidateSlot, error)
	FindSameDay(ctx context.Context, salonID, serviceID string, date time.Time) ([]model.CandidateSlot, error)
	FindSameTime(ctx context.Context, salonID, serviceID, timeOfDay string, around time.Time, windowDays int) ([]model.CandidateSlot, error)
}

type slotRepo struct {
	db *sqlx.DB
}

func NewSlotRepository(db *sqlx.DB) SlotRepository {
	return &slotRepo{db: db}
}

func (r *slotRepo) FindExact(ctx context.Context, salonID, serviceID string, date time.Time, timeOfDay string) ([]model.CandidateSlot, error) {
	var slots []model.CandidateSlot
	err := r.db.SelectContext(ctx, &slots, `
		SELECT slot_date, to_char(slot_time, 'HH24:MI') AS slot_time, staff_id, service_id
		FROM availability_slots
		WHERE salon_id = $1 AND service_id = $2 AND slot_date = $3
			AND slot_time = $4 AND NOT booked
		ORDER BY staff_id
	`, salonID, serviceID, date, timeOfDay)
	return slots, err
}

func (r *slotRepo) FindSameDay(ctx context.Context, salonID, serviceID string, date time.Time) ([]model.CandidateSlot, error) {
	var slots []model.CandidateSlot
	err := r.db.SelectContext(ctx, &slots, `
		SELECT slot_date, to_char(slot_time, 'HH24:MI') AS slot_time, staff_id, service_id
		FROM availability_slots
		WHERE salon_id = $1 AND service_id = $2 AND slot_date = $3 AND NOT booked
		ORDER BY slot_time, staff_id
	`, salonID, serviceID, date)
	return slots, err
}

func (r *slotRepo) FindSameTime(ctx context.Context, salonID, serviceID, timeOfDay string, around time.Time, windowDays int) ([]model.CandidateSlot, error) {
	var slots []model.CandidateSlot
	err := r.db.SelectContext(ctx, &slots, `
		SELECT slot_date, to_char(slot_time, 'HH24:MI') AS slot_time, staff_id, service_id
		FROM availability_slots
		WHERE salon_id = $1 AND service_id = $2 AND slot_time = $3
			AND slot_date BETWEEN $4::date - $5::int AND $4::date + $5::int
			AND slot_date <> $4 AND NOT booked
		ORDER BY slot_date, staff_id
	`, salonID, serviceID, timeOfDay, around, windowDays)
	return slots, err
}
