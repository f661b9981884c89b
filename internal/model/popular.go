package model

import "time"

// PopularTimeBucket aggregates booking history into a (weekday, hour) cell.
// Confidence 0 marks industry-default fallback buckets for salons with too
// little history to compute real ones.
type PopularTimeBucket struct {
	DayOfWeek   int     `json:"dayOfWeek"` // 0 = Sunday
	Hour        int     `json:"hour"`
	RawCount    int     `json:"rawCount"`
	Score       float64 `json:"score"`
	Significant bool    `json:"significant"`
	Confidence  float64 `json:"confidence"`
}

// BookingRecord is one historical booking row used by the popular-times
// aggregation.
type BookingRecord struct {
	SalonID   string    `db:"salon_id"`
	ServiceID string    `db:"service_id"`
	StaffID   string    `db:"staff_id"`
	StartsAt  time.Time `db:"starts_at"`
	Status    string    `db:"status"`
}
