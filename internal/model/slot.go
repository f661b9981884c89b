package model

import "time"

// CandidateSlot is one bookable (date, time, staff, service) tuple from the
// availability source. Time is a zero-padded "15:04" clock string so lexical
// order matches chronological order.
type CandidateSlot struct {
	Date      time.Time `db:"slot_date" json:"date"`
	Time      string    `db:"slot_time" json:"time"`
	StaffID   string    `db:"staff_id" json:"staffId"`
	ServiceID string    `db:"service_id" json:"serviceId"`
}

// SlotTarget is what the customer originally asked for, used as the ranking
// reference point.
type SlotTarget struct {
	Date           time.Time
	Time           string
	PreferredStaff string
}

type RankedSlot struct {
	CandidateSlot
	Score     int  `json:"score"`
	Rank      int  `json:"rank"`
	BestMatch bool `json:"bestMatch"`
}
