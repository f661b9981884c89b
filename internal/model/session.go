package model

import (
	"fmt"
	"time"
)

type SessionState string

const (
	SessionStateInitial         SessionState = "initial"
	SessionStateChoicePresented SessionState = "choice_presented"
	SessionStateSlotsShown      SessionState = "slots_shown"
	SessionStateConfirming      SessionState = "confirming"
	SessionStateCompleted       SessionState = "completed"
)

// MaxChoiceLog caps the presented-choice history per session.
const MaxChoiceLog = 10

// BookingIntent is the originally parsed booking request a session was
// created for.
type BookingIntent struct {
	ServiceID      string    `json:"serviceId"`
	Date           time.Time `json:"date"`
	Time           string    `json:"time"`
	PreferredStaff string    `json:"preferredStaff,omitempty"`
	Confidence     float64   `json:"confidence"`
}

type PresentedChoice struct {
	ChoiceID    string    `json:"choiceId"`
	PresentedAt time.Time `json:"presentedAt"`
	ResultShown bool      `json:"resultShown"`
}

type ConversationSession struct {
	SalonID        string            `json:"salonId"`
	CustomerID     string            `json:"customerId"`
	OriginalIntent BookingIntent     `json:"originalIntent"`
	Language       string            `json:"language"`
	Choices        []PresentedChoice `json:"choices,omitempty"`
	PendingSlot    *CandidateSlot    `json:"pendingSlot,omitempty"`
	MessageCount   int               `json:"messageCount"`
	SeeMoreCount   int               `json:"seeMoreCount"`
	State          SessionState      `json:"state"`
	CreatedAt      time.Time         `json:"createdAt"`
	ExpiresAt      time.Time         `json:"expiresAt"`
}

func SessionKey(salonID, customerID string) string {
	return fmt.Sprintf("session:%s:%s", salonID, customerID)
}

func (s *ConversationSession) Key() string {
	return SessionKey(s.SalonID, s.CustomerID)
}

// LogChoice appends to the choice history, truncating the oldest entries
// beyond MaxChoiceLog.
func (s *ConversationSession) LogChoice(choiceID string, resultShown bool) {
	s.Choices = append(s.Choices, PresentedChoice{
		ChoiceID:    choiceID,
		PresentedAt: time.Now().UTC(),
		ResultShown: resultShown,
	})
	if len(s.Choices) > MaxChoiceLog {
		s.Choices = s.Choices[len(s.Choices)-MaxChoiceLog:]
	}
}
