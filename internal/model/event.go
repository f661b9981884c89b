package model

type EventType string

const (
	EventTypeText        EventType = "TEXT"
	EventTypeButtonClick EventType = "BUTTON_CLICK"
)

// Choice ids understood by the router. Slot selections use the "slot:" prefix
// followed by date, time and staff id.
const (
	ChoiceSameDay      = "same_day"
	ChoiceSameTime     = "same_time"
	ChoicePopularTimes = "popular_times"
	ChoiceSeeMore      = "see_more"
	ChoiceEscalate     = "escalate"
	ChoiceConfirm      = "confirm"
	ChoiceCancel       = "cancel"
	ChoiceSlotPrefix   = "slot:"
)

type ButtonSelection struct {
	ChoiceID string `json:"choiceId"`
}

// InboundEvent is one normalized message from the transport: free text or a
// structured button selection, never both.
type InboundEvent struct {
	SalonID    string           `json:"salonId"`
	CustomerID string           `json:"customerId"`
	Text       string           `json:"text,omitempty"`
	Button     *ButtonSelection `json:"button,omitempty"`
}

func (e *InboundEvent) Type() EventType {
	if e.Button != nil {
		return EventTypeButtonClick
	}
	return EventTypeText
}

// Choice is one selectable option offered back to the customer.
type Choice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// OutboundResponse is the transport-agnostic reply the router produces for
// every inbound event. The handler decides whether Options travel as quick
// replies or as a list payload.
type OutboundResponse struct {
	Text    string   `json:"text"`
	Options []Choice `json:"options,omitempty"`
}
