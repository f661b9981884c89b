package model

type IntentLabel string

const (
	IntentBookingRequest IntentLabel = "booking_request"
	IntentServiceInquiry IntentLabel = "service_inquiry"
	IntentConversation   IntentLabel = "conversation"
	IntentUnknown        IntentLabel = "unknown"
)

// LanguageDetection is the outcome of the external language-detection
// capability. Confidence 0 means the detector was unavailable and the
// configured default language was substituted.
type LanguageDetection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

type IntentAlternative struct {
	Intent     IntentLabel `json:"intent"`
	Confidence float64     `json:"confidence"`
}

type ExtractedEntities struct {
	ServiceID string `json:"serviceId,omitempty"`
	Date      string `json:"date,omitempty"` // 2006-01-02
	Time      string `json:"time,omitempty"` // 15:04
	StaffID   string `json:"staffId,omitempty"`
}

// Classification is a transient classifier outcome. Low confidence is an
// expected value here, not an error: Reliable is false and Alternatives
// carry the runner-up intents.
type Classification struct {
	Intent       IntentLabel         `json:"intent"`
	Confidence   float64             `json:"confidence"`
	Reliable     bool                `json:"reliable"`
	Alternatives []IntentAlternative `json:"alternatives,omitempty"`
	Entities     ExtractedEntities   `json:"entities"`
}
