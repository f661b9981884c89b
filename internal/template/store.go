package template

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Tone tags the emotional register a template was authored in.
type Tone string

const (
	ToneNeutral     Tone = "neutral"
	ToneEmpathetic  Tone = "empathetic"
	ToneApologetic  Tone = "apologetic"
	ToneCelebratory Tone = "celebratory"
)

// Message keys the router renders.
const (
	KeyGenericReply     = "generic_reply"
	KeyBookingPrompt    = "booking_prompt"
	KeySlotFound        = "slot_found"
	KeySlotUnavailable  = "slot_unavailable"
	KeyAlternatives     = "alternatives_header"
	KeyNoAlternatives   = "no_alternatives"
	KeyPopularHeader    = "popular_times_header"
	KeyPopularBucket    = "popular_bucket"
	KeySessionExpired   = "session_expired"
	KeyEscalation       = "escalation"
	KeyApology          = "apology"
	KeyConfirmPrompt    = "confirm_prompt"
	KeyBookingConfirmed = "booking_confirmed"

	KeyChoiceSameDay  = "choice_same_day"
	KeyChoiceSameTime = "choice_same_time"
	KeyChoicePopular  = "choice_popular"
	KeyChoiceSeeMore  = "choice_see_more"
	KeyChoiceEscalate = "choice_escalate"
	KeyChoiceConfirm  = "choice_confirm"
	KeyChoiceCancel   = "choice_cancel"
)

// WeekdayKey returns the message key for a weekday label, 0 = Sunday.
func WeekdayKey(day int) string {
	return "weekday_" + strconv.Itoa(day)
}

// MaxLines is an authoring constraint on catalog entries, not a render-time
// check. Render always succeeds structurally.
const MaxLines = 3

const genericPlaceholder = "Sorry, something went wrong. Please try again."

type Template struct {
	Text string
	Tone Tone
}

type templateKey struct {
	Message  string
	Language string
}

// Store is process-wide, immutable, read-only lookup state. It is populated
// once at startup and never mutated, so no synchronization is needed.
type Store struct {
	defaultLanguage string
	templates       map[templateKey]Template
}

func NewStore(defaultLanguage string) *Store {
	return newStore(defaultLanguage, catalog)
}

func newStore(defaultLanguage string, entries map[templateKey]Template) *Store {
	return &Store{
		defaultLanguage: defaultLanguage,
		templates:       entries,
	}
}

// Render looks up (key, language), falling back to the default language and
// finally to a generic placeholder. It logs missing templates but never
// fails: the response pipeline must always produce a message.
func (s *Store) Render(key, language string, params map[string]string) string {
	tmpl, ok := s.templates[templateKey{Message: key, Language: language}]
	if !ok {
		tmpl, ok = s.templates[templateKey{Message: key, Language: s.defaultLanguage}]
	}
	if !ok {
		log.Warn().
			Str("messageKey", key).
			Str("language", language).
			Str("defaultLanguage", s.defaultLanguage).
			Msg("no template found, returning generic placeholder")
		return genericPlaceholder
	}
	return interpolate(tmpl.Text, params)
}

// Tone reports the emotional tag of the template that Render would pick.
func (s *Store) Tone(key, language string) Tone {
	if tmpl, ok := s.templates[templateKey{Message: key, Language: language}]; ok {
		return tmpl.Tone
	}
	if tmpl, ok := s.templates[templateKey{Message: key, Language: s.defaultLanguage}]; ok {
		return tmpl.Tone
	}
	return ToneNeutral
}

// interpolate substitutes {name} placeholders. Unresolved placeholders are
// left verbatim so partial parameter data never breaks a response.
func interpolate(text string, params map[string]string) string {
	if len(params) == 0 {
		return text
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
