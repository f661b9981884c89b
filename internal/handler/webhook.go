package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/salonflow/dialog-server-go/internal/middleware"
	"github.com/salonflow/dialog-server-go/internal/model"
	"github.com/salonflow/dialog-server-go/internal/router"
)

// Channel payload limits. Options beyond the quick-reply cap travel as a
// list; list overflow is truncated rather than rejected.
const (
	MaxQuickReplies = 3
	MaxListItems    = 10
)

type WebhookHandler struct {
	router  *router.Router
	limiter *middleware.RedisRateLimiter
}

// NewWebhookHandler builds the webhook endpoint. The limiter is optional;
// nil disables per-customer rate limiting.
func NewWebhookHandler(r *router.Router, limiter *middleware.RedisRateLimiter) *WebhookHandler {
	return &WebhookHandler{router: r, limiter: limiter}
}

func (h *WebhookHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/webhook", h.Webhook)
	return r
}

type quickReply struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type listItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type webhookResponse struct {
	ResponseID   string       `json:"responseId"`
	Text         string       `json:"text"`
	QuickReplies []quickReply `json:"quickReplies,omitempty"`
	ListItems    []listItem   `json:"listItems,omitempty"`
}

// POST /dialog/webhook
// Entry point for the messaging channel: one normalized event in, one reply out.
func (h *WebhookHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var event model.InboundEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if event.SalonID == "" || event.CustomerID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "salonId and customerId are required"})
		return
	}
	if event.Text == "" && event.Button == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "either text or button is required"})
		return
	}
	if event.Text != "" && event.Button != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text and button are mutually exclusive"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(r.Context(), event.SalonID, event.CustomerID) {
		log.Warn().
			Str("salonId", event.SalonID).
			Str("customerId", event.CustomerID).
			Msg("customer rate limit exceeded")
		writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "Rate limit exceeded"})
		return
	}

	resp := h.router.Route(r.Context(), &event)
	writeJSON(w, http.StatusOK, formatResponse(resp))
}

// formatResponse maps the transport-agnostic reply onto the channel payload:
// a handful of options ride as quick replies, larger sets as a list.
func formatResponse(resp *model.OutboundResponse) webhookResponse {
	out := webhookResponse{
		ResponseID: uuid.NewString(),
		Text:       resp.Text,
	}

	switch {
	case len(resp.Options) == 0:
	case len(resp.Options) <= MaxQuickReplies:
		for _, opt := range resp.Options {
			out.QuickReplies = append(out.QuickReplies, quickReply{ID: opt.ID, Label: opt.Label})
		}
	default:
		options := resp.Options
		if len(options) > MaxListItems {
			log.Warn().
				Int("options", len(options)).
				Msg("truncating options to the list item cap")
			options = options[:MaxListItems]
		}
		for _, opt := range options {
			out.ListItems = append(out.ListItems, listItem{ID: opt.ID, Title: opt.Label})
		}
	}
	return out
}
