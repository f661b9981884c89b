package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonflow/dialog-server-go/internal/model"
	"github.com/salonflow/dialog-server-go/internal/nlu"
	"github.com/salonflow/dialog-server-go/internal/populartimes"
	"github.com/salonflow/dialog-server-go/internal/ranker"
	"github.com/salonflow/dialog-server-go/internal/session"
	"github.com/salonflow/dialog-server-go/internal/template"
)

type classifyPayload struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Entities   struct {
		ServiceID string `json:"serviceId"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		StaffID   string `json:"staffId"`
	} `json:"entities"`
}

func bookingPayload(confidence float64) classifyPayload {
	p := classifyPayload{Intent: "booking_request", Confidence: confidence}
	p.Entities.ServiceID = "haircut"
	p.Entities.Date = "2026-09-02"
	p.Entities.Time = "15:00"
	return p
}

type fakeSlots struct {
	exact    []model.CandidateSlot
	sameDay  []model.CandidateSlot
	sameTime []model.CandidateSlot
	err      error
}

func (f *fakeSlots) FindExact(context.Context, string, string, time.Time, string) ([]model.CandidateSlot, error) {
	return f.exact, f.err
}

func (f *fakeSlots) FindSameDay(context.Context, string, string, time.Time) ([]model.CandidateSlot, error) {
	return f.sameDay, f.err
}

func (f *fakeSlots) FindSameTime(context.Context, string, string, string, time.Time, int) ([]model.CandidateSlot, error) {
	return f.sameTime, f.err
}

type fakeHistory struct {
	records []model.BookingRecord
}

func (f *fakeHistory) ListSince(context.Context, string, string, time.Time) ([]model.BookingRecord, error) {
	return f.records, nil
}

func (f *fakeHistory) CountSince(context.Context, string, time.Time) (int, error) {
	return len(f.records), nil
}

type fixture struct {
	router    *Router
	sessions  *session.Store
	templates *template.Store
	slots     *fakeSlots
	redis     *miniredis.Miniredis
}

func newFixture(t *testing.T, cls classifyPayload, slots *fakeSlots, history []model.BookingRecord) *fixture {
	t.Helper()

	nluSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/detect":
			json.NewEncoder(w).Encode(map[string]any{"language": "en", "confidence": 0.98})
		case "/v1/classify":
			json.NewEncoder(w).Encode(cls)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(nluSrv.Close)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := session.NewStore(rdb, 30*time.Minute, 15*time.Minute, time.Hour)
	templates := template.NewStore("en")
	analyzer := populartimes.New(&fakeHistory{records: history}, nil, populartimes.DefaultConfig())

	r := New(
		sessions,
		templates,
		nlu.NewDetector(nluSrv.URL, time.Second, "en"),
		nlu.NewClassifier(nluSrv.URL, time.Second, 0.70),
		slots,
		ranker.New(ranker.DefaultWeights()),
		analyzer,
		"en",
	)
	return &fixture{router: r, sessions: sessions, templates: templates, slots: slots, redis: mr}
}

func textEvent(text string) *model.InboundEvent {
	return &model.InboundEvent{SalonID: "salon-1", CustomerID: "cust-1", Text: text}
}

func buttonEvent(choiceID string) *model.InboundEvent {
	return &model.InboundEvent{
		SalonID:    "salon-1",
		CustomerID: "cust-1",
		Button:     &model.ButtonSelection{ChoiceID: choiceID},
	}
}

func mustSession(t *testing.T, f *fixture) *model.ConversationSession {
	t.Helper()
	sess, err := f.sessions.Get(context.Background(), "salon-1", "cust-1")
	require.NoError(t, err)
	require.NotNil(t, sess)
	return sess
}

func slot(day int, clock, staff string) model.CandidateSlot {
	return model.CandidateSlot{
		Date:      time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC),
		Time:      clock,
		StaffID:   staff,
		ServiceID: "haircut",
	}
}

func TestTextUnreliableIntentGetsGenericReply(t *testing.T) {
	f := newFixture(t, bookingPayload(0.45), &fakeSlots{}, nil)

	resp := f.router.Route(context.Background(), textEvent("maybe book something?"))

	assert.Equal(t, f.templates.Render(template.KeyGenericReply, "en", nil), resp.Text)
	assert.Empty(t, resp.Options)
}

func TestTextThresholdBoundaryIsReliable(t *testing.T) {
	f := newFixture(t, bookingPayload(0.70), &fakeSlots{exact: []model.CandidateSlot{slot(2, "15:00", "anna")}}, nil)

	resp := f.router.Route(context.Background(), textEvent("haircut tomorrow at 3pm"))

	assert.Equal(t, f.templates.Render(template.KeySlotFound, "en", map[string]string{
		"date": "2026-09-02", "time": "15:00", "staff": "anna",
	}), resp.Text)
}

func TestTextExactMatchIsTerminal(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{exact: []model.CandidateSlot{slot(2, "15:00", "anna")}}, nil)

	resp := f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))

	assert.Empty(t, resp.Options)
	sess, err := f.sessions.Get(context.Background(), "salon-1", "cust-1")
	require.NoError(t, err)
	assert.Nil(t, sess, "exact match must not leave a session behind")
}

func TestTextMissingEntitiesPromptsForDetails(t *testing.T) {
	p := classifyPayload{Intent: "booking_request", Confidence: 0.9}
	p.Entities.ServiceID = "haircut" // no date, no time
	f := newFixture(t, p, &fakeSlots{}, nil)

	resp := f.router.Route(context.Background(), textEvent("I want a haircut"))

	assert.Equal(t, f.templates.Render(template.KeyBookingPrompt, "en", nil), resp.Text)
	sess, err := f.sessions.Get(context.Background(), "salon-1", "cust-1")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestTextNoExactMatchPresentsChoices(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{}, nil)

	resp := f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))

	require.Len(t, resp.Options, 3)
	assert.Equal(t, model.ChoiceSameDay, resp.Options[0].ID)
	assert.Equal(t, model.ChoiceSameTime, resp.Options[1].ID)
	assert.Equal(t, model.ChoicePopularTimes, resp.Options[2].ID)

	sess := mustSession(t, f)
	assert.Equal(t, model.SessionStateChoicePresented, sess.State)
	assert.Equal(t, "haircut", sess.OriginalIntent.ServiceID)
	assert.Equal(t, "15:00", sess.OriginalIntent.Time)
	assert.Equal(t, "en", sess.Language)
}

func TestSameDayShowsRankedSlots(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{
		sameDay: []model.CandidateSlot{
			slot(2, "18:30", "bob"),  // 210 min away, beyond the far cutoff
			slot(2, "14:00", "anna"), // 60 min away, near bucket
			slot(2, "16:30", "bob"),  // 90 min away, mid bucket
		},
	}, nil)

	f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))
	resp := f.router.Route(context.Background(), buttonEvent(model.ChoiceSameDay))

	assert.Equal(t, f.templates.Render(template.KeyAlternatives, "en", nil), resp.Text)
	require.Len(t, resp.Options, 3)
	assert.Equal(t, "slot:2026-09-02:14:00:anna", resp.Options[0].ID)
	assert.Equal(t, "slot:2026-09-02:16:30:bob", resp.Options[1].ID)
	assert.Equal(t, "slot:2026-09-02:18:30:bob", resp.Options[2].ID)

	sess := mustSession(t, f)
	assert.Equal(t, model.SessionStateSlotsShown, sess.State)
}

func TestSameDayNoCandidatesOffersOtherPivots(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{}, nil)

	f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))
	resp := f.router.Route(context.Background(), buttonEvent(model.ChoiceSameDay))

	assert.Equal(t, f.templates.Render(template.KeyNoAlternatives, "en", nil), resp.Text)
	require.Len(t, resp.Options, 3)
	assert.Equal(t, model.ChoiceSameTime, resp.Options[0].ID)
	assert.Equal(t, model.ChoicePopularTimes, resp.Options[1].ID)
	assert.Equal(t, model.ChoiceEscalate, resp.Options[2].ID)

	sess := mustSession(t, f)
	assert.Equal(t, model.SessionStateChoicePresented, sess.State)
}

func TestButtonWithoutSessionSaysExpired(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{}, nil)

	resp := f.router.Route(context.Background(), buttonEvent(model.ChoiceSameDay))

	assert.Equal(t, f.templates.Render(template.KeySessionExpired, "en", nil), resp.Text)
	assert.Empty(t, resp.Options)
	sess, err := f.sessions.Get(context.Background(), "salon-1", "cust-1")
	require.NoError(t, err)
	assert.Nil(t, sess, "expired reply must not create a session")
}

func TestChoiceInvalidForStateSaysExpired(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{}, nil)

	f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))
	resp := f.router.Route(context.Background(), buttonEvent(model.ChoiceConfirm))

	assert.Equal(t, f.templates.Render(template.KeySessionExpired, "en", nil), resp.Text)

	sess := mustSession(t, f)
	assert.Equal(t, model.SessionStateChoicePresented, sess.State, "stale choice must not mutate the session")
}

func TestConfirmFlow(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{
		sameDay: []model.CandidateSlot{slot(2, "14:00", "anna")},
	}, nil)

	f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))
	f.router.Route(context.Background(), buttonEvent(model.ChoiceSameDay))

	resp := f.router.Route(context.Background(), buttonEvent("slot:2026-09-02:14:00:anna"))
	assert.Equal(t, f.templates.Render(template.KeyConfirmPrompt, "en", map[string]string{
		"date": "2026-09-02", "time": "14:00", "staff": "anna",
	}), resp.Text)
	require.Len(t, resp.Options, 2)
	assert.Equal(t, model.ChoiceConfirm, resp.Options[0].ID)
	assert.Equal(t, model.ChoiceCancel, resp.Options[1].ID)

	sess := mustSession(t, f)
	assert.Equal(t, model.SessionStateConfirming, sess.State)
	require.NotNil(t, sess.PendingSlot)
	assert.Equal(t, "14:00", sess.PendingSlot.Time)

	resp = f.router.Route(context.Background(), buttonEvent(model.ChoiceConfirm))
	assert.Equal(t, f.templates.Render(template.KeyBookingConfirmed, "en", map[string]string{
		"date": "2026-09-02", "time": "14:00", "staff": "anna",
	}), resp.Text)

	gone, err := f.sessions.Get(context.Background(), "salon-1", "cust-1")
	require.NoError(t, err)
	assert.Nil(t, gone, "confirmation ends the conversation")
}

func TestCancelReturnsToChoiceMenu(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{
		sameDay: []model.CandidateSlot{slot(2, "14:00", "anna")},
	}, nil)

	f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))
	f.router.Route(context.Background(), buttonEvent(model.ChoiceSameDay))
	f.router.Route(context.Background(), buttonEvent("slot:2026-09-02:14:00:anna"))

	resp := f.router.Route(context.Background(), buttonEvent(model.ChoiceCancel))

	require.Len(t, resp.Options, 4)
	assert.Equal(t, model.ChoiceEscalate, resp.Options[3].ID)

	sess := mustSession(t, f)
	assert.Equal(t, model.SessionStateChoicePresented, sess.State)
	assert.Nil(t, sess.PendingSlot)
}

func TestSeeMorePagesDeterministically(t *testing.T) {
	var sameDay []model.CandidateSlot
	for hour := 9; hour < 21; hour++ { // 12 candidates
		sameDay = append(sameDay, slot(2, pad(hour)+":00", "anna"))
	}
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{sameDay: sameDay}, nil)

	f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))

	first := f.router.Route(context.Background(), buttonEvent(model.ChoiceSameDay))
	require.Len(t, first.Options, 6) // 5 slots + see_more
	assert.Equal(t, model.ChoiceSeeMore, first.Options[5].ID)

	second := f.router.Route(context.Background(), buttonEvent(model.ChoiceSeeMore))
	require.Len(t, second.Options, 6)
	assert.Equal(t, model.ChoiceSeeMore, second.Options[5].ID)
	assert.NotEqual(t, first.Options[0].ID, second.Options[0].ID)

	third := f.router.Route(context.Background(), buttonEvent(model.ChoiceSeeMore))
	require.Len(t, third.Options, 2) // last 2 of 12
	for _, opt := range third.Options {
		assert.NotEqual(t, model.ChoiceSeeMore, opt.ID)
	}
}

func TestSeeMoreRepeatedlyOffersEscalation(t *testing.T) {
	var sameDay []model.CandidateSlot
	for hour := 0; hour < 24; hour++ {
		sameDay = append(sameDay, slot(2, pad(hour)+":00", "anna"))
		sameDay = append(sameDay, slot(2, pad(hour)+":30", "anna"))
	}
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{sameDay: sameDay}, nil)

	f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))
	f.router.Route(context.Background(), buttonEvent(model.ChoiceSameDay))
	f.router.Route(context.Background(), buttonEvent(model.ChoiceSeeMore))
	f.router.Route(context.Background(), buttonEvent(model.ChoiceSeeMore))

	resp := f.router.Route(context.Background(), buttonEvent(model.ChoiceSeeMore))

	last := resp.Options[len(resp.Options)-1]
	assert.Equal(t, model.ChoiceEscalate, last.ID, "third page-through offers a human handoff")
}

func TestPopularTimesThinHistoryShowsDefaults(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{}, nil) // zero bookings

	f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))
	resp := f.router.Route(context.Background(), buttonEvent(model.ChoicePopularTimes))

	header := f.templates.Render(template.KeyPopularHeader, "en", nil)
	assert.Contains(t, resp.Text, header)
	assert.Contains(t, resp.Text, "Saturday at 10:00")
	require.Len(t, resp.Options, 3)
	assert.Equal(t, model.ChoiceSameDay, resp.Options[0].ID)
	assert.Equal(t, model.ChoiceSameTime, resp.Options[1].ID)
	assert.Equal(t, model.ChoiceEscalate, resp.Options[2].ID)

	sess := mustSession(t, f)
	assert.Equal(t, model.SessionStateChoicePresented, sess.State)
}

func TestPopularTimesLinesAreLocalized(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{}, nil)

	sess := &model.ConversationSession{
		SalonID:    "salon-1",
		CustomerID: "cust-1",
		OriginalIntent: model.BookingIntent{
			ServiceID: "haircut",
			Date:      time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			Time:      "15:00",
		},
		Language: "ru",
		State:    model.SessionStateChoicePresented,
	}
	require.NoError(t, f.sessions.Save(context.Background(), sess))

	resp := f.router.Route(context.Background(), buttonEvent(model.ChoicePopularTimes))

	assert.Contains(t, resp.Text, f.templates.Render(template.KeyPopularHeader, "ru", nil))
	assert.Contains(t, resp.Text, "Суббота, 10:00")
	assert.NotContains(t, resp.Text, "Saturday")
}

func TestStoreDownBookingStillPresentsChoices(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{}, nil)
	f.redis.Close()

	resp := f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))

	assert.Equal(t, f.templates.Render(template.KeySlotUnavailable, "en", map[string]string{
		"date": "2026-09-02", "time": "15:00",
	}), resp.Text)
	require.Len(t, resp.Options, 3, "the reply still carries the choice buttons")
}

func TestStoreDownButtonTreatedAsExpired(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{}, nil)
	f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))
	f.redis.Close()

	resp := f.router.Route(context.Background(), buttonEvent(model.ChoiceSameDay))

	assert.Equal(t, f.templates.Render(template.KeySessionExpired, "en", nil), resp.Text)
	assert.Empty(t, resp.Options)
}

func TestEscalateEndsSession(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{}, nil)

	f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))
	resp := f.router.Route(context.Background(), buttonEvent(model.ChoiceEscalate))

	assert.Equal(t, f.templates.Render(template.KeyEscalation, "en", nil), resp.Text)
	sess, err := f.sessions.Get(context.Background(), "salon-1", "cust-1")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLookupFailureApologizesWithoutMutation(t *testing.T) {
	f := newFixture(t, bookingPayload(0.92), &fakeSlots{}, nil)
	f.router.Route(context.Background(), textEvent("haircut wednesday 15:00"))
	before := mustSession(t, f)

	f.slots.err = assert.AnError
	resp := f.router.Route(context.Background(), buttonEvent(model.ChoiceSameDay))

	assert.Equal(t, f.templates.Render(template.KeyApology, "en", nil), resp.Text)
	after := mustSession(t, f)
	assert.Equal(t, before.State, after.State)
	assert.Equal(t, before.SeeMoreCount, after.SeeMoreCount)
}

func TestParseSlotChoice(t *testing.T) {
	slot, ok := parseSlotChoice("slot:2026-09-02:14:00:anna", "haircut")
	require.True(t, ok)
	assert.Equal(t, "14:00", slot.Time)
	assert.Equal(t, "anna", slot.StaffID)
	assert.Equal(t, "haircut", slot.ServiceID)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), slot.Date)

	_, ok = parseSlotChoice("slot:garbage", "haircut")
	assert.False(t, ok)
	_, ok = parseSlotChoice("slot:not-a-date:14:00:anna", "haircut")
	assert.False(t, ok)
}

func pad(hour int) string {
	return fmt.Sprintf("%02d", hour)
}
