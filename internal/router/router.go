package router

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/salonflow/dialog-server-go/internal/config"
	"github.com/salonflow/dialog-server-go/internal/metrics"
	"github.com/salonflow/dialog-server-go/internal/model"
	"github.com/salonflow/dialog-server-go/internal/nlu"
	"github.com/salonflow/dialog-server-go/internal/populartimes"
	"github.com/salonflow/dialog-server-go/internal/ranker"
	"github.com/salonflow/dialog-server-go/internal/repository"
	"github.com/salonflow/dialog-server-go/internal/session"
	"github.com/salonflow/dialog-server-go/internal/template"
)

const dateLayout = "2006-01-02"

// Router turns inbound events into replies. It owns the conversation state
// machine; every path returns a response, failures degrade to an apology and
// leave the session unchanged.
type Router struct {
	sessions        *session.Store
	templates       *template.Store
	detector        *nlu.Detector
	classifier      *nlu.Classifier
	slots           repository.SlotRepository
	ranker          *ranker.Ranker
	popular         *populartimes.Analyzer
	defaultLanguage string
}

func New(
	sessions *session.Store,
	templates *template.Store,
	detector *nlu.Detector,
	classifier *nlu.Classifier,
	slots repository.SlotRepository,
	rk *ranker.Ranker,
	popular *populartimes.Analyzer,
	defaultLanguage string,
) *Router {
	return &Router{
		sessions:        sessions,
		templates:       templates,
		detector:        detector,
		classifier:      classifier,
		slots:           slots,
		ranker:          rk,
		popular:         popular,
		defaultLanguage: defaultLanguage,
	}
}

// Route dispatches one normalized inbound event.
func (r *Router) Route(ctx context.Context, event *model.InboundEvent) *model.OutboundResponse {
	if event.Type() == model.EventTypeButtonClick {
		return r.routeButton(ctx, event)
	}
	return r.routeText(ctx, event)
}

func (r *Router) routeText(ctx context.Context, event *model.InboundEvent) *model.OutboundResponse {
	lang := r.defaultLanguage
	if det, err := r.detector.Detect(ctx, event.Text); err != nil {
		log.Warn().Err(err).
			Str("salonId", event.SalonID).
			Msg("language detection failed, using default language")
	} else {
		lang = det.Language
	}

	cls, err := r.classifier.Classify(ctx, event.Text, lang)
	if err != nil {
		log.Error().Err(err).Str("salonId", event.SalonID).Msg("intent classification failed")
		record("text", "failure")
		return r.apology(lang)
	}

	if !cls.Reliable || cls.Intent != model.IntentBookingRequest {
		record("text", "ok")
		return r.reply(template.KeyGenericReply, lang, nil)
	}
	return r.startBooking(ctx, event, lang, cls)
}

func (r *Router) startBooking(ctx context.Context, event *model.InboundEvent, lang string, cls model.Classification) *model.OutboundResponse {
	ent := cls.Entities
	if ent.ServiceID == "" || ent.Date == "" || ent.Time == "" {
		record("booking", "incomplete")
		return r.reply(template.KeyBookingPrompt, lang, nil)
	}
	date, err := time.Parse(dateLayout, ent.Date)
	if err != nil {
		record("booking", "incomplete")
		return r.reply(template.KeyBookingPrompt, lang, nil)
	}

	exact, err := r.slots.FindExact(ctx, event.SalonID, ent.ServiceID, date, ent.Time)
	if err != nil {
		log.Error().Err(err).Str("salonId", event.SalonID).Msg("exact slot lookup failed")
		record("booking", "failure")
		return r.apology(lang)
	}

	if len(exact) > 0 {
		slot := pickStaff(exact, ent.StaffID)
		// A finished booking invalidates any dangling session for this customer.
		if err := r.sessions.Delete(ctx, event.SalonID, event.CustomerID); err != nil {
			log.Warn().Err(err).Msg("stale session cleanup failed")
		}
		record("booking", "exact_match")
		return r.reply(template.KeySlotFound, lang, slotParams(slot))
	}

	sess := &model.ConversationSession{
		SalonID:    event.SalonID,
		CustomerID: event.CustomerID,
		OriginalIntent: model.BookingIntent{
			ServiceID:      ent.ServiceID,
			Date:           date,
			Time:           ent.Time,
			PreferredStaff: ent.StaffID,
			Confidence:     cls.Confidence,
		},
		Language:     lang,
		MessageCount: 1,
		State:        model.SessionStateChoicePresented,
	}
	sess.LogChoice(model.ChoiceSameDay, false)
	sess.LogChoice(model.ChoiceSameTime, false)
	sess.LogChoice(model.ChoicePopularTimes, false)

	if err := r.sessions.Save(ctx, sess); err != nil {
		// The reply still goes out; the customer just loses continuity if
		// they tap a button before the store recovers.
		log.Warn().Err(err).Str("sessionKey", sess.Key()).Msg("session save failed, replying without persistence")
	}

	record("booking", "no_exact_match")
	resp := r.reply(template.KeySlotUnavailable, lang, map[string]string{
		"date": date.Format(dateLayout),
		"time": ent.Time,
	})
	resp.Options = r.pivotChoices(lang, false)
	return resp
}

func (r *Router) routeButton(ctx context.Context, event *model.InboundEvent) *model.OutboundResponse {
	sess, err := r.sessions.Get(ctx, event.SalonID, event.CustomerID)
	if err != nil {
		// Store unreachable: degrade to stateless operation and treat the
		// session as absent rather than fail the request.
		log.Warn().Err(err).Str("salonId", event.SalonID).Msg("session lookup failed, treating session as absent")
		sess = nil
	}
	if sess == nil {
		record("button", "expired")
		return r.reply(template.KeySessionExpired, r.defaultLanguage, nil)
	}

	lang := sess.Language
	choice := event.Button.ChoiceID
	if !choiceAllowed(choice, sess.State) {
		log.Warn().
			Str("choiceId", choice).
			Str("state", string(sess.State)).
			Msg("choice not valid for session state")
		record("button", "stale")
		return r.reply(template.KeySessionExpired, lang, nil)
	}
	sess.MessageCount++

	switch {
	case choice == model.ChoiceSameDay:
		return r.sameDay(ctx, sess, lang)
	case choice == model.ChoiceSameTime:
		return r.sameTime(ctx, sess, lang)
	case choice == model.ChoicePopularTimes:
		return r.popularTimes(ctx, sess, lang)
	case choice == model.ChoiceSeeMore:
		return r.seeMore(ctx, sess, lang)
	case choice == model.ChoiceEscalate:
		return r.escalate(ctx, sess, lang)
	case choice == model.ChoiceConfirm:
		return r.confirm(ctx, sess, lang)
	case choice == model.ChoiceCancel:
		return r.cancel(ctx, sess, lang)
	case strings.HasPrefix(choice, model.ChoiceSlotPrefix):
		return r.selectSlot(ctx, sess, lang, choice)
	default:
		record("button", "stale")
		return r.reply(template.KeySessionExpired, lang, nil)
	}
}

func (r *Router) sameDay(ctx context.Context, sess *model.ConversationSession, lang string) *model.OutboundResponse {
	oi := sess.OriginalIntent
	cands, err := r.slots.FindSameDay(ctx, sess.SalonID, oi.ServiceID, oi.Date)
	if err != nil {
		log.Error().Err(err).Str("salonId", sess.SalonID).Msg("same-day lookup failed")
		record("same_day", "failure")
		return r.apology(lang)
	}
	return r.presentSlots(ctx, sess, lang, model.ChoiceSameDay, r.rank(sess, cands))
}

func (r *Router) sameTime(ctx context.Context, sess *model.ConversationSession, lang string) *model.OutboundResponse {
	oi := sess.OriginalIntent
	cands, err := r.slots.FindSameTime(ctx, sess.SalonID, oi.ServiceID, oi.Time, oi.Date, sameTimeWindowDays)
	if err != nil {
		log.Error().Err(err).Str("salonId", sess.SalonID).Msg("same-time lookup failed")
		record("same_time", "failure")
		return r.apology(lang)
	}
	return r.presentSlots(ctx, sess, lang, model.ChoiceSameTime, r.rank(sess, cands))
}

// sameTimeWindowDays bounds the same-time pivot to one week either side.
const sameTimeWindowDays = 7

func (r *Router) presentSlots(ctx context.Context, sess *model.ConversationSession, lang, pivot string, ranked []model.RankedSlot) *model.OutboundResponse {
	sess.SeeMoreCount = 0
	sess.LogChoice(pivot, len(ranked) > 0)

	if len(ranked) == 0 {
		sess.State = model.SessionStateChoicePresented
		if err := r.sessions.Extend(ctx, sess); err != nil {
			log.Error().Err(err).Str("sessionKey", sess.Key()).Msg("session extend failed")
			record(pivot, "failure")
			return r.apology(lang)
		}
		record(pivot, "no_candidates")
		resp := r.reply(template.KeyNoAlternatives, lang, nil)
		resp.Options = append(r.pivotChoicesExcept(lang, pivot), r.choice(model.ChoiceEscalate, template.KeyChoiceEscalate, lang))
		return resp
	}

	sess.State = model.SessionStateSlotsShown
	r.extend(ctx, sess)

	record(pivot, "ok")
	resp := r.reply(template.KeyAlternatives, lang, nil)
	resp.Options = r.slotOptions(lang, ranked, 0, sess.SeeMoreCount)
	return resp
}

func (r *Router) seeMore(ctx context.Context, sess *model.ConversationSession, lang string) *model.OutboundResponse {
	oi := sess.OriginalIntent
	pivot := lastPivot(sess)

	var (
		cands []model.CandidateSlot
		err   error
	)
	switch pivot {
	case model.ChoiceSameDay:
		cands, err = r.slots.FindSameDay(ctx, sess.SalonID, oi.ServiceID, oi.Date)
	case model.ChoiceSameTime:
		cands, err = r.slots.FindSameTime(ctx, sess.SalonID, oi.ServiceID, oi.Time, oi.Date, sameTimeWindowDays)
	default:
		record("see_more", "stale")
		return r.reply(template.KeySessionExpired, lang, nil)
	}
	if err != nil {
		log.Error().Err(err).Str("salonId", sess.SalonID).Msg("see-more lookup failed")
		record("see_more", "failure")
		return r.apology(lang)
	}

	ranked := r.rank(sess, cands)
	sess.SeeMoreCount++
	sess.LogChoice(model.ChoiceSeeMore, false)
	offset := sess.SeeMoreCount * config.MaxSlotsPerPage
	r.extend(ctx, sess)

	if offset >= len(ranked) {
		record("see_more", "no_candidates")
		resp := r.reply(template.KeyNoAlternatives, lang, nil)
		resp.Options = []model.Choice{r.choice(model.ChoiceEscalate, template.KeyChoiceEscalate, lang)}
		return resp
	}

	record("see_more", "ok")
	resp := r.reply(template.KeyAlternatives, lang, nil)
	resp.Options = r.slotOptions(lang, ranked, offset, sess.SeeMoreCount)
	return resp
}

func (r *Router) popularTimes(ctx context.Context, sess *model.ConversationSession, lang string) *model.OutboundResponse {
	buckets, err := r.popular.Analyze(ctx, sess.SalonID, sess.OriginalIntent.ServiceID)
	if err != nil {
		log.Error().Err(err).Str("salonId", sess.SalonID).Msg("popular times lookup failed")
		record("popular_times", "failure")
		return r.apology(lang)
	}

	sess.LogChoice(model.ChoicePopularTimes, len(buckets) > 0)
	sess.State = model.SessionStateChoicePresented
	r.extend(ctx, sess)

	lines := []string{r.templates.Render(template.KeyPopularHeader, lang, nil)}
	for _, b := range buckets {
		lines = append(lines, r.templates.Render(template.KeyPopularBucket, lang, map[string]string{
			"day":  r.templates.Render(template.WeekdayKey(b.DayOfWeek), lang, nil),
			"hour": fmt.Sprintf("%02d", b.Hour),
		}))
	}

	record("popular_times", "ok")
	return &model.OutboundResponse{
		Text: strings.Join(lines, "\n"),
		Options: append(
			r.pivotChoicesExcept(lang, model.ChoicePopularTimes),
			r.choice(model.ChoiceEscalate, template.KeyChoiceEscalate, lang),
		),
	}
}

func (r *Router) selectSlot(ctx context.Context, sess *model.ConversationSession, lang, choice string) *model.OutboundResponse {
	slot, ok := parseSlotChoice(choice, sess.OriginalIntent.ServiceID)
	if !ok {
		record("slot_select", "stale")
		return r.reply(template.KeySessionExpired, lang, nil)
	}

	sess.PendingSlot = &slot
	sess.State = model.SessionStateConfirming
	sess.LogChoice(choice, true)
	r.extend(ctx, sess)

	record("slot_select", "ok")
	resp := r.reply(template.KeyConfirmPrompt, lang, slotParams(slot))
	resp.Options = []model.Choice{
		r.choice(model.ChoiceConfirm, template.KeyChoiceConfirm, lang),
		r.choice(model.ChoiceCancel, template.KeyChoiceCancel, lang),
	}
	return resp
}

func (r *Router) confirm(ctx context.Context, sess *model.ConversationSession, lang string) *model.OutboundResponse {
	if sess.PendingSlot == nil {
		record("confirm", "stale")
		return r.reply(template.KeySessionExpired, lang, nil)
	}
	slot := *sess.PendingSlot
	sess.State = model.SessionStateCompleted

	if err := r.sessions.Delete(ctx, sess.SalonID, sess.CustomerID); err != nil {
		log.Warn().Err(err).Str("sessionKey", sess.Key()).Msg("session delete failed, confirming anyway")
	}

	record("confirm", "ok")
	return r.reply(template.KeyBookingConfirmed, lang, slotParams(slot))
}

func (r *Router) cancel(ctx context.Context, sess *model.ConversationSession, lang string) *model.OutboundResponse {
	sess.PendingSlot = nil
	sess.State = model.SessionStateChoicePresented
	sess.LogChoice(model.ChoiceCancel, true)
	r.extend(ctx, sess)

	record("cancel", "ok")
	oi := sess.OriginalIntent
	resp := r.reply(template.KeySlotUnavailable, lang, map[string]string{
		"date": oi.Date.Format(dateLayout),
		"time": oi.Time,
	})
	resp.Options = r.pivotChoices(lang, true)
	return resp
}

func (r *Router) escalate(ctx context.Context, sess *model.ConversationSession, lang string) *model.OutboundResponse {
	if err := r.sessions.Delete(ctx, sess.SalonID, sess.CustomerID); err != nil {
		log.Warn().Err(err).Str("sessionKey", sess.Key()).Msg("session delete failed during escalation")
	}
	record("escalate", "ok")
	return r.reply(template.KeyEscalation, lang, nil)
}

// extend is best-effort: a failed session write costs continuity, never the
// reply.
func (r *Router) extend(ctx context.Context, sess *model.ConversationSession) {
	if err := r.sessions.Extend(ctx, sess); err != nil {
		log.Warn().Err(err).Str("sessionKey", sess.Key()).Msg("session extend failed, continuing without persistence")
	}
}

func (r *Router) rank(sess *model.ConversationSession, cands []model.CandidateSlot) []model.RankedSlot {
	oi := sess.OriginalIntent
	return r.ranker.Rank(cands, model.SlotTarget{
		Date:           oi.Date,
		Time:           oi.Time,
		PreferredStaff: oi.PreferredStaff,
	})
}

func (r *Router) reply(key, lang string, params map[string]string) *model.OutboundResponse {
	return &model.OutboundResponse{Text: r.templates.Render(key, lang, params)}
}

func (r *Router) apology(lang string) *model.OutboundResponse {
	return r.reply(template.KeyApology, lang, nil)
}

func (r *Router) choice(id, key, lang string) model.Choice {
	return model.Choice{ID: id, Label: r.templates.Render(key, lang, nil)}
}

func (r *Router) pivotChoices(lang string, withEscalate bool) []model.Choice {
	choices := []model.Choice{
		r.choice(model.ChoiceSameDay, template.KeyChoiceSameDay, lang),
		r.choice(model.ChoiceSameTime, template.KeyChoiceSameTime, lang),
		r.choice(model.ChoicePopularTimes, template.KeyChoicePopular, lang),
	}
	if withEscalate {
		choices = append(choices, r.choice(model.ChoiceEscalate, template.KeyChoiceEscalate, lang))
	}
	return choices
}

func (r *Router) pivotChoicesExcept(lang, exclude string) []model.Choice {
	var choices []model.Choice
	for _, c := range r.pivotChoices(lang, false) {
		if c.ID != exclude {
			choices = append(choices, c)
		}
	}
	return choices
}

// slotOptions renders one page of ranked slots as selectable options,
// followed by pagination and, once the customer has paged enough, an
// escalation exit.
func (r *Router) slotOptions(lang string, ranked []model.RankedSlot, offset, seeMoreCount int) []model.Choice {
	end := offset + config.MaxSlotsPerPage
	if end > len(ranked) {
		end = len(ranked)
	}

	var opts []model.Choice
	for _, s := range ranked[offset:end] {
		opts = append(opts, model.Choice{
			ID:    slotChoiceID(s.CandidateSlot),
			Label: fmt.Sprintf("%s %s (%s)", s.Date.Format(dateLayout), s.Time, s.StaffID),
		})
	}
	if end < len(ranked) {
		opts = append(opts, r.choice(model.ChoiceSeeMore, template.KeyChoiceSeeMore, lang))
	}
	if seeMoreCount >= config.SeeMoreEscalateAt {
		opts = append(opts, r.choice(model.ChoiceEscalate, template.KeyChoiceEscalate, lang))
	}
	return opts
}

func slotChoiceID(slot model.CandidateSlot) string {
	return fmt.Sprintf("%s%s:%s:%s", model.ChoiceSlotPrefix, slot.Date.Format(dateLayout), slot.Time, slot.StaffID)
}

func parseSlotChoice(choice, serviceID string) (model.CandidateSlot, bool) {
	rest := strings.TrimPrefix(choice, model.ChoiceSlotPrefix)
	parts := strings.SplitN(rest, ":", 4)
	if len(parts) != 4 {
		return model.CandidateSlot{}, false
	}
	date, err := time.Parse(dateLayout, parts[0])
	if err != nil {
		return model.CandidateSlot{}, false
	}
	return model.CandidateSlot{
		Date:      date,
		Time:      parts[1] + ":" + parts[2],
		StaffID:   parts[3],
		ServiceID: serviceID,
	}, true
}

// pickStaff prefers the requested staff member when they are among the
// matches; the repository orders matches by staff id otherwise.
func pickStaff(slots []model.CandidateSlot, preferred string) model.CandidateSlot {
	if preferred != "" {
		for _, s := range slots {
			if s.StaffID == preferred {
				return s
			}
		}
	}
	return slots[0]
}

func choiceAllowed(choice string, state model.SessionState) bool {
	switch state {
	case model.SessionStateChoicePresented:
		return choice == model.ChoiceSameDay ||
			choice == model.ChoiceSameTime ||
			choice == model.ChoicePopularTimes ||
			choice == model.ChoiceEscalate
	case model.SessionStateSlotsShown:
		return choice == model.ChoiceSameDay ||
			choice == model.ChoiceSameTime ||
			choice == model.ChoicePopularTimes ||
			choice == model.ChoiceSeeMore ||
			choice == model.ChoiceEscalate ||
			strings.HasPrefix(choice, model.ChoiceSlotPrefix)
	case model.SessionStateConfirming:
		return choice == model.ChoiceConfirm || choice == model.ChoiceCancel
	default:
		return false
	}
}

// lastPivot finds the most recent alternatives query, so pagination can
// recompute the same deterministic result set.
func lastPivot(sess *model.ConversationSession) string {
	for i := len(sess.Choices) - 1; i >= 0; i-- {
		id := sess.Choices[i].ChoiceID
		if id == model.ChoiceSameDay || id == model.ChoiceSameTime {
			return id
		}
	}
	return ""
}

func slotParams(slot model.CandidateSlot) map[string]string {
	return map[string]string{
		"date":  slot.Date.Format(dateLayout),
		"time":  slot.Time,
		"staff": slot.StaffID,
	}
}

func record(branch, outcome string) {
	metrics.RoutedEvents.WithLabelValues(branch, outcome).Inc()
}
