package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	store := NewStore("en")

	t.Run("renders requested language with params", func(t *testing.T) {
		out := store.Render(KeySlotFound, "es", map[string]string{
			"date": "02/09", "time": "15:00", "staff": "Ana",
		})
		assert.Contains(t, out, "02/09")
		assert.Contains(t, out, "15:00")
		assert.Contains(t, out, "Ana")
	})

	t.Run("falls back to default language when requested language absent", func(t *testing.T) {
		params := map[string]string{"date": "02/09", "time": "15:00", "staff": "Ana"}
		got := store.Render(KeySlotFound, "fr", params)
		want := store.Render(KeySlotFound, "en", params)
		assert.Equal(t, want, got)
	})

	t.Run("returns generic placeholder when key unknown everywhere", func(t *testing.T) {
		out := store.Render("no_such_key", "en", nil)
		assert.Equal(t, genericPlaceholder, out)
	})

	t.Run("leaves unresolved placeholders verbatim", func(t *testing.T) {
		out := store.Render(KeySlotFound, "en", map[string]string{"date": "02/09"})
		assert.Contains(t, out, "02/09")
		assert.Contains(t, out, "{time}")
		assert.Contains(t, out, "{staff}")
	})

	t.Run("nil params leave template untouched", func(t *testing.T) {
		out := store.Render(KeyConfirmPrompt, "en", nil)
		assert.Contains(t, out, "{date}")
	})
}

func TestTone(t *testing.T) {
	store := NewStore("en")

	assert.Equal(t, ToneEmpathetic, store.Tone(KeySlotUnavailable, "ru"))
	assert.Equal(t, ToneApologetic, store.Tone(KeyApology, "fr")) // default fallback
	assert.Equal(t, ToneNeutral, store.Tone("no_such_key", "en"))
}

func TestCatalogIsComplete(t *testing.T) {
	keys := []string{
		KeyGenericReply, KeyBookingPrompt, KeySlotFound, KeySlotUnavailable,
		KeyAlternatives, KeyNoAlternatives, KeyPopularHeader, KeyPopularBucket,
		KeySessionExpired, KeyEscalation, KeyApology, KeyConfirmPrompt,
		KeyBookingConfirmed, KeyChoiceSameDay, KeyChoiceSameTime,
		KeyChoicePopular, KeyChoiceSeeMore, KeyChoiceEscalate,
		KeyChoiceConfirm, KeyChoiceCancel,
	}
	for day := 0; day < 7; day++ {
		keys = append(keys, WeekdayKey(day))
	}
	languages := []string{"ru", "en", "es", "pt", "he"}

	for _, key := range keys {
		for _, lang := range languages {
			tmpl, ok := catalog[templateKey{Message: key, Language: lang}]
			assert.True(t, ok, "missing template %s/%s", key, lang)
			assert.LessOrEqual(t, strings.Count(tmpl.Text, "\n")+1, MaxLines,
				"template %s/%s exceeds %d lines", key, lang, MaxLines)
		}
	}
}
