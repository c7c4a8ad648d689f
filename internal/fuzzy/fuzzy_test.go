package fuzzy_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickworks/fuzzyclock/internal/fuzzy"
)

func TestHourWord(t *testing.T) {
	assert.Equal(t, "midnight", fuzzy.HourWord(0))
	assert.Equal(t, "noon", fuzzy.HourWord(12))

	words := []string{
		"one", "two", "three", "four", "five", "six",
		"seven", "eight", "nine", "ten", "eleven",
	}
	for h := 1; h <= 11; h++ {
		assert.Equal(t, words[h-1], fuzzy.HourWord(h), "hour %d", h)
		// afternoon hours reuse the morning words
		assert.Equal(t, fuzzy.HourWord(h), fuzzy.HourWord(h+12), "hour %d vs %d", h, h+12)
	}
}

func TestPhraseKnownReadings(t *testing.T) {
	cases := []struct {
		hour, minute int
		want         string
	}{
		{0, 0, "midnight"},
		{12, 0, "noon"},
		{3, 0, "three o'clock"},
		{3, 15, "quarter past three"},
		{3, 45, "quarter to four"},
		{0, 5, "five past midnight"},
		{12, 5, "five past noon"},
		{11, 50, "ten to noon"},
		{23, 45, "quarter to midnight"},
		{12, 50, "ten to one"},
		{15, 30, "half past three"},
		{15, 25, "twentyfive past three"},
		{15, 35, "twentyfive to four"},
		{23, 58, "eleven o'clock"},
		{0, 58, "midnight"},
		{12, 59, "noon"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%02d:%02d", tc.hour, tc.minute), func(t *testing.T) {
			assert.Equal(t, tc.want, fuzzy.Phrase(tc.hour, tc.minute))
		})
	}
}

// TestPhraseBucketBoundaries pins the exact rounding table, including the
// uneven "ten to"/"five to" split carried over from the shipped behavior.
func TestPhraseBucketBoundaries(t *testing.T) {
	assert.Equal(t, "three o'clock", fuzzy.Phrase(3, 2))
	assert.Equal(t, "five past three", fuzzy.Phrase(3, 3))
	assert.Equal(t, "five past three", fuzzy.Phrase(3, 7))
	assert.Equal(t, "ten past three", fuzzy.Phrase(3, 8))
	assert.Equal(t, "quarter past three", fuzzy.Phrase(3, 13))
	assert.Equal(t, "quarter past three", fuzzy.Phrase(3, 17))
	assert.Equal(t, "twenty past three", fuzzy.Phrase(3, 18))
	assert.Equal(t, "half past three", fuzzy.Phrase(3, 28))
	assert.Equal(t, "half past three", fuzzy.Phrase(3, 32))
	assert.Equal(t, "twentyfive to four", fuzzy.Phrase(3, 33))
	assert.Equal(t, "quarter to four", fuzzy.Phrase(3, 43))
	assert.Equal(t, "quarter to four", fuzzy.Phrase(3, 47))

	// 48..53 all round to "ten to", 54..57 to "five to"
	for m := 48; m <= 53; m++ {
		assert.Equal(t, "ten to four", fuzzy.Phrase(3, m), "minute %d", m)
	}
	for m := 54; m <= 57; m++ {
		assert.Equal(t, "five to four", fuzzy.Phrase(3, m), "minute %d", m)
	}

	// the wrap bucket names the hour still on the clock, never the next one
	assert.Equal(t, "three o'clock", fuzzy.Phrase(3, 58))
	assert.NotEqual(t, fuzzy.Phrase(3, 52), fuzzy.Phrase(3, 54))
}

func TestPhraseWrapBucket(t *testing.T) {
	// all five wrap minutes name the hour still on the clock, even 58/59;
	// noon and midnight drop the o'clock suffix entirely
	for _, m := range []int{58, 59, 0, 1, 2} {
		for h := 0; h <= 23; h++ {
			got := fuzzy.Phrase(h, m)
			switch h {
			case 0:
				assert.Equal(t, "midnight", got, "%02d:%02d", h, m)
			case 12:
				assert.Equal(t, "noon", got, "%02d:%02d", h, m)
			default:
				assert.Equal(t, fuzzy.HourWord(h)+" o'clock", got, "%02d:%02d", h, m)
				assert.True(t, strings.HasSuffix(got, " o'clock"), "%02d:%02d -> %q", h, m, got)
			}
		}
	}
}

// TestPhraseTotal sweeps the entire input domain: every reading yields a
// non-empty phrase with no stray whitespace, and repeated calls agree.
func TestPhraseTotal(t *testing.T) {
	for h := 0; h <= 23; h++ {
		for m := 0; m <= 59; m++ {
			got := fuzzy.Phrase(h, m)
			require.NotEmpty(t, got, "%02d:%02d", h, m)
			require.Equal(t, strings.TrimSpace(got), got, "%02d:%02d", h, m)
			require.NotContains(t, got, "  ", "%02d:%02d", h, m)
			require.Equal(t, got, fuzzy.Phrase(h, m), "%02d:%02d not deterministic", h, m)
		}
	}
}

func TestAt(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 19:45 UTC is 15:45 in New York (summer time)
	at := time.Date(2026, time.June, 1, 19, 45, 0, 0, time.UTC)
	assert.Equal(t, "quarter to eight", fuzzy.At(at))
	assert.Equal(t, "quarter to four", fuzzy.At(at.In(loc)))
}
