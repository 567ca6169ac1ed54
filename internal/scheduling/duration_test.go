package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVisitDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty defaults to an hour", "", 60},
		{"whitespace only", "   ", 60},
		{"whole hours english", "2 hours", 120},
		{"single hour", "1 hour", 60},
		{"abbreviated hours", "3 hrs", 180},
		{"decimal hours", "2.5 hours", 150},
		{"italian singular", "1 ora", 60},
		{"italian plural", "2 ore", 120},
		{"decimal italian", "1.5 ore", 90},
		{"minutes english", "90 minutes", 90},
		{"minutes abbreviated", "45 min", 45},
		{"italian minutes", "30 minuti", 30},
		{"hours and minutes combined", "1 hour 30 minutes", 90},
		{"italian combined", "2 ore 15 minuti", 135},
		{"bare digits are minutes", "75", 75},
		{"unrecognized text", "a while", 60},
		{"zero minutes falls back", "0 min", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVisitDuration(tt.input))
		})
	}
}

func TestParseVisitDurationAlwaysPositive(t *testing.T) {
	inputs := []string{"", "0", "0 min", "garbage", "ore", "minuti", "-5 min"}
	for _, in := range inputs {
		assert.Positive(t, ParseVisitDuration(in), "input %q", in)
	}
}

func TestParseMinutesReportsMatch(t *testing.T) {
	_, ok := parseMinutes("15 min")
	assert.True(t, ok)

	_, ok = parseMinutes("shortly after breakfast")
	assert.False(t, ok)

	_, ok = parseMinutes("")
	assert.False(t, ok)
}
