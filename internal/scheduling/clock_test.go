package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{620, "10:20"},
		{750, "12:30"},
		{1140, "19:00"},
		{1439, "23:59"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
	}
}

func TestFormatMinutesRoundTripsWholeDay(t *testing.T) {
	clock := regexp.MustCompile(`^[0-9]{2}:[0-9]{2}$`)
	for m := 0; m < 1440; m++ {
		s := FormatMinutes(m)
		require.True(t, clock.MatchString(s), "minute %d produced %q", m, s)

		hh, err := strconv.Atoi(s[:2])
		require.NoError(t, err)
		mm, err := strconv.Atoi(s[3:])
		require.NoError(t, err)
		require.Equal(t, m, hh*60+mm, "round trip failed for %s", s)
	}
}

func TestFormatMinutesHourNotClamped(t *testing.T) {
	// Past-midnight cursors wrap the minute component only.
	assert.Equal(t, fmt.Sprintf("%02d:00", 25), FormatMinutes(25*60))
}
