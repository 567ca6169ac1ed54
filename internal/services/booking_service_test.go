package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giramondo/pkg/utils"
)

func TestHotelSearchURL(t *testing.T) {
	svc := NewBookingService()

	raw, err := svc.HotelSearchURL("Rome, Italy", "2026-09-10", 3, 2)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raw, "https://search.hotellook.com/?"))

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "Rome", q.Get("destination"))
	assert.Equal(t, "2026-09-10", q.Get("checkIn"))
	assert.Equal(t, "2026-09-13", q.Get("checkOut"))
	assert.Equal(t, "2", q.Get("adults"))
	assert.Equal(t, "466446.y4wNeIOw", q.Get("marker"))
}

func TestHotelSearchURLCheckoutCrossesMonth(t *testing.T) {
	svc := NewBookingService()

	raw, err := svc.HotelSearchURL("Lisbon", "2026-09-29", 4, 1)
	require.NoError(t, err)
	q, _ := url.Parse(raw)
	assert.Equal(t, "2026-10-03", q.Query().Get("checkOut"))
}

func TestHotelSearchURLDefaultsAdults(t *testing.T) {
	svc := NewBookingService()

	raw, err := svc.HotelSearchURL("Rome", "2026-09-10", 2, 0)
	require.NoError(t, err)
	q, _ := url.Parse(raw)
	assert.Equal(t, "2", q.Query().Get("adults"))
}

func TestHotelSearchURLValidation(t *testing.T) {
	svc := NewBookingService()

	_, err := svc.HotelSearchURL("", "2026-09-10", 3, 2)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.HotelSearchURL("Rome", "10/09/2026", 3, 2)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.HotelSearchURL("Rome", "2026-09-10", 0, 2)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestActivitySearchURL(t *testing.T) {
	svc := NewBookingService()

	raw := svc.ActivitySearchURL("Rome, Italy", "Colosseum")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "Colosseum, Rome", q.Get("q"))
	assert.Equal(t, "VHSL1EX", q.Get("partner_id"))
	assert.Equal(t, "share_to_earn", q.Get("cmp"))
}

func TestActivitySearchURLCityOnly(t *testing.T) {
	svc := NewBookingService()

	raw := svc.ActivitySearchURL("Rome, Italy", "")
	q, _ := url.Parse(raw)
	assert.Equal(t, "Rome", q.Query().Get("q"))
}
