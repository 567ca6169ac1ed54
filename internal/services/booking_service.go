package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"giramondo/pkg/utils"
)

// Affiliate identifiers for the two booking partners.
const (
	hotellookMarker     = "466446.y4wNeIOw"
	getYourGuidePartner = "VHSL1EX"
)

// BookingService builds outbound URLs for the hotel and activity booking
// widgets. Pure string templating; the widgets themselves are external.
type BookingServiceInterface interface {
	HotelSearchURL(destination, checkIn string, days, adults int) (string, error)
	ActivitySearchURL(destination, activityName string) string
}

type BookingService struct{}

func NewBookingService() BookingServiceInterface {
	return &BookingService{}
}

// HotelSearchURL pre-fills a Hotellook search for the stay: check-in on the
// trip's start date, check-out after the destination's day count. Date
// arithmetic runs in UTC to avoid timezone off-by-one on the checkout day.
func (s *BookingService) HotelSearchURL(destination, checkIn string, days, adults int) (string, error) {
	if strings.TrimSpace(destination) == "" {
		return "", fmt.Errorf("%w: destination required", utils.ErrInvalidInput)
	}
	if days < 1 {
		return "", fmt.Errorf("%w: stay must be at least one day", utils.ErrInvalidInput)
	}
	if adults < 1 {
		adults = 2
	}

	checkInDate, err := time.ParseInLocation("2006-01-02", checkIn, time.UTC)
	if err != nil {
		return "", fmt.Errorf("%w: check-in date must be YYYY-MM-DD", utils.ErrInvalidInput)
	}
	checkOutDate := checkInDate.AddDate(0, 0, days)

	q := url.Values{}
	q.Set("destination", cityOf(destination))
	q.Set("checkIn", checkInDate.Format("2006-01-02"))
	q.Set("checkOut", checkOutDate.Format("2006-01-02"))
	q.Set("adults", fmt.Sprintf("%d", adults))
	q.Set("marker", hotellookMarker)
	q.Set("language", "en")
	q.Set("currency", "eur")

	return "https://search.hotellook.com/?" + q.Encode(), nil
}

// ActivitySearchURL links into GetYourGuide. With an activity name it
// targets that attraction; without one it searches the whole city.
func (s *BookingService) ActivitySearchURL(destination, activityName string) string {
	city := cityOf(destination)
	query := city
	if strings.TrimSpace(activityName) != "" {
		query = fmt.Sprintf("%s, %s", strings.TrimSpace(activityName), city)
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("partner_id", getYourGuidePartner)
	q.Set("cmp", "share_to_earn")

	return "https://www.getyourguide.com/s/?" + q.Encode()
}

// cityOf trims a "City, Country" destination down to the city.
func cityOf(destination string) string {
	return strings.TrimSpace(strings.SplitN(destination, ",", 2)[0])
}
