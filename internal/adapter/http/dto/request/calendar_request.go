package request

import (
	"errors"
	"strings"
	"time"

	"socialdots/internal/usecase"
)

var ErrInvalidStartTime = errors.New("start_time must be an ISO 8601 date time")

// Layouts accepted for booking times. Values without an offset are read in the
// calendar time zone, which is what a datetime-local input sends.
var bookingLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseLocalTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range bookingLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidStartTime
}

type BookingRequest struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	Service         string `json:"service" form:"service"`
	Message         string `json:"message" form:"message"`
	StartTime       string `json:"start_time" form:"start_time"`
	EndTime         string `json:"end_time" form:"end_time"`
	DurationMinutes int    `json:"duration_minutes" form:"duration_minutes"`
}

// ToInput parses the booking times. When an end time is given it wins over the duration.
func (r BookingRequest) ToInput(loc *time.Location) (usecase.BookingInput, error) {
	start, err := parseLocalTime(r.StartTime, loc)
	if err != nil {
		return usecase.BookingInput{}, err
	}
	duration := time.Duration(r.DurationMinutes) * time.Minute
	if strings.TrimSpace(r.EndTime) != "" {
		end, err := parseLocalTime(r.EndTime, loc)
		if err != nil {
			return usecase.BookingInput{}, err
		}
		duration = end.Sub(start)
	}
	return usecase.BookingInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Service:  r.Service,
		Message:  r.Message,
		Start:    start,
		Duration: duration,
	}, nil
}

type EventUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}

func (r EventUpdateRequest) ToInput() usecase.EventUpdate {
	return usecase.EventUpdate{Title: r.Title, Description: r.Description, Start: r.StartTime, End: r.EndTime}
}

// ParseSlotDay reads the date query of the slots endpoint, defaulting to today in loc.
func ParseSlotDay(s string, loc *time.Location, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02", s, loc)
}
