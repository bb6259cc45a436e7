package interfaces

//go:generate mockgen -source=calendar_provider_interface.go -destination=mocks/calendar_provider_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"socialdots/internal/domain/entities"
)

// CalendarEventInput is what is written to the external calendar.
type CalendarEventInput struct {
	Title         string
	Description   string
	Start         time.Time
	End           time.Time
	AttendeeName  string
	AttendeeEmail string
}

// ICalendarProvider abstracts the external calendar (Google Calendar) behind an OAuth2 token.
type ICalendarProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (entities.OAuthToken, error)
	BusyPeriods(ctx context.Context, tok entities.OAuthToken, from, to time.Time) ([]entities.TimeRange, error)
	CreateEvent(ctx context.Context, tok entities.OAuthToken, in CalendarEventInput) (string, error)
	UpdateEvent(ctx context.Context, tok entities.OAuthToken, externalID string, in CalendarEventInput) error
	DeleteEvent(ctx context.Context, tok entities.OAuthToken, externalID string) error
	ListUpcoming(ctx context.Context, tok entities.OAuthToken, max int) ([]entities.CalendarEvent, error)
}
