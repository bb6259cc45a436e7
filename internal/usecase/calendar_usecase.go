package usecase

//go:generate mockgen -source=calendar_usecase.go -destination=../adapter/http/handlers/mocks/calendar_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CalendarTokenProvider is the integrations key the calendar credential is stored under.
const CalendarTokenProvider = "google_calendar"

const DefaultUpcomingEvents = 10

var (
	ErrCalendarNotConnected = errors.New("calendar is not connected")
	ErrSlotUnavailable      = errors.New("requested slot is not available")
	ErrInvalidBooking       = errors.New("invalid booking")
	ErrEventNotFound        = errors.New("calendar event not found")
)

type BookingInput struct {
	Name     string
	Email    string
	Phone    string
	Service  string
	Message  string
	Start    time.Time
	Duration time.Duration
}

// EventUpdate carries the fields to change; nil fields are kept.
type EventUpdate struct {
	Title       *string
	Description *string
	Start       *time.Time
	End         *time.Time
}

type ICalendarUseCase interface {
	AuthURL(state string) string
	Connect(ctx context.Context, code string) error
	Connected(ctx context.Context) (bool, error)
	AvailableSlots(ctx context.Context, day time.Time, duration time.Duration) ([]entities.TimeRange, error)
	Book(ctx context.Context, in BookingInput) (entities.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id string, in EventUpdate) (entities.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
	ListUpcoming(ctx context.Context, max int) ([]entities.CalendarEvent, error)
	ListEvents(ctx context.Context) ([]entities.CalendarEvent, error)
}

type CalendarUseCase struct {
	provider interfaces.ICalendarProvider
	tokens   interfaces.ITokenRepository
	events   interfaces.IContentRepository[entities.CalendarEvent]
	loc      *time.Location
	now      func() time.Time
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(
	provider interfaces.ICalendarProvider,
	tokens interfaces.ITokenRepository,
	events interfaces.IContentRepository[entities.CalendarEvent],
	loc *time.Location,
) *CalendarUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &CalendarUseCase{
		provider: provider,
		tokens:   tokens,
		events:   events,
		loc:      loc,
		now:      time.Now,
	}
}

func (u *CalendarUseCase) AuthURL(state string) string {
	return u.provider.AuthCodeURL(state)
}

// Connect exchanges an authorization code and stores the resulting credential.
func (u *CalendarUseCase) Connect(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: authorization code is required", ErrInvalidBooking)
	}
	tok, err := u.provider.Exchange(ctx, code)
	if err != nil {
		return err
	}
	tok.Provider = CalendarTokenProvider
	tok.UpdatedAt = u.now().UTC()
	if err := u.tokens.Put(ctx, tok); err != nil {
		return err
	}
	logrus.Info("[calendar][usecase] calendar connected")
	return nil
}

func (u *CalendarUseCase) Connected(ctx context.Context) (bool, error) {
	tok, err := u.tokens.Get(ctx, CalendarTokenProvider)
	if err != nil {
		return false, err
	}
	return tok.AccessToken != "", nil
}

func (u *CalendarUseCase) token(ctx context.Context) (entities.OAuthToken, error) {
	tok, err := u.tokens.Get(ctx, CalendarTokenProvider)
	if err != nil {
		return entities.OAuthToken{}, err
	}
	if tok.AccessToken == "" {
		return entities.OAuthToken{}, ErrCalendarNotConnected
	}
	return tok, nil
}

// AvailableSlots lists the free slots of day that have not started yet.
func (u *CalendarUseCase) AvailableSlots(ctx context.Context, day time.Time, duration time.Duration) ([]entities.TimeRange, error) {
	tok, err := u.token(ctx)
	if err != nil {
		return nil, err
	}
	y, m, d := day.In(u.loc).Date()
	from := time.Date(y, m, d, entities.BusinessDayStartHour, 0, 0, 0, u.loc)
	to := time.Date(y, m, d, entities.BusinessDayEndHour, 0, 0, 0, u.loc)

	busy, err := u.provider.BusyPeriods(ctx, tok, from, to)
	if err != nil {
		return nil, err
	}
	now := u.now()
	slots := []entities.TimeRange{}
	for _, s := range entities.AvailableSlots(day, u.loc, duration, busy) {
		if s.Start.After(now) {
			slots = append(slots, s)
		}
	}
	return slots, nil
}

// Book creates the consultation on the external calendar, then records it locally.
func (u *CalendarUseCase) Book(ctx context.Context, in BookingInput) (entities.CalendarEvent, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Duration <= 0 {
		in.Duration = entities.DefaultSlotDuration
	}
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
		validation.Field(&in.Start, validation.Required),
	)
	if err != nil {
		return entities.CalendarEvent{}, fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}
	if !in.Start.After(u.now()) {
		return entities.CalendarEvent{}, fmt.Errorf("%w: start must be in the future", ErrInvalidBooking)
	}

	tok, err := u.token(ctx)
	if err != nil {
		return entities.CalendarEvent{}, err
	}
	slot := entities.TimeRange{Start: in.Start, End: in.Start.Add(in.Duration)}
	busy, err := u.provider.BusyPeriods(ctx, tok, slot.Start, slot.End)
	if err != nil {
		return entities.CalendarEvent{}, err
	}
	for _, b := range busy {
		if slot.Overlaps(b) {
			return entities.CalendarEvent{}, ErrSlotUnavailable
		}
	}

	input := interfaces.CalendarEventInput{
		Title:         "Consultation with " + in.Name,
		Description:   bookingDescription(in),
		Start:         slot.Start,
		End:           slot.End,
		AttendeeName:  in.Name,
		AttendeeEmail: in.Email,
	}
	externalID, err := u.provider.CreateEvent(ctx, tok, input)
	if err != nil {
		return entities.CalendarEvent{}, err
	}

	now := u.now().UTC()
	event := entities.CalendarEvent{
		ID:              uuid.NewString(),
		Title:           input.Title,
		Description:     input.Description,
		Start:           slot.Start,
		End:             slot.End,
		AttendeeName:    in.Name,
		AttendeeEmail:   in.Email,
		AttendeePhone:   in.Phone,
		ExternalEventID: externalID,
		IsConfirmed:     true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	saved, err := u.events.Put(ctx, event)
	if err != nil {
		logrus.WithError(err).WithField("external_event_id", externalID).Error("[calendar][usecase] event booked but not recorded")
		return entities.CalendarEvent{}, err
	}
	logrus.WithFields(logrus.Fields{"event_id": saved.ID, "start": saved.Start}).Info("[calendar][usecase] appointment booked")
	return saved, nil
}

func bookingDescription(in BookingInput) string {
	return fmt.Sprintf("Consultation appointment booked through SocialDots.ca\n\n"+
		"Client: %s\nEmail: %s\nPhone: %s\nService Interest: %s\nMessage: %s",
		in.Name, in.Email,
		orDefault(in.Phone, "Not provided"),
		orDefault(strings.TrimSpace(in.Service), "General consultation"),
		orDefault(strings.TrimSpace(in.Message), "No additional message"),
	)
}

func (u *CalendarUseCase) event(ctx context.Context, id string) (entities.CalendarEvent, error) {
	event, err := u.events.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.CalendarEvent{}, err
	}
	if event.ID == "" {
		return entities.CalendarEvent{}, ErrEventNotFound
	}
	return event, nil
}

func (u *CalendarUseCase) UpdateEvent(ctx context.Context, id string, in EventUpdate) (entities.CalendarEvent, error) {
	event, err := u.event(ctx, id)
	if err != nil {
		return event, err
	}
	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.Start != nil {
		event.Start = *in.Start
	}
	if in.End != nil {
		event.End = *in.End
	}
	if !event.End.After(event.Start) {
		return entities.CalendarEvent{}, fmt.Errorf("%w: end must be after start", ErrInvalidBooking)
	}

	if event.ExternalEventID != "" {
		tok, err := u.token(ctx)
		if err != nil {
			return entities.CalendarEvent{}, err
		}
		err = u.provider.UpdateEvent(ctx, tok, event.ExternalEventID, interfaces.CalendarEventInput{
			Title:         event.Title,
			Description:   event.Description,
			Start:         event.Start,
			End:           event.End,
			AttendeeName:  event.AttendeeName,
			AttendeeEmail: event.AttendeeEmail,
		})
		if err != nil {
			return entities.CalendarEvent{}, err
		}
	}
	event.UpdatedAt = u.now().UTC()
	return u.events.Put(ctx, event)
}

// DeleteEvent removes the event from the external calendar and the local record.
func (u *CalendarUseCase) DeleteEvent(ctx context.Context, id string) error {
	event, err := u.event(ctx, id)
	if err != nil {
		return err
	}
	if event.ExternalEventID != "" {
		tok, err := u.token(ctx)
		if err != nil {
			return err
		}
		if err := u.provider.DeleteEvent(ctx, tok, event.ExternalEventID); err != nil {
			return err
		}
	}
	if _, err := u.events.Delete(ctx, event.ID); err != nil {
		return err
	}
	logrus.WithField("event_id", event.ID).Info("[calendar][usecase] event deleted")
	return nil
}

// ListUpcoming reads upcoming events straight from the external calendar.
func (u *CalendarUseCase) ListUpcoming(ctx context.Context, max int) ([]entities.CalendarEvent, error) {
	if max <= 0 {
		max = DefaultUpcomingEvents
	}
	tok, err := u.token(ctx)
	if err != nil {
		return nil, err
	}
	return u.provider.ListUpcoming(ctx, tok, max)
}

// ListEvents returns the locally recorded bookings, soonest first.
func (u *CalendarUseCase) ListEvents(ctx context.Context) ([]entities.CalendarEvent, error) {
	events, err := u.events.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })
	return events, nil
}
