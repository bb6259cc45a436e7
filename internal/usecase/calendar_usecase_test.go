package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"
	mock_interfaces "socialdots/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type calendarMocks struct {
	provider *mock_interfaces.MockICalendarProvider
	tokens   *mock_interfaces.MockITokenRepository
	events   *mock_interfaces.MockIContentRepository[entities.CalendarEvent]
}

var (
	toronto, _   = time.LoadLocation("America/Toronto")
	calendarNow  = time.Date(2026, 3, 2, 8, 0, 0, 0, toronto)
	connectedTok = entities.OAuthToken{Provider: CalendarTokenProvider, AccessToken: "at"}
)

func newCalendarUseCase(ctrl *gomock.Controller) (*CalendarUseCase, calendarMocks) {
	m := calendarMocks{
		provider: mock_interfaces.NewMockICalendarProvider(ctrl),
		tokens:   mock_interfaces.NewMockITokenRepository(ctrl),
		events:   mock_interfaces.NewMockIContentRepository[entities.CalendarEvent](ctrl),
	}
	uc := NewCalendarUseCase(m.provider, m.tokens, m.events, toronto)
	uc.now = func() time.Time { return calendarNow }
	return uc, m
}

func TestCalendarUseCase_Connect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newCalendarUseCase(ctrl)

	m.provider.EXPECT().Exchange(gomock.Any(), "code-1").Return(entities.OAuthToken{AccessToken: "at", RefreshToken: "rt"}, nil)
	m.tokens.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tok entities.OAuthToken) error {
			if tok.Provider != CalendarTokenProvider || tok.RefreshToken != "rt" {
				t.Fatalf("unexpected token: %+v", tok)
			}
			return nil
		},
	)

	if err := uc.Connect(context.Background(), "code-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Connect(context.Background(), " "); !errors.Is(err, ErrInvalidBooking) {
		t.Fatalf("expected ErrInvalidBooking, got %v", err)
	}
}

func TestCalendarUseCase_AvailableSlots(t *testing.T) {
	t.Run("not connected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCalendarUseCase(ctrl)
		m.tokens.EXPECT().Get(gomock.Any(), CalendarTokenProvider).Return(entities.OAuthToken{}, nil)

		if _, err := uc.AvailableSlots(context.Background(), calendarNow, time.Hour); !errors.Is(err, ErrCalendarNotConnected) {
			t.Fatalf("expected ErrCalendarNotConnected, got %v", err)
		}
	})

	t.Run("busy periods and past slots are excluded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCalendarUseCase(ctrl)
		uc.now = func() time.Time { return time.Date(2026, 3, 2, 12, 15, 0, 0, toronto) }

		day := time.Date(2026, 3, 2, 0, 0, 0, 0, toronto)
		m.tokens.EXPECT().Get(gomock.Any(), CalendarTokenProvider).Return(connectedTok, nil)
		m.provider.EXPECT().BusyPeriods(gomock.Any(), connectedTok,
			time.Date(2026, 3, 2, 9, 0, 0, 0, toronto), time.Date(2026, 3, 2, 17, 0, 0, 0, toronto),
		).Return([]entities.TimeRange{{
			Start: time.Date(2026, 3, 2, 14, 0, 0, 0, toronto),
			End:   time.Date(2026, 3, 2, 15, 0, 0, 0, toronto),
		}}, nil)

		slots, err := uc.AvailableSlots(context.Background(), day, time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 12:30, 13:00, 15:00, 15:30, 16:00
		if len(slots) != 5 {
			t.Fatalf("expected 5 slots, got %d: %v", len(slots), slots)
		}
		if slots[0].Start.Hour() != 12 || slots[0].Start.Minute() != 30 {
			t.Fatalf("unexpected first slot %v", slots[0].Start)
		}
	})
}

func TestCalendarUseCase_Book(t *testing.T) {
	start := time.Date(2026, 3, 3, 10, 0, 0, 0, toronto)

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCalendarUseCase(ctrl)

		for _, in := range []BookingInput{
			{Email: "a@b.co", Start: start},
			{Name: "Ana", Email: "not-an-email", Start: start},
			{Name: "Ana", Email: "a@b.co"},
			{Name: "Ana", Email: "a@b.co", Start: calendarNow.Add(-time.Hour)},
		} {
			if _, err := uc.Book(context.Background(), in); !errors.Is(err, ErrInvalidBooking) {
				t.Fatalf("expected ErrInvalidBooking for %+v, got %v", in, err)
			}
		}
	})

	t.Run("slot taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCalendarUseCase(ctrl)
		m.tokens.EXPECT().Get(gomock.Any(), CalendarTokenProvider).Return(connectedTok, nil)
		m.provider.EXPECT().BusyPeriods(gomock.Any(), connectedTok, start, start.Add(time.Hour)).
			Return([]entities.TimeRange{{Start: start.Add(30 * time.Minute), End: start.Add(90 * time.Minute)}}, nil)

		if _, err := uc.Book(context.Background(), BookingInput{Name: "Ana", Email: "a@b.co", Start: start}); !errors.Is(err, ErrSlotUnavailable) {
			t.Fatalf("expected ErrSlotUnavailable, got %v", err)
		}
	})

	t.Run("books and records the event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCalendarUseCase(ctrl)
		m.tokens.EXPECT().Get(gomock.Any(), CalendarTokenProvider).Return(connectedTok, nil)
		m.provider.EXPECT().BusyPeriods(gomock.Any(), connectedTok, start, start.Add(time.Hour)).Return(nil, nil)
		m.provider.EXPECT().CreateEvent(gomock.Any(), connectedTok, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.OAuthToken, in interfaces.CalendarEventInput) (string, error) {
				if in.Title != "Consultation with Ana" || in.AttendeeEmail != "ana@example.com" {
					t.Fatalf("unexpected event input: %+v", in)
				}
				if !strings.Contains(in.Description, "Phone: Not provided") || !strings.Contains(in.Description, "Service Interest: SEO") {
					t.Fatalf("unexpected description: %q", in.Description)
				}
				return "gcal-1", nil
			},
		)
		m.events.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.CalendarEvent) (entities.CalendarEvent, error) { return e, nil },
		)

		event, err := uc.Book(context.Background(), BookingInput{Name: "Ana", Email: "Ana@Example.com", Service: "SEO", Start: start})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !event.IsConfirmed || event.ExternalEventID != "gcal-1" || !event.End.Equal(start.Add(time.Hour)) {
			t.Fatalf("unexpected event: %+v", event)
		}
	})
}

func TestCalendarUseCase_UpdateAndDelete(t *testing.T) {
	stored := entities.CalendarEvent{
		ID: "e1", Title: "Consultation with Ana", ExternalEventID: "gcal-1",
		Start: time.Date(2026, 3, 3, 10, 0, 0, 0, toronto), End: time.Date(2026, 3, 3, 11, 0, 0, 0, toronto),
	}

	t.Run("update pushes to the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCalendarUseCase(ctrl)
		title := "Strategy call"
		m.events.EXPECT().GetByID(gomock.Any(), "e1").Return(stored, nil)
		m.tokens.EXPECT().Get(gomock.Any(), CalendarTokenProvider).Return(connectedTok, nil)
		m.provider.EXPECT().UpdateEvent(gomock.Any(), connectedTok, "gcal-1", gomock.Any()).Return(nil)
		m.events.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.CalendarEvent) (entities.CalendarEvent, error) { return e, nil },
		)

		e, err := uc.UpdateEvent(context.Background(), "e1", EventUpdate{Title: &title})
		if err != nil || e.Title != title {
			t.Fatalf("expected updated title, got %+v (%v)", e, err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCalendarUseCase(ctrl)
		end := stored.Start.Add(-time.Minute)
		m.events.EXPECT().GetByID(gomock.Any(), "e1").Return(stored, nil)

		if _, err := uc.UpdateEvent(context.Background(), "e1", EventUpdate{End: &end}); !errors.Is(err, ErrInvalidBooking) {
			t.Fatalf("expected ErrInvalidBooking, got %v", err)
		}
	})

	t.Run("delete removes both copies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCalendarUseCase(ctrl)
		m.events.EXPECT().GetByID(gomock.Any(), "e1").Return(stored, nil)
		m.tokens.EXPECT().Get(gomock.Any(), CalendarTokenProvider).Return(connectedTok, nil)
		m.provider.EXPECT().DeleteEvent(gomock.Any(), connectedTok, "gcal-1").Return(nil)
		m.events.EXPECT().Delete(gomock.Any(), "e1").Return(true, nil)

		if err := uc.DeleteEvent(context.Background(), "e1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete unknown event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCalendarUseCase(ctrl)
		m.events.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.CalendarEvent{}, nil)

		if err := uc.DeleteEvent(context.Background(), "nope"); !errors.Is(err, ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})
}

func TestCalendarUseCase_ListEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newCalendarUseCase(ctrl)
	later := entities.CalendarEvent{ID: "b", Start: calendarNow.Add(48 * time.Hour)}
	sooner := entities.CalendarEvent{ID: "a", Start: calendarNow.Add(24 * time.Hour)}
	m.events.EXPECT().List(gomock.Any()).Return([]entities.CalendarEvent{later, sooner}, nil)

	events, err := uc.ListEvents(context.Background())
	if err != nil || events[0].ID != "a" {
		t.Fatalf("expected soonest first, got %+v (%v)", events, err)
	}
}
