package calendar

import (
	"context"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/infrastructure/config"
	"socialdots/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const ProviderName = "google_calendar"

var ErrCalendarNotConfigured = errors.Wrap(interfaces.ErrNotConfigured, "google calendar")

// GoogleProvider reads and writes one Google calendar on behalf of the site owner.
type GoogleProvider struct {
	oauth      *oauth2.Config
	calendarID string
	loc        *time.Location
	endpoint   string
	configured bool
}

var _ interfaces.ICalendarProvider = (*GoogleProvider)(nil)

func NewGoogleProvider(cfg config.CalendarConfig) (*GoogleProvider, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errors.Wrap(err, "calendar time zone")
	}
	if !cfg.Configured() {
		logrus.Warn("[calendar][google] GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET not set, booking disabled")
	}
	return &GoogleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{gcal.CalendarScope},
			Endpoint:     google.Endpoint,
		},
		calendarID: cfg.CalendarID,
		loc:        loc,
		configured: cfg.Configured(),
	}, nil
}

// WithEndpoint points the calendar API at another base URL.
func (p *GoogleProvider) WithEndpoint(endpoint string) *GoogleProvider {
	p.endpoint = endpoint
	return p
}

func (p *GoogleProvider) Location() *time.Location {
	return p.loc
}

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (p *GoogleProvider) Exchange(ctx context.Context, code string) (entities.OAuthToken, error) {
	if !p.configured {
		return entities.OAuthToken{}, ErrCalendarNotConfigured
	}
	tok, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return entities.OAuthToken{}, errors.Wrap(err, "exchange code")
	}
	return fromOAuth2(tok), nil
}

func (p *GoogleProvider) service(ctx context.Context, tok entities.OAuthToken) (*gcal.Service, error) {
	if !p.configured {
		return nil, ErrCalendarNotConfigured
	}
	opts := []option.ClientOption{option.WithHTTPClient(p.oauth.Client(ctx, toOAuth2(tok)))}
	if p.endpoint != "" {
		opts = append(opts, option.WithEndpoint(p.endpoint))
	}
	srv, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "calendar service")
	}
	return srv, nil
}

func (p *GoogleProvider) BusyPeriods(ctx context.Context, tok entities.OAuthToken, from, to time.Time) ([]entities.TimeRange, error) {
	srv, err := p.service(ctx, tok)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin:  from.Format(time.RFC3339),
		TimeMax:  to.Format(time.RFC3339),
		TimeZone: p.loc.String(),
		Items:    []*gcal.FreeBusyRequestItem{{Id: p.calendarID}},
	}).Context(ctx).Do()
	if err != nil {
		logrus.WithError(err).Error("[calendar][google] freebusy query failed")
		return nil, errors.Wrap(err, "freebusy")
	}

	var busy []entities.TimeRange
	for _, period := range resp.Calendars[p.calendarID].Busy {
		start, err1 := time.Parse(time.RFC3339, period.Start)
		end, err2 := time.Parse(time.RFC3339, period.End)
		if err1 != nil || err2 != nil {
			continue
		}
		busy = append(busy, entities.TimeRange{Start: start, End: end})
	}
	return busy, nil
}

func (p *GoogleProvider) toEvent(in interfaces.CalendarEventInput) *gcal.Event {
	ev := &gcal.Event{
		Summary:     in.Title,
		Description: in.Description,
		Start:       &gcal.EventDateTime{DateTime: in.Start.In(p.loc).Format(time.RFC3339), TimeZone: p.loc.String()},
		End:         &gcal.EventDateTime{DateTime: in.End.In(p.loc).Format(time.RFC3339), TimeZone: p.loc.String()},
	}
	if in.AttendeeEmail != "" {
		ev.Attendees = []*gcal.EventAttendee{{Email: in.AttendeeEmail, DisplayName: in.AttendeeName}}
	}
	return ev
}

func (p *GoogleProvider) CreateEvent(ctx context.Context, tok entities.OAuthToken, in interfaces.CalendarEventInput) (string, error) {
	srv, err := p.service(ctx, tok)
	if err != nil {
		return "", err
	}
	created, err := srv.Events.Insert(p.calendarID, p.toEvent(in)).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		logrus.WithError(err).Error("[calendar][google] insert failed")
		return "", errors.Wrap(err, "insert event")
	}
	logrus.WithField("event_id", created.Id).Info("[calendar][google] event created")
	return created.Id, nil
}

func (p *GoogleProvider) UpdateEvent(ctx context.Context, tok entities.OAuthToken, externalID string, in interfaces.CalendarEventInput) error {
	srv, err := p.service(ctx, tok)
	if err != nil {
		return err
	}
	if _, err := srv.Events.Update(p.calendarID, externalID, p.toEvent(in)).Context(ctx).Do(); err != nil {
		return errors.Wrap(err, "update event")
	}
	logrus.WithField("event_id", externalID).Info("[calendar][google] event updated")
	return nil
}

func (p *GoogleProvider) DeleteEvent(ctx context.Context, tok entities.OAuthToken, externalID string) error {
	srv, err := p.service(ctx, tok)
	if err != nil {
		return err
	}
	if err := srv.Events.Delete(p.calendarID, externalID).Context(ctx).Do(); err != nil {
		return errors.Wrap(err, "delete event")
	}
	logrus.WithField("event_id", externalID).Info("[calendar][google] event deleted")
	return nil
}

func (p *GoogleProvider) ListUpcoming(ctx context.Context, tok entities.OAuthToken, max int) ([]entities.CalendarEvent, error) {
	srv, err := p.service(ctx, tok)
	if err != nil {
		return nil, err
	}
	resp, err := srv.Events.List(p.calendarID).
		TimeMin(time.Now().UTC().Format(time.RFC3339)).
		MaxResults(int64(max)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "list events")
	}

	out := make([]entities.CalendarEvent, 0, len(resp.Items))
	for _, it := range resp.Items {
		ev := entities.CalendarEvent{
			Title:           it.Summary,
			Description:     it.Description,
			ExternalEventID: it.Id,
			IsConfirmed:     it.Status == "confirmed",
		}
		if it.Start != nil {
			ev.Start, _ = time.Parse(time.RFC3339, it.Start.DateTime)
		}
		if it.End != nil {
			ev.End, _ = time.Parse(time.RFC3339, it.End.DateTime)
		}
		if len(it.Attendees) > 0 {
			ev.AttendeeEmail = it.Attendees[0].Email
			ev.AttendeeName = it.Attendees[0].DisplayName
		}
		out = append(out, ev)
	}
	return out, nil
}

func toOAuth2(t entities.OAuthToken) *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		Expiry:       t.Expiry,
	}
}

func fromOAuth2(t *oauth2.Token) entities.OAuthToken {
	return entities.OAuthToken{
		Provider:     ProviderName,
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		Expiry:       t.Expiry,
		UpdatedAt:    time.Now().UTC(),
	}
}
