package entities

import (
	"sort"
	"time"
)

// CalendarEvent is a consultation booked on the external calendar.
type CalendarEvent struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	AttendeeName    string    `json:"attendee_name,omitempty"`
	AttendeeEmail   string    `json:"attendee_email,omitempty"`
	AttendeePhone   string    `json:"attendee_phone,omitempty"`
	ExternalEventID string    `json:"external_event_id,omitempty"`
	IsConfirmed     bool      `json:"is_confirmed"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (e CalendarEvent) RecordID() string   { return e.ID }
func (e CalendarEvent) NaturalKey() string { return e.ExternalEventID }

// Range returns the booked interval.
func (e CalendarEvent) Range() TimeRange {
	return TimeRange{Start: e.Start, End: e.End}
}

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Booking hours and slot stepping for consultations.
const (
	BusinessDayStartHour = 9
	BusinessDayEndHour   = 17
	SlotStep             = 30 * time.Minute
	DefaultSlotDuration  = 60 * time.Minute
)

// AvailableSlots returns every slot of the given duration inside business hours on day
// (interpreted in loc), stepping by SlotStep, that does not overlap a busy period.
func AvailableSlots(day time.Time, loc *time.Location, duration time.Duration, busy []TimeRange) []TimeRange {
	if duration <= 0 {
		duration = DefaultSlotDuration
	}
	y, m, d := day.In(loc).Date()
	open := time.Date(y, m, d, BusinessDayStartHour, 0, 0, 0, loc)
	closing := time.Date(y, m, d, BusinessDayEndHour, 0, 0, 0, loc)

	sorted := append([]TimeRange(nil), busy...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	slots := []TimeRange{}
	for start := open; !start.Add(duration).After(closing); start = start.Add(SlotStep) {
		slot := TimeRange{Start: start, End: start.Add(duration)}
		free := true
		for _, b := range sorted {
			if slot.Overlaps(b) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, slot)
		}
	}
	return slots
}

// OAuthToken is a stored credential for an external integration.
type OAuthToken struct {
	Provider     string    `json:"provider"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	Expiry       time.Time `json:"expiry"`
	UpdatedAt    time.Time `json:"updated_at"`
}
