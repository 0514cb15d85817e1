// Package calendar projects scheduled items into day-indexed calendar events and
// keeps the selected-day preview and visible month.
package calendar

import (
	"cmp"
	"errors"
	"slices"
	"time"

	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/pkg/formatter"
	"github.com/orgball2608/content-scheduler/pkg/logger"
)

// ErrReadOnly is returned for any attempt to move an event from the calendar.
var ErrReadOnly = errors.New("calendar events are read-only")

type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// Preview is the selected-day panel. The zero value is the cleared state.
type Preview struct {
	Day    *domain.Date
	Events []domain.CalendarEvent
	Label  string
}

func (p Preview) Active() bool {
	return p.Day != nil
}

func (p Preview) Count() int {
	return len(p.Events)
}

// Projection is not safe for concurrent use; callers serialize access.
type Projection struct {
	loc     *time.Location
	logger  logger.Logger
	events  []domain.CalendarEvent
	month   domain.Month
	preview Preview
}

func New(loc *time.Location, visible domain.Month, log logger.Logger) *Projection {
	if loc == nil {
		loc = time.Local
	}
	return &Projection{
		loc:    loc,
		logger: log.WithComponent("CalendarProjection"),
		events: []domain.CalendarEvent{},
		month:  visible,
	}
}

// Project derives one event per item that has a parseable date and time, ordered by
// start and then id. Items that do not parse are returned in skipped.
func Project(items []domain.ScheduledItem, loc *time.Location) (events []domain.CalendarEvent, skipped []domain.ScheduledItem) {
	events = make([]domain.CalendarEvent, 0, len(items))
	for _, item := range items {
		date, err := domain.ParseDate(item.ScheduledDate)
		if err != nil {
			skipped = append(skipped, item)
			continue
		}
		clock, err := domain.ParseLocalTime(item.ScheduledTime)
		if err != nil {
			skipped = append(skipped, item)
			continue
		}

		start := date.At(clock, loc)
		events = append(events, domain.CalendarEvent{
			ID:       item.ID,
			Title:    item.Content.Title,
			Start:    start,
			End:      start.Add(domain.EventDuration),
			Content:  item.Content,
			Accounts: item.Accounts,
		})
	}

	slices.SortFunc(events, func(a, b domain.CalendarEvent) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return events, skipped
}

// Rebuild replaces the event set from the authoritative collection and refreshes
// an open preview so it reflects the new data.
func (p *Projection) Rebuild(items []domain.ScheduledItem) {
	events, skipped := Project(items, p.loc)
	for _, item := range skipped {
		p.logger.Warn("Skipping scheduled item with unparsable slot",
			"schedulerID", item.ID,
			"date", item.ScheduledDate,
			"time", item.ScheduledTime)
	}
	p.events = events

	if p.preview.Active() {
		p.preview.Events = p.EventsOnDay(*p.preview.Day)
	}
}

func (p *Projection) Events() []domain.CalendarEvent {
	return slices.Clone(p.events)
}

// EventsOnDay returns the events starting on day, compared on wall-clock date.
func (p *Projection) EventsOnDay(day domain.Date) []domain.CalendarEvent {
	out := []domain.CalendarEvent{}
	for _, e := range p.events {
		if domain.DateOf(e.Start) == day {
			out = append(out, e)
		}
	}
	return out
}

// VisibleEvents returns the events of the visible month.
func (p *Projection) VisibleEvents() []domain.CalendarEvent {
	out := []domain.CalendarEvent{}
	for _, e := range p.events {
		if domain.MonthOf(e.Start) == p.month {
			out = append(out, e)
		}
	}
	return out
}

// SelectDay toggles the preview: selecting the previewed day again clears it.
func (p *Projection) SelectDay(day domain.Date) Preview {
	if p.preview.Active() && *p.preview.Day == day {
		p.preview = Preview{}
		return p.preview
	}

	selected := day
	p.preview = Preview{
		Day:    &selected,
		Events: p.EventsOnDay(day),
		Label:  formatter.DayLabel(day.In(p.loc)),
	}
	return p.preview
}

func (p *Projection) Preview() Preview {
	return p.preview
}

// Navigate moves the visible month by one. The preview is left untouched.
func (p *Projection) Navigate(dir Direction) domain.Month {
	step := 1
	if dir == Previous {
		step = -1
	}
	p.month = p.month.Add(step)
	return p.month
}

func (p *Projection) VisibleMonth() domain.Month {
	return p.month
}

func (p *Projection) Location() *time.Location {
	return p.loc
}

// Drop rejects drag-and-drop moves; rescheduling goes through the edit flow.
func (p *Projection) Drop(eventID string, to time.Time) error {
	return ErrReadOnly
}

// ShowMore is intentionally inert: days are never truncated, the full list is in
// the preview.
func (p *Projection) ShowMore(day domain.Date) {}
