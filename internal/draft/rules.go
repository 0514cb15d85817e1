package draft

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/pkg/errors"
)

// Granularity is the minute step of selectable times.
const Granularity = 15

// Rules answers which dates and times are selectable relative to now. Both the
// create and edit flows use the same Rules, so the current minute boundary is
// exclusive everywhere and off-step minutes are always disabled.
type Rules struct {
	clock clockwork.Clock
	loc   *time.Location
}

func NewRules(clock clockwork.Clock, loc *time.Location) Rules {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return Rules{clock: clock, loc: loc}
}

func (r Rules) Now() time.Time {
	return r.clock.Now().In(r.loc)
}

func (r Rules) Today() domain.Date {
	return domain.DateOf(r.Now())
}

func (r Rules) Location() *time.Location {
	return r.loc
}

// DisabledDate reports whether date is strictly before today.
func (r Rules) DisabledDate(date domain.Date) bool {
	return date.Before(r.Today())
}

// DisabledHours lists the hours already past on date. Only today has any.
func (r Rules) DisabledHours(date domain.Date) []int {
	now := r.Now()
	if domain.DateOf(now) != date {
		return []int{}
	}
	hours := make([]int, 0, now.Hour())
	for h := 0; h < now.Hour(); h++ {
		hours = append(hours, h)
	}
	return hours
}

// DisabledMinutes lists the unselectable minutes of hour on date: every minute that
// is not on the quarter hour, plus on the current hour of today every minute
// before the current one.
func (r Rules) DisabledMinutes(date domain.Date, hour int) []int {
	now := r.Now()
	today := domain.DateOf(now) == date

	minutes := make([]int, 0, 60)
	for m := 0; m < 60; m++ {
		switch {
		case m%Granularity != 0:
			minutes = append(minutes, m)
		case today && hour < now.Hour():
			minutes = append(minutes, m)
		case today && hour == now.Hour() && m < now.Minute():
			minutes = append(minutes, m)
		}
	}
	return minutes
}

// AvailableMinutes is the complement of DisabledMinutes.
func (r Rules) AvailableMinutes(date domain.Date, hour int) []int {
	disabled := make(map[int]struct{}, 60)
	for _, m := range r.DisabledMinutes(date, hour) {
		disabled[m] = struct{}{}
	}
	available := []int{}
	for m := 0; m < 60; m++ {
		if _, ok := disabled[m]; !ok {
			available = append(available, m)
		}
	}
	return available
}

// ValidateTime accepts only quarter-hour candidates.
func (r Rules) ValidateTime(candidate domain.LocalTime) error {
	if candidate.Minute%Granularity != 0 {
		return errors.WrapWithCode(errors.ErrInvalidTimeGranularity, errors.CodeInvalidTimeGranularity,
			"Please choose a time in 15-minute steps")
	}
	return nil
}

// SlotDisabled reports whether the date and time combination is unselectable.
func (r Rules) SlotDisabled(date domain.Date, t domain.LocalTime) bool {
	if r.DisabledDate(date) {
		return true
	}
	for _, h := range r.DisabledHours(date) {
		if h == t.Hour {
			return true
		}
	}
	for _, m := range r.DisabledMinutes(date, t.Hour) {
		if m == t.Minute {
			return true
		}
	}
	return false
}
