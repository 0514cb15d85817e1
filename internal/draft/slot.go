package draft

import (
	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/pkg/errors"
	"github.com/orgball2608/content-scheduler/pkg/logger"
)

// slot holds the date and time fields shared by the create and edit flows.
type slot struct {
	rules  Rules
	logger logger.Logger
	date   *domain.Date
	time   *domain.LocalTime
}

// setDate replaces the date. Clearing the date clears the time as well.
func (s *slot) setDate(date *domain.Date) error {
	if date == nil {
		s.date, s.time = nil, nil
		return nil
	}
	if s.rules.DisabledDate(*date) {
		s.date, s.time = nil, nil
		return errors.WrapWithCode(errors.ErrPastDateTime, errors.CodePastDateTime,
			"Please choose today or a later date")
	}
	d := *date
	s.date = &d
	return nil
}

// setTime replaces the time. A rejected candidate resets the field.
func (s *slot) setTime(t *domain.LocalTime) error {
	if t == nil {
		s.time = nil
		return nil
	}
	if s.date == nil {
		s.time = nil
		return errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeInvalidInput,
			"Please choose a date first")
	}

	candidate := domain.NewLocalTime(t.Hour, t.Minute, 0)
	if err := s.rules.ValidateTime(candidate); err != nil {
		s.time = nil
		s.logger.Warn("Rejected scheduling time", "time", candidate.String(), "error", err)
		return err
	}
	if s.rules.SlotDisabled(*s.date, candidate) {
		s.time = nil
		return errors.WrapWithCode(errors.ErrPastDateTime, errors.CodePastDateTime,
			"Please choose a time later than now")
	}
	s.time = &candidate
	return nil
}

// checkStillValid guards against the slot having slipped into the past while the
// dialog was open.
func (s *slot) checkStillValid() error {
	if s.rules.SlotDisabled(*s.date, *s.time) {
		s.time = nil
		return errors.WrapWithCode(errors.ErrPastDateTime, errors.CodePastDateTime,
			"The selected time has passed, please choose another")
	}
	return nil
}

func (s *slot) clear() {
	s.date, s.time = nil, nil
}

func incomplete(message string) error {
	return errors.WrapWithCode(errors.ErrIncompleteDraft, errors.CodeIncompleteDraft, message)
}
