package draft

import (
	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/pkg/logger"
)

// EditWorkflow reschedules an existing item. Content and accounts are fixed; only
// the slot can change.
type EditWorkflow struct {
	slot
	schedulerID string
	currentDate string
	currentTime string
}

func NewEditWorkflow(item domain.ScheduledItem, rules Rules, log logger.Logger) *EditWorkflow {
	return &EditWorkflow{
		slot:        slot{rules: rules, logger: log.WithComponent("EditWorkflow")},
		schedulerID: item.ID,
		currentDate: item.ScheduledDate,
		currentTime: item.ScheduledTime,
	}
}

func (w *EditWorkflow) SchedulerID() string {
	return w.schedulerID
}

// Current returns the slot the item occupies now, for display only.
func (w *EditWorkflow) Current() (date, time string) {
	return w.currentDate, w.currentTime
}

func (w *EditWorkflow) SetDate(date *domain.Date) error {
	return w.setDate(date)
}

func (w *EditWorkflow) SetTime(t *domain.LocalTime) error {
	return w.setTime(t)
}

func (w *EditWorkflow) Ready() bool {
	return w.schedulerID != "" && w.date != nil && w.time != nil
}

// Submit produces the update request and clears the new slot.
func (w *EditWorkflow) Submit() (domain.UpdateRequest, error) {
	if !w.Ready() {
		return domain.UpdateRequest{}, incomplete("Please choose a new date and time")
	}
	if err := w.checkStillValid(); err != nil {
		return domain.UpdateRequest{}, err
	}

	req := domain.UpdateRequest{
		SchedulerID:   w.schedulerID,
		ScheduledDate: w.date.String(),
		ScheduledTime: w.time.String(),
	}
	w.clear()
	return req, nil
}

func (w *EditWorkflow) Cancel() {
	w.clear()
}
