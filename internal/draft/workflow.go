// Package draft composes content, account and slot selections into validated
// create, edit and delete requests for the scheduler gateway.
package draft

import (
	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/pkg/logger"
)

// Workflow is the create flow. It is not safe for concurrent use.
type Workflow struct {
	slot
	companyID string
	content   *domain.ContentItem
	account   *domain.SocialMediaAccount
}

func NewWorkflow(companyID string, rules Rules, log logger.Logger) *Workflow {
	return &Workflow{
		slot:      slot{rules: rules, logger: log.WithComponent("DraftWorkflow")},
		companyID: companyID,
	}
}

func (w *Workflow) CompanyID() string {
	return w.companyID
}

func (w *Workflow) Rules() Rules {
	return w.rules
}

// Draft returns a snapshot of the current selections.
func (w *Workflow) Draft() domain.SchedulingDraft {
	return domain.SchedulingDraft{
		Content: w.content,
		Account: w.account,
		Date:    w.date,
		Time:    w.time,
	}
}

func (w *Workflow) SetContent(item *domain.ContentItem) {
	if item == nil {
		w.content = nil
		return
	}
	c := *item
	w.content = &c
}

func (w *Workflow) SetAccount(account *domain.SocialMediaAccount) {
	if account == nil {
		w.account = nil
		return
	}
	a := *account
	w.account = &a
}

// SetDate replaces the date; nil or a past date also clears the time.
func (w *Workflow) SetDate(date *domain.Date) error {
	return w.setDate(date)
}

// SetTime replaces the time. Off-step or past candidates are rejected and the
// field is reset; the returned error carries the user-facing warning.
func (w *Workflow) SetTime(t *domain.LocalTime) error {
	return w.setTime(t)
}

func (w *Workflow) Ready() bool {
	return w.Draft().Ready()
}

// Submit turns a complete draft into a create request and clears the draft.
func (w *Workflow) Submit() (domain.SchedulingRequest, error) {
	if !w.Ready() {
		return domain.SchedulingRequest{}, incomplete("Please choose content, account, date and time")
	}
	if err := w.checkStillValid(); err != nil {
		return domain.SchedulingRequest{}, err
	}

	req := domain.SchedulingRequest{
		ContentKind:           w.content.Kind,
		ContentID:             w.content.ID,
		CompanyID:             w.companyID,
		SocialMediaAccountIDs: []string{w.account.ID},
		ScheduledDate:         w.date.String(),
		ScheduledTime:         w.time.String(),
		Active:                true,
	}
	w.Cancel()
	return req, nil
}

// Restore puts back a snapshot taken before Submit, so a rejected gateway request
// can be retried by the user without re-entering everything.
func (w *Workflow) Restore(d domain.SchedulingDraft) {
	w.content, w.account, w.date, w.time = d.Content, d.Account, d.Date, d.Time
}

// Cancel discards every selection.
func (w *Workflow) Cancel() {
	w.content, w.account = nil, nil
	w.clear()
}
