package plannerimpl

import (
	"context"

	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/internal/draft"
	"github.com/orgball2608/content-scheduler/internal/repositories/content"
	"github.com/orgball2608/content-scheduler/internal/repositories/scheduler"
	"github.com/orgball2608/content-scheduler/pkg/errors"
)

// Schedule composes a create draft from the given selections and submits it. A
// rejected request keeps the draft so Retry can resubmit it unchanged.
func (p *PlannerImpl) Schedule(ctx context.Context, kind domain.ContentKind, contentID, accountID string, date domain.Date, t domain.LocalTime) (domain.ScheduledItem, error) {
	if !kind.Valid() {
		return domain.ScheduledItem{}, errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeInvalidInput,
			"Content kind must be post, reel or story")
	}

	item, err := p.contentRepo.GetContent(ctx, kind, contentID)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.ScheduledItem{}, err
		}
		return domain.ScheduledItem{}, p.gatewayFailure(err, "Could not load content")
	}
	if item.CompanyID != p.companyID {
		return domain.ScheduledItem{}, content.ErrContentNotFound
	}
	account, err := p.contentRepo.GetAccount(ctx, accountID)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.ScheduledItem{}, err
		}
		return domain.ScheduledItem{}, p.gatewayFailure(err, "Could not load account")
	}
	if account.CompanyID != p.companyID {
		return domain.ScheduledItem{}, content.ErrAccountNotFound
	}

	p.draftMu.Lock()
	defer p.draftMu.Unlock()

	w := p.create
	w.Cancel()
	w.SetContent(&item)
	w.SetAccount(&account)
	if err := w.SetDate(&date); err != nil {
		return domain.ScheduledItem{}, err
	}
	if err := w.SetTime(&t); err != nil {
		return domain.ScheduledItem{}, err
	}
	return p.submitLocked(ctx)
}

func (p *PlannerImpl) Retry(ctx context.Context) (domain.ScheduledItem, error) {
	p.draftMu.Lock()
	defer p.draftMu.Unlock()
	return p.submitLocked(ctx)
}

func (p *PlannerImpl) Draft() domain.SchedulingDraft {
	p.draftMu.Lock()
	defer p.draftMu.Unlock()
	return p.create.Draft()
}

func (p *PlannerImpl) submitLocked(ctx context.Context) (domain.ScheduledItem, error) {
	snapshot := p.create.Draft()
	req, err := p.create.Submit()
	if err != nil {
		return domain.ScheduledItem{}, err
	}

	created, err := p.schedulerRepo.Create(ctx, req)
	if err != nil {
		p.create.Restore(snapshot)
		return domain.ScheduledItem{}, p.gatewayFailure(err, "Scheduling failed")
	}

	p.logger.Info("Content scheduled", "id", created.ID, "date", req.ScheduledDate, "time", req.ScheduledTime)
	p.refreshAfter(ctx)
	return created, nil
}

// Reschedule runs the edit flow for one item.
func (p *PlannerImpl) Reschedule(ctx context.Context, id string, date domain.Date, t domain.LocalTime) (domain.ScheduledItem, error) {
	item, ok := p.Find(id)
	if !ok {
		return domain.ScheduledItem{}, scheduler.ErrNotFound
	}

	p.draftMu.Lock()
	defer p.draftMu.Unlock()

	w := draft.NewEditWorkflow(item, p.rules, p.logger)
	if err := w.SetDate(&date); err != nil {
		return domain.ScheduledItem{}, err
	}
	if err := w.SetTime(&t); err != nil {
		return domain.ScheduledItem{}, err
	}
	req, err := w.Submit()
	if err != nil {
		return domain.ScheduledItem{}, err
	}

	updated, err := p.schedulerRepo.Update(ctx, req)
	if err != nil {
		return domain.ScheduledItem{}, p.gatewayFailure(err, "Rescheduling failed")
	}

	p.logger.Info("Content rescheduled", "id", id, "date", req.ScheduledDate, "time", req.ScheduledTime)
	p.refreshAfter(ctx)
	return updated, nil
}

func (p *PlannerImpl) PrepareDelete(id string) (draft.Preview, error) {
	item, ok := p.Find(id)
	if !ok {
		return draft.Preview{}, scheduler.ErrNotFound
	}

	p.draftMu.Lock()
	defer p.draftMu.Unlock()

	p.pruneDeletesLocked()
	w := draft.NewDeleteWorkflow(item)
	p.deletes[id] = w
	return w.Preview(), nil
}

// ConfirmDelete keeps the pending delete when the gateway rejects it, so the
// operator can confirm again.
func (p *PlannerImpl) ConfirmDelete(ctx context.Context, id string) error {
	p.draftMu.Lock()
	defer p.draftMu.Unlock()

	w, ok := p.deletes[id]
	if !ok {
		return errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeInvalidInput, "Nothing is waiting for delete confirmation")
	}
	req, err := w.Confirm()
	if err != nil {
		return err
	}

	if err := p.schedulerRepo.Delete(ctx, req); err != nil {
		if errors.Is(err, scheduler.ErrNotFound) {
			p.logger.Warn("Scheduled item already removed", "id", id)
			delete(p.deletes, id)
			p.refreshAfter(ctx)
			p.pruneDeletesLocked()
			return err
		}
		return p.gatewayFailure(err, "Deleting failed")
	}

	delete(p.deletes, id)
	p.logger.Info("Scheduled item deleted", "id", id)
	p.refreshAfter(ctx)
	p.pruneDeletesLocked()
	return nil
}

// pruneDeletesLocked drops pending deletes whose item is gone from the last
// fetched collection. Callers hold draftMu.
func (p *PlannerImpl) pruneDeletesLocked() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id := range p.deletes {
		if _, ok := p.items[id]; !ok {
			delete(p.deletes, id)
		}
	}
}
