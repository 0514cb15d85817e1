package plannerimpl

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/content-scheduler/internal/calendar"
	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/internal/draft"
	"github.com/orgball2608/content-scheduler/internal/planner"
	"github.com/orgball2608/content-scheduler/internal/ratelimit"
	"github.com/orgball2608/content-scheduler/internal/repositories/content"
	"github.com/orgball2608/content-scheduler/internal/repositories/scheduler"
	"github.com/orgball2608/content-scheduler/pkg/config"
	"github.com/orgball2608/content-scheduler/pkg/errors"
	"github.com/orgball2608/content-scheduler/pkg/logger"
	"go.uber.org/fx"
)

const refreshTimeout = 15 * time.Second

type Opts struct {
	fx.In

	Config        *config.Config
	Logger        logger.Logger
	SchedulerRepo scheduler.Repository
	ContentRepo   content.Repository
	Notifier      planner.Notifier
	Limiter       ratelimit.Limiter
	Clock         clockwork.Clock
}

type PlannerImpl struct {
	config        *config.Config
	logger        logger.Logger
	schedulerRepo scheduler.Repository
	contentRepo   content.Repository
	notifier      planner.Notifier
	limiter       ratelimit.Limiter
	clock         clockwork.Clock
	companyID     string
	rules         draft.Rules

	mu         sync.Mutex
	projection *calendar.Projection
	items      map[string]domain.ScheduledItem
	// refreshSeq stamps each fetch; appliedSeq is the newest fetch rebuilt into
	// the projection
	refreshSeq uint64
	appliedSeq uint64

	// draftMu serializes the workflows; it is never taken while holding mu
	draftMu sync.Mutex
	create  *draft.Workflow
	deletes map[string]*draft.DeleteWorkflow
}

func New(opts Opts) *PlannerImpl {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	loc := opts.Config.Location()
	log := opts.Logger.WithComponent("Planner")
	rules := draft.NewRules(clock, loc)

	return &PlannerImpl{
		config:        opts.Config,
		logger:        log,
		schedulerRepo: opts.SchedulerRepo,
		contentRepo:   opts.ContentRepo,
		notifier:      opts.Notifier,
		limiter:       opts.Limiter,
		clock:         clock,
		companyID:     opts.Config.App.CompanyID,
		rules:         rules,
		projection:    calendar.New(loc, domain.MonthOf(clock.Now().In(loc)), opts.Logger),
		items:         make(map[string]domain.ScheduledItem),
		create:        draft.NewWorkflow(opts.Config.App.CompanyID, rules, opts.Logger),
		deletes:       make(map[string]*draft.DeleteWorkflow),
	}
}

var _ planner.Planner = (*PlannerImpl)(nil)

// Refresh refetches the collection and rebuilds the projection. A fetch that
// finishes after a newer one has been applied is discarded.
func (p *PlannerImpl) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.refreshSeq++
	seq := p.refreshSeq
	p.mu.Unlock()

	items, err := p.schedulerRepo.List(ctx, p.companyID)
	if err != nil {
		p.logger.Error("Failed to fetch scheduled items", "company", p.companyID, "error", err)
		return errors.WrapWithCode(err, errors.CodeGatewayFailure, "Could not load the schedule")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if seq < p.appliedSeq {
		p.logger.Debug("Discarding stale fetch", "seq", seq, "applied", p.appliedSeq)
		return nil
	}
	p.appliedSeq = seq

	p.items = make(map[string]domain.ScheduledItem, len(items))
	for _, item := range items {
		p.items[item.ID] = item
	}
	p.projection.Rebuild(items)
	p.logger.Debug("Projection rebuilt", "items", len(items))
	return nil
}

func (p *PlannerImpl) SelectDay(day domain.Date) calendar.Preview {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.projection.SelectDay(day)
}

func (p *PlannerImpl) Navigate(dir calendar.Direction) domain.Month {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.projection.Navigate(dir)
}

func (p *PlannerImpl) VisibleMonth() domain.Month {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.projection.VisibleMonth()
}

func (p *PlannerImpl) VisibleEvents() []domain.CalendarEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.projection.VisibleEvents()
}

func (p *PlannerImpl) Find(id string) (domain.ScheduledItem, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	item, ok := p.items[id]
	return item, ok
}

// gatewayFailure reports a rejected gateway request once to the operator. The
// request is not retried.
func (p *PlannerImpl) gatewayFailure(err error, message string) error {
	wrapped := errors.WrapWithCode(err, errors.CodeGatewayFailure, message)
	p.logger.Error(message, "error", err)
	if p.notifier != nil {
		p.notifier.SendMessageToUser(message + ": " + errors.GetMessage(err))
	}
	return wrapped
}

// refreshAfter refetches after a successful mutation. A failed refetch leaves the
// previous projection in place.
func (p *PlannerImpl) refreshAfter(ctx context.Context) {
	if err := p.Refresh(ctx); err != nil {
		p.logger.Warn("Refetch after update failed", "error", err)
	}
}
