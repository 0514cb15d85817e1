package plannerimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const defaultResyncInterval = time.Minute

// HandlePush refetches when the server announces a change. Pushes for another
// company are ignored and throttled ones are dropped; the resync job catches up.
func (p *PlannerImpl) HandlePush(payload any) {
	if msg, ok := payload.(map[string]any); ok {
		if companyID, ok := msg["company_id"].(string); ok && companyID != "" && companyID != p.companyID {
			p.logger.Debug("Ignoring push for another company", "company", companyID)
			return
		}
	}

	if p.limiter != nil && !p.limiter.Allow(p.companyID) {
		p.logger.Debug("Push refetch throttled", "company", p.companyID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := p.Refresh(ctx); err != nil {
		p.logger.Warn("Push refetch failed", "error", err)
	}
}

// ScheduleResync refetches the collection on a fixed interval until ctx is done.
func (p *PlannerImpl) ScheduleResync(ctx context.Context) error {
	interval := p.config.Calendar.ResyncInterval
	if interval <= 0 {
		interval = defaultResyncInterval
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(p.config.Location()),
		gocron.WithClock(p.clock),
	)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			taskCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
			defer cancel()

			if err := p.Refresh(taskCtx); err != nil {
				p.logger.Warn("Scheduled resync failed", "error", err)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule resync: %w", err)
	}

	s.Start()
	p.logger.Info("Resync scheduled", "interval", interval.String())

	go func() {
		<-ctx.Done()
		p.logger.Info("Stopping resync scheduler")
		if err := s.Shutdown(); err != nil {
			p.logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}
