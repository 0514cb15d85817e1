package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/orgball2608/content-scheduler/internal/command"
	"github.com/orgball2608/content-scheduler/internal/command/commandimpl"
	"github.com/orgball2608/content-scheduler/internal/migrations"
	"github.com/orgball2608/content-scheduler/internal/planner"
	"github.com/orgball2608/content-scheduler/internal/planner/plannerimpl"
	"github.com/orgball2608/content-scheduler/internal/ratelimit"
	"github.com/orgball2608/content-scheduler/internal/realtime"
	"github.com/orgball2608/content-scheduler/internal/realtime/realtimeimpl"
	sqrepo "github.com/orgball2608/content-scheduler/internal/repositories"
	repositories "github.com/orgball2608/content-scheduler/internal/repositories/fx"
	"github.com/orgball2608/content-scheduler/internal/telegram"
	"github.com/orgball2608/content-scheduler/internal/telegram/telegramimpl"
	"github.com/orgball2608/content-scheduler/pkg/config"
	"github.com/orgball2608/content-scheduler/pkg/logger"
	"github.com/orgball2608/content-scheduler/pkg/pgx"
	"github.com/orgball2608/content-scheduler/pkg/retry"
	"go.uber.org/fx"
)

const commandRestartDelay = 5 * time.Second

var Module = fx.Module("app",
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
		clockwork.NewRealClock,
		newLimiter,
	),
	fx.Provide(
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		func(c telegram.Client) planner.Notifier {
			return c
		},
		fx.Annotate(
			plannerimpl.New,
			fx.As(new(planner.Planner)),
		),
		fx.Annotate(
			newSession,
			fx.As(new(realtime.Session)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func newLimiter(cfg *config.Config) ratelimit.Limiter {
	return ratelimit.NewInMemoryLimiter(cfg.Calendar.RefreshPerSecond, time.Second, cfg.Calendar.RefreshBurst)
}

// newSession wires push notifications from the realtime channel into the planner.
func newSession(cfg *config.Config, log logger.Logger, clock clockwork.Clock, p planner.Planner) *realtimeimpl.Session {
	return realtimeimpl.New(realtimeimpl.Options{
		Endpoint: cfg.Realtime.URL,
		Policy:   realtimeimpl.PolicyFromConfig(cfg),
		Handler:  p.HandlePush,
		Clock:    clock,
		Logger:   log,
	})
}

func migrate(cfg *config.Config, log logger.Logger) error {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	return retry.Do(ctx, log, "migrations", func() error {
		return migrations.Up(ctx, db)
	}, retry.DefaultConfig())
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, p planner.Planner,
	session realtime.Session, cmdClient command.Client) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           newRouter(log, session),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, srv)

			go loadCalendar(ctx, log, p)

			if err := p.ScheduleResync(ctx); err != nil {
				return err
			}

			if cfg.Realtime.URL != "" {
				session.Connect()
			} else {
				log.Warn("REALTIME_URL is not set, relying on periodic resync")
			}

			go runCommands(ctx, log, cmdClient)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			session.Disconnect()
			return srv.Shutdown(stopCtx)
		},
	})
}

// loadCalendar retries the first fetch so the bot does not start on an empty
// calendar while the database comes up. Malformed queries are not retried.
func loadCalendar(ctx context.Context, log logger.Logger, p planner.Planner) {
	cfg := retry.DefaultConfig()
	cfg.InitialInterval = time.Second
	cfg.MaxInterval = 30 * time.Second
	cfg.Retryable = func(err error) bool {
		return !errors.Is(err, sqrepo.ErrBadQuery)
	}

	if err := retry.Do(ctx, log, "initial calendar load", func() error {
		return p.Refresh(ctx)
	}, cfg); err != nil {
		log.Error("Initial calendar load failed, waiting for resync", "Error", err)
	}
}

func runCommands(ctx context.Context, log logger.Logger, cmdClient command.Client) {
	for {
		err := cmdClient.HandleCommand(ctx)
		if ctx.Err() != nil {
			return
		}
		log.Error("Command handler stopped, restarting", "Error", err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(commandRestartDelay):
		}
	}
}

func startHttpServer(log logger.Logger, srv *http.Server) {
	log.Info(fmt.Sprintf("Starting server on %s", srv.Addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server failed", "Error", err)
	}
}
