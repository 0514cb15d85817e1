package commandimpl

import (
	"github.com/orgball2608/content-scheduler/internal/command"
	"github.com/orgball2608/content-scheduler/internal/planner"
	"github.com/orgball2608/content-scheduler/internal/realtime"
	"github.com/orgball2608/content-scheduler/internal/telegram"
	"github.com/orgball2608/content-scheduler/pkg/config"
	"github.com/orgball2608/content-scheduler/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Telegram telegram.Client
	Planner  planner.Planner
	Session  realtime.Session
	Logger   logger.Logger
	Config   *config.Config
}

type CommandImpl struct {
	Telegram telegram.Client
	Planner  planner.Planner
	Session  realtime.Session
	Logger   logger.Logger
	Config   *config.Config
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Telegram: opts.Telegram,
		Planner:  opts.Planner,
		Session:  opts.Session,
		Logger:   opts.Logger.WithComponent("Commands"),
		Config:   opts.Config,
	}
}

var _ command.Client = (*CommandImpl)(nil)
