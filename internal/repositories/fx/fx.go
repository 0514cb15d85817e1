package fx

import (
	"github.com/orgball2608/content-scheduler/internal/repositories/content"
	"github.com/orgball2608/content-scheduler/internal/repositories/scheduler"
	"go.uber.org/fx"
)

var Module = fx.Options(
	scheduler.Module,
	content.Module,
)
