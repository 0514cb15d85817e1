package realtimeimpl

import (
	"time"

	"github.com/orgball2608/content-scheduler/pkg/config"
)

// Policy spaces reconnect attempts. Delay is asked with the attempt number that is
// about to be made, starting at 1; ok is false once attempts are exhausted.
type Policy interface {
	Delay(attempt int) (delay time.Duration, ok bool)
	Name() string
}

// FlatPolicy waits the same interval before every attempt.
type FlatPolicy struct {
	Interval    time.Duration
	MaxAttempts int
}

func (p FlatPolicy) Delay(attempt int) (time.Duration, bool) {
	if attempt > p.MaxAttempts {
		return 0, false
	}
	return p.Interval, true
}

func (p FlatPolicy) Name() string {
	return config.PolicyFlat
}

// ExponentialPolicy waits min(Base * 2^attempt, Ceiling).
type ExponentialPolicy struct {
	Base        time.Duration
	Ceiling     time.Duration
	MaxAttempts int
}

func (p ExponentialPolicy) Delay(attempt int) (time.Duration, bool) {
	if attempt > p.MaxAttempts {
		return 0, false
	}
	delay := p.Ceiling
	if attempt < 62 {
		if scaled := p.Base << uint(attempt); scaled > 0 && scaled>>uint(attempt) == p.Base {
			delay = min(scaled, p.Ceiling)
		}
	}
	return delay, true
}

func (p ExponentialPolicy) Name() string {
	return config.PolicyExponential
}

// PolicyFromConfig picks the policy selected by configuration.
func PolicyFromConfig(cfg *config.Config) Policy {
	if cfg.ReconnectPolicy() == config.PolicyExponential {
		return ExponentialPolicy{
			Base:        cfg.Realtime.BackoffBase,
			Ceiling:     cfg.Realtime.BackoffCeiling,
			MaxAttempts: cfg.Realtime.BackoffMaxAttempts,
		}
	}
	return FlatPolicy{
		Interval:    cfg.Realtime.FlatInterval,
		MaxAttempts: cfg.Realtime.FlatMaxAttempts,
	}
}
