package realtimeimpl

import (
	"testing"
	"time"

	"github.com/orgball2608/content-scheduler/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestFlatPolicy(t *testing.T) {
	p := FlatPolicy{Interval: 3 * time.Second, MaxAttempts: 2}

	for attempt := 1; attempt <= 2; attempt++ {
		delay, ok := p.Delay(attempt)
		assert.True(t, ok)
		assert.Equal(t, 3*time.Second, delay)
	}

	_, ok := p.Delay(3)
	assert.False(t, ok)
}

func TestExponentialPolicy(t *testing.T) {
	p := ExponentialPolicy{Base: time.Second, Ceiling: 30 * time.Second, MaxAttempts: 10}

	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},
		{10, 30 * time.Second},
	}
	for _, tc := range cases {
		delay, ok := p.Delay(tc.attempt)
		assert.True(t, ok, "attempt %d", tc.attempt)
		assert.Equal(t, tc.want, delay, "attempt %d", tc.attempt)
	}

	_, ok := p.Delay(11)
	assert.False(t, ok)
}

func TestExponentialPolicyOverflowHitsCeiling(t *testing.T) {
	p := ExponentialPolicy{Base: time.Hour, Ceiling: 2 * time.Hour, MaxAttempts: 100}

	delay, ok := p.Delay(80)
	assert.True(t, ok)
	assert.Equal(t, 2*time.Hour, delay)
}

func TestPolicyFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Realtime.FlatInterval = 3 * time.Second
	cfg.Realtime.FlatMaxAttempts = 5
	cfg.Realtime.BackoffBase = time.Second
	cfg.Realtime.BackoffCeiling = 30 * time.Second
	cfg.Realtime.BackoffMaxAttempts = 10

	cfg.Realtime.Policy = config.PolicyFlat
	assert.Equal(t, FlatPolicy{Interval: 3 * time.Second, MaxAttempts: 5}, PolicyFromConfig(cfg))

	cfg.Realtime.Policy = config.PolicyExponential
	assert.Equal(t, ExponentialPolicy{Base: time.Second, Ceiling: 30 * time.Second, MaxAttempts: 10}, PolicyFromConfig(cfg))
}
