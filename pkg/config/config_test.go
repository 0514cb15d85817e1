package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReconnectPolicy(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		policy string
		want   string
	}{
		{name: "development defaults to flat", env: EnvDevelopment, want: PolicyFlat},
		{name: "production defaults to exponential", env: EnvProduction, want: PolicyExponential},
		{name: "explicit policy wins", env: EnvProduction, policy: PolicyFlat, want: PolicyFlat},
		{name: "unknown policy falls back", env: EnvDevelopment, policy: "linear", want: PolicyFlat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			c.App.Env = tt.env
			c.Realtime.Policy = tt.policy
			assert.Equal(t, tt.want, c.ReconnectPolicy())
		})
	}
}

func TestGetDSN(t *testing.T) {
	c := &Config{}
	c.Postgres.User = "scheduler"
	c.Postgres.Pass = "secret"
	c.Postgres.Host = "db"
	c.Postgres.Port = 5432
	c.Postgres.Name = "content"
	c.Postgres.SslMode = "disable"

	assert.Equal(t, "postgres://scheduler:secret@db:5432/content?sslmode=disable", c.GetDSN())
}

func TestLocationFallback(t *testing.T) {
	c := &Config{}
	c.Calendar.Timezone = "Not/AZone"
	assert.Equal(t, time.Local, c.Location())

	c.Calendar.Timezone = "UTC"
	assert.Equal(t, "UTC", c.Location().String())
}
