package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	PolicyFlat        = "flat"
	PolicyExponential = "exponential"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"APP_SENTRY_URL"`
		CompanyID string `env:"APP_COMPANY_ID" env-required:"true"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Telegram struct {
		User  int64  `env:"TELEGRAM_USER"`
		Token string `env:"TELEGRAM_TOKEN"`
	}
	Realtime struct {
		URL    string `env:"REALTIME_URL"`
		Policy string `env:"REALTIME_POLICY"`

		FlatInterval    time.Duration `env:"REALTIME_FLAT_INTERVAL" env-default:"3s"`
		FlatMaxAttempts int           `env:"REALTIME_FLAT_MAX_ATTEMPTS" env-default:"5"`

		BackoffBase        time.Duration `env:"REALTIME_BACKOFF_BASE" env-default:"1s"`
		BackoffCeiling     time.Duration `env:"REALTIME_BACKOFF_CEILING" env-default:"30s"`
		BackoffMaxAttempts int           `env:"REALTIME_BACKOFF_MAX_ATTEMPTS" env-default:"10"`
	}
	Calendar struct {
		Timezone         string        `env:"CALENDAR_TIMEZONE" env-default:"Local"`
		ResyncInterval   time.Duration `env:"CALENDAR_RESYNC_INTERVAL" env-default:"1m"`
		RefreshPerSecond int           `env:"CALENDAR_REFRESH_PER_SECOND" env-default:"1"`
		RefreshBurst     int           `env:"CALENDAR_REFRESH_BURST" env-default:"3"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}

func (c *Config) IsProduction() bool {
	return c.App.Env == EnvProduction
}

// ReconnectPolicy resolves the realtime delay policy. An explicit REALTIME_POLICY
// wins, otherwise production uses exponential backoff and everything else flat.
func (c *Config) ReconnectPolicy() string {
	switch c.Realtime.Policy {
	case PolicyFlat, PolicyExponential:
		return c.Realtime.Policy
	}
	if c.IsProduction() {
		return PolicyExponential
	}
	return PolicyFlat
}

// Location loads the calendar time zone, falling back to time.Local.
func (c *Config) Location() *time.Location {
	if c.Calendar.Timezone == "" || c.Calendar.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
