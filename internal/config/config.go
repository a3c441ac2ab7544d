package config

import (
	"fmt"
	"github.com/caarlos0/env/v6"
	"github.com/umalmyha/customers-console/internal/validation"
	"time"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type ConsoleCfg struct {
	Port            int           `env:"CONSOLE_PORT" envDefault:"3000" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `env:"CONSOLE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	SearchMode      string        `env:"CONSOLE_SEARCH_MODE" envDefault:"first-filter" validate:"oneof=all first-filter"`
}

type CustomersAPICfg struct {
	URL     string        `env:"CUSTOMERS_API_URL" envDefault:"http://localhost:8080" validate:"required,url"`
	Timeout time.Duration `env:"CUSTOMERS_API_TIMEOUT" envDefault:"0s" validate:"min=0"`
}

type SessionCfg struct {
	Store      string        `env:"SESSION_STORE" envDefault:"memory" validate:"oneof=memory redis"`
	CookieName string        `env:"SESSION_COOKIE" envDefault:"console-session" validate:"required"`
	TimeToLive time.Duration `env:"SESSION_TIME_TO_LIVE" envDefault:"30m" validate:"gt=0"`
}

type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0" validate:"min=0"`
}

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

type Config struct {
	ConsoleCfg      ConsoleCfg
	CustomersAPICfg CustomersAPICfg
	SessionCfg      SessionCfg
	RedisCfg        RedisCfg
	LogCfg          LogCfg
}

func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	v, err := validation.New()
	if err != nil {
		return cfg, err
	}

	if err := v.Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration - %w", err)
	}

	return cfg, nil
}
