package config

import (
	"os"
	"strings"

	"codeberg.org/veland/wearsyncd/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultWindowDays     = 7
	DefaultAdapterTimeout = 10
	DefaultRequestTimeout = 30
	DefaultSchedule       = "@every 1h"
	DefaultLogLevel       = "info"
)

type Config struct {
	APIURL         string `mapstructure:"api_url"`
	Token          string `mapstructure:"token"`
	WindowDays     int    `mapstructure:"window_days"`
	AdapterTimeout int    `mapstructure:"adapter_timeout"`
	RequestTimeout int    `mapstructure:"request_timeout"`
	HealthDB       string `mapstructure:"health_db"`
	Journal        bool   `mapstructure:"journal"`
	JournalDB      string `mapstructure:"journal_db"`
	Schedule       string `mapstructure:"schedule"`
	LogLevel       string `mapstructure:"log_level"`
	Debug          bool   `mapstructure:"debug"`
	Verbose        bool   `mapstructure:"verbose"`
}

func Load() (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetDefault("window_days", DefaultWindowDays)
	v.SetDefault("adapter_timeout", DefaultAdapterTimeout)
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("schedule", DefaultSchedule)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("journal", false)
	v.SetDefault("journal_db", defaultJournalDB())

	flags := pflag.NewFlagSet("wearsyncd", pflag.ContinueOnError)
	flags.String("api-url", "", "Base URL of the sync backend")
	flags.String("token", "", "Bearer token for the sync backend")
	flags.Int("window-days", DefaultWindowDays, "Number of calendar days to aggregate per sync")
	flags.Int("adapter-timeout", DefaultAdapterTimeout, "Per-metric fetch timeout in seconds")
	flags.Int("request-timeout", DefaultRequestTimeout, "HTTP request timeout in seconds")
	flags.String("health-db", "", "Path to the on-device health sample database")
	flags.String("schedule", DefaultSchedule, "Cron schedule for auto-sync checks")
	flags.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	flags.Bool("debug", false, "Enable debugging mode")
	flags.Bool("verbose", false, "Enable verbose logging")

	// One-shot mode flags are owned by main; ignore them here
	flags.ParseErrorsWhitelist.UnknownFlags = true

	if err := flags.Parse(os.Args[1:]); err != nil && err != pflag.ErrHelp {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	bindings := map[string]string{
		"api_url":         "api-url",
		"token":           "token",
		"window_days":     "window-days",
		"adapter_timeout": "adapter-timeout",
		"request_timeout": "request-timeout",
		"health_db":       "health-db",
		"schedule":        "schedule",
		"log_level":       "log-level",
		"debug":           "debug",
		"verbose":         "verbose",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	v.SetEnvPrefix("WEARSYNCD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("WEARSYNCD_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	} else {
		v.SetConfigName("wearsyncd")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		v.AddConfigPath("$HOME/.config/wearsyncd")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errFactory.Wrap(errors.ErrReadConfig, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.WindowDays < 1 {
		return errFactory.WithData(errors.ErrInvalidWindow, c.WindowDays)
	}
	if c.AdapterTimeout < 1 || c.RequestTimeout < 1 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "timeouts must be positive")
	}
	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

func defaultJournalDB() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "wearsyncd.db"
	}

	return home + "/.local/share/wearsyncd/journal.db"
}
