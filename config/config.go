package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Time range specifics
	TimeRange       TimeRangeConfig
	WorldTime       WorldTimeConfig
	HolidayCalendar HolidayCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type TimeRangeConfig struct {
	DefaultTimezone     string
	DefaultEventMinutes int
	MaxTextLength       int
	MaxCount            int
	FiscalStartMonth    int
	CustomEvents        map[string]string // phrase -> YYYY-MM-DD
}

type WorldTimeConfig struct {
	Enabled   bool
	BaseURL   string
	Timeout   time.Duration
	CacheTTL  time.Duration
	CacheSize int
}

type HolidayCalendarConfig struct {
	Enabled         bool
	APIKey          string
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	if level := v.GetString("log_level"); level != "" {
		cfg.Logger.Level = strings.ToLower(level)
	}
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Time range
	cfg.TimeRange.DefaultTimezone = v.GetString("timerange.default_timezone")
	cfg.TimeRange.DefaultEventMinutes = v.GetInt("timerange.default_event_minutes")
	cfg.TimeRange.MaxTextLength = v.GetInt("timerange.max_text_length")
	cfg.TimeRange.MaxCount = v.GetInt("timerange.max_count")
	cfg.TimeRange.FiscalStartMonth = v.GetInt("timerange.fiscal_start_month")
	cfg.TimeRange.CustomEvents = v.GetStringMapString("timerange.custom_events")

	// WorldTimeAPI
	cfg.WorldTime.Enabled = v.GetBool("worldtime.enabled")
	if v.IsSet("use_worldtime_api") {
		cfg.WorldTime.Enabled = v.GetBool("use_worldtime_api")
	}
	cfg.WorldTime.BaseURL = v.GetString("worldtime.base_url")
	cfg.WorldTime.Timeout = v.GetDuration("worldtime.timeout")
	cfg.WorldTime.CacheTTL = v.GetDuration("worldtime.cache_ttl")
	cfg.WorldTime.CacheSize = v.GetInt("worldtime.cache_size")

	// Public holidays
	cfg.HolidayCalendar.Enabled = v.GetBool("holiday_calendar.enabled")
	cfg.HolidayCalendar.APIKey = v.GetString("holiday_calendar.api_key")
	cfg.HolidayCalendar.CredentialsPath = v.GetString("holiday_calendar.credentials_path")
	cfg.HolidayCalendar.TokenPath = v.GetString("holiday_calendar.token_path")
	cfg.HolidayCalendar.CalendarID = v.GetString("holiday_calendar.calendar_id")
	if key := v.GetString("google_calendar_api_key"); key != "" {
		cfg.HolidayCalendar.APIKey = key
	}
	if creds := v.GetString("google_calendar_credentials"); creds != "" {
		cfg.HolidayCalendar.CredentialsPath = creds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", cfg.HTTPServer.Port)
	}
	if m := cfg.TimeRange.FiscalStartMonth; m < 1 || m > 12 {
		return fmt.Errorf("timerange.fiscal_start_month must be 1-12, got %d", m)
	}
	if cfg.TimeRange.DefaultEventMinutes <= 0 {
		return fmt.Errorf("timerange.default_event_minutes must be positive")
	}
	for phrase, day := range cfg.TimeRange.CustomEvents {
		if _, err := time.Parse(time.DateOnly, day); err != nil {
			return fmt.Errorf("timerange.custom_events[%q]: %w", phrase, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 9000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	v.SetDefault("timerange.default_timezone", "Europe/Amsterdam")
	v.SetDefault("timerange.default_event_minutes", 60)
	v.SetDefault("timerange.max_text_length", 256)
	v.SetDefault("timerange.max_count", 1000)
	v.SetDefault("timerange.fiscal_start_month", 1)

	v.SetDefault("worldtime.enabled", false)
	v.SetDefault("worldtime.base_url", "http://worldtimeapi.org/api")
	v.SetDefault("worldtime.timeout", "5s")
	v.SetDefault("worldtime.cache_ttl", "5m")
	v.SetDefault("worldtime.cache_size", 256)

	v.SetDefault("holiday_calendar.enabled", false)
	v.SetDefault("holiday_calendar.token_path", "token.json")
	v.SetDefault("holiday_calendar.calendar_id", "nl.dutch#holiday@group.v.calendar.google.com")
}
