package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"time-range-parser/config"
	_ "time-range-parser/docs" // Swagger docs
	"time-range-parser/internal/agent"
	"time-range-parser/internal/agent/tools"
	"time-range-parser/internal/httpserver"
	"time-range-parser/internal/middleware"
	"time-range-parser/internal/timerange"
	"time-range-parser/internal/timerange/usecase"
	"time-range-parser/pkg/daterange"
	"time-range-parser/pkg/gcalendar"
	"time-range-parser/pkg/log"
	"time-range-parser/pkg/worldtime"
)

// @title       Time Range Parser API
// @description Resolves Dutch and English date/time expressions into ISO-8601 ranges.
// @version     1
// @host        localhost:9000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting time range parser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. WorldTimeAPI (optional)
	var worldTime worldtime.IWorldTime
	defaultTZ := cfg.TimeRange.DefaultTimezone
	if cfg.WorldTime.Enabled {
		wt := worldtime.New(worldtime.Config{
			BaseURL:   cfg.WorldTime.BaseURL,
			Timeout:   cfg.WorldTime.Timeout,
			CacheSize: cfg.WorldTime.CacheSize,
			CacheTTL:  cfg.WorldTime.CacheTTL,
		})
		worldTime = wt

		if detected, dtErr := wt.LocalTimezone(ctx); dtErr != nil {
			logger.Warnf(ctx, "Timezone detection failed, keeping %s: %v", defaultTZ, dtErr)
		} else if detected != "" {
			defaultTZ = detected
			logger.Infof(ctx, "Detected timezone: %s", detected)
		}
		logger.Infof(ctx, "WorldTimeAPI enabled at %s", cfg.WorldTime.BaseURL)
	} else {
		logger.Info(ctx, "WorldTimeAPI disabled, using local tzdata")
	}

	// 4. Public holiday calendar (optional)
	var holidays timerange.HolidayCalendar
	if cfg.HolidayCalendar.Enabled {
		calendarClient, calErr := newHolidayCalendar(ctx, cfg.HolidayCalendar)
		if calErr != nil {
			logger.Warnf(ctx, "Holiday calendar not available (optional): %v", calErr)
		} else {
			holidays = calendarClient
			logger.Infof(ctx, "Holiday calendar initialized (%s)", cfg.HolidayCalendar.CalendarID)
		}
	}

	// 5. Engine
	engine, err := daterange.New(daterange.Config{
		DefaultTimezone:     defaultTZ,
		DefaultEventMinutes: cfg.TimeRange.DefaultEventMinutes,
		Logger:              logger,
	})
	if err != nil {
		logger.Error(ctx, "Failed to build engine: ", err)
		return
	}

	// 6. Time range usecase
	customEvents := cfg.TimeRange.CustomEvents
	if len(customEvents) == 0 {
		customEvents = usecase.DefaultCustomEvents()
	}
	timeRangeUC := usecase.New(logger, engine, worldTime, holidays, usecase.Config{
		MaxTextLength:     cfg.TimeRange.MaxTextLength,
		MaxCount:          cfg.TimeRange.MaxCount,
		FiscalStartMonth:  cfg.TimeRange.FiscalStartMonth,
		CustomEvents:      customEvents,
		HolidayCalendarID: cfg.HolidayCalendar.CalendarID,
		Version:           httpserver.HealthVersion,
	})

	// 7. Tools
	registry := agent.NewToolRegistry()
	tools.RegisterAll(registry, timeRangeUC, logger)
	logger.Infof(ctx, "Registered tools: %v", registry.Names())

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   middleware.Config{RateLimitPerMin: cfg.RateLimit.RequestsPerMin},
		TimeRangeUC:  timeRangeUC,
		ToolRegistry: registry,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newHolidayCalendar prefers an API key over OAuth credentials.
func newHolidayCalendar(ctx context.Context, cfg config.HolidayCalendarConfig) (*gcalendar.Client, error) {
	switch {
	case cfg.APIKey != "":
		return gcalendar.NewClientWithAPIKey(ctx, cfg.APIKey)
	case cfg.CredentialsPath != "":
		return gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath, cfg.TokenPath)
	default:
		return nil, fmt.Errorf("holiday_calendar needs api_key or credentials_path")
	}
}
