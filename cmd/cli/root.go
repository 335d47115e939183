package main

import (
	"github.com/spf13/cobra"

	"time-range-parser/config"
	"time-range-parser/internal/timerange"
	"time-range-parser/internal/timerange/usecase"
	"time-range-parser/pkg/daterange"
	"time-range-parser/pkg/log"
)

// options are the flags shared by every subcommand.
type options struct {
	configPath string
	timezone   string
	nowISO     string
	asJSON     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "timerange",
		Short: "Resolve Dutch and English date/time expressions",
		Long: `timerange turns phrases like "volgende vrijdag 15:00", "Q4 2025" or
"elke maandag" into ISO-8601 instants with second resolution.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config.yaml (optional)")
	flags.StringVar(&opts.timezone, "tz", "", "IANA timezone or alias, e.g. 'Europe/Amsterdam' or 'new york'")
	flags.StringVar(&opts.nowISO, "now", "", "reference instant (ISO-8601) for relative expressions")
	flags.BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")

	root.AddCommand(
		newResolveCmd(opts),
		newConvertCmd(opts),
		newRecurCmd(opts),
		newDurationCmd(opts),
		newGCalAuthCmd(),
	)
	return root
}

// newUseCase builds an offline usecase. Remote lookups stay disabled.
func newUseCase(opts *options) (timerange.UseCase, error) {
	engineCfg := daterange.Config{}
	ucCfg := usecase.Config{CustomEvents: usecase.DefaultCustomEvents()}

	if opts.configPath != "" {
		cfg, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		engineCfg.DefaultTimezone = cfg.TimeRange.DefaultTimezone
		engineCfg.DefaultEventMinutes = cfg.TimeRange.DefaultEventMinutes
		ucCfg.MaxTextLength = cfg.TimeRange.MaxTextLength
		ucCfg.MaxCount = cfg.TimeRange.MaxCount
		ucCfg.FiscalStartMonth = cfg.TimeRange.FiscalStartMonth
		if len(cfg.TimeRange.CustomEvents) > 0 {
			ucCfg.CustomEvents = cfg.TimeRange.CustomEvents
		}
	}

	engine, err := daterange.New(engineCfg)
	if err != nil {
		return nil, err
	}
	return usecase.New(log.NewNop(), engine, nil, nil, ucCfg), nil
}
