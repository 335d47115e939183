package main

import (
	"strings"

	"github.com/spf13/cobra"

	"time-range-parser/internal/timerange"
	"time-range-parser/pkg/daterange"
)

func newResolveCmd(opts *options) *cobra.Command {
	var fiscalStart int

	cmd := &cobra.Command{
		Use:     "resolve <text>",
		Short:   "Resolve an expression into a start/end range",
		Example: `  timerange resolve "volgende week"` + "\n" + `  timerange resolve --fiscal-start 4 "Q1 2026"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUseCase(opts)
			if err != nil {
				return err
			}
			out, err := uc.Resolve(cmd.Context(), timerange.ResolveInput{
				Text:             strings.Join(args, " "),
				Timezone:         opts.timezone,
				NowISO:           opts.nowISO,
				FiscalStartMonth: fiscalStart,
			})
			if err != nil {
				return err
			}
			return printInterval(cmd.OutOrStdout(), opts.asJSON, out)
		},
	}
	cmd.Flags().IntVar(&fiscalStart, "fiscal-start", 0, "fiscal year start month (1-12)")
	return cmd
}

func newConvertCmd(opts *options) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:     "convert <text>",
		Short:   "Resolve an expression and express it in another timezone",
		Example: `  timerange convert --tz amsterdam --to "new york" "morgen 15:00"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUseCase(opts)
			if err != nil {
				return err
			}
			out, err := uc.Convert(cmd.Context(), timerange.ConvertInput{
				Text:           strings.Join(args, " "),
				TargetTimezone: target,
				SourceTimezone: opts.timezone,
				NowISO:         opts.nowISO,
			})
			if err != nil {
				return err
			}
			return printConversion(cmd.OutOrStdout(), opts.asJSON, out.Conversion)
		},
	}
	cmd.Flags().StringVar(&target, "to", "", "target timezone")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newRecurCmd(opts *options) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:     "recur <text>",
		Short:   "Expand a recurrence phrase into dates",
		Example: `  timerange recur --count 4 "elke vrijdag"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUseCase(opts)
			if err != nil {
				return err
			}
			out, err := uc.ExpandRecurrence(cmd.Context(), timerange.RecurrenceInput{
				Text:     strings.Join(args, " "),
				Timezone: opts.timezone,
				NowISO:   opts.nowISO,
				Count:    count,
			})
			if err != nil {
				return err
			}
			return printRecurrence(cmd.OutOrStdout(), opts.asJSON, out.Recurrence)
		},
	}
	cmd.Flags().IntVar(&count, "count", daterange.DefaultRecurrenceSize, "number of dates")
	return cmd
}

func newDurationCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "duration <start> <end>",
		Short:   "Measure the time between two expressions",
		Example: `  timerange duration vandaag kerst`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUseCase(opts)
			if err != nil {
				return err
			}
			out, err := uc.CalculateDuration(cmd.Context(), timerange.DurationInput{
				Start:    args[0],
				End:      args[1],
				Timezone: opts.timezone,
				NowISO:   opts.nowISO,
			})
			if err != nil {
				return err
			}
			return printDuration(cmd.OutOrStdout(), opts.asJSON, out.Duration)
		},
	}
}
