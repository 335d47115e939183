package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/scylladb/termtables"

	"time-range-parser/internal/timerange"
	"time-range-parser/pkg/daterange"
)

func ts(t time.Time) string {
	return t.Format(daterange.TimestampLayout)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTable(w io.Writer, table *termtables.Table) error {
	_, err := fmt.Fprintln(w, table.Render())
	return err
}

func printInterval(w io.Writer, asJSON bool, out timerange.ResolveOutput) error {
	iv := out.Interval
	if asJSON {
		return printJSON(w, map[string]any{
			"input":       out.Input,
			"timezone":    iv.Timezone,
			"start":       ts(iv.Start),
			"end":         ts(iv.End),
			"kind":        iv.Kind(),
			"assumptions": iv.Assumptions,
		})
	}

	table := termtables.CreateTable()
	table.AddHeaders("Input", "Timezone", "Start", "End", "Kind")
	table.AddRow(out.Input, iv.Timezone, ts(iv.Start), ts(iv.End), iv.Kind())
	return printTable(w, table)
}

func printConversion(w io.Writer, asJSON bool, c daterange.Conversion) error {
	if asJSON {
		return printJSON(w, c)
	}

	table := termtables.CreateTable()
	table.AddHeaders("Timezone", "Start", "End")
	table.AddRow(c.SourceTimezone, ts(c.SourceStart), ts(c.SourceEnd))
	table.AddRow(c.TargetTimezone, ts(c.TargetStart), ts(c.TargetEnd))
	table.AddTitle(fmt.Sprintf("%s (%+g h)", c.Input, c.UTCOffsetDiffHours))
	return printTable(w, table)
}

func printRecurrence(w io.Writer, asJSON bool, r daterange.Recurrence) error {
	if asJSON {
		return printJSON(w, r)
	}

	table := termtables.CreateTable()
	table.AddHeaders("#", "Date")
	for i, d := range r.Dates {
		table.AddRow(strconv.Itoa(i+1), ts(d))
	}
	table.AddTitle(fmt.Sprintf("%s, every %d %s (%s)", r.Input, r.Rule.Interval, r.Rule.Unit, r.Timezone))
	return printTable(w, table)
}

func printDuration(w io.Writer, asJSON bool, d daterange.DurationResult) error {
	if asJSON {
		return printJSON(w, d)
	}

	table := termtables.CreateTable()
	table.AddHeaders("Start", "End", "Days", "Business days", "Readable")
	table.AddRow(ts(d.Start), ts(d.End), strconv.FormatFloat(d.TotalDays, 'f', -1, 64), strconv.Itoa(d.BusinessDays), d.HumanReadable)
	return printTable(w, table)
}
