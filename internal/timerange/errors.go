package timerange

import "errors"

var (
	ErrTextTooLong          = errors.New("text is too long")
	ErrInvalidNowISO        = errors.New("now_iso is not a valid ISO-8601 timestamp")
	ErrInvalidFiscalMonth   = errors.New("fiscal_start_month must be between 1 and 12")
	ErrInvalidCount         = errors.New("count is out of range")
	ErrWorldTimeDisabled    = errors.New("WorldTimeAPI is disabled by server configuration")
	ErrWorldTimeUnavailable = errors.New("could not fetch time from WorldTimeAPI")
	ErrHolidaysDisabled     = errors.New("holiday calendar is not configured")
	ErrHolidaysUnavailable  = errors.New("could not fetch holidays")
)

// Hints appended to resolve failures.
const (
	HintInvalidQuarter = "Invalid quarter detected. Quarters must be between Q1 and Q4."
	HintInvalidWeek    = "Invalid week number. Weeks must be between 1 and 53."
)
