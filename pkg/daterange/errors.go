package daterange

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput                    = errors.New("empty input")
	ErrUnparseableText               = errors.New("unparseable text")
	ErrInvalidRangeEndpoint          = errors.New("invalid range endpoint")
	ErrRecurrencePatternUnrecognized = errors.New("recurrence pattern unrecognized")
	ErrInvalidWeekNumber             = errors.New("invalid week number")
	ErrInvalidQuarter                = errors.New("invalid quarter")
	ErrInvalidDate                   = errors.New("invalid date")
	ErrInvalidAmount                 = errors.New("invalid amount")
	ErrUnknownTimezone               = errors.New("unknown timezone")
)

// Range sides reported by InputError for ErrInvalidRangeEndpoint.
const (
	SideStart = "start"
	SideEnd   = "end"
)

// InputError attaches the offending input to one of the sentinel errors above.
type InputError struct {
	Err   error
	Input string
	Side  string
}

func (e *InputError) Error() string {
	switch e.Err {
	case ErrEmptyInput:
		return "Lege invoer."
	case ErrUnparseableText:
		return fmt.Sprintf("Kon tekst niet parsen: '%s'", e.Input)
	case ErrInvalidRangeEndpoint:
		side := "start"
		if e.Side == SideEnd {
			side = "eind"
		}
		return fmt.Sprintf("Kon %s niet parsen: '%s'", side, e.Input)
	case ErrRecurrencePatternUnrecognized:
		return fmt.Sprintf("Kon geen herhalingspatroon herkennen in: '%s'", e.Input)
	case ErrInvalidWeekNumber:
		return fmt.Sprintf("Ongeldig weeknummer in: '%s'", e.Input)
	case ErrInvalidQuarter:
		return fmt.Sprintf("Ongeldig kwartaal in: '%s'", e.Input)
	case ErrInvalidDate:
		return fmt.Sprintf("Ongeldige datum in: '%s'", e.Input)
	case ErrInvalidAmount:
		return fmt.Sprintf("Ongeldig aantal in: '%s'", e.Input)
	case ErrUnknownTimezone:
		return fmt.Sprintf("Onbekende tijdzone: '%s'", e.Input)
	}
	return fmt.Sprintf("%v: '%s'", e.Err, e.Input)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func inputError(err error, input string) error {
	return &InputError{Err: err, Input: input}
}
