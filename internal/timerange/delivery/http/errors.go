package http

import (
	"errors"
	"net/http"

	"time-range-parser/internal/timerange"
	"time-range-parser/pkg/daterange"
	pkgErrors "time-range-parser/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Parse failures keep their message, which may carry a hint.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, daterange.ErrEmptyInput),
		errors.Is(err, daterange.ErrUnparseableText),
		errors.Is(err, daterange.ErrInvalidRangeEndpoint),
		errors.Is(err, daterange.ErrRecurrencePatternUnrecognized),
		errors.Is(err, daterange.ErrInvalidWeekNumber),
		errors.Is(err, daterange.ErrInvalidQuarter),
		errors.Is(err, daterange.ErrInvalidDate),
		errors.Is(err, daterange.ErrInvalidAmount):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, daterange.ErrUnknownTimezone),
		errors.Is(err, timerange.ErrTextTooLong),
		errors.Is(err, timerange.ErrInvalidNowISO),
		errors.Is(err, timerange.ErrInvalidFiscalMonth),
		errors.Is(err, timerange.ErrInvalidCount):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, timerange.ErrWorldTimeDisabled),
		errors.Is(err, timerange.ErrHolidaysDisabled):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, timerange.ErrWorldTimeUnavailable),
		errors.Is(err, timerange.ErrHolidaysUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
