package http

import (
	"errors"
	"net/http"

	"time-range-parser/internal/agent"
	pkgErrors "time-range-parser/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, agent.ErrToolNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
