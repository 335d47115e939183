package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "time-range-parser/pkg/errors"
)

// processInvokeReq reads the tool name and its optional JSON arguments.
func (h *handler) processInvokeReq(c *gin.Context) (string, invokeReq, error) {
	name := c.Param("name")
	if name == "" {
		return "", nil, pkgErrors.NewHTTPError(http.StatusBadRequest, "tool name is required")
	}

	args := invokeReq{}
	if err := c.ShouldBindJSON(&args); err != nil && !errors.Is(err, io.EOF) {
		return "", nil, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return name, args, nil
}
