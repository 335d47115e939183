package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "time-range-parser/pkg/errors"
)

func bindError(err error) error {
	return pkgErrors.NewHTTPError(400, err.Error())
}

// processResolveReq binds the resolve request body.
func (h *handler) processResolveReq(c *gin.Context) (resolveReq, error) {
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

func (h *handler) processConvertReq(c *gin.Context) (convertReq, error) {
	var req convertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

func (h *handler) processRecurrenceReq(c *gin.Context) (recurrenceReq, error) {
	var req recurrenceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

func (h *handler) processDurationReq(c *gin.Context) (durationReq, error) {
	var req durationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

// processCalendarInfoReq binds the calendar-info query parameters.
func (h *handler) processCalendarInfoReq(c *gin.Context) (calendarInfoReq, error) {
	var req calendarInfoReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

func (h *handler) processDSTStatusReq(c *gin.Context) (dstStatusReq, error) {
	var req dstStatusReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

func (h *handler) processWorldTimeReq(c *gin.Context) (worldTimeReq, error) {
	var req worldTimeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

func (h *handler) processHolidaysReq(c *gin.Context) (holidaysReq, error) {
	var req holidaysReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}
