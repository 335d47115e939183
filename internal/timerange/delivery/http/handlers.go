package http

import (
	"github.com/gin-gonic/gin"

	"time-range-parser/pkg/response"
)

// Resolve godoc
// @Summary     Resolve a date/time expression
// @Description Parses Dutch or English text ("volgende vrijdag 15:00", "Q4 2025") into a start/end range.
// @Tags        TimeRange
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Expression and context"
// @Success     200  {object} resolveResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Unparseable text"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/time-range/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Resolve(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Resolve: %v", err)
		response.Error(c, h.mapError(err), map[string]interface{}{"input": req.Text})
		return
	}

	response.OK(c, h.newResolveResp(output))
}

// Convert godoc
// @Summary     Convert an expression to another timezone
// @Description Resolves text in the source timezone and re-expresses both ends in the target timezone.
// @Tags        TimeRange
// @Accept      json
// @Produce     json
// @Param       body body convertReq true "Expression and zones"
// @Success     200  {object} convertResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Unparseable text"
// @Router      /api/v1/time-range/convert [POST]
func (h *handler) Convert(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConvertReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Convert(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Convert: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newConvertResp(output))
}

// Recurrence godoc
// @Summary     Expand a recurrence phrase
// @Description Turns "elke vrijdag" or "every 2 weeks" into a list of instants.
// @Tags        TimeRange
// @Accept      json
// @Produce     json
// @Param       body body recurrenceReq true "Recurrence phrase"
// @Success     200  {object} recurrenceResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Unrecognized pattern"
// @Router      /api/v1/time-range/recurrence [POST]
func (h *handler) Recurrence(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecurrenceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExpandRecurrence(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExpandRecurrence: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRecurrenceResp(output))
}

// Duration godoc
// @Summary     Duration between two expressions
// @Description Measures start to start, with signed business days and a readable breakdown.
// @Tags        TimeRange
// @Accept      json
// @Produce     json
// @Param       body body durationReq true "Start and end expressions"
// @Success     200  {object} durationResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Unparseable text"
// @Router      /api/v1/time-range/duration [POST]
func (h *handler) Duration(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDurationReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CalculateDuration(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CalculateDuration: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDurationResp(output))
}

// CalendarInfo godoc
// @Summary     ISO calendar facts
// @Description Week number, day of year and ISO day of week for today or a named day.
// @Tags        Calendar
// @Produce     json
// @Param       text     query string false "Day expression (default: today)"
// @Param       timezone query string false "IANA zone or alias"
// @Param       now_iso  query string false "Reference instant"
// @Success     200 {object} calendarInfoResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/time-range/calendar-info [GET]
func (h *handler) CalendarInfo(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalendarInfoReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CalendarInfo(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CalendarInfo: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCalendarInfoResp(output))
}

// DSTStatus godoc
// @Summary     Daylight saving status
// @Description Whether DST is active in a zone and when it starts and ends.
// @Tags        Calendar
// @Produce     json
// @Param       timezone query string false "IANA zone or alias"
// @Param       now_iso  query string false "Reference instant"
// @Success     200 {object} dstStatusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/time-range/dst-status [GET]
func (h *handler) DSTStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDSTStatusReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DSTStatus(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.DSTStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDSTStatusResp(output))
}

// WorldTime godoc
// @Summary     Current time in a city
// @Description Looks up the current time of a city or zone via WorldTimeAPI.
// @Tags        Calendar
// @Produce     json
// @Param       city query string true "City or zone, e.g. New York"
// @Success     200 {object} worldTimeResp
// @Failure     503 {object} response.Resp "WorldTimeAPI disabled"
// @Failure     502 {object} response.Resp "WorldTimeAPI unreachable"
// @Router      /api/v1/time-range/world-time [GET]
func (h *handler) WorldTime(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWorldTimeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.WorldTime(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.WorldTime: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newWorldTimeResp(output))
}

// Holidays godoc
// @Summary     Public holidays in a range
// @Description Resolves text (default: this year) and lists the public holidays inside it.
// @Tags        Calendar
// @Produce     json
// @Param       text     query string false "Range expression"
// @Param       timezone query string false "IANA zone or alias"
// @Param       now_iso  query string false "Reference instant"
// @Success     200 {object} holidaysResp
// @Failure     503 {object} response.Resp "Holiday calendar not configured"
// @Router      /api/v1/time-range/holidays [GET]
func (h *handler) Holidays(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHolidaysReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListHolidays(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListHolidays: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHolidaysResp(req.Text, output))
}

// ServerInfo godoc
// @Summary     Service description
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} serverInfoResp
// @Router      /api/v1/time-range/server-info [GET]
func (h *handler) ServerInfo(c *gin.Context) {
	response.OK(c, h.newServerInfoResp(h.uc.ServerInfo(c.Request.Context())))
}

// Timezones godoc
// @Summary     Known timezones
// @Description WorldTimeAPI's zone list when enabled, the built-in table otherwise.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} timezonesResp
// @Router      /api/v1/time-range/timezones [GET]
func (h *handler) Timezones(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Timezones(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Timezones: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTimezonesResp(output))
}
