package http

import (
	"github.com/gin-gonic/gin"

	"time-range-parser/pkg/response"
)

// ListTools godoc
// @Summary     List callable tools
// @Description Returns every tool with its JSON-schema parameters in function-calling format.
// @Tags        Tools
// @Produce     json
// @Success     200 {object} listToolsResp
// @Router      /api/v1/tools [GET]
func (h *handler) ListTools(c *gin.Context) {
	response.OK(c, h.newListToolsResp(h.registry.ToFunctionDefinitions()))
}

// InvokeTool godoc
// @Summary     Invoke a tool
// @Description Runs the named tool with JSON arguments. Tool failures are returned as {"error": "..."} in the result.
// @Tags        Tools
// @Accept      json
// @Produce     json
// @Param       name path string    true  "Tool name"
// @Param       body body invokeReq false "Tool arguments"
// @Success     200  {object} invokeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Unknown tool"
// @Router      /api/v1/tools/{name} [POST]
func (h *handler) InvokeTool(c *gin.Context) {
	ctx := c.Request.Context()

	name, args, err := h.processInvokeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.registry.Invoke(ctx, name, args)
	if err != nil {
		h.l.Errorf(ctx, "registry.Invoke(%s): %v", name, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newInvokeResp(name, result))
}
