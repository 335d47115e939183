package http

import "time-range-parser/internal/agent"

// invokeReq is the JSON object of tool arguments. The body may be empty.
type invokeReq map[string]interface{}

type listToolsResp struct {
	Tools []agent.FunctionDefinition `json:"tools"`
}

type invokeResp struct {
	Tool   string      `json:"tool"`
	Result interface{} `json:"result"`
}

func (h *handler) newListToolsResp(defs []agent.FunctionDefinition) listToolsResp {
	return listToolsResp{Tools: defs}
}

func (h *handler) newInvokeResp(name string, result interface{}) invokeResp {
	return invokeResp{Tool: name, Result: result}
}
