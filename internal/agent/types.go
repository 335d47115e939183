package agent

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var ErrToolNotFound = errors.New("tool not found")

// Tool is a named operation callable with JSON arguments.
type Tool interface {
	// Name returns the tool name used by callers.
	Name() string

	// Description returns what the tool does.
	Description() string

	// Parameters returns the JSON schema of the arguments.
	Parameters() map[string]interface{}

	// Execute runs the tool with the given arguments.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// FunctionDefinition is the function-calling description of a tool.
type FunctionDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ToolRegistry manages available tools. It is safe for concurrent use.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry, replacing one with the same name.
func (r *ToolRegistry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools ordered by name.
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	r.mu.RUnlock()

	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// Names returns the registered tool names in order.
func (r *ToolRegistry) Names() []string {
	tools := r.List()
	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name()
	}
	return names
}

// ToFunctionDefinitions converts tools to function calling format.
func (r *ToolRegistry) ToFunctionDefinitions() []FunctionDefinition {
	tools := r.List()
	defs := make([]FunctionDefinition, 0, len(tools))
	for _, tool := range tools {
		defs = append(defs, FunctionDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return defs
}

// Invoke runs the named tool. A failing tool yields an {"error": "..."}
// payload rather than an error; only an unknown name is an error.
func (r *ToolRegistry) Invoke(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, ErrToolNotFound
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	res, err := tool.Execute(ctx, args)
	if err != nil {
		return map[string]string{"error": err.Error()}, nil
	}
	return res, nil
}
