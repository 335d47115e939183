package agent_test

import (
	"context"
	"errors"
	"testing"

	"time-range-parser/internal/agent"
)

type mockTool struct {
	name        string
	description string
	params      map[string]interface{}
	result      interface{}
	err         error
}

func (m *mockTool) Name() string                       { return m.name }
func (m *mockTool) Description() string                { return m.description }
func (m *mockTool) Parameters() map[string]interface{} { return m.params }
func (m *mockTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return m.result, m.err
}

func TestToolRegistry(t *testing.T) {
	registry := agent.NewToolRegistry()

	tool1 := &mockTool{name: "tool1", description: "desc1", params: nil, result: "ok"}
	tool2 := &mockTool{name: "tool2", description: "desc2", err: errors.New("boom")}

	registry.Register(tool2)
	registry.Register(tool1)

	t.Run("Get existing tool", func(t *testing.T) {
		got, ok := registry.Get("tool1")
		if !ok || got.Name() != "tool1" {
			t.Errorf("expected tool1 to be found")
		}
	})

	t.Run("Get non-existing tool", func(t *testing.T) {
		_, ok := registry.Get("missing")
		if ok {
			t.Errorf("expected 'missing' tool to not be found")
		}
	})

	t.Run("List tools ordered", func(t *testing.T) {
		names := registry.Names()
		if len(names) != 2 || names[0] != "tool1" || names[1] != "tool2" {
			t.Errorf("expected [tool1 tool2], got %v", names)
		}
	})

	t.Run("ToFunctionDefinitions", func(t *testing.T) {
		defs := registry.ToFunctionDefinitions()
		if len(defs) != 2 {
			t.Fatalf("expected 2 tools, got %d", len(defs))
		}
		if defs[0].Name != "tool1" || defs[0].Description != "desc1" {
			t.Errorf("unexpected first definition: %+v", defs[0])
		}
	})

	t.Run("Invoke success", func(t *testing.T) {
		res, err := registry.Invoke(context.Background(), "tool1", nil)
		if err != nil || res != "ok" {
			t.Errorf("expected ok, got %v (%v)", res, err)
		}
	})

	t.Run("Invoke tool failure becomes payload", func(t *testing.T) {
		res, err := registry.Invoke(context.Background(), "tool2", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload, ok := res.(map[string]string)
		if !ok || payload["error"] != "boom" {
			t.Errorf("expected error payload, got %v", res)
		}
	})

	t.Run("Invoke unknown tool", func(t *testing.T) {
		if _, err := registry.Invoke(context.Background(), "missing", nil); !errors.Is(err, agent.ErrToolNotFound) {
			t.Errorf("expected ErrToolNotFound, got %v", err)
		}
	})
}
