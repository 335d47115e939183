package tools

import (
	"encoding/json"
	"fmt"
	"time"

	"time-range-parser/pkg/daterange"
)

// decodeInput maps loosely typed tool arguments onto a typed struct.
func decodeInput(input map[string]interface{}, out interface{}) error {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	if err := json.Unmarshal(inputBytes, out); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	return nil
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	if required == nil {
		required = []string{}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func formatTime(t time.Time) string {
	return t.Format(daterange.TimestampLayout)
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

const (
	timezoneDescription = "IANA timezone or alias (e.g. 'Europe/Amsterdam', 'new york'). Default: detected or server default."
	nowISODescription   = "Optional ISO-8601 reference instant for relative expressions."
)
