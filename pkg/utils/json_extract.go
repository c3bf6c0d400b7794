package utils

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject isolates the first balanced-looking JSON object in raw
// model output. Models wrap JSON in prose or markdown fences, so we slice from
// the first '{' to the last '}' and parse that span. This deliberately skips
// deeper brace matching; if the model emits multiple top-level objects the
// slice may span them and fail to parse, which surfaces as MalformedOutputError.
func ExtractJSONObject(raw string) (json.RawMessage, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &MalformedOutputError{Raw: raw}
	}

	span := raw[start : end+1]

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &probe); err != nil {
		return nil, &MalformedOutputError{Raw: raw}
	}

	// The provider reports "wrong kind of input" through a documented
	// {"error": "..."} payload rather than an HTTP failure.
	if msg, ok := probe["error"]; ok {
		var text string
		if err := json.Unmarshal(msg, &text); err == nil && text != "" {
			return nil, &NotApplicableError{Message: text}
		}
	}

	return json.RawMessage(span), nil
}
