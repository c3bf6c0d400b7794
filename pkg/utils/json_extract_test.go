package utils

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtractJSONObjectPlain(t *testing.T) {
	payload, err := ExtractJSONObject(`{"days": []}`)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(payload) != `{"days": []}` {
		t.Fatalf("unexpected payload: %s", payload)
	}
}

func TestExtractJSONObjectMarkdownFence(t *testing.T) {
	raw := "```json\n{\"breed\": \"corgi\", \"size\": \"small\"}\n```"
	payload, err := ExtractJSONObject(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if got["breed"] != "corgi" {
		t.Fatalf("expected breed corgi, got %q", got["breed"])
	}
}

func TestExtractJSONObjectSurroundingProse(t *testing.T) {
	raw := `Sure! Here is your itinerary: {"days": [{"date": "Sat, Feb 15", "items": []}]} Hope this helps.`
	payload, err := ExtractJSONObject(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if payload[0] != '{' || payload[len(payload)-1] != '}' {
		t.Fatalf("payload is not trimmed to the object span: %s", payload)
	}
}

func TestExtractJSONObjectNoBraces(t *testing.T) {
	_, err := ExtractJSONObject("I cannot help with that.")
	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %v", err)
	}
	if malformed.Raw != "I cannot help with that." {
		t.Fatalf("raw text not preserved: %q", malformed.Raw)
	}
}

func TestExtractJSONObjectUnparseableSpan(t *testing.T) {
	_, err := ExtractJSONObject(`{"days": [unclosed`)
	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %v", err)
	}
}

func TestExtractJSONObjectErrorPayload(t *testing.T) {
	raw := `{"error": "This doesn't appear to be a dog photo. Please upload an image of your dog."}`
	_, err := ExtractJSONObject(raw)
	var notApplicable *NotApplicableError
	if !errors.As(err, &notApplicable) {
		t.Fatalf("expected NotApplicableError, got %v", err)
	}
	if notApplicable.Message == "" {
		t.Fatal("expected the provider message to be carried through")
	}
}

func TestExtractJSONObjectNonStringErrorField(t *testing.T) {
	// An "error" key holding a non-string value is ordinary data, not a
	// provider rejection.
	payload, err := ExtractJSONObject(`{"error": {"code": 3}}`)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(payload) == 0 {
		t.Fatal("expected payload to be returned")
	}
}
