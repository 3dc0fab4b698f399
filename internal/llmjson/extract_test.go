package llmjson

import (
	"errors"
	"testing"
)

func TestExtractFencedObject(t *testing.T) {
	got, err := Extract("```json\n{\"score\":7}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"score":7}` {
		t.Fatalf("got %q", got)
	}
}

func TestExtractIgnoresSurroundingProse(t *testing.T) {
	got, err := Extract("Sure! Here is the JSON you asked for:\n{\"pain_point\": \"fees\"}\nLet me know if you need more.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"pain_point": "fees"}` {
		t.Fatalf("got %q", got)
	}
}

func TestExtractNoBraces(t *testing.T) {
	if _, err := Extract("no json here"); !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
	if _, err := Extract("} reversed {"); !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON for reversed braces, got %v", err)
	}
}

func TestUnmarshal(t *testing.T) {
	var out struct {
		Score int `json:"score"`
	}
	if err := Unmarshal("```json\n{\"score\": 9}\n```", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Score != 9 {
		t.Fatalf("score = %d, want 9", out.Score)
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	var out map[string]any
	if err := Unmarshal("{\"score\": }", &out); err == nil {
		t.Fatalf("expected parse error")
	}
}
