// Package llmjson pulls a JSON object out of free-form model output.
// Replies are frequently wrapped in Markdown code fences or padded with
// prose, so the contract is: strip fences, then take the substring from
// the first '{' to the last '}'.
package llmjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoJSON = errors.New("no JSON object in model reply")

// Extract returns the candidate JSON object substring from text.
func Extract(text string) (string, error) {
	clean := strings.ReplaceAll(text, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start < 0 || end <= start {
		return "", ErrNoJSON
	}
	return clean[start : end+1], nil
}

// Unmarshal extracts the object substring and decodes it into v.
func Unmarshal(text string, v any) error {
	raw, err := Extract(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode model reply: %w", err)
	}
	return nil
}
