package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodeJSON unmarshals the JSON payload found in reply into result.
// The original reply is included in the error so prompt problems can
// be diagnosed from logs.
func decodeJSON(reply string, result any) error {
	payload := extractJSON(reply)
	if err := json.Unmarshal([]byte(payload), result); err != nil {
		return fmt.Errorf("parsing JSON response: %w (content: %s)", err, reply)
	}
	return nil
}

// extractJSON returns the JSON payload inside s. Models wrap their
// answers in markdown fences or prose despite being told not to, so
// fenced blocks are tried first, then the first bracketed run.
func extractJSON(s string) string {
	if body, ok := fencedBlock(s, "```json"); ok {
		return body
	}
	if body, ok := fencedBlock(s, "```"); ok {
		return body
	}
	if body, ok := bracketedRun(s); ok {
		return body
	}
	return s
}

// fencedBlock returns the body of the first fence-delimited block
// opened by open and closed by a plain ```.
func fencedBlock(s, open string) (string, bool) {
	start := strings.Index(s, open)
	if start == -1 {
		return "", false
	}
	body := s[start+len(open):]
	body = strings.TrimLeft(body, "\r\n")
	end := strings.Index(body, "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimRight(body[:end], "\r\n"), true
}

// bracketedRun returns the first balanced {...} or [...] run in s.
func bracketedRun(s string) (string, bool) {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return "", false
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
