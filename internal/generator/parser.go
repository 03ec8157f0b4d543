package generator

import (
	"encoding/json"
	"strings"

	"quizme/internal/domain"
)

// maxExcerptLen bounds the raw-text excerpt attached to parse failures.
const maxExcerptLen = 500

// ResponseParser recovers a structured quiz candidate from a model's
// free-text reply. It is stateless and safe for concurrent use.
type ResponseParser struct{}

// NewResponseParser creates a new ResponseParser instance
func NewResponseParser() *ResponseParser {
	return &ResponseParser{}
}

// Parse attempts strict JSON parsing of the entire reply first. If that
// fails, it locates the first top-level {...} span and strict-parses
// that span alone, tolerating prose or code fences around the object.
func (p *ResponseParser) Parse(raw string) (map[string]interface{}, error) {
	var candidate map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &candidate); err == nil {
		return candidate, nil
	}

	span, ok := firstObjectSpan(raw)
	if !ok {
		return nil, domain.NewUnparsableResponseError(excerpt(raw))
	}

	candidate = nil
	if err := json.Unmarshal([]byte(span), &candidate); err != nil {
		return nil, domain.NewUnparsableResponseError(excerpt(raw))
	}
	return candidate, nil
}

// firstObjectSpan finds the first balanced top-level {...} span using
// brace-depth scanning. String literals and escapes are respected so
// braces inside JSON strings do not confuse the depth count.
func firstObjectSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}

func excerpt(raw string) string {
	if len(raw) <= maxExcerptLen {
		return raw
	}
	return raw[:maxExcerptLen]
}
