package aiquiz

import (
	"encoding/json"
	"strings"
)

// defaultConfidence is assumed for candidates the model returned without a
// confidence field.
const defaultConfidence = 0.7

// ParseCandidates decodes a raw model response into candidates plus the
// mean confidence across them. Models often wrap JSON in markdown fences or
// prose, so the parser strips fences and scans for the first complete JSON
// array before decoding. Malformed responses yield (nil, 0, false).
func ParseCandidates(raw string) ([]Candidate, float64, bool) {
	arr := extractJSONArray(stripCodeFences(raw))
	if arr == "" {
		return nil, 0, false
	}

	var candidates []Candidate
	if err := json.Unmarshal([]byte(arr), &candidates); err != nil {
		return nil, 0, false
	}
	if len(candidates) == 0 {
		return nil, 0, false
	}

	var sum float64
	for _, c := range candidates {
		if c.Confidence != nil {
			sum += *c.Confidence
		} else {
			sum += defaultConfidence
		}
	}
	return candidates, sum / float64(len(candidates)), true
}

func stripCodeFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// extractJSONArray returns the first balanced top-level JSON array in text,
// or "" when none exists. Brackets inside string literals are skipped.
func extractJSONArray(text string) string {
	start := strings.IndexByte(text, '[')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
