package genai

import "strings"

// ExtractJSON returns the first balanced {...} span in text. Models often wrap
// the requested JSON in prose or a markdown fence; the span scan skips both.
// When no balanced span exists the trimmed input is returned unchanged so the
// caller's JSON decoder produces the error.
func ExtractJSON(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return strings.TrimSpace(text)
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return strings.TrimSpace(text)
}
