// Package extract pulls the first JSON value out of free-form model output.
// Completions often wrap their payload in prose or markdown fences, so the
// payload is located by bracket matching rather than unmarshalling the whole
// response.
package extract

import "errors"

// ErrNoPayload indicates no balanced JSON value was found in the text.
var ErrNoPayload = errors.New("no JSON payload found in completion")

// Object returns the first balanced {...} value in s.
func Object(s string) (string, error) {
	return scan(s, '{', '}')
}

// Array returns the first balanced [...] value in s.
func Array(s string) (string, error) {
	return scan(s, '[', ']')
}

// scan walks s looking for an open..close span, tracking nesting depth and
// skipping bracket characters inside string literals. Quotes toggle string
// state at depth 0 too, so a quoted bracket in surrounding prose cannot start
// a false capture.
func scan(s string, open, close byte) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

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
		case open:
			if depth == 0 {
				start = i
			}
			depth++
		case close:
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}

	return "", ErrNoPayload
}
