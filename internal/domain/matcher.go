package domain

import (
	"strings"
	"unicode"

	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

const (
	assertPrefix = "assert("
	separator    = " == "
)

// match holds the raw operands captured from an assertion line.
type match struct {
	left  string
	right string
}

// matcher recognises `assert(LEFT == RIGHT)` at the start of a line.
type matcher interface {
	match(line string) (match, bool)
}

func newMatcher(mode m.MatchMode) matcher {
	if mode == m.MatchBalanced {
		return balancedMatcher{}
	}

	return greedyMatcher{}
}

// isIndent reports whether r may precede `assert(`. The ASCII separator
// controls U+001C to U+001F count as whitespace alongside unicode.IsSpace.
func isIndent(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// assertBody returns what follows `assert(` once leading whitespace is
// skipped.
func assertBody(line string) (string, bool) {
	trimmed := strings.TrimLeftFunc(line, isIndent)
	if !strings.HasPrefix(trimmed, assertPrefix) {
		return "", false
	}

	return trimmed[len(assertPrefix):], true
}

// greedyMatcher picks the last ")" on the line as the end of the right
// operand and the last separator before it as the end of the left operand.
type greedyMatcher struct{}

func (greedyMatcher) match(line string) (match, bool) {
	body, ok := assertBody(line)
	if !ok {
		return match{}, false
	}

	closing := strings.LastIndexByte(body, ')')
	if closing < 0 {
		return match{}, false
	}

	sep := strings.LastIndex(body[:closing], separator)
	if sep < 0 {
		return match{}, false
	}

	return match{
		left:  body[:sep],
		right: body[sep+len(separator) : closing],
	}, true
}

// balancedMatcher tracks depth relative to `assert(`. Separators nested in
// inner parentheses are ignored.
type balancedMatcher struct{}

func (balancedMatcher) match(line string) (match, bool) {
	body, ok := assertBody(line)
	if !ok {
		return match{}, false
	}

	depth := 1
	sep := -1

	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				if sep < 0 {
					return match{}, false
				}

				return match{
					left:  body[:sep],
					right: body[sep+len(separator) : i],
				}, true
			}
		case ' ':
			if sep < 0 && depth == 1 && strings.HasPrefix(body[i:], separator) {
				sep = i
				i += len(separator) - 1
			}
		}
	}

	return match{}, false
}
