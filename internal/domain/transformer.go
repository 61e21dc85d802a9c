// Package domain contains the assertion rewriting logic and the workflow
// that applies it to files.
package domain

import (
	"errors"
	"strings"

	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

const lineSeparator = "\n"

// Transformer rewrites `assert(LEFT == RIGHT)` lines into
// `ctest::assert_equal(LEFT, RIGHT);`.
type Transformer interface {
	// Reformat returns code with every matching line rewritten.
	Reformat(code string) string
	// Transform is Reformat plus the list of rewritten lines.
	Transform(code string) (string, []m.Rewrite)
}

// TransformerOption configures a Transformer.
type TransformerOption func(*transformerConfig)

type transformerConfig struct {
	mode m.MatchMode
}

// WithMatchMode selects the operand matching strategy.
func WithMatchMode(mode m.MatchMode) TransformerOption {
	return func(c *transformerConfig) {
		c.mode = mode
	}
}

type transformer struct {
	matcher matcher
}

// NewTransformer creates a Transformer. The default mode is m.MatchGreedy.
func NewTransformer(options ...TransformerOption) Transformer {
	config := transformerConfig{mode: m.MatchGreedy}
	for _, option := range options {
		option(&config)
	}

	return &transformer{matcher: newMatcher(config.mode)}
}

var defaultTransformer = NewTransformer()

// Reformat rewrites code using the greedy matcher.
func Reformat(code string) string {
	return defaultTransformer.Reformat(code)
}

func (t *transformer) Reformat(code string) string {
	out, _ := t.Transform(code)
	return out
}

func (t *transformer) Transform(code string) (string, []m.Rewrite) {
	lines := strings.Split(code, lineSeparator)

	var rewrites []m.Rewrite

	for i, line := range lines {
		replacement, ok := t.rewriteLine(line)
		if !ok {
			continue
		}

		rewrites = append(rewrites, m.Rewrite{
			Line:        i + 1,
			Original:    m.Line(line),
			Replacement: m.Line(replacement),
		})
		lines[i] = replacement
	}

	return strings.Join(lines, lineSeparator), rewrites
}

func (t *transformer) rewriteLine(line string) (string, bool) {
	found, ok := t.matcher.match(line)
	if !ok {
		return "", false
	}

	return "ctest::assert_equal(" + stripOperand(found.left) + ", " + stripOperand(found.right) + ");", true
}

// stripOperand keeps empty operands instead of rejecting the line.
func stripOperand(operand string) string {
	stripped, err := StripParens(operand)
	if errors.Is(err, ErrEmptyToken) {
		return operand
	}

	return stripped
}
