package model

import "fmt"

// MatchMode selects how the assertion matcher picks operand boundaries.
type MatchMode string

const (
	// MatchGreedy captures the left operand up to the last " == " and the
	// right operand up to the last ")" on the line (leftmost-longest).
	MatchGreedy MatchMode = "greedy"
	// MatchBalanced tracks parenthesis depth: the left operand ends at the
	// first " == " directly inside assert( and the right operand ends at the
	// parenthesis closing it.
	MatchBalanced MatchMode = "balanced"
)

// MatchModes lists every supported mode.
var MatchModes = []MatchMode{MatchGreedy, MatchBalanced}

// ParseMatchMode converts a textual mode into a MatchMode. An empty string
// yields MatchGreedy.
func ParseMatchMode(value string) (MatchMode, error) {
	switch MatchMode(value) {
	case "", MatchGreedy:
		return MatchGreedy, nil
	case MatchBalanced:
		return MatchBalanced, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMatchMode, value)
}

// Rewrite describes one line replaced by the transformer.
type Rewrite struct {
	Line        int // 1-based line number
	Original    Line
	Replacement Line
}

// FileResult holds the outcome of processing a single file.
type FileResult struct {
	Source   File
	Rewrites []Rewrite
	Written  bool  // true if the file was overwritten on disk
	Err      error // I/O failure, nil on success
}

// Changed reports whether any line of the file would be rewritten.
func (r FileResult) Changed() bool {
	return len(r.Rewrites) > 0
}
