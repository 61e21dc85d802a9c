package domain

import "errors"

// ErrEmptyToken is returned by StripParens for an empty operand.
var ErrEmptyToken = errors.New("empty token")

// StripParens removes one layer of parentheses from token when the leading
// "(" and trailing ")" enclose the whole token. "(a)(b)" is returned as is
// because the first "(" closes before the end.
func StripParens(token string) (string, error) {
	if token == "" {
		return "", ErrEmptyToken
	}

	last := len(token) - 1
	if last == 0 || token[0] != '(' || token[last] != ')' {
		return token, nil
	}

	depth := 1

	for i := 1; i < last; i++ {
		switch token[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return token, nil
			}
		}
	}

	return token[1:last], nil
}
