package interpret

import (
	"errors"
	"fmt"
)

// InvalidCharacterError is the scanner's failure mode: a character that is
// not a digit, '+', '-', or space. Pos is the zero-based rune index of the
// offending character in the input.
type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func NewInvalidCharacterError(char rune, pos int) *InvalidCharacterError {
	return &InvalidCharacterError{
		Char: char,
		Pos:  pos,
	}
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

// ErrUnexpectedEndOfInput is returned by the evaluator when a number was
// required but the token sequence was exhausted.
var ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

// InvalidTokenError is returned by the evaluator when a token of the wrong
// kind appeared: an operator where a number was required, or a second number
// with no operator between.
type InvalidTokenError struct {
	Token Token
}

func NewInvalidTokenError(token Token) *InvalidTokenError {
	return &InvalidTokenError{
		Token: token,
	}
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %s", e.Token)
}
