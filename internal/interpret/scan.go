package interpret

import (
	"errors"
	"io"
	"iter"
	"math"

	"github.com/arithlang/arith/pkg/runes"
)

type scanner struct {
	input *runes.Reader
	pos   int
}

func NewScanner(input io.Reader) *scanner {
	return &scanner{
		input: runes.NewReader(input),
	}
}

// Scan runs a fresh scanner over input and collects every token. On failure
// no partial token sequence is returned.
func Scan(input io.Reader) ([]Token, error) {
	s := NewScanner(input)

	tokens := []Token{}
	for {
		token, err := s.NextToken()
		if errors.Is(err, io.EOF) {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
}

// NextToken returns the next token in the input, io.EOF once the input is
// exhausted, or an *InvalidCharacterError for anything that is not a digit,
// '+', '-', or space.
func (s *scanner) NextToken() (Token, error) {
	for {
		char, err := s.input.PeekRune()
		if err != nil {
			return Token{}, err
		}

		switch {
		case char >= '0' && char <= '9':
			return s.scanNumber()
		case char == '+':
			s.advance()
			return Token{Type: PLUS_TOKEN}, nil
		case char == '-':
			s.advance()
			return Token{Type: SUBTRACT_TOKEN}, nil
		case char == ' ':
			s.advance()
		default:
			return Token{}, NewInvalidCharacterError(char, s.pos)
		}
	}
}

// Tokens streams tokens until end of input. A lexical error is yielded once
// and ends the stream.
func (s *scanner) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := s.NextToken()
			if errors.Is(err, io.EOF) {
				break
			}
			if !yield(token, err) || err != nil {
				return
			}
		}
	}
}

// advance consumes the rune a preceding successful PeekRune observed.
// Calling it at end of input is a contract violation.
func (s *scanner) advance() {
	if _, _, err := s.input.ReadRune(); err != nil {
		panic("advance past end of input: " + err.Error())
	}
	s.pos++
}

// scanNumber accumulates consecutive digits into an integer, stopping before
// the first non-digit. Literals beyond the int64 range saturate at
// math.MaxInt64 rather than wrapping.
func (s *scanner) scanNumber() (Token, error) {
	var value int64
	saturated := false

	for {
		char, err := s.input.PeekRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if char < '0' || char > '9' {
			break
		}
		s.advance()

		digit := int64(char - '0')
		if saturated || value > (math.MaxInt64-digit)/10 {
			value = math.MaxInt64
			saturated = true
			continue
		}
		value = value*10 + digit
	}

	return Token{Type: NUMBER_TOKEN, Value: value}, nil
}
