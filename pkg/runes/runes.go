package runes

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

type Reader struct {
	*bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{bufio.NewReader(r)}
}

// PeekRune returns the next rune without consuming it, or io.EOF at end of
// input.
func (r *Reader) PeekRune() (rune, error) {
	for peekBytes := 4; peekBytes > 0; peekBytes-- {
		b, err := r.Peek(peekBytes)
		if err != nil {
			if peekBytes == 1 {
				return 0, err
			}
			continue
		}

		char, _ := utf8.DecodeRune(b)
		if char == utf8.RuneError {
			return 0, errors.New("rune error")
		}

		return char, nil
	}

	return 0, io.EOF
}
