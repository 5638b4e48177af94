package runes_test

import (
	"io"
	"strings"
	"testing"

	"github.com/arithlang/arith/pkg/runes"
	"github.com/stretchr/testify/assert"
)

func TestPeekRune(t *testing.T) {
	t.Parallel()

	t.Run("doesNotConsume", func(t *testing.T) {
		t.Parallel()

		r := runes.NewReader(strings.NewReader("abc"))

		for i := 0; i < 3; i++ {
			char, err := r.PeekRune()
			assert.NoError(t, err)
			assert.Equal(t, 'a', char)
		}
	})

	t.Run("peekThenRead", func(t *testing.T) {
		t.Parallel()

		input := "héllo, wörld"
		r := runes.NewReader(strings.NewReader(input))

		for _, expect := range input {
			char, err := r.PeekRune()
			assert.NoError(t, err)
			assert.Equal(t, expect, char)

			char, _, err = r.ReadRune()
			assert.NoError(t, err)
			assert.Equal(t, expect, char)
		}

		_, err := r.PeekRune()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		r := runes.NewReader(strings.NewReader(""))
		_, err := r.PeekRune()
		assert.ErrorIs(t, err, io.EOF)
	})
}
