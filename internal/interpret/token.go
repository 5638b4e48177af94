package interpret

import "fmt"

type TokenType int

const (
	NUMBER_TOKEN   TokenType = 0
	PLUS_TOKEN     TokenType = 1
	SUBTRACT_TOKEN TokenType = 2
)

// Token is a single classified unit of input. Value is only meaningful for
// NUMBER_TOKEN. Tokens carry no source position.
type Token struct {
	Type  TokenType
	Value int64
}

func (t Token) String() string {
	switch t.Type {
	case NUMBER_TOKEN:
		return fmt.Sprintf("Number(%d)", t.Value)
	case PLUS_TOKEN:
		return "Plus"
	case SUBTRACT_TOKEN:
		return "Subtract"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t.Type))
	}
}
