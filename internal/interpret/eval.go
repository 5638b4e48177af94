package interpret

// evaluator consumes a token sequence matching
// number (('+' | '-') number)* and folds it left to right.
type evaluator struct {
	tokens []Token
	index  int
}

func NewEvaluator(tokens []Token) *evaluator {
	return &evaluator{
		tokens: tokens,
	}
}

// Evaluate runs a fresh evaluator over the given token sequence.
func Evaluate(tokens []Token) (int64, error) {
	return NewEvaluator(tokens).Evaluate()
}

func (e *evaluator) next() (Token, bool) {
	if e.index >= len(e.tokens) {
		return Token{}, false
	}
	token := e.tokens[e.index]
	e.index++
	return token, true
}

// expectNumber reads the next token, which must be a number, and returns its
// value.
func (e *evaluator) expectNumber() (int64, error) {
	token, ok := e.next()
	if !ok {
		return 0, ErrUnexpectedEndOfInput
	}
	if token.Type != NUMBER_TOKEN {
		return 0, NewInvalidTokenError(token)
	}
	return token.Value, nil
}

func (e *evaluator) Evaluate() (int64, error) {
	acc, err := e.expectNumber()
	if err != nil {
		return 0, err
	}

	for {
		token, ok := e.next()
		if !ok {
			return acc, nil
		}

		switch token.Type {
		case PLUS_TOKEN:
			value, err := e.expectNumber()
			if err != nil {
				return 0, err
			}
			acc += value
		case SUBTRACT_TOKEN:
			value, err := e.expectNumber()
			if err != nil {
				return 0, err
			}
			acc -= value
		default:
			return 0, NewInvalidTokenError(token)
		}
	}
}
