package cubesim

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed token in a move sequence.
type ParseError struct {
	Token string // the offending token
	Pos   int    // zero-based token position in the input
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cubesim: invalid move %q at position %d", e.Token, e.Pos)
}

// Parse converts a whitespace-separated move sequence in standard
// notation into moves. Each token is a face letter (U, D, F, B, L, R),
// optionally followed by ' for counter-clockwise or 2 for a half turn.
// Face letters are case-sensitive.
//
// Parsing is all-or-nothing: any malformed token yields a *ParseError
// and a nil slice, so a caller never applies a truncated sequence.
func Parse(text string) ([]Move, error) {
	tokens := strings.Fields(text)
	moves := make([]Move, 0, len(tokens))
	for pos, tok := range tokens {
		m, ok := parseToken(tok)
		if !ok {
			return nil, &ParseError{Token: tok, Pos: pos}
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func parseToken(tok string) (Move, bool) {
	if len(tok) == 0 || len(tok) > 2 {
		return Move{}, false
	}

	var face Face
	switch tok[0] {
	case 'U':
		face = Up
	case 'D':
		face = Down
	case 'F':
		face = Front
	case 'B':
		face = Back
	case 'R':
		face = Right
	case 'L':
		face = Left
	default:
		return Move{}, false
	}

	turn := CW
	if len(tok) == 2 {
		switch tok[1] {
		case '\'':
			turn = CCW
		case '2':
			turn = Half
		default:
			return Move{}, false
		}
	}

	return Move{Face: face, Turn: turn}, true
}

// Format renders a move sequence as space-separated standard notation.
// Format and Parse round-trip.
func Format(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
