package cubesim

// Turn represents the direction and magnitude of a face turn.
type Turn int8

const (
	CW   Turn = 1  // Clockwise quarter turn (90 degrees)
	CCW  Turn = -1 // Counter-clockwise quarter turn (90 degrees)
	Half Turn = 2  // Half turn (180 degrees)
)

// Move describes one elementary operation: a face and a turn amount.
// Moves are immutable values; applying the same move to the same cube
// state always yields the same result.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, U, U', U2.
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Half:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Half is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// InverseSequence returns the sequence that undoes moves: each move
// inverted, in reverse order.
func InverseSequence(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
