package cubesim

import "math/rand/v2"

// DefaultScrambleLength is the number of moves Scramble applies when the
// caller passes a non-positive count.
const DefaultScrambleLength = 20

var turns = [3]Turn{CW, CCW, Half}

// Scramble applies n uniformly random moves to the cube and returns the
// sequence it applied. No two consecutive moves turn the same face, so
// every move actually changes the state. A non-positive n means
// DefaultScrambleLength.
func Scramble(c *Cube, n int) []Move {
	return ScrambleWithRand(c, n, nil)
}

// ScrambleWithRand is Scramble with an explicit random source, for
// reproducible scrambles. A nil rng uses the shared global source.
func ScrambleWithRand(c *Cube, n int, rng *rand.Rand) []Move {
	if n <= 0 {
		n = DefaultScrambleLength
	}

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	moves := make([]Move, 0, n)
	prev := Face(255)
	for len(moves) < n {
		face := Faces[intN(len(Faces))]
		if face == prev {
			continue
		}
		m := Move{Face: face, Turn: turns[intN(len(turns))]}
		c.Apply(m)
		moves = append(moves, m)
		prev = face
	}
	return moves
}
