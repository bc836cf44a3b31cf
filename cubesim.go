// Package cubesim models a 3x3x3 twisty puzzle and provides the move
// engine that the solver, scrambler, and CLI are built on.
//
// # Cube state
//
// The Cube type holds 54 facelets as six 3x3 grids. A cube starts solved
// (white up, green in front) and is only ever mutated through the move
// API, so every reachable state corresponds to a physical cube:
//
//	c := cubesim.New()
//	c.Apply(cubesim.R)
//	c.ApplyAll([]cubesim.Move{cubesim.U, cubesim.RPrime, cubesim.UPrime})
//	fmt.Println(c.IsSolved())
//
// # Notation
//
// Moves use standard face notation: one of U/D/F/B/L/R, optionally
// suffixed with ' for counter-clockwise or 2 for a half turn. Parse and
// Format convert between move sequences and their textual form:
//
//	moves, err := cubesim.Parse("R U R' U'")
//	if err != nil {
//	    var perr *cubesim.ParseError
//	    errors.As(err, &perr) // perr.Token, perr.Pos
//	}
//
// Parsing is all-or-nothing: a malformed token yields a ParseError and no
// moves, so callers never apply a partial sequence.
//
// # Scrambling and solving
//
// Scramble applies random moves (never two in a row on the same face) and
// returns the sequence it applied. The solver package consumes a Cube and
// produces a solution with a fixed layer-by-layer procedure.
package cubesim
