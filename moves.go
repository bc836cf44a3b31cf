package cubesim

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.ApplyAll([]cubesim.Move{cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime})
var (
	// Right face moves
	R      = Move{Face: Right, Turn: CW}   // Right clockwise
	RPrime = Move{Face: Right, Turn: CCW}  // Right counter-clockwise
	R2     = Move{Face: Right, Turn: Half} // Right 180

	// Left face moves
	L      = Move{Face: Left, Turn: CW}   // Left clockwise
	LPrime = Move{Face: Left, Turn: CCW}  // Left counter-clockwise
	L2     = Move{Face: Left, Turn: Half} // Left 180

	// Up face moves
	U      = Move{Face: Up, Turn: CW}   // Up clockwise
	UPrime = Move{Face: Up, Turn: CCW}  // Up counter-clockwise
	U2     = Move{Face: Up, Turn: Half} // Up 180

	// Down face moves
	D      = Move{Face: Down, Turn: CW}   // Down clockwise
	DPrime = Move{Face: Down, Turn: CCW}  // Down counter-clockwise
	D2     = Move{Face: Down, Turn: Half} // Down 180

	// Front face moves
	F      = Move{Face: Front, Turn: CW}   // Front clockwise
	FPrime = Move{Face: Front, Turn: CCW}  // Front counter-clockwise
	F2     = Move{Face: Front, Turn: Half} // Front 180

	// Back face moves
	B      = Move{Face: Back, Turn: CW}   // Back clockwise
	BPrime = Move{Face: Back, Turn: CCW}  // Back counter-clockwise
	B2     = Move{Face: Back, Turn: Half} // Back 180
)

// Sexy move: R U R' U' - one of the most common trigger sequences.
// Six repetitions return a cube to its starting state.
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}
