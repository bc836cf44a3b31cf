package cubesim

// Color represents a facelet color.
type Color uint8

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face identifies one of the six faces of the cube.
type Face uint8

const (
	Up    Face = 0
	Down  Face = 1
	Front Face = 2
	Back  Face = 3
	Right Face = 4
	Left  Face = 5
)

// Faces lists all six faces in index order.
var Faces = [6]Face{Up, Down, Front, Back, Right, Left}

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Down:
		return "D"
	case Front:
		return "F"
	case Back:
		return "B"
	case Right:
		return "R"
	case Left:
		return "L"
	default:
		return "?"
	}
}

// SolvedColor returns the color of a face in the solved state.
func SolvedColor(f Face) Color {
	switch f {
	case Up:
		return White
	case Down:
		return Yellow
	case Front:
		return Green
	case Back:
		return Blue
	case Right:
		return Red
	case Left:
		return Orange
	default:
		return White
	}
}

// Cube represents a 3x3 cube.
// Each face has 9 facelets indexed row-major as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves. All
// mutation goes through Apply, which implements each of the 18 elementary
// moves as a permutation of facelets, so every color keeps exactly nine
// facelets at all times.
type Cube struct {
	facelets [6][9]Color
}

// New creates a solved cube with the standard orientation:
// white on top, green in front.
func New() *Cube {
	c := &Cube{}
	for _, f := range Faces {
		color := SolvedColor(f)
		for i := 0; i < 9; i++ {
			c.facelets[f][i] = color
		}
	}
	return c
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.facelets = c.facelets
	return clone
}

// FaceletAt returns the color at the given face, row, and column.
// Rows and columns are numbered 0..2 top-to-bottom and left-to-right as
// seen facing that face in the reference orientation.
func (c *Cube) FaceletAt(f Face, row, col int) Color {
	return c.facelets[f][row*3+col]
}

// IsFaceUniform reports whether all nine facelets of a face share the
// face's center color.
func (c *Cube) IsFaceUniform(f Face) bool {
	center := c.facelets[f][4]
	for i := 0; i < 9; i++ {
		if c.facelets[f][i] != center {
			return false
		}
	}
	return true
}

// SameColor reports whether two facelets share a color.
func (c *Cube) SameColor(f1 Face, row1, col1 int, f2 Face, row2, col2 int) bool {
	return c.FaceletAt(f1, row1, col1) == c.FaceletAt(f2, row2, col2)
}

// IsSolved reports whether every face is uniform in its solved color.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		expected := SolvedColor(f)
		for i := 0; i < 9; i++ {
			if c.facelets[f][i] != expected {
				return false
			}
		}
	}
	return true
}

// Apply applies a move to the cube. Face and turn amount are closed
// enumerations, so there is no invalid-input case at this layer.
// A half turn is two quarter-CW turns by definition.
func (c *Cube) Apply(m Move) {
	switch m.Turn {
	case CW:
		c.quarterCW(m.Face)
	case CCW:
		c.quarterCW(m.Face)
		c.quarterCW(m.Face)
		c.quarterCW(m.Face)
	case Half:
		c.quarterCW(m.Face)
		c.quarterCW(m.Face)
	}
}

// ApplyAll applies a sequence of moves in order.
func (c *Cube) ApplyAll(moves []Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// quarterCW is the primitive all 18 moves reduce to: rotate the face's
// own grid 90 degrees clockwise and cycle the four adjacent strips.
func (c *Cube) quarterCW(f Face) {
	c.rotateFaceCW(f)
	c.cycleStripsCW(f)
}

// rotateFaceCW rotates a face's own 3x3 grid 90 degrees clockwise.
// Corners cycle 0->2->8->6->0, edges 1->5->7->3->1, center fixed.
func (c *Cube) rotateFaceCW(f Face) {
	g := &c.facelets[f]
	tmp := g[0]
	g[0] = g[6]
	g[6] = g[8]
	g[8] = g[2]
	g[2] = tmp

	tmp = g[1]
	g[1] = g[3]
	g[3] = g[7]
	g[7] = g[5]
	g[5] = tmp
}

// cycleStripsCW cycles the four boundary strips adjacent to a face in the
// clockwise direction. The index tables follow one fixed spatial
// convention: every face's grid is read facing that face with Up above
// (Back is read from behind the cube). The tables are validated by the
// order-4 and inverse law tests rather than trusted per-face.
func (c *Cube) cycleStripsCW(f Face) {
	switch f {
	case Up:
		c.cycle4(
			strip{Front, 0, 1, 2},
			strip{Left, 0, 1, 2},
			strip{Back, 0, 1, 2},
			strip{Right, 0, 1, 2},
		)
	case Down:
		c.cycle4(
			strip{Front, 6, 7, 8},
			strip{Right, 6, 7, 8},
			strip{Back, 6, 7, 8},
			strip{Left, 6, 7, 8},
		)
	case Front:
		c.cycle4(
			strip{Up, 6, 7, 8},
			strip{Right, 0, 3, 6},
			strip{Down, 2, 1, 0},
			strip{Left, 8, 5, 2},
		)
	case Back:
		c.cycle4(
			strip{Up, 2, 1, 0},
			strip{Left, 0, 3, 6},
			strip{Down, 6, 7, 8},
			strip{Right, 8, 5, 2},
		)
	case Right:
		c.cycle4(
			strip{Up, 2, 5, 8},
			strip{Back, 6, 3, 0},
			strip{Down, 2, 5, 8},
			strip{Front, 2, 5, 8},
		)
	case Left:
		c.cycle4(
			strip{Up, 0, 3, 6},
			strip{Front, 0, 3, 6},
			strip{Down, 0, 3, 6},
			strip{Back, 8, 5, 2},
		)
	}
}

// strip addresses three facelets on one face.
type strip struct {
	face       Face
	i0, i1, i2 int
}

// cycle4 cycles four strips: s1 receives s4, s4 receives s3, s3 receives
// s2, and s2 receives s1.
func (c *Cube) cycle4(s1, s2, s3, s4 strip) {
	t0 := c.facelets[s1.face][s1.i0]
	t1 := c.facelets[s1.face][s1.i1]
	t2 := c.facelets[s1.face][s1.i2]

	c.facelets[s1.face][s1.i0] = c.facelets[s4.face][s4.i0]
	c.facelets[s1.face][s1.i1] = c.facelets[s4.face][s4.i1]
	c.facelets[s1.face][s1.i2] = c.facelets[s4.face][s4.i2]

	c.facelets[s4.face][s4.i0] = c.facelets[s3.face][s3.i0]
	c.facelets[s4.face][s4.i1] = c.facelets[s3.face][s3.i1]
	c.facelets[s4.face][s4.i2] = c.facelets[s3.face][s3.i2]

	c.facelets[s3.face][s3.i0] = c.facelets[s2.face][s2.i0]
	c.facelets[s3.face][s3.i1] = c.facelets[s2.face][s2.i1]
	c.facelets[s3.face][s3.i2] = c.facelets[s2.face][s2.i2]

	c.facelets[s2.face][s2.i0] = t0
	c.facelets[s2.face][s2.i1] = t1
	c.facelets[s2.face][s2.i2] = t2
}

// String returns an unfolded-net text representation of the cube.
func (c *Cube) String() string {
	result := ""

	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.facelets[Up][row*3+col].String() + " "
		}
		result += "\n"
	}

	for row := 0; row < 3; row++ {
		for _, f := range []Face{Left, Front, Right, Back} {
			for col := 0; col < 3; col++ {
				result += c.facelets[f][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.facelets[Down][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}
