package solver

import "github.com/cubesim/cubesim"

// ring lists the side faces in clockwise order as seen from above. One
// clockwise D turn carries a bottom-layer piece from its face to the
// next face in the ring.
var ring = [4]cubesim.Face{cubesim.Front, cubesim.Right, cubesim.Back, cubesim.Left}

func ringIndex(f cubesim.Face) int {
	for i, r := range ring {
		if r == f {
			return i
		}
	}
	return -1
}

func rightOf(f cubesim.Face) cubesim.Face {
	return ring[(ringIndex(f)+1)%4]
}

func leftOf(f cubesim.Face) cubesim.Face {
	return ring[(ringIndex(f)+3)%4]
}

func oppositeOf(f cubesim.Face) cubesim.Face {
	return ring[(ringIndex(f)+2)%4]
}

// The named sequences below are written for an anchor of Front and are
// re-aimed at any side face with anchored(). U and D moves are absolute;
// F, R, B, L are relative to the anchor.
var (
	// middleLift drops the edge in the slot between the anchor and its
	// right neighbor into the bottom layer, restoring everything else.
	middleLift = mustParse("R' D R")

	// crossHook lifts a bottom edge showing white on the anchor's right
	// neighbor into the anchor's top slot, white side up.
	crossHook = mustParse("R F' R'")

	// cornerEject drops the corner in the top slot between the anchor
	// and its right neighbor into the bottom layer.
	cornerEject = mustParse("R' D' R")

	// cornerInsert drops the bottom corner under a top slot into that
	// slot. Repeated until the corner lands white side up.
	cornerInsert = mustParse("R' D' R D")

	// middleInsertRight moves the bottom edge in front of the anchor
	// into the anchor's right slot. middleInsertLeft is its mirror for
	// the left slot.
	middleInsertRight = mustParse("D' R' D R D F D' F'")
	middleInsertLeft  = mustParse("D L D' L' D' F' D F")

	// crossFlip flips bottom-cross edges: applied to a dot it makes an
	// L, to a correctly held L a line, to a correctly held line a cross.
	crossFlip = mustParse("F' R' D' R D F")

	// cornerSwap exchanges the two bottom corners flanking the face to
	// the anchor's right. Bottom edges move too; they are handled later.
	cornerSwap = mustParse("R' D' R D R F' R2 D R D R' D' R F")

	// edgeCycle cycles three bottom edges, anchor's face to its left to
	// its right, leaving the edge behind the anchor fixed.
	edgeCycle = mustParse("F2 D' L' R F2 L R' D' F2")
)

func mustParse(text string) []cubesim.Move {
	moves, err := cubesim.Parse(text)
	if err != nil {
		panic(err)
	}
	return moves
}

// anchored re-aims a Front-anchored sequence at the given side face:
// F becomes the anchor, R its right neighbor, B its opposite, L its
// left neighbor. U and D pass through unchanged.
func anchored(a cubesim.Face, tmpl []cubesim.Move) []cubesim.Move {
	out := make([]cubesim.Move, len(tmpl))
	for i, m := range tmpl {
		mapped := m
		switch m.Face {
		case cubesim.Front:
			mapped.Face = a
		case cubesim.Right:
			mapped.Face = rightOf(a)
		case cubesim.Back:
			mapped.Face = oppositeOf(a)
		case cubesim.Left:
			mapped.Face = leftOf(a)
		}
		out[i] = mapped
	}
	return out
}

// dTurns returns the minimal move sequence that rotates the bottom
// layer k quarter turns clockwise.
func dTurns(k int) []cubesim.Move {
	switch ((k % 4) + 4) % 4 {
	case 1:
		return []cubesim.Move{cubesim.D}
	case 2:
		return []cubesim.Move{cubesim.D2}
	case 3:
		return []cubesim.Move{cubesim.DPrime}
	default:
		return nil
	}
}
