// Package solver produces layer-by-layer solutions for scrambled cubes.
//
// Solve works through seven phases in a fixed order: top cross, top
// corners, middle edges, bottom cross, bottom face, bottom corner
// permutation, bottom edge permutation. Each phase inspects the cube,
// dispatches on the position of the pieces it is responsible for, and
// applies short named sequences until its completion predicate holds.
// Solutions are correct but not minimal.
package solver

import "github.com/cubesim/cubesim"

// sticker addresses one facelet by face and row-major index 0..8.
type sticker struct {
	face cubesim.Face
	idx  int
}

func (s sticker) colorOn(c *cubesim.Cube) cubesim.Color {
	return c.FaceletAt(s.face, s.idx/3, s.idx%3)
}

// edgePos is one of the 12 edge positions. The primary sticker is the
// U/D sticker for top- and bottom-layer edges; for middle-layer edges
// it is the sticker on the earlier face in the F, R, B, L ring.
type edgePos struct {
	primary sticker
	side    sticker
}

// Edge positions, grouped by layer. The side sticker of a top or bottom
// edge sits at index 1 or 7 of the adjacent face; middle edges show at
// indices 3 and 5 of their two faces.
var (
	edgeUF = edgePos{sticker{cubesim.Up, 7}, sticker{cubesim.Front, 1}}
	edgeUR = edgePos{sticker{cubesim.Up, 5}, sticker{cubesim.Right, 1}}
	edgeUB = edgePos{sticker{cubesim.Up, 1}, sticker{cubesim.Back, 1}}
	edgeUL = edgePos{sticker{cubesim.Up, 3}, sticker{cubesim.Left, 1}}

	edgeFR = edgePos{sticker{cubesim.Front, 5}, sticker{cubesim.Right, 3}}
	edgeRB = edgePos{sticker{cubesim.Right, 5}, sticker{cubesim.Back, 3}}
	edgeBL = edgePos{sticker{cubesim.Back, 5}, sticker{cubesim.Left, 3}}
	edgeLF = edgePos{sticker{cubesim.Left, 5}, sticker{cubesim.Front, 3}}

	edgeDF = edgePos{sticker{cubesim.Down, 1}, sticker{cubesim.Front, 7}}
	edgeDR = edgePos{sticker{cubesim.Down, 5}, sticker{cubesim.Right, 7}}
	edgeDB = edgePos{sticker{cubesim.Down, 7}, sticker{cubesim.Back, 7}}
	edgeDL = edgePos{sticker{cubesim.Down, 3}, sticker{cubesim.Left, 7}}
)

// topEdgeFor returns the top-layer edge position whose side face is f.
func topEdgeFor(f cubesim.Face) edgePos {
	switch f {
	case cubesim.Front:
		return edgeUF
	case cubesim.Right:
		return edgeUR
	case cubesim.Back:
		return edgeUB
	default:
		return edgeUL
	}
}

// bottomEdgeFor returns the bottom-layer edge position whose side face is f.
func bottomEdgeFor(f cubesim.Face) edgePos {
	switch f {
	case cubesim.Front:
		return edgeDF
	case cubesim.Right:
		return edgeDR
	case cubesim.Back:
		return edgeDB
	default:
		return edgeDL
	}
}

// middleEdgeFor returns the middle-layer edge position in the slot
// between f and rightOf(f).
func middleEdgeFor(f cubesim.Face) edgePos {
	switch f {
	case cubesim.Front:
		return edgeFR
	case cubesim.Right:
		return edgeRB
	case cubesim.Back:
		return edgeBL
	default:
		return edgeLF
	}
}

// cornerPos is one of the 8 corner positions. The primary sticker is on
// U or D; a and b are the side stickers on the faces ra and rb, where
// rb is rightOf(ra) when read going around the ring.
type cornerPos struct {
	primary sticker
	a, b    sticker
}

var (
	cornerUFR = cornerPos{sticker{cubesim.Up, 8}, sticker{cubesim.Front, 2}, sticker{cubesim.Right, 0}}
	cornerURB = cornerPos{sticker{cubesim.Up, 2}, sticker{cubesim.Right, 2}, sticker{cubesim.Back, 0}}
	cornerUBL = cornerPos{sticker{cubesim.Up, 0}, sticker{cubesim.Back, 2}, sticker{cubesim.Left, 0}}
	cornerULF = cornerPos{sticker{cubesim.Up, 6}, sticker{cubesim.Left, 2}, sticker{cubesim.Front, 0}}

	cornerDFR = cornerPos{sticker{cubesim.Down, 2}, sticker{cubesim.Front, 8}, sticker{cubesim.Right, 6}}
	cornerDRB = cornerPos{sticker{cubesim.Down, 8}, sticker{cubesim.Right, 8}, sticker{cubesim.Back, 6}}
	cornerDBL = cornerPos{sticker{cubesim.Down, 6}, sticker{cubesim.Back, 8}, sticker{cubesim.Left, 6}}
	cornerDLF = cornerPos{sticker{cubesim.Down, 0}, sticker{cubesim.Left, 8}, sticker{cubesim.Front, 6}}
)

// topCornerFor returns the top corner position in the slot between f
// and rightOf(f).
func topCornerFor(f cubesim.Face) cornerPos {
	switch f {
	case cubesim.Front:
		return cornerUFR
	case cubesim.Right:
		return cornerURB
	case cubesim.Back:
		return cornerUBL
	default:
		return cornerULF
	}
}

// bottomCornerFor returns the bottom corner position in the slot
// between f and rightOf(f).
func bottomCornerFor(f cubesim.Face) cornerPos {
	switch f {
	case cubesim.Front:
		return cornerDFR
	case cubesim.Right:
		return cornerDRB
	case cubesim.Back:
		return cornerDBL
	default:
		return cornerDLF
	}
}

// edgeHas reports whether the edge at pos carries exactly the two given
// colors, in either orientation.
func edgeHas(c *cubesim.Cube, pos edgePos, x, y cubesim.Color) bool {
	p, s := pos.primary.colorOn(c), pos.side.colorOn(c)
	return (p == x && s == y) || (p == y && s == x)
}

// cornerHas reports whether the corner at pos carries exactly the three
// given colors, in any orientation.
func cornerHas(c *cubesim.Cube, pos cornerPos, x, y, z cubesim.Color) bool {
	got := [3]cubesim.Color{pos.primary.colorOn(c), pos.a.colorOn(c), pos.b.colorOn(c)}
	want := [3]cubesim.Color{x, y, z}
	var count [6]int
	for i := 0; i < 3; i++ {
		count[got[i]]++
		count[want[i]]--
	}
	for _, n := range count {
		if n != 0 {
			return false
		}
	}
	return true
}
