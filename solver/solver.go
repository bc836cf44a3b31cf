package solver

import "github.com/cubesim/cubesim"

// Solve mutates the cube to the solved state and returns the moves it
// applied, in order. A solved cube yields an empty sequence. The
// solution follows the layer-by-layer method and is not minimal.
func Solve(c *cubesim.Cube) []cubesim.Move {
	r := &run{cube: c}
	if c.IsSolved() {
		return nil
	}
	r.topCross()
	r.topCorners()
	r.middleEdges()
	r.bottomCross()
	r.bottomFace()
	r.bottomCorners()
	r.bottomEdges()
	return r.moves
}

// run accumulates the solution while mutating the cube. Every move goes
// through apply so the returned record always matches what was done.
type run struct {
	cube  *cubesim.Cube
	moves []cubesim.Move
}

func (r *run) apply(moves ...cubesim.Move) {
	for _, m := range moves {
		r.cube.Apply(m)
		r.moves = append(r.moves, m)
	}
}

// topCross places the four white edges around the top center, each
// aligned with its side center.
func (r *run) topCross() {
	for _, target := range ring {
		r.solveCrossEdge(target)
	}
}

// solveCrossEdge routes one white edge home. Edges elsewhere in the top
// or middle layer are first dropped into the free bottom layer, then
// brought under the target slot and turned up.
func (r *run) solveCrossEdge(target cubesim.Face) {
	c := r.cube
	want := cubesim.SolvedColor(target)
	for guard := 0; guard < 8; guard++ {
		slot := topEdgeFor(target)
		if slot.primary.colorOn(c) == cubesim.White && slot.side.colorOn(c) == want {
			return
		}

		if f, ok := findTopEdge(c, cubesim.White, want); ok {
			// in the top layer but wrong slot or flipped: push it down
			r.apply(cubesim.Move{Face: f, Turn: cubesim.Half})
			continue
		}
		if f, ok := findMiddleEdge(c, cubesim.White, want); ok {
			r.apply(anchored(f, middleLift)...)
			continue
		}

		f, _ := findBottomEdge(c, cubesim.White, want)
		if bottomEdgeFor(f).primary.colorOn(c) == cubesim.White {
			// white underneath: line up below the slot and flip straight up
			r.apply(dTurns(ringIndex(target) - ringIndex(f))...)
			r.apply(cubesim.Move{Face: target, Turn: cubesim.Half})
		} else {
			// white on the side: line up right of the slot and hook it in
			helper := rightOf(target)
			r.apply(dTurns(ringIndex(helper) - ringIndex(f))...)
			r.apply(anchored(target, crossHook)...)
		}
	}
}

// topCorners places the four white corners, completing the top layer.
func (r *run) topCorners() {
	for _, a := range ring {
		r.solveTopCorner(a)
	}
}

// solveTopCorner routes the white corner belonging between a and
// rightOf(a). A corner stuck in the top layer is ejected first; from
// the bottom layer it is parked under its slot and pumped in until the
// white sticker faces up.
func (r *run) solveTopCorner(a cubesim.Face) {
	c := r.cube
	b := rightOf(a)
	colA, colB := cubesim.SolvedColor(a), cubesim.SolvedColor(b)
	for guard := 0; guard < 8; guard++ {
		if topCornerSolved(c, a) {
			return
		}

		if f, ok := findTopCorner(c, cubesim.White, colA, colB); ok {
			r.apply(anchored(f, cornerEject)...)
			continue
		}

		f, _ := findBottomCorner(c, cubesim.White, colA, colB)
		r.apply(dTurns(ringIndex(a) - ringIndex(f))...)
		for rep := 0; rep < 6 && !topCornerSolved(c, a); rep++ {
			r.apply(anchored(a, cornerInsert)...)
		}
	}
}

func topCornerSolved(c *cubesim.Cube, a cubesim.Face) bool {
	pos := topCornerFor(a)
	return pos.primary.colorOn(c) == cubesim.White &&
		pos.a.colorOn(c) == cubesim.SolvedColor(a) &&
		pos.b.colorOn(c) == cubesim.SolvedColor(rightOf(a))
}

// middleEdges fills the four middle-layer slots.
func (r *run) middleEdges() {
	for _, f := range ring {
		r.solveMiddleEdge(f)
	}
}

// solveMiddleEdge routes the edge belonging between f and rightOf(f).
// From the bottom layer the edge is aligned so its side sticker matches
// a center, then inserted right or left depending on where its bottom
// sticker belongs. An edge stuck in a middle slot is displaced by
// inserting over it, which pops it into the bottom layer.
func (r *run) solveMiddleEdge(f cubesim.Face) {
	c := r.cube
	g := rightOf(f)
	x, y := cubesim.SolvedColor(f), cubesim.SolvedColor(g)
	for guard := 0; guard < 6; guard++ {
		slot := middleEdgeFor(f)
		if slot.primary.colorOn(c) == x && slot.side.colorOn(c) == y {
			return
		}

		if s, ok := findBottomEdge(c, x, y); ok {
			pos := bottomEdgeFor(s)
			sideColor := pos.side.colorOn(c)
			bottomColor := pos.primary.colorOn(c)
			anchor := faceOfColor(sideColor)
			r.apply(dTurns(ringIndex(anchor) - ringIndex(s))...)
			if bottomColor == cubesim.SolvedColor(rightOf(anchor)) {
				r.apply(anchored(anchor, middleInsertRight)...)
			} else {
				r.apply(anchored(anchor, middleInsertLeft)...)
			}
			continue
		}

		s, _ := findMiddleEdge(c, x, y)
		r.apply(anchored(s, middleInsertRight)...)
	}
}

// bottomCross orients the bottom edges until the yellow cross shows.
// Each pass flips two edges; the anchor is chosen so a dot becomes an
// L, an L becomes a line, and a line becomes the cross.
func (r *run) bottomCross() {
	c := r.cube
	for guard := 0; guard < 6; guard++ {
		yf := bottomEdgeFor(cubesim.Front).primary.colorOn(c) == cubesim.Yellow
		yr := bottomEdgeFor(cubesim.Right).primary.colorOn(c) == cubesim.Yellow
		yb := bottomEdgeFor(cubesim.Back).primary.colorOn(c) == cubesim.Yellow
		yl := bottomEdgeFor(cubesim.Left).primary.colorOn(c) == cubesim.Yellow

		if yf && yr && yb && yl {
			return
		}

		anchor := cubesim.Front
		switch {
		case yb && yl:
			anchor = cubesim.Front
		case yl && yf:
			anchor = cubesim.Right
		case yf && yr:
			anchor = cubesim.Back
		case yr && yb:
			anchor = cubesim.Left
		case yl && yr:
			anchor = cubesim.Front
		case yf && yb:
			anchor = cubesim.Right
		}
		r.apply(anchored(anchor, crossFlip)...)
	}
}

// bottomFace twists the bottom corners until the whole face is yellow.
// Each corner is twisted in place with double sexy moves, then the
// bottom layer turns to bring the next corner to the working spot. The
// corner twist sum makes the total number of sexy moves a multiple of
// six, so the layers above come back untouched.
func (r *run) bottomFace() {
	c := r.cube
	if c.IsBottomFaceComplete() {
		return
	}
	workSpot := sticker{cubesim.Down, 2}
	for i := 0; i < 4; i++ {
		for guard := 0; guard < 4 && workSpot.colorOn(c) != cubesim.Yellow; guard++ {
			r.apply(cubesim.SexyMove...)
			r.apply(cubesim.SexyMove...)
		}
		r.apply(cubesim.D)
	}
}

// bottomCorners permutes the bottom corners into place. Each pass first
// spins the bottom layer to the rotation with the most corners already
// placed, then swaps one adjacent misplaced pair.
func (r *run) bottomCorners() {
	c := r.cube
	for guard := 0; guard < 8; guard++ {
		bestK, bestPlaced := 0, -1
		for k := 0; k < 4; k++ {
			probe := c.Clone()
			probe.ApplyAll(dTurns(k))
			if n := placedBottomCorners(probe); n > bestPlaced {
				bestK, bestPlaced = k, n
			}
		}
		r.apply(dTurns(bestK)...)
		if bestPlaced == 4 {
			return
		}
		r.apply(anchored(swapAnchor(c), cornerSwap)...)
	}
}

func placedBottomCorners(c *cubesim.Cube) int {
	n := 0
	for _, f := range ring {
		if bottomCornerPlaced(c, f) {
			n++
		}
	}
	return n
}

func bottomCornerPlaced(c *cubesim.Cube, f cubesim.Face) bool {
	pos := bottomCornerFor(f)
	return pos.a.colorOn(c) == cubesim.SolvedColor(f) &&
		pos.b.colorOn(c) == cubesim.SolvedColor(rightOf(f))
}

// swapAnchor picks the anchor for cornerSwap: a face whose slot and
// right-neighbor slot are both misplaced, falling back to the first
// misplaced slot when the two wrong corners sit diagonally.
func swapAnchor(c *cubesim.Cube) cubesim.Face {
	for _, f := range ring {
		if !bottomCornerPlaced(c, f) && !bottomCornerPlaced(c, rightOf(f)) {
			return f
		}
	}
	for _, f := range ring {
		if !bottomCornerPlaced(c, f) {
			return f
		}
	}
	return cubesim.Front
}

// bottomEdges cycles the bottom edges into place, finishing the solve.
// With one edge already home the cycle is aimed to keep it fixed; with
// none home any cycle creates a solved edge for the next pass.
func (r *run) bottomEdges() {
	c := r.cube
	for guard := 0; guard < 6; guard++ {
		var solved []cubesim.Face
		for _, f := range ring {
			if bottomEdgeFor(f).side.colorOn(c) == cubesim.SolvedColor(f) {
				solved = append(solved, f)
			}
		}
		if len(solved) == 4 {
			return
		}
		anchor := cubesim.Front
		if len(solved) >= 1 {
			anchor = oppositeOf(solved[0])
		}
		r.apply(anchored(anchor, edgeCycle)...)
	}
}

// faceOfColor returns the side face whose center has the given color.
func faceOfColor(col cubesim.Color) cubesim.Face {
	for _, f := range ring {
		if cubesim.SolvedColor(f) == col {
			return f
		}
	}
	return cubesim.Front
}

func findTopEdge(c *cubesim.Cube, x, y cubesim.Color) (cubesim.Face, bool) {
	for _, f := range ring {
		if edgeHas(c, topEdgeFor(f), x, y) {
			return f, true
		}
	}
	return 0, false
}

func findMiddleEdge(c *cubesim.Cube, x, y cubesim.Color) (cubesim.Face, bool) {
	for _, f := range ring {
		if edgeHas(c, middleEdgeFor(f), x, y) {
			return f, true
		}
	}
	return 0, false
}

func findBottomEdge(c *cubesim.Cube, x, y cubesim.Color) (cubesim.Face, bool) {
	for _, f := range ring {
		if edgeHas(c, bottomEdgeFor(f), x, y) {
			return f, true
		}
	}
	return 0, false
}

func findTopCorner(c *cubesim.Cube, x, y, z cubesim.Color) (cubesim.Face, bool) {
	for _, f := range ring {
		if cornerHas(c, topCornerFor(f), x, y, z) {
			return f, true
		}
	}
	return 0, false
}

func findBottomCorner(c *cubesim.Cube, x, y, z cubesim.Color) (cubesim.Face, bool) {
	for _, f := range ring {
		if cornerHas(c, bottomCornerFor(f), x, y, z) {
			return f, true
		}
	}
	return 0, false
}
