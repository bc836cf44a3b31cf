package cubesim

// Phase detection for the layer-by-layer solving method.
// Standard orientation: White on top (U), Green in front (F).

// IsTopCrossComplete checks if the white cross is complete.
// The white cross has:
// - 4 white edge facelets on U (positions 1, 3, 5, 7)
// - Each edge's other color matching the adjacent center
func (c *Cube) IsTopCrossComplete() bool {
	uEdges := []int{1, 3, 5, 7}
	for _, pos := range uEdges {
		if c.facelets[Up][pos] != White {
			return false
		}
	}

	// The side sticker of each cross edge sits at index 1 of its face:
	// U[1]-B[1], U[3]-L[1], U[5]-R[1], U[7]-F[1].
	for _, f := range []Face{Front, Back, Right, Left} {
		if c.facelets[f][1] != c.facelets[f][4] {
			return false
		}
	}

	return true
}

// IsTopLayerComplete checks if the entire top layer is complete:
// white cross plus all four white corners in place.
func (c *Cube) IsTopLayerComplete() bool {
	if !c.IsTopCrossComplete() {
		return false
	}

	for i := 0; i < 9; i++ {
		if c.facelets[Up][i] != White {
			return false
		}
	}

	// Top corners show at indices 0 and 2 of each side face.
	for _, f := range []Face{Front, Right, Back, Left} {
		center := c.facelets[f][4]
		if c.facelets[f][0] != center || c.facelets[f][2] != center {
			return false
		}
	}

	return true
}

// IsMiddleLayerComplete checks if the middle layer is complete.
// Middle-layer edges show at positions 3 and 5 on the F, R, B, L faces.
func (c *Cube) IsMiddleLayerComplete() bool {
	if !c.IsTopLayerComplete() {
		return false
	}

	for _, f := range []Face{Front, Right, Back, Left} {
		center := c.facelets[f][4]
		if c.facelets[f][3] != center || c.facelets[f][5] != center {
			return false
		}
	}

	return true
}

// IsBottomCrossComplete checks if the yellow cross is formed on the
// bottom. This only checks that the 4 edge facelets on D are yellow,
// not that the edges are in their correct positions.
func (c *Cube) IsBottomCrossComplete() bool {
	if !c.IsMiddleLayerComplete() {
		return false
	}

	dEdges := []int{1, 3, 5, 7}
	for _, pos := range dEdges {
		if c.facelets[Down][pos] != Yellow {
			return false
		}
	}

	return true
}

// IsBottomFaceComplete checks if the entire D face is yellow. Corners
// are oriented but may still be permuted wrongly.
func (c *Cube) IsBottomFaceComplete() bool {
	if !c.IsBottomCrossComplete() {
		return false
	}

	for i := 0; i < 9; i++ {
		if c.facelets[Down][i] != Yellow {
			return false
		}
	}

	return true
}

// AreBottomCornersPlaced checks if the bottom corners sit in their
// correct positions. With the D face already yellow this reduces to the
// corner stickers on each side face matching that face's center.
func (c *Cube) AreBottomCornersPlaced() bool {
	if !c.IsBottomFaceComplete() {
		return false
	}

	for _, f := range []Face{Front, Right, Back, Left} {
		center := c.facelets[f][4]
		if c.facelets[f][6] != center || c.facelets[f][8] != center {
			return false
		}
	}

	return true
}

// Phase represents how far a cube has progressed through the
// layer-by-layer method.
type Phase int

const (
	PhaseScrambled Phase = iota
	PhaseTopCross
	PhaseTopLayer
	PhaseMiddleLayer
	PhaseBottomCross
	PhaseBottomFace
	PhaseCornersPlaced
	PhaseSolved
)

func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseTopCross:
		return "top_cross"
	case PhaseTopLayer:
		return "top_layer"
	case PhaseMiddleLayer:
		return "middle_layer"
	case PhaseBottomCross:
		return "bottom_cross"
	case PhaseBottomFace:
		return "bottom_face"
	case PhaseCornersPlaced:
		return "corners_placed"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DetectPhase returns the current solve phase based on cube state.
func (c *Cube) DetectPhase() Phase {
	if c.IsSolved() {
		return PhaseSolved
	}
	if c.AreBottomCornersPlaced() {
		return PhaseCornersPlaced
	}
	if c.IsBottomFaceComplete() {
		return PhaseBottomFace
	}
	if c.IsBottomCrossComplete() {
		return PhaseBottomCross
	}
	if c.IsMiddleLayerComplete() {
		return PhaseMiddleLayer
	}
	if c.IsTopLayerComplete() {
		return PhaseTopLayer
	}
	if c.IsTopCrossComplete() {
		return PhaseTopCross
	}
	return PhaseScrambled
}

// Progress reports which phases are complete.
type Progress struct {
	TopCross      bool
	TopLayer      bool
	MiddleLayer   bool
	BottomCross   bool
	BottomFace    bool
	CornersPlaced bool
	Solved        bool
}

// GetProgress returns the current progress through all phases.
func (c *Cube) GetProgress() Progress {
	return Progress{
		TopCross:      c.IsTopCrossComplete(),
		TopLayer:      c.IsTopLayerComplete(),
		MiddleLayer:   c.IsMiddleLayerComplete(),
		BottomCross:   c.IsBottomCrossComplete(),
		BottomFace:    c.IsBottomFaceComplete(),
		CornersPlaced: c.AreBottomCornersPlaced(),
		Solved:        c.IsSolved(),
	}
}
