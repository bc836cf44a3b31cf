package cubesim

import (
	"math/rand/v2"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	// No elementary move is a no-op on the solved state.
	for _, face := range Faces {
		for _, turn := range []Turn{CW, CCW, Half} {
			c := New()
			m := Move{Face: face, Turn: turn}
			c.Apply(m)
			if c.IsSolved() {
				t.Errorf("Cube should not be solved after %v", m)
			}
		}
	}
}

func TestQuarterTurnOrderFour_AllFaces(t *testing.T) {
	for _, face := range Faces {
		c := New()
		m := Move{Face: face, Turn: CW}
		for i := 0; i < 4; i++ {
			c.Apply(m)
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestHalfTurnEqualsTwoQuarters(t *testing.T) {
	for _, face := range Faces {
		a := New()
		a.Apply(Move{Face: face, Turn: Half})

		b := New()
		b.Apply(Move{Face: face, Turn: CW})
		b.Apply(Move{Face: face, Turn: CW})

		if *a != *b {
			t.Errorf("%v2 should equal %v %v", face, face, face)
		}
	}
}

func TestMoveThenInverseRestores(t *testing.T) {
	for _, face := range Faces {
		for _, turn := range []Turn{CW, CCW, Half} {
			c := New()
			m := Move{Face: face, Turn: turn}
			c.Apply(m)
			c.Apply(m.Inverse())
			if !c.IsSolved() {
				t.Errorf("%v then %v should return to solved", m, m.Inverse())
			}
		}
	}
}

func TestColorConservation(t *testing.T) {
	// Every move permutes facelets, so each color keeps exactly 9.
	c := New()
	ScrambleWithRand(c, 50, rand.New(rand.NewPCG(7, 7)))

	counts := make(map[Color]int)
	for _, f := range Faces {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				counts[c.FaceletAt(f, row, col)]++
			}
		}
	}
	for _, color := range []Color{White, Yellow, Green, Blue, Red, Orange} {
		if counts[color] != 9 {
			t.Errorf("Color %v has %d facelets, want 9", color, counts[color])
		}
	}
}

func TestCentersNeverMove(t *testing.T) {
	c := New()
	Scramble(c, 50)
	for _, f := range Faces {
		if c.FaceletAt(f, 1, 1) != SolvedColor(f) {
			t.Errorf("Center of %v moved", f)
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := New()
	for i := 0; i < 6; i++ {
		c.ApplyAll(SexyMove)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestInverseSequenceRestores(t *testing.T) {
	c := New()
	moves, err := Parse("R U2 F' D L2 B R' U")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	c.ApplyAll(moves)
	if c.IsSolved() {
		t.Error("Cube should be scrambled after moves")
	}
	c.ApplyAll(InverseSequence(moves))
	if !c.IsSolved() {
		t.Error("Cube should be solved after applying the inverse sequence")
		t.Log(c.String())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	c.Apply(R)
	clone := c.Clone()
	clone.Apply(U)
	if *c == *clone {
		t.Error("Mutating a clone should not affect the original")
	}
	clone.Apply(UPrime)
	if *c != *clone {
		t.Error("Clone should equal original after undoing its extra move")
	}
}

func TestTopCrossDetection(t *testing.T) {
	c := New()
	if !c.IsTopCrossComplete() {
		t.Error("Solved cube should have top cross complete")
	}

	c.Apply(R)
	if c.IsTopCrossComplete() {
		t.Error("Top cross should be broken after R move")
	}
}

func TestTopLayerDetection(t *testing.T) {
	c := New()
	if !c.IsTopLayerComplete() {
		t.Error("Solved cube should have top layer complete")
	}

	c.Apply(R)
	if c.IsTopLayerComplete() {
		t.Error("Top layer should be broken after R move")
	}
}

func TestDownTurnKeepsTopCross(t *testing.T) {
	// A D turn only touches the bottom layer.
	c := New()
	c.Apply(D)
	if !c.IsTopCrossComplete() {
		t.Error("D move should not break the top cross")
	}
	if !c.IsTopLayerComplete() {
		t.Error("D move should not break the top layer")
	}
	if !c.IsMiddleLayerComplete() {
		t.Error("D move should not break the middle layer")
	}
	if !c.IsBottomCrossComplete() {
		t.Error("D move should not break the bottom cross")
	}
	if !c.IsBottomFaceComplete() {
		t.Error("D move should not break the bottom face")
	}
	if c.AreBottomCornersPlaced() {
		t.Error("D move should displace the bottom corners")
	}
}

func TestPhaseDetection(t *testing.T) {
	c := New()
	if phase := c.DetectPhase(); phase != PhaseSolved {
		t.Errorf("Solved cube should detect as PhaseSolved, got %v", phase)
	}

	c.Apply(D)
	if phase := c.DetectPhase(); phase != PhaseBottomFace {
		t.Errorf("After D, expected PhaseBottomFace, got %v", phase)
	}

	c.Apply(R)
	if phase := c.DetectPhase(); phase != PhaseScrambled {
		t.Errorf("After D R, expected PhaseScrambled, got %v", phase)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}

	tr.Apply(R)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
}

func TestTrackerPhaseCallback(t *testing.T) {
	tr := NewTracker()
	tr.Reset()

	var phaseChanges []string
	tr.SetPhaseCallback(func(phase Phase, phaseKey string) {
		phaseChanges = append(phaseChanges, phaseKey)
	})

	tr.ApplyAll([]Move{R, U, F})

	if tr.CurrentPhase() != PhaseScrambled {
		t.Errorf("Expected phase scrambled, got %v", tr.CurrentPhase())
	}

	tr.ApplyAll([]Move{FPrime, UPrime, RPrime})

	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reversing moves")
	}
	if len(phaseChanges) == 0 {
		t.Error("Callback should have fired on the way back to solved")
	}
	if last := phaseChanges[len(phaseChanges)-1]; last != "solved" {
		t.Errorf("Last phase callback should be solved, got %s", last)
	}
}
