package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubesim/cubesim"
)

func TestSolveSolvedCubeIsEmpty(t *testing.T) {
	c := cubesim.New()
	solution := Solve(c)
	assert.Empty(t, solution)
	assert.True(t, c.IsSolved())
}

func TestSolveSingleMoves(t *testing.T) {
	for _, face := range cubesim.Faces {
		for _, turn := range []cubesim.Turn{cubesim.CW, cubesim.CCW, cubesim.Half} {
			m := cubesim.Move{Face: face, Turn: turn}
			c := cubesim.New()
			c.Apply(m)
			solution := Solve(c)
			require.True(t, c.IsSolved(), "cube not solved after undoing %v", m)
			assert.NotEmpty(t, solution)
		}
	}
}

func TestSolveFixedScramble(t *testing.T) {
	scramble, err := cubesim.Parse("R' B2 L F U' B L2 D R2 F' U B' D2 L' U2")
	require.NoError(t, err)

	c := cubesim.New()
	c.ApplyAll(scramble)
	require.False(t, c.IsSolved())

	solution := Solve(c)
	require.True(t, c.IsSolved())

	// The returned record must reproduce the solve on a fresh cube.
	replay := cubesim.New()
	replay.ApplyAll(scramble)
	replay.ApplyAll(solution)
	assert.True(t, replay.IsSolved())
}

func TestSolveIsIdempotent(t *testing.T) {
	c := cubesim.New()
	cubesim.ScrambleWithRand(c, 30, rand.New(rand.NewPCG(1, 1)))
	Solve(c)
	require.True(t, c.IsSolved())

	again := Solve(c)
	assert.Empty(t, again)
	assert.True(t, c.IsSolved())
}

func TestSolveRandomScrambles(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		c := cubesim.New()
		scramble := cubesim.ScrambleWithRand(c, 25, rand.New(rand.NewPCG(seed, 0)))
		Solve(c)
		require.True(t, c.IsSolved(), "seed %d scramble %s", seed, cubesim.Format(scramble))
	}
}

func TestSolvePhaseOrder(t *testing.T) {
	// Each phase leaves the previous phases intact.
	c := cubesim.New()
	cubesim.ScrambleWithRand(c, 25, rand.New(rand.NewPCG(9, 9)))

	r := &run{cube: c}
	r.topCross()
	require.True(t, c.IsTopCrossComplete())
	r.topCorners()
	require.True(t, c.IsTopLayerComplete())
	r.middleEdges()
	require.True(t, c.IsMiddleLayerComplete())
	r.bottomCross()
	require.True(t, c.IsBottomCrossComplete())
	r.bottomFace()
	require.True(t, c.IsBottomFaceComplete())
	r.bottomCorners()
	require.True(t, c.AreBottomCornersPlaced())
	r.bottomEdges()
	require.True(t, c.IsSolved())
}

func TestCornerSwapIsInvolution(t *testing.T) {
	c := cubesim.New()
	c.ApplyAll(anchored(cubesim.Front, cornerSwap))
	require.False(t, c.IsSolved())
	c.ApplyAll(anchored(cubesim.Front, cornerSwap))
	assert.True(t, c.IsSolved())
}

func TestCornerSwapPreservesUpperLayers(t *testing.T) {
	for _, a := range ring {
		c := cubesim.New()
		c.ApplyAll(anchored(a, cornerSwap))
		assert.True(t, c.IsMiddleLayerComplete(), "anchor %v", a)
		assert.True(t, c.IsBottomCrossComplete(), "anchor %v", a)
		assert.True(t, c.IsBottomFaceComplete(), "anchor %v", a)
	}
}

func TestCornerSwapExchangesRightPair(t *testing.T) {
	c := cubesim.New()
	c.ApplyAll(anchored(cubesim.Front, cornerSwap))
	// The two corners flanking the right face moved, the other two did not.
	assert.False(t, bottomCornerPlaced(c, cubesim.Front))
	assert.False(t, bottomCornerPlaced(c, cubesim.Right))
	assert.True(t, bottomCornerPlaced(c, cubesim.Back))
	assert.True(t, bottomCornerPlaced(c, cubesim.Left))
}

func TestEdgeCycleIsPureThreeCycle(t *testing.T) {
	c := cubesim.New()
	c.ApplyAll(anchored(cubesim.Front, edgeCycle))
	require.False(t, c.IsSolved())
	assert.True(t, c.AreBottomCornersPlaced(), "corners must not move")
	assert.True(t, bottomEdgeFor(cubesim.Back).side.colorOn(c) == cubesim.SolvedColor(cubesim.Back),
		"the edge behind the anchor must stay fixed")

	// A 3-cycle closes after three applications.
	c.ApplyAll(anchored(cubesim.Front, edgeCycle))
	c.ApplyAll(anchored(cubesim.Front, edgeCycle))
	assert.True(t, c.IsSolved())
}

func TestCrossFlipPreservesUpperLayers(t *testing.T) {
	c := cubesim.New()
	c.ApplyAll(anchored(cubesim.Front, crossFlip))
	assert.True(t, c.IsMiddleLayerComplete())
}

func TestAnchoredRemapsFaces(t *testing.T) {
	tmpl := mustParse("F R B L U D")
	got := anchored(cubesim.Right, tmpl)
	want := []cubesim.Move{
		{Face: cubesim.Right, Turn: cubesim.CW},
		{Face: cubesim.Back, Turn: cubesim.CW},
		{Face: cubesim.Left, Turn: cubesim.CW},
		{Face: cubesim.Front, Turn: cubesim.CW},
		{Face: cubesim.Up, Turn: cubesim.CW},
		{Face: cubesim.Down, Turn: cubesim.CW},
	}
	assert.Equal(t, want, got)
}

func TestRingNeighbors(t *testing.T) {
	assert.Equal(t, cubesim.Right, rightOf(cubesim.Front))
	assert.Equal(t, cubesim.Front, rightOf(cubesim.Left))
	assert.Equal(t, cubesim.Left, leftOf(cubesim.Front))
	assert.Equal(t, cubesim.Back, oppositeOf(cubesim.Front))
	assert.Equal(t, cubesim.Left, oppositeOf(cubesim.Right))
}

func TestDTurns(t *testing.T) {
	assert.Empty(t, dTurns(0))
	assert.Equal(t, []cubesim.Move{cubesim.D}, dTurns(1))
	assert.Equal(t, []cubesim.Move{cubesim.D2}, dTurns(2))
	assert.Equal(t, []cubesim.Move{cubesim.DPrime}, dTurns(3))
	assert.Equal(t, []cubesim.Move{cubesim.DPrime}, dTurns(-1))
	assert.Equal(t, []cubesim.Move{cubesim.D}, dTurns(5))
}
