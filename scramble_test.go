package cubesim

import (
	"math/rand/v2"
	"testing"
)

func TestScrambleDefaultLength(t *testing.T) {
	c := New()
	moves := Scramble(c, 0)
	if len(moves) != DefaultScrambleLength {
		t.Errorf("Expected %d moves, got %d", DefaultScrambleLength, len(moves))
	}
	if c.IsSolved() {
		t.Error("Cube should not be solved after scrambling")
	}
}

func TestScrambleNoConsecutiveSameFace(t *testing.T) {
	c := New()
	moves := Scramble(c, 200)
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Fatalf("Moves %d and %d both turn %v", i-1, i, moves[i].Face)
		}
	}
}

func TestScrambleReturnsAppliedSequence(t *testing.T) {
	c := New()
	moves := Scramble(c, 30)

	replay := New()
	replay.ApplyAll(moves)
	if *c != *replay {
		t.Error("Replaying the returned sequence should reproduce the scrambled state")
	}

	c.ApplyAll(InverseSequence(moves))
	if !c.IsSolved() {
		t.Error("Inverting the returned sequence should restore solved")
	}
}

func TestScrambleDeterministicWithSeed(t *testing.T) {
	a := New()
	b := New()
	movesA := ScrambleWithRand(a, 25, rand.New(rand.NewPCG(42, 0)))
	movesB := ScrambleWithRand(b, 25, rand.New(rand.NewPCG(42, 0)))

	if Format(movesA) != Format(movesB) {
		t.Error("Same seed should produce the same scramble")
	}
	if *a != *b {
		t.Error("Same seed should produce the same cube state")
	}
}
