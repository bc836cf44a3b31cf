package cubesim

// Tracker wraps a Cube and provides phase change detection.
type Tracker struct {
	cube          *Cube
	lastPhase     Phase
	highestPhase  Phase // Monotonic - never goes backwards
	phaseCallback func(phase Phase, phaseKey string)
}

// NewTracker creates a new cube tracker starting from a solved state.
func NewTracker() *Tracker {
	return &Tracker{
		cube:      New(),
		lastPhase: PhaseSolved,
	}
}

// SetPhaseCallback sets a callback that fires when a phase is completed.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase, phaseKey string)) {
	t.phaseCallback = cb
}

// Reset resets the tracker to a solved cube state.
func (t *Tracker) Reset() {
	t.cube = New()
	t.lastPhase = PhaseSolved
	t.highestPhase = PhaseScrambled
}

// Apply applies a move and checks for phase transitions.
func (t *Tracker) Apply(m Move) {
	t.cube.Apply(m)
	t.checkPhaseTransition()
}

// ApplyAll applies multiple moves, checking for transitions after each.
func (t *Tracker) ApplyAll(moves []Move) {
	for _, m := range moves {
		t.Apply(m)
	}
}

// checkPhaseTransition checks if a new phase has been completed.
func (t *Tracker) checkPhaseTransition() {
	current := t.cube.DetectPhase()
	t.lastPhase = current

	// Phase values are ordered from scrambled to solved. Only a new high
	// fires the callback, so a solve in progress never reports regressions.
	if current > t.highestPhase {
		t.highestPhase = current
		if t.phaseCallback != nil {
			t.phaseCallback(current, current.String())
		}
	}
}

// CurrentPhase returns the current detected phase. This reflects the raw
// cube state and may go backwards during solving.
func (t *Tracker) CurrentPhase() Phase {
	return t.cube.DetectPhase()
}

// HighestPhase returns the highest phase reached so far.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// GetProgress returns the detailed progress.
func (t *Tracker) GetProgress() Progress {
	return t.cube.GetProgress()
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
