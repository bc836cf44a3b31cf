package cubesim

// History is an undo stack of applied move sequences. Each call to
// Record pushes one entry; Undo reverses the most recent entry on a
// cube by applying its inverse.
type History struct {
	entries [][]Move
}

// Record pushes an applied sequence onto the stack. Empty sequences are
// ignored so Undo always has an effect.
func (h *History) Record(moves []Move) {
	if len(moves) == 0 {
		return
	}
	entry := make([]Move, len(moves))
	copy(entry, moves)
	h.entries = append(h.entries, entry)
}

// Undo reverses the most recent recorded sequence on the cube and pops
// it from the stack. It reports whether there was anything to undo.
func (h *History) Undo(c *Cube) bool {
	if len(h.entries) == 0 {
		return false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	c.ApplyAll(InverseSequence(last))
	return true
}

// Len returns the number of undoable entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Moves returns the flat concatenation of all recorded sequences in
// application order, for display.
func (h *History) Moves() []Move {
	var flat []Move
	for _, entry := range h.entries {
		flat = append(flat, entry...)
	}
	return flat
}

// Clear drops all recorded entries.
func (h *History) Clear() {
	h.entries = nil
}
