// Package history keeps bounded undo and redo stacks of plan snapshots.
package history

import (
	"go.uber.org/zap/zapcore"

	"pacer/internal/pacing"
)

// SaveState is an immutable snapshot of everything an edit can change.
// Build it with NewSaveState; the manager never hands out its own copy.
type SaveState struct {
	Intervals pacing.IntervalSet `json:"intervals"`
	Distance  float64            `json:"distance"`
}

// NewSaveState deep-copies intervals and re-derives every RawInput from the
// structured split, so a snapshot never carries what the user literally typed.
func NewSaveState(intervals pacing.IntervalSet, distance float64) SaveState {
	return SaveState{
		Intervals: intervals.Canonical(),
		Distance:  distance,
	}
}

// clone returns a copy that shares no memory with s
func (s SaveState) clone() SaveState {
	return SaveState{Intervals: s.Intervals.Clone(), Distance: s.Distance}
}

// MarshalLogObject implements zapcore.ObjectMarshaler
func (s SaveState) MarshalLogObject(e zapcore.ObjectEncoder) error {
	e.AddFloat64("distance", s.Distance)
	return e.AddArray("intervals", s.Intervals)
}

// Manager owns the undo and redo stacks. It is not safe for concurrent use;
// a single editing session drives it.
type Manager struct {
	limit int
	undo  []SaveState
	redo  []SaveState
}

// NewManager creates a Manager keeping at most limit undo snapshots.
// A limit below 1 falls back to pacing.UndoLimit.
func NewManager(limit int) *Manager {
	if limit < 1 {
		limit = pacing.UndoLimit
	}
	return &Manager{limit: limit}
}

// Limit returns the undo stack capacity
func (m *Manager) Limit() int {
	return m.limit
}

// SavePreviousState records the state as it was before an edit. The oldest
// snapshot is evicted once the undo stack exceeds its limit, and the redo
// stack is always cleared.
func (m *Manager) SavePreviousState(intervals pacing.IntervalSet, distance float64) {
	m.pushUndo(NewSaveState(intervals, distance))
	m.redo = nil
}

// Undo pops the most recent undo snapshot and pushes current onto the redo
// stack. It returns false and changes nothing when there is nothing to undo.
func (m *Manager) Undo(current SaveState) (SaveState, bool) {
	if len(m.undo) == 0 {
		return SaveState{}, false
	}

	prev := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, NewSaveState(current.Intervals, current.Distance))

	return prev.clone(), true
}

// Redo is the mirror of Undo
func (m *Manager) Redo(current SaveState) (SaveState, bool) {
	if len(m.redo) == 0 {
		return SaveState{}, false
	}

	next := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.pushUndo(NewSaveState(current.Intervals, current.Distance))

	return next.clone(), true
}

func (m *Manager) pushUndo(s SaveState) {
	m.undo = append(m.undo, s)
	if len(m.undo) > m.limit {
		// drop the oldest and let the backing array go
		m.undo = append([]SaveState(nil), m.undo[len(m.undo)-m.limit:]...)
	}
}

// CanUndo reports whether Undo would do anything
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether Redo would do anything
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// UndoLen returns the number of undo snapshots
func (m *Manager) UndoLen() int { return len(m.undo) }

// RedoLen returns the number of redo snapshots
func (m *Manager) RedoLen() int { return len(m.redo) }

// UndoStates returns copies of the undo stack, oldest first
func (m *Manager) UndoStates() []SaveState {
	return cloneAll(m.undo)
}

// RedoStates returns copies of the redo stack, oldest first
func (m *Manager) RedoStates() []SaveState {
	return cloneAll(m.redo)
}

// Clear drops both stacks
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
}

func cloneAll(states []SaveState) []SaveState {
	out := make([]SaveState, len(states))
	for i, s := range states {
		out[i] = s.clone()
	}
	return out
}
