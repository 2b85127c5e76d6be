// Package session owns the live editing state of a plan: the distance, the
// interval set, the theme preference and the undo/redo history. It persists
// through a Slots store and reports every change to a Notifier.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"pacer/internal/history"
	"pacer/internal/pacing"
)

// ErrIndex is returned when an interval index does not exist
var ErrIndex = errors.New("interval index out of range")

// ErrLastInterval is returned when removing the only interval of a plan
var ErrLastInterval = errors.New("a plan needs at least one interval")

// Options configures a Session. Every field is optional.
type Options struct {
	Slots    Slots
	Notifier Notifier
	Logger   *zap.Logger

	UndoLimit       int
	SplitUnit       float64
	DefaultDistance float64
	DefaultTheme    Theme
}

// Session is the single writer of a plan. It is not safe for concurrent use.
type Session struct {
	slots    Slots
	notifier Notifier
	log      *zap.Logger
	history  *history.Manager

	distance  float64
	intervals pacing.IntervalSet
	theme     Theme
	splitUnit float64

	defaultDistance float64
}

// HistoryInfo summarises the undo/redo stacks
type HistoryInfo struct {
	Undo  int
	Redo  int
	Limit int
}

// state is the part of a session an edit can change
type state struct {
	intervals pacing.IntervalSet
	distance  float64
}

// New creates a session and restores distance, intervals and theme from
// opts.Slots. Missing or unreadable slots fall back to defaults.
func New(opts Options) *Session {
	s := &Session{
		slots:           opts.Slots,
		notifier:        opts.Notifier,
		log:             opts.Logger,
		history:         history.NewManager(opts.UndoLimit),
		splitUnit:       opts.SplitUnit,
		defaultDistance: opts.DefaultDistance,
		theme:           opts.DefaultTheme,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.splitUnit <= 0 {
		s.splitUnit = pacing.DefaultSplitUnit
	}
	if pacing.ValidateDistance(s.defaultDistance) != nil {
		s.defaultDistance = pacing.DefaultDistance
	}
	if s.theme != ThemeDark {
		s.theme = ThemeLight
	}

	s.distance = s.defaultDistance
	s.intervals = pacing.DefaultIntervals()
	s.load()

	return s
}

func (s *Session) load() {
	if s.slots == nil {
		return
	}

	if raw, ok := s.readSlot(KeyDistance); ok {
		d, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err == nil {
			err = pacing.ValidateDistance(d)
		}
		if err != nil {
			s.log.Warn("ignoring stored distance", zap.String("value", raw), zap.Error(err))
		} else {
			s.distance = d
		}
	}

	if raw, ok := s.readSlot(KeyIntervals); ok {
		set, err := decodeIntervals(raw)
		if err != nil {
			s.log.Warn("ignoring stored intervals", zap.Error(err))
		} else {
			s.intervals = set
		}
	}

	if raw, ok := s.readSlot(KeyTheme); ok {
		switch Theme(raw) {
		case ThemeDark, ThemeLight:
			s.theme = Theme(raw)
		default:
			s.log.Warn("ignoring stored theme", zap.String("value", raw))
		}
	}

	s.log.Debug("session restored",
		zap.Float64("distance", s.distance),
		zap.Array("intervals", s.intervals),
		zap.String("theme", string(s.theme)),
	)
}

func (s *Session) readSlot(key string) (string, bool) {
	raw, ok, err := s.slots.Get(key)
	if err != nil {
		s.log.Warn("reading slot", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return raw, ok
}

func decodeIntervals(raw string) (pacing.IntervalSet, error) {
	var set pacing.IntervalSet
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil, fmt.Errorf("decoding intervals: %w", err)
	}
	if len(set) == 0 {
		return nil, pacing.ErrEmptySet
	}
	for i, iv := range set {
		if err := pacing.ValidateSplit(iv.Minutes, iv.Seconds, iv.Milliseconds); err != nil {
			return nil, fmt.Errorf("interval %d: %w", i, err)
		}
	}
	return set.Canonical(), nil
}

// --- Reads ---

// Distance returns the total distance
func (s *Session) Distance() float64 {
	return s.distance
}

// Intervals returns a copy of the interval set
func (s *Session) Intervals() pacing.IntervalSet {
	return s.intervals.Clone()
}

// Theme returns the colour preference
func (s *Session) Theme() Theme {
	return s.theme
}

// SplitUnit returns the distance each split refers to
func (s *Session) SplitUnit() float64 {
	return s.splitUnit
}

// CanUndo reports whether Undo would change anything
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would change anything
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

// History returns the current stack sizes
func (s *Session) History() HistoryInfo {
	return HistoryInfo{
		Undo:  s.history.UndoLen(),
		Redo:  s.history.RedoLen(),
		Limit: s.history.Limit(),
	}
}

// HistoryStates returns copies of the undo and redo stacks, oldest first.
// The last entry of each is what Undo or Redo would restore.
func (s *Session) HistoryStates() (undo, redo []history.SaveState) {
	return s.history.UndoStates(), s.history.RedoStates()
}

// Plan computes allocations, average split and projected time for the
// current state without modifying it.
func (s *Session) Plan() (pacing.Plan, error) {
	return pacing.NewPlan(s.intervals, s.distance, s.splitUnit)
}

// --- Edits ---

// SetDistance changes the total distance. Setting the current value again
// is a no-op and records nothing.
func (s *Session) SetDistance(d float64) error {
	if err := pacing.ValidateDistance(d); err != nil {
		return err
	}

	return s.edit("set distance", func(next *state) error {
		next.distance = d
		return nil
	})
}

// SetSplit parses raw and makes it the target split of interval i
func (s *Session) SetSplit(i int, raw string) error {
	return s.edit("set split", func(next *state) error {
		if err := checkIndex(next.intervals, i); err != nil {
			return err
		}

		split := pacing.ParseTime(raw)
		if err := pacing.ValidateSplit(split.Minutes, split.Seconds, split.Milliseconds); err != nil {
			return err
		}

		// RawInput is always the canonical text, so retyping the same split
		// in another spelling is not an edit and undo/redo restore exactly.
		next.intervals[i].SetSplit(split)
		next.intervals[i].RawInput = pacing.FormatSplit(next.intervals[i])
		return nil
	})
}

// ResizeInterval sets the size of interval i. The difference is taken from
// (or given to) the following interval, or the previous one when i is last,
// so the sizes keep their total. Neither may end up below
// pacing.SmallestIntervalSize.
func (s *Session) ResizeInterval(i int, size float64) error {
	return s.edit("resize interval", func(next *state) error {
		if err := checkIndex(next.intervals, i); err != nil {
			return err
		}

		if len(next.intervals) == 1 {
			if size != next.intervals[0].Size {
				return &pacing.ValidationError{
					Kind:    pacing.ErrOutOfRange,
					Field:   "size",
					Message: "A single interval always covers the whole distance",
				}
			}
			return nil
		}

		j := i + 1
		if j == len(next.intervals) {
			j = i - 1
		}

		pair := next.intervals[i].Size + next.intervals[j].Size
		rest := pair - size
		if !(size >= pacing.SmallestIntervalSize) || !(rest >= pacing.SmallestIntervalSize) {
			return &pacing.ValidationError{
				Kind:    pacing.ErrOutOfRange,
				Field:   "size",
				Message: fmt.Sprintf("Size must be between %g and %g", pacing.SmallestIntervalSize, pair-pacing.SmallestIntervalSize),
			}
		}

		next.intervals[i].Size = size
		next.intervals[j].Size = rest
		return nil
	})
}

// AddInterval halves the last interval and appends the second half as a new
// interval with the same split.
func (s *Session) AddInterval() error {
	return s.edit("add interval", func(next *state) error {
		last := len(next.intervals) - 1
		half := next.intervals[last].Size / 2
		if half < pacing.SmallestIntervalSize {
			return &pacing.ValidationError{
				Kind:    pacing.ErrOutOfRange,
				Field:   "size",
				Message: fmt.Sprintf("Interval is too small to split, each half must be at least %g", pacing.SmallestIntervalSize),
			}
		}

		added := next.intervals[last]
		added.Size = next.intervals[last].Size - half
		next.intervals[last].Size = half
		next.intervals = append(next.intervals, added)
		return nil
	})
}

// RemoveInterval deletes interval i and gives its size to the previous
// interval, or to the next one when i is first.
func (s *Session) RemoveInterval(i int) error {
	return s.edit("remove interval", func(next *state) error {
		if err := checkIndex(next.intervals, i); err != nil {
			return err
		}
		if len(next.intervals) == 1 {
			return ErrLastInterval
		}

		j := i - 1
		if i == 0 {
			j = 1
		}
		next.intervals[j].Size += next.intervals[i].Size
		next.intervals = slices.Delete(next.intervals, i, i+1)
		return nil
	})
}

// Reset restores the default distance and a single default interval. It is
// recorded in history like any other edit.
func (s *Session) Reset() error {
	return s.edit("reset", func(next *state) error {
		next.distance = s.defaultDistance
		next.intervals = pacing.DefaultIntervals()
		return nil
	})
}

// Undo restores the state before the last edit. It returns false when there
// is nothing to undo.
func (s *Session) Undo() bool {
	prev, ok := s.history.Undo(s.snapshot())
	if !ok {
		return false
	}

	s.apply(state{intervals: prev.Intervals, distance: prev.Distance})
	s.log.Info("undo", zap.Object("restored", prev))
	s.notify(ChangeHistory)
	return true
}

// Redo re-applies the last undone edit. It returns false when there is
// nothing to redo.
func (s *Session) Redo() bool {
	next, ok := s.history.Redo(s.snapshot())
	if !ok {
		return false
	}

	s.apply(state{intervals: next.Intervals, distance: next.Distance})
	s.log.Info("redo", zap.Object("restored", next))
	s.notify(ChangeHistory)
	return true
}

// ClearHistory forgets every undo and redo snapshot. The live state is kept.
func (s *Session) ClearHistory() {
	if !s.history.CanUndo() && !s.history.CanRedo() {
		return
	}
	s.history.Clear()
	s.log.Info("history cleared")
	s.notify(ChangeHistory)
}

// SetTheme stores the colour preference. Themes are not part of history.
func (s *Session) SetTheme(t Theme) {
	if t != ThemeDark {
		t = ThemeLight
	}
	if t == s.theme {
		return
	}

	s.theme = t
	s.write(KeyTheme, string(t))
	s.notify(ChangeTheme)
}

// ToggleTheme switches between light and dark
func (s *Session) ToggleTheme() Theme {
	if s.theme == ThemeDark {
		s.SetTheme(ThemeLight)
	} else {
		s.SetTheme(ThemeDark)
	}
	return s.theme
}

func (s *Session) snapshot() history.SaveState {
	return history.NewSaveState(s.intervals, s.distance)
}

// edit runs fn against a copy of the live state. Nothing is recorded when fn
// fails or changes nothing; otherwise the old state goes onto the undo stack
// and the copy becomes live.
func (s *Session) edit(op string, fn func(next *state) error) error {
	next := state{intervals: s.intervals.Clone(), distance: s.distance}
	if err := fn(&next); err != nil {
		s.log.Debug("edit rejected", zap.String("op", op), zap.Error(err))
		return err
	}
	if next.distance == s.distance && slices.Equal(next.intervals, s.intervals) {
		return nil
	}

	s.history.SavePreviousState(s.intervals, s.distance)
	s.apply(next)

	s.log.Info("edit",
		zap.String("op", op),
		zap.Float64("distance", s.distance),
		zap.Array("intervals", s.intervals),
		zap.Int("undo", s.history.UndoLen()),
	)
	s.notify(ChangeHistory)
	return nil
}

// apply makes next live, persisting and announcing whatever differs
func (s *Session) apply(next state) {
	if next.distance != s.distance {
		s.distance = next.distance
		s.write(KeyDistance, strconv.FormatFloat(s.distance, 'f', -1, 64))
		s.notify(ChangeDistance)
	}

	if !slices.Equal(next.intervals, s.intervals) {
		s.intervals = next.intervals
		data, err := json.Marshal(s.intervals.Canonical())
		if err != nil {
			s.log.Error("encoding intervals", zap.Error(err))
		} else {
			s.write(KeyIntervals, string(data))
		}
		s.notify(ChangeIntervals)
	}
}

// write persists a slot. Failures are logged and otherwise ignored; the
// live state stays authoritative.
func (s *Session) write(key, value string) {
	if s.slots == nil {
		return
	}
	if err := s.slots.Set(key, value); err != nil {
		s.log.Error("writing slot", zap.String("key", key), zap.Error(err))
	}
}

func (s *Session) notify(c Change) {
	if s.notifier != nil {
		s.notifier.Notify(c)
	}
}

func checkIndex(set pacing.IntervalSet, i int) error {
	if i < 0 || i >= len(set) {
		return fmt.Errorf("%w: %d of %d", ErrIndex, i, len(set))
	}
	return nil
}
