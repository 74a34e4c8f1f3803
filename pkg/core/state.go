package core

import "slices"

// State is the in-memory collection. Entries are kept in insertion order.
type State struct {
	Entries []Entry
}

// Action is a state transition understood by Reduce.
type Action interface {
	apply(State) (State, bool)
}

// AddEntry appends an already validated entry.
type AddEntry struct {
	Entry Entry
}

// DeleteAt removes the entry at a position in the current order.
// Positions shift after every removal.
type DeleteAt struct {
	Index int
}

// DeleteByID removes the entry carrying the given id.
type DeleteByID struct {
	ID string
}

// Replace swaps the whole collection.
type Replace struct {
	Entries []Entry
}

// Reduce applies a to s and returns the next state.
// The boolean reports whether anything changed, i.e. whether the
// result has to be persisted. s is never modified.
func Reduce(s State, a Action) (State, bool) {
	return a.apply(s)
}

func (a AddEntry) apply(s State) (State, bool) {
	next := make([]Entry, 0, len(s.Entries)+1)
	next = append(next, s.Entries...)
	next = append(next, a.Entry.Clone())
	return State{Entries: next}, true
}

func (a DeleteAt) apply(s State) (State, bool) {
	if a.Index < 0 || a.Index >= len(s.Entries) {
		return s, false
	}
	return State{Entries: slices.Delete(slices.Clone(s.Entries), a.Index, a.Index+1)}, true
}

func (a DeleteByID) apply(s State) (State, bool) {
	i := slices.IndexFunc(s.Entries, func(e Entry) bool { return e.ID == a.ID })
	if a.ID == "" || i < 0 {
		return s, false
	}
	return DeleteAt{Index: i}.apply(s)
}

func (a Replace) apply(s State) (State, bool) {
	next := make([]Entry, len(a.Entries))
	for i, e := range a.Entries {
		next[i] = e.Clone()
	}
	return State{Entries: next}, true
}

// Filter returns the entries filed under c, in collection order.
// CategoryAll returns every entry.
func Filter(entries []Entry, c Category) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if c == CategoryAll || e.Category == c {
			out = append(out, e.Clone())
		}
	}
	return out
}
