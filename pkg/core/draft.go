package core

import (
	"context"
	"slices"
	"strings"
)

// Draft holds the pending, not yet added entry: the input fields a user
// is still editing.
type Draft struct {
	Front    string
	Back     string
	Category Category
	tags     []string
}

// NewDraft returns an empty draft filed under CategoryGeneral.
func NewDraft() *Draft {
	return &Draft{Category: CategoryGeneral}
}

// AddTag appends value to the pending tags. Blank values and values already
// present are ignored; the return value reports whether a tag was added.
func (d *Draft) AddTag(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || slices.Contains(d.tags, value) {
		return false
	}
	d.tags = append(d.tags, value)
	return true
}

// RemoveTag drops value from the pending tags.
func (d *Draft) RemoveTag(value string) bool {
	i := slices.Index(d.tags, value)
	if i < 0 {
		return false
	}
	d.tags = slices.Delete(d.tags, i, i+1)
	return true
}

// Tags returns a copy of the pending tags.
func (d *Draft) Tags() []string {
	return slices.Clone(d.tags)
}

// Reset clears every field.
func (d *Draft) Reset() {
	*d = Draft{Category: CategoryGeneral}
}

// Submit adds the draft to s and clears it when the entry was accepted.
// A rejected draft is left untouched so the user can complete it.
func (d *Draft) Submit(ctx context.Context, s *Store) (bool, error) {
	added, err := s.Add(ctx, d.Front, d.Back, d.Category, d.tags)
	if added {
		d.Reset()
	}
	return added, err
}
