package core

import (
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Category is the label an Entry is filed under.
type Category string

const (
	CategoryGeneral Category = "General"
	CategoryStudy   Category = "Study"
	CategoryWork    Category = "Work"
	CategoryDaily   Category = "Daily"

	// CategoryAll is the filter sentinel matching every entry. It is never
	// stored on an Entry.
	CategoryAll Category = "All"
)

// Categories returns the fixed set of storable categories, in display order.
func Categories() []Category {
	return []Category{CategoryGeneral, CategoryStudy, CategoryWork, CategoryDaily}
}

// Valid reports whether c is one of the storable categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

// ParseCategory maps free text to a storable category.
// Empty or unknown values fall back to CategoryGeneral.
func ParseCategory(s string) Category {
	c := Category(strings.TrimSpace(s))
	if c.Valid() {
		return c
	}
	return CategoryGeneral
}

// Entry is one note: a front/back pair with a category and tags.
// Entries are immutable once added; they are removed, never edited.
type Entry struct {
	ID       string   `json:"id" yaml:"id" validate:"required"`
	Front    string   `json:"front" yaml:"front" validate:"required"`
	Back     string   `json:"back" yaml:"back" validate:"required"`
	Category Category `json:"category" yaml:"category" validate:"required,oneof=General Study Work Daily"`
	Tags     []string `json:"tags" yaml:"tags" validate:"unique,dive,required"`
}

var validate = validator.New()

// Validate checks the Entry invariants: non-empty id, front and back,
// a storable category and unique non-empty tags.
func (e Entry) Validate() error {
	return validate.Struct(e)
}

// Clone returns a copy of e that shares no memory with it.
func (e Entry) Clone() Entry {
	e.Tags = slices.Clone(e.Tags)
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return e
}

// NormalizeTags trims every tag, drops empty ones and keeps the first
// occurrence of duplicates. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// NewEntry builds an Entry from raw user input.
// It returns false when front or back is empty after trimming.
func NewEntry(id, front, back string, category Category, tags []string) (Entry, bool) {
	front = strings.TrimSpace(front)
	back = strings.TrimSpace(back)
	if front == "" || back == "" {
		return Entry{}, false
	}
	if !category.Valid() {
		category = CategoryGeneral
	}
	return Entry{
		ID:       id,
		Front:    front,
		Back:     back,
		Category: category,
		Tags:     NormalizeTags(tags),
	}, true
}
