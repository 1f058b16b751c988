// Package catalog groups breed records by the first letter of their name.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"cat-encyclopedia/internal/models"
)

var (
	// ErrEmptyName marks a record that cannot be keyed. It is a
	// precondition violation, not a recoverable condition.
	ErrEmptyName = errors.New("breed record has an empty name")

	ErrUnknownCategory    = errors.New("unknown category")
	ErrPositionOutOfRange = errors.New("member position out of range")
)

// Index maps an upper-cased first letter to the records that start with it.
// It is built once and never mutated.
type Index struct {
	keys   []string
	groups map[string][]models.Breed
	size   int
}

// Build groups records in a single pass. Keys keep first-appearance order
// and each group keeps the input order.
func Build(records []models.Breed) (*Index, error) {
	idx := &Index{groups: make(map[string][]models.Breed)}

	for i, rec := range records {
		key, err := KeyFor(rec.Name)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, ok := idx.groups[key]; !ok {
			idx.keys = append(idx.keys, key)
		}
		idx.groups[key] = append(idx.groups[key], rec)
		idx.size++
	}

	return idx, nil
}

// KeyFor returns the category key for a breed name.
func KeyFor(name string) (string, error) {
	first, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return "", ErrEmptyName
	}
	return strings.ToUpper(string(first)), nil
}

// Keys returns category keys in the order they first appeared.
func (x *Index) Keys() []string {
	out := make([]string, len(x.keys))
	copy(out, x.keys)
	return out
}

func (x *Index) Group(key string) []models.Breed {
	group := x.groups[key]
	out := make([]models.Breed, len(group))
	copy(out, group)
	return out
}

// Names lists the display names of a category in order.
func (x *Index) Names(key string) []string {
	group := x.groups[key]
	names := make([]string, len(group))
	for i, rec := range group {
		names[i] = rec.Name
	}
	return names
}

// Member resolves a position within a category. Selection is positional so
// duplicate names map to distinct records.
func (x *Index) Member(key string, position int) (models.Breed, error) {
	group, ok := x.groups[key]
	if !ok {
		return models.Breed{}, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}
	if position < 0 || position >= len(group) {
		return models.Breed{}, fmt.Errorf("%w: %d of %d in %q", ErrPositionOutOfRange, position, len(group), key)
	}
	return group[position], nil
}

// Len is the number of records across all groups.
func (x *Index) Len() int {
	return x.size
}
