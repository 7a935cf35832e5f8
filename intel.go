package ecotrack

import (
	"context"
	"slices"
	"strings"
)

// AddIntel starts tracking a competitor. The name is required; coordinates
// and notes are optional.
func (s *Store) AddIntel(ctx context.Context, name, coords, notes string) (IntelEntry, error) {
	entry := IntelEntry{
		Name:   strings.TrimSpace(name),
		Coords: strings.TrimSpace(coords),
		Notes:  strings.TrimSpace(notes),
	}
	err := s.mutate(ctx, "add intel", func(st *State) error {
		if err := check(entry); err != nil {
			return err
		}
		entry.ID = s.newID()
		st.Intel = append(st.Intel, entry)
		return nil
	})
	if err != nil {
		return IntelEntry{}, err
	}
	return entry, nil
}

// DeleteIntel stops tracking a competitor. Deleting an unknown id does nothing.
func (s *Store) DeleteIntel(ctx context.Context, id int64) error {
	if !slices.ContainsFunc(s.state.Intel, func(e IntelEntry) bool { return e.ID == id }) {
		return nil
	}
	return s.mutate(ctx, "delete intel", func(st *State) error {
		st.Intel = slices.DeleteFunc(st.Intel, func(e IntelEntry) bool { return e.ID == id })
		return nil
	})
}
