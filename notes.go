package ecotrack

import (
	"context"
	"slices"
	"strings"
)

// AddNote appends a note. The title is required, the body may be empty.
//
// The body is stored verbatim; escaping is left to the renderer.
func (s *Store) AddNote(ctx context.Context, title, body string) (Note, error) {
	note := Note{Title: strings.TrimSpace(title), Body: body}
	err := s.mutate(ctx, "add note", func(st *State) error {
		if err := check(note); err != nil {
			return err
		}
		note.ID = s.newID()
		st.Notes = append(st.Notes, note)
		return nil
	})
	if err != nil {
		return Note{}, err
	}
	return note, nil
}

// DeleteNote removes a note. Deleting an unknown id does nothing.
func (s *Store) DeleteNote(ctx context.Context, id int64) error {
	if !slices.ContainsFunc(s.state.Notes, func(n Note) bool { return n.ID == id }) {
		return nil
	}
	return s.mutate(ctx, "delete note", func(st *State) error {
		st.Notes = slices.DeleteFunc(st.Notes, func(n Note) bool { return n.ID == id })
		return nil
	})
}
