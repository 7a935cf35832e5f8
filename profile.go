package ecotrack

import (
	"context"
	"strings"
)

// UpdateProfile renames the player. The balance is not affected.
func (s *Store) UpdateProfile(ctx context.Context, displayName string) error {
	return s.mutate(ctx, "update profile", func(st *State) error {
		p := st.Profile
		p.DisplayName = strings.TrimSpace(displayName)
		if err := check(p); err != nil {
			return err
		}
		st.Profile = p
		return nil
	})
}
