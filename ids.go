package ecotrack

import "time"

// idGenerator hands out entity ids.
//
// Ids are the creation time in milliseconds, like the ones written by earlier
// versions, but are bumped past the last id issued so that two entities
// created within the same millisecond never share one.
type idGenerator struct {
	last int64
}

func (g *idGenerator) next(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// observe records an id already in use.
func (g *idGenerator) observe(id int64) {
	g.last = max(g.last, id)
}

// assignMissing gives a fresh id to every entity of st that has none, or
// that reuses the id of an earlier entity of the same kind. Both only happen
// to entities migrated from a legacy snapshot or edited by hand. It reports
// whether any id changed.
func (g *idGenerator) assignMissing(st *State, now time.Time) bool {
	changed := assignUnique(g, now, st.Transactions, func(tx *Transaction) *int64 { return &tx.ID })
	changed = assignUnique(g, now, st.Shops, func(l *ShopListing) *int64 { return &l.ID }) || changed
	changed = assignUnique(g, now, st.Intel, func(e *IntelEntry) *int64 { return &e.ID }) || changed
	changed = assignUnique(g, now, st.Notes, func(n *Note) *int64 { return &n.ID }) || changed
	return changed
}

func assignUnique[E any](g *idGenerator, now time.Time, items []E, id func(*E) *int64) (changed bool) {
	seen := make(map[int64]bool, len(items))
	for i := range items {
		p := id(&items[i])
		if *p == 0 || seen[*p] {
			*p = g.next(now)
			changed = true
		}
		seen[*p] = true
	}
	return changed
}
