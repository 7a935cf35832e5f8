package ecotrack

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSnapshotLayout(t *testing.T) {
	rev := uuid.MustParse("6b1f0d8e-5b7a-4c43-9c55-0f3a1a1f4b11")
	data, err := EncodeSnapshot(Snapshot{Revision: rev, State: State{
		Profile: Profile{DisplayName: "Steve", Balance: M(5000)},
	}})
	require.NoError(t, err)

	s := string(data)
	for _, want := range []string{
		`"version": 2`,
		`"revision": "6b1f0d8e-5b7a-4c43-9c55-0f3a1a1f4b11"`,
		`"displayName": "Steve"`,
		`"balance": 5000`,
		`"transactions": []`,
		`"shops": []`,
		`"intel": []`,
		`"notes": []`,
	} {
		assert.Contains(t, s, want)
	}

	snap, migrated, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.False(t, migrated)
	assert.Equal(t, rev, snap.Revision)
	assert.Equal(t, rev, peekRevision(data))
}

func TestDecodeSnapshotErrors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "not json", data: `profile`},
		{name: "not an object", data: `[1, 2]`},
		{name: "newer version", data: `{"version": 3}`},
		{name: "bad amount", data: `{"version": 2, "transactions": [{"id": 1, "description": "x", "amount": "lots"}]}`},
		{name: "bad legacy amount", data: `{"profile": {"balance": true}}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeSnapshot([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestMigrateLegacyDefaults(t *testing.T) {
	// Every field is optional; NaN amounts were written as null.
	legacy := `{
		"profile": {"ign": "Alex"},
		"transactions": [{"desc": "Mystery", "amount": null, "date": "10/19/2026"}],
		"shops": [{"id": 1697000000000, "item": "Ingot", "price": 15, "stock": 2.0}],
		"wiki": [{"title": "Farms", "content": "<script>x</script>"}],
		"journal": [{"date": "10/19/2026", "log": "Found a village"}],
		"settings": {"firstSetup": false}
	}`
	snap, migrated, err := DecodeSnapshot([]byte(legacy))
	require.NoError(t, err)
	assert.True(t, migrated)

	want := State{
		Profile:      Profile{DisplayName: "Alex"},
		Transactions: []Transaction{{Description: "Mystery"}},
		Shops:        []ShopListing{{ID: 1697000000000, ItemName: "Ingot", Price: M(15), Stock: 2}},
		Intel:        []IntelEntry{},
		Notes: []Note{
			{Title: "Farms", Body: "<script>x</script>"},
			{Title: "10/19/2026", Body: "Found a village"},
		},
	}
	if diff := cmp.Diff(want, snap.State, stateOpts); diff != "" {
		t.Errorf("migration mismatch (-want +got):\n%s", diff)
	}
}

func TestMigratedEntitiesGetIDs(t *testing.T) {
	snap, _, err := DecodeSnapshot([]byte(`{"competitors": [{"name": "a"}, {"name": "b"}]}`))
	require.NoError(t, err)

	var g idGenerator
	g.observe(snap.State.maxID())
	g.assignMissing(&snap.State, testNow)
	require.Len(t, snap.State.Intel, 2)
	assert.NotZero(t, snap.State.Intel[0].ID)
	assert.NotEqual(t, snap.State.Intel[0].ID, snap.State.Intel[1].ID)
}

func TestNullVersionIsLegacy(t *testing.T) {
	for _, version := range []string{`null`, `"2"`} {
		doc := `{"version": ` + version + `, "profile": {"ign": "Steve"}, "competitors": [{"id": 1, "name": "RichGuy123"}]}`
		snap, migrated, err := DecodeSnapshot([]byte(doc))
		require.NoError(t, err, "version %s", version)
		assert.True(t, migrated, "version %s", version)
		assert.Equal(t, "Steve", snap.State.Profile.DisplayName)
		assert.Len(t, snap.State.Intel, 1)
	}
}

func TestDuplicateIDsAreReassigned(t *testing.T) {
	st := State{
		Shops: []ShopListing{{ID: 5, ItemName: "a"}, {ID: 5, ItemName: "b"}, {ID: 7, ItemName: "c"}},
		Notes: []Note{{ID: 5, Title: "n"}},
	}
	var g idGenerator
	g.observe(st.maxID())
	g.assignMissing(&st, testNow)

	assert.Equal(t, int64(5), st.Shops[0].ID)
	assert.Equal(t, int64(7), st.Shops[2].ID)
	assert.Equal(t, testNow.UnixMilli(), st.Shops[1].ID)
	assert.Equal(t, int64(5), st.Notes[0].ID, "ids are unique per kind")
}

func TestEncodeIsStable(t *testing.T) {
	st := State{Notes: []Note{{ID: 1, Title: "t"}}}
	a, err := EncodeSnapshot(Snapshot{State: st})
	require.NoError(t, err)
	snap, _, err := DecodeSnapshot(a)
	require.NoError(t, err)
	b, err := EncodeSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
	assert.False(t, strings.Contains(string(a), `"body"`), "empty optional fields are omitted")
}
