package ecotrack

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/etnz/ecotrack/date"
	"github.com/google/go-cmp/cmp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTransactionKeepsBalance(t *testing.T) {
	ctx := context.Background()
	amounts := []string{"5000", "-2000", "0", "12.5", "-0.5", "999999"}

	s, _ := newTestStore(t)
	require.NoError(t, s.UpdateProfile(ctx, "Steve"))

	want := s.State().Profile.Balance
	for _, a := range amounts {
		m := mustMoney(t, a)
		_, err := s.AddTransaction(ctx, "trade "+a, m)
		require.NoError(t, err)
		want = want.Add(m)
		assert.True(t, s.State().Profile.Balance.Equal(want), "after %s: balance %v, want %v", a, s.State().Profile.Balance, want)
	}
	assert.Len(t, s.State().Transactions, len(amounts))
}

func TestAddTransactionRejectsEmptyDescription(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStore(t)

	for _, desc := range []string{"", "   "} {
		_, err := s.AddTransaction(ctx, desc, M(100))
		assert.ErrorIs(t, err, ErrInvalid)
	}
	assert.Empty(t, s.State().Transactions)
	assert.True(t, s.State().Profile.Balance.IsZero())

	// Nothing was saved.
	_, err := mem.Get(ctx, DefaultKey)
	assert.Error(t, err)
}

func TestClearHistoryKeepsBalance(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	_, err := s.AddTransaction(ctx, "Sold Diamonds", M(5000))
	require.NoError(t, err)

	require.NoError(t, s.ClearHistory(ctx))
	st := s.State()
	assert.Empty(t, st.Transactions)
	assert.True(t, st.Profile.Balance.Equal(M(5000)))
	assert.True(t, st.TotalProfit().IsZero())
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.UpdateProfile(ctx, "  Alex "))
	assert.Equal(t, "Alex", s.State().Profile.DisplayName)

	assert.ErrorIs(t, s.UpdateProfile(ctx, ""), ErrInvalid)
	assert.Equal(t, "Alex", s.State().Profile.DisplayName)
}

func TestTransactionJournal(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	_, err := s.AddTransaction(ctx, "Sold Diamond Stack", M(5000))
	require.NoError(t, err)
	_, err = s.AddTransaction(ctx, "Bought Gear", mustMoney(t, "-2000.5"))
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, EncodeTransactions(&b, s.State().Transactions))
	assert.Equal(t, 2, strings.Count(b.String(), "\n"))
	assert.Contains(t, b.String(), `"description":"Bought Gear","amount":-2000.5}`)

	got, err := DecodeTransactions(strings.NewReader(b.String() + "\n\n"))
	require.NoError(t, err)
	if diff := cmp.Diff(s.State().Transactions, got, stateOpts); diff != "" {
		t.Errorf("journal mismatch (-want +got):\n%s", diff)
	}

	_, err = DecodeTransactions(strings.NewReader("{}\nnot json\n"))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "line 2")
}

func TestAddTransactions(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	_, err := s.AddTransaction(ctx, "Sold Diamonds", M(5000))
	require.NoError(t, err)
	existing := s.State().Transactions[0]

	added, err := s.AddTransactions(ctx, []Transaction{
		{ID: existing.ID, Date: date.MustParse("2023-10-01"), Description: "Sold Elytra", Amount: M(9000)},
		{Description: " Bought Gear ", Amount: M(-2000)},
	})
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.Greater(t, added[0].ID, existing.ID, "ids are always fresh")
	assert.Equal(t, date.MustParse("2023-10-01"), added[0].Date)
	assert.Equal(t, date.On(testNow), added[1].Date)
	assert.Equal(t, "Bought Gear", added[1].Description)
	assert.True(t, s.State().Profile.Balance.Equal(M(12000)))

	// One invalid transaction rejects the whole batch.
	before := s.State()
	_, err = s.AddTransactions(ctx, []Transaction{
		{Description: "ok", Amount: M(1)},
		{Amount: M(1)},
	})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "transaction #2")
	if diff := cmp.Diff(before, s.State(), stateOpts); diff != "" {
		t.Errorf("state changed after a rejected batch (-before +after):\n%s", diff)
	}
}
