package ecotrack

import (
	"context"
	"testing"
	"time"

	"github.com/etnz/ecotrack/date"
	"github.com/etnz/ecotrack/storage"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// testNow is the fixed time of test stores. Every id they generate comes
// from the same millisecond.
var testNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

// newTestStore opens a store on a fresh in-memory storage.
func newTestStore(t *testing.T, opts ...Option) (*Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	s, err := Open(context.Background(), mem, opts...)
	require.NoError(t, err)
	return s, mem
}

// stateOpts compare states field by field.
var stateOpts = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

func mustMoney(t *testing.T, s string) Money {
	t.Helper()
	m, err := ParseMoney(s)
	require.NoError(t, err)
	return m
}
