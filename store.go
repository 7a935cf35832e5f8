package ecotrack

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/etnz/ecotrack/date"
	"github.com/etnz/ecotrack/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultKey is the key snapshots are stored under unless WithKey says otherwise.
const DefaultKey = "ecotrack"

// Storage persists snapshots. Package storage provides implementations.
//
// Get must return an error wrapping storage.ErrNotFound when nothing was ever
// stored under key. Put must replace the previous value in full.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Listener is called with the new state after every successful save.
type Listener func(State)

// Store holds the application state and persists it after every mutation.
//
// A Store is not safe for concurrent use: mutations are expected to run one
// at a time, in response to user actions.
type Store struct {
	storage Storage
	key     string
	logger  *zap.Logger
	now     func() time.Time
	policy  RiskPolicy

	state    State
	ids      idGenerator
	revision uuid.UUID // revision last read or written

	listeners    map[int]Listener
	nextListener int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default logs nothing.
func WithLogger(l *zap.Logger) Option { return func(s *Store) { s.logger = l } }

// WithClock sets the function used to date transactions and generate ids.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithKey sets the storage key of the snapshot.
func WithKey(key string) Option { return func(s *Store) { s.key = key } }

// WithRiskPolicy sets the thresholds used by Store.Risk.
func WithRiskPolicy(p RiskPolicy) Option { return func(s *Store) { s.policy = p } }

// NewStore returns a Store holding the default state. Call Load to read the
// persisted snapshot.
func NewStore(st Storage, opts ...Option) *Store {
	s := &Store{
		storage:   st,
		key:       DefaultKey,
		logger:    zap.NewNop(),
		now:       time.Now,
		policy:    DefaultRiskPolicy(),
		state:     DefaultState(),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns a Store loaded from st.
func Open(ctx context.Context, st Storage, opts ...Option) (*Store, error) {
	s := NewStore(st, opts...)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory state with the persisted snapshot.
//
// When no snapshot exists the default state is used. A legacy snapshot is
// migrated and immediately saved back in the current layout.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.storage.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Info("no snapshot found, starting from the default state", zap.String("key", s.key))
		s.reset(DefaultState(), uuid.Nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not load snapshot %q: %w", s.key, err)
	}

	snap, migrated, err := DecodeSnapshot(data)
	if err != nil {
		return fmt.Errorf("could not decode snapshot %q: %w", s.key, err)
	}
	renumbered := s.reset(snap.State, snap.Revision)
	s.logger.Debug("snapshot loaded",
		zap.String("key", s.key),
		zap.Stringer("revision", snap.Revision),
		zap.Int("transactions", len(s.state.Transactions)),
		zap.Int("shops", len(s.state.Shops)),
	)

	switch {
	case migrated:
		s.logger.Info("migrating legacy snapshot", zap.String("key", s.key))
		return s.Save(ctx)
	case renumbered:
		s.logger.Warn("snapshot reused ids, duplicates were renumbered", zap.String("key", s.key))
		return s.Save(ctx)
	}
	return nil
}

// reset replaces the state and reports whether some of its ids were
// renumbered.
func (s *Store) reset(st State, rev uuid.UUID) bool {
	s.state = st.normalized()
	s.revision = rev
	s.ids = idGenerator{}
	s.ids.observe(s.state.maxID())
	return s.ids.assignMissing(&s.state, s.now())
}

// Save writes the whole state as the persisted snapshot, then notifies the
// listeners.
//
// Concurrent writers are not coordinated: the last save wins. A warning is
// logged when the stored snapshot was written by someone else since this
// Store last read or wrote it.
func (s *Store) Save(ctx context.Context) error {
	if err := s.write(ctx); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Store) write(ctx context.Context) error {
	if current, err := s.storage.Get(ctx, s.key); err == nil {
		if rev := peekRevision(current); rev != s.revision {
			s.logger.Warn("snapshot was modified by another writer, overwriting it",
				zap.String("key", s.key),
				zap.Stringer("expected", s.revision),
				zap.Stringer("found", rev),
			)
		}
	}

	rev := uuid.New()
	data, err := EncodeSnapshot(Snapshot{Revision: rev, State: s.state})
	if err != nil {
		return err
	}
	if err := s.storage.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("could not save snapshot %q: %w", s.key, err)
	}
	s.revision = rev
	return nil
}

// Subscribe registers l to be called after every save. The returned function
// removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = l
	return func() { delete(s.listeners, id) }
}

func (s *Store) notify() {
	if len(s.listeners) == 0 {
		return
	}
	st := s.state.Clone()
	for _, l := range s.listeners {
		l(st)
	}
}

// State returns a copy of the current state.
func (s *Store) State() State { return s.state.Clone() }

// Risk rates a trip with the store's risk policy.
func (s *Store) Risk(gear, reward Money) (RiskAssessment, error) {
	return s.policy.Rate(gear, reward)
}

// mutate applies fn to the state and saves it. If fn or the save fails, the
// state is restored as it was before the call.
func (s *Store) mutate(ctx context.Context, op string, fn func(st *State) error) error {
	prev, prevIDs := s.state.Clone(), s.ids
	if err := fn(&s.state); err != nil {
		s.state, s.ids = prev, prevIDs
		s.logger.Debug("mutation rejected", zap.String("op", op), zap.Error(err))
		return err
	}
	if err := s.Save(ctx); err != nil {
		s.state, s.ids = prev, prevIDs
		s.logger.Error("mutation not persisted", zap.String("op", op), zap.Error(err))
		return err
	}
	s.logger.Debug("mutation saved", zap.String("op", op))
	return nil
}

func (s *Store) newID() int64 { return s.ids.next(s.now()) }

func (s *Store) today() date.Date { return date.On(s.now()) }

// Import replaces the whole state with the encoded snapshot data, migrating
// it when it uses the legacy layout, and saves it.
func (s *Store) Import(ctx context.Context, data []byte) (migrated bool, err error) {
	snap, migrated, err := DecodeSnapshot(data)
	if err != nil {
		return false, err
	}
	err = s.mutate(ctx, "import", func(st *State) error {
		*st = snap.State.normalized()
		s.ids.observe(st.maxID())
		s.ids.assignMissing(st, s.now())
		return nil
	})
	return migrated, err
}

// Export returns the current state encoded as a snapshot.
func (s *Store) Export() ([]byte, error) {
	return EncodeSnapshot(Snapshot{Revision: s.revision, State: s.state})
}
