package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tiecvui/api/internal/catalog"
	"github.com/tiecvui/api/internal/quote"
)

// ErrSessionNotFound is returned when a session id is unknown (including
// sessions discarded by backing out of the wizard).
var ErrSessionNotFound = errors.New("quote session not found")

// Store holds the live quote sessions, keyed by session id. Sessions are
// in-memory only; a draft that was never submitted dies with the process.
type Store struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*Session
	proj      *catalog.Projection
	broadcast Broadcaster
}

// NewStore creates an empty Store over the given catalog projection.
// broadcast may be nil when no live feed is wanted (tests).
func NewStore(proj *catalog.Projection, broadcast Broadcaster) *Store {
	return &Store{
		sessions:  make(map[uuid.UUID]*Session),
		proj:      proj,
		broadcast: broadcast,
	}
}

// CreateSession opens a new session at step 1. Backing out of step 1
// discards the session from the store.
func (st *Store) CreateSession() *Session {
	return st.create(st.proj)
}

func (st *Store) create(proj *catalog.Projection) *Session {
	id := uuid.New()
	form := quote.NewFormFields()

	sess := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		proj:      proj,
		form:      form,
		sel:       quote.NewSelection(),
		params:    quote.Params{TableCount: 1},
		broadcast: st.broadcast,
	}
	sess.wizard = quote.NewWizard(form, func() { st.Delete(id) })

	st.mu.Lock()
	st.sessions[id] = sess
	st.mu.Unlock()

	return sess
}

// Get returns the session for the id.
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	sess, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete removes a session.
func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
