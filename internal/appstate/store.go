// Package appstate holds the client-wide application state: session and
// auth info, navigation history and the aggregate counters. State is
// only ever changed by dispatching an action through the Store; every
// accepted action runs a pure reducer producing a fresh State value, so
// observers never see a partially applied transition.
package appstate

import (
	"sync"

	"newshub/internal/contract"
)

// State is the full application state. Values handed out by the store
// are snapshots; mutating one has no effect on the store.
type State struct {
	Logged      bool
	User        contract.User
	NewsCount   int
	UserCount   int
	ArtistCount int
	URLHistory  []string
}

type actionKind int

const (
	actChangeUserInfo actionKind = iota
	actChangeUserLoggedStatus
	actAddURLToHistory
	actAddToNewsCount
	actAddToUserCount
	actAddToArtistCount
)

// Action is a named intent to transition state, consumed exactly once
// by the reducer. Construct actions with the package functions below.
type Action struct {
	kind  actionKind
	user  contract.User
	flag  bool
	url   string
	delta int
}

// ChangeUserInfo replaces the session user wholesale.
func ChangeUserInfo(user contract.User) Action {
	return Action{kind: actChangeUserInfo, user: user}
}

func ChangeUserLoggedStatus(logged bool) Action {
	return Action{kind: actChangeUserLoggedStatus, flag: logged}
}

// AddURLToHistory appends a visited route. History grows without bound
// within a session; that is a known limitation, not remediated here.
func AddURLToHistory(url string) Action {
	return Action{kind: actAddURLToHistory, url: url}
}

func AddToNewsCount(delta int) Action {
	return Action{kind: actAddToNewsCount, delta: delta}
}

func AddToUserCount(delta int) Action {
	return Action{kind: actAddToUserCount, delta: delta}
}

func AddToArtistCount(delta int) Action {
	return Action{kind: actAddToArtistCount, delta: delta}
}

// reduce is the pure transition function. It never mutates prev or any
// of its slices in place.
func reduce(prev State, a Action) State {
	next := prev

	switch a.kind {
	case actChangeUserInfo:
		next.User = a.user
	case actChangeUserLoggedStatus:
		next.Logged = a.flag
	case actAddURLToHistory:
		history := make([]string, len(prev.URLHistory), len(prev.URLHistory)+1)
		copy(history, prev.URLHistory)
		next.URLHistory = append(history, a.url)
	case actAddToNewsCount:
		next.NewsCount = prev.NewsCount + a.delta
	case actAddToUserCount:
		next.UserCount = prev.UserCount + a.delta
	case actAddToArtistCount:
		next.ArtistCount = prev.ArtistCount + a.delta
	}

	return next
}

// Listener receives every state produced by a dispatch, in dispatch
// order, after the reducer has fully applied.
type Listener func(State)

// Store is the single source of truth for session and navigation
// state. Inject it explicitly; it is not a package-level singleton.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	nextID    int
	session   SessionStore

	// queue holds emissions in reduce order until a single draining
	// goroutine delivers them, so listeners never see a newer state
	// before an older one even when dispatches race.
	queue      []emission
	delivering bool
}

type emission struct {
	state     State
	listeners []Listener
}

// NewStore builds a store and hydrates it from session, exactly once
// and synchronously, before any emission can be observed. A nil
// session, a missing record or a corrupt record all start the store
// logged out with an empty user. The store never holds a nil-ish user.
func NewStore(session SessionStore) *Store {
	s := &Store{
		listeners: make(map[int]Listener),
		session:   session,
	}
	s.state.User = contract.EmptyUser("")

	if session != nil {
		if user, ok, err := session.Load(); err == nil && ok {
			s.state.User = user
			s.state.Logged = true
		}
	}

	return s
}

// Dispatch applies the action and notifies listeners with the new
// state. Emissions are delivered strictly in reduce order: the reduced
// state is queued under the lock, and whichever goroutine finds the
// queue idle drains it to completion. A Dispatch that arrives while a
// drain is in flight enqueues its emission and returns; the drainer
// delivers it.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)

	notify := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		notify = append(notify, fn)
	}
	s.queue = append(s.queue, emission{state: s.state, listeners: notify})

	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true

	for len(s.queue) > 0 {
		e := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		for _, fn := range e.listeners {
			fn(e.state)
		}

		s.mu.Lock()
	}
	s.delivering = false
	s.mu.Unlock()
}

// Current returns a snapshot of the state. This replaces the
// subscribe-read-unsubscribe dance for one-shot reads.
func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener and returns its release function.
// The listener only sees states produced after registration.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// PersistSession writes the current user through the session store so
// the next startup hydrates logged in. No-op without a session store.
func (s *Store) PersistSession() error {
	if s.session == nil {
		return nil
	}
	return s.session.Save(s.Current().User)
}

// ClearSession removes the persisted record. No-op without a session
// store.
func (s *Store) ClearSession() error {
	if s.session == nil {
		return nil
	}
	return s.session.Clear()
}
