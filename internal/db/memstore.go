package db

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store used by the test suite and by the
// server's -memory mode. Methods hand out copies, never internal
// pointers.
type MemStore struct {
	mu       sync.RWMutex
	users    map[string]User
	news     map[string]News
	comments map[string]Comment
	artists  map[string]Artist
	tags     []Tag
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:    make(map[string]User),
		news:     make(map[string]News),
		comments: make(map[string]Comment),
		artists:  make(map[string]Artist),
	}
}

// SeedTags replaces the tag list.
func (m *MemStore) SeedTags(tags []Tag) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tags = append([]Tag(nil), tags...)
}

// SeedArtists replaces the artist list.
func (m *MemStore) SeedArtists(artists []Artist) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.artists = make(map[string]Artist, len(artists))
	for _, a := range artists {
		m.artists[a.ID] = a
	}
}

func (m *MemStore) UserByID(_ context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m *MemStore) CreateUser(_ context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; ok {
		return ErrConflict
	}
	for _, existing := range m.users {
		if existing.Name == user.Name && existing.Password == user.Password {
			return ErrConflict
		}
	}

	m.users[user.ID] = *user
	return nil
}

func (m *MemStore) UpdateUser(_ context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		return ErrNotFound
	}
	for id, existing := range m.users {
		if id != user.ID && existing.Name == user.Name && existing.Password == user.Password {
			return ErrConflict
		}
	}

	m.users[user.ID] = *user
	return nil
}

func (m *MemStore) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *MemStore) UsersCount(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users), nil
}

func (m *MemStore) NewsByID(_ context.Context, id string) (*News, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	news, ok := m.news[id]
	if !ok {
		return nil, nil
	}
	return &news, nil
}

func (m *MemStore) CreateNews(_ context.Context, news *News) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.news[news.ID]; ok {
		return ErrConflict
	}
	m.news[news.ID] = *news
	return nil
}

func (m *MemStore) UpdateNews(_ context.Context, news *News) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.news[news.ID]; !ok {
		return ErrNotFound
	}
	m.news[news.ID] = *news
	return nil
}

func (m *MemStore) DeleteNews(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.news[id]; !ok {
		return ErrNotFound
	}
	delete(m.news, id)
	return nil
}

func (m *MemStore) NewsCount(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.news), nil
}

func (m *MemStore) CommentByID(_ context.Context, id string) (*Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	comment, ok := m.comments[id]
	if !ok {
		return nil, nil
	}
	return &comment, nil
}

func (m *MemStore) CreateComment(_ context.Context, comment *Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.comments[comment.ID]; ok {
		return ErrConflict
	}
	m.comments[comment.ID] = *comment
	return nil
}

func (m *MemStore) Tags(_ context.Context) ([]Tag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Tag(nil), m.tags...), nil
}

func (m *MemStore) ArtistsCount(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.artists), nil
}
