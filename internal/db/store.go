// Package db is the reference backend's storage layer: a Store
// interface with a go-pg Postgres implementation and an in-memory one
// for tests and local development.
package db

import (
	"context"
	"errors"
)

// ErrConflict reports a violated uniqueness constraint, e.g. a user
// create reusing an existing (name, password) pair or entity id.
var ErrConflict = errors.New("conflict")

// ErrNotFound reports an update or delete aimed at a missing entity.
// Lookups signal absence with a nil entity instead.
var ErrNotFound = errors.New("not found")

// Store is the persistence surface the REST handlers consume.
// Lookup methods return (nil, nil) when the entity does not exist.
type Store interface {
	UserByID(ctx context.Context, id string) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, id string) error
	UsersCount(ctx context.Context) (int, error)

	NewsByID(ctx context.Context, id string) (*News, error)
	CreateNews(ctx context.Context, news *News) error
	UpdateNews(ctx context.Context, news *News) error
	DeleteNews(ctx context.Context, id string) error
	NewsCount(ctx context.Context) (int, error)

	CommentByID(ctx context.Context, id string) (*Comment, error)
	CreateComment(ctx context.Context, comment *Comment) error

	Tags(ctx context.Context) ([]Tag, error)
	ArtistsCount(ctx context.Context) (int, error)
}
