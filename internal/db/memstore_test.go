package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreUsers(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	alice := &User{ID: "u1", Name: "alice", Password: "pw", Type: "normal"}
	require.NoError(t, store.CreateUser(ctx, alice))

	t.Run("DuplicateIDConflicts", func(t *testing.T) {
		err := store.CreateUser(ctx, &User{ID: "u1", Name: "other", Password: "x"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("DuplicateNamePasswordConflicts", func(t *testing.T) {
		err := store.CreateUser(ctx, &User{ID: "u2", Name: "alice", Password: "pw"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("SameNameDifferentPasswordAllowed", func(t *testing.T) {
		err := store.CreateUser(ctx, &User{ID: "u3", Name: "alice", Password: "other"})
		assert.NoError(t, err)
	})

	t.Run("Lookup", func(t *testing.T) {
		got, err := store.UserByID(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "alice", got.Name)

		missing, err := store.UserByID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Update", func(t *testing.T) {
		updated := *alice
		updated.Avatar = "new.png"
		require.NoError(t, store.UpdateUser(ctx, &updated))

		got, err := store.UserByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "new.png", got.Avatar)

		err = store.UpdateUser(ctx, &User{ID: "ghost"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("UpdateIntoTakenNamePasswordConflicts", func(t *testing.T) {
		err := store.UpdateUser(ctx, &User{ID: "u3", Name: "alice", Password: "pw"})
		assert.ErrorIs(t, err, ErrConflict)

		got, err := store.UserByID(ctx, "u3")
		require.NoError(t, err)
		assert.Equal(t, "other", got.Password, "rejected update must not be applied")
	})

	t.Run("CountAndDelete", func(t *testing.T) {
		count, err := store.UsersCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		require.NoError(t, store.DeleteUser(ctx, "u3"))
		count, err = store.UsersCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestMemStoreNews(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	news := &News{ID: "n1", AuthorID: "u1", Title: "First", Tags: []string{"rock"}}
	require.NoError(t, store.CreateNews(ctx, news))
	assert.ErrorIs(t, store.CreateNews(ctx, news), ErrConflict)

	got, err := store.NewsByID(ctx, "n1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "First", got.Title)

	// the returned value is a copy
	got.Title = "mutated"
	again, err := store.NewsByID(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "First", again.Title)

	got.Title = "Edited"
	got.Edited = true
	require.NoError(t, store.UpdateNews(ctx, got))
	again, err = store.NewsByID(ctx, "n1")
	require.NoError(t, err)
	assert.True(t, again.Edited)

	count, err := store.NewsCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, store.DeleteNews(ctx, "n1"))
	missing, err := store.NewsByID(ctx, "n1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemStoreCommentsAndArtists(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	comment := &Comment{ID: "c1", AuthorID: "u1", AuthorName: "alice", Content: "hi"}
	require.NoError(t, store.CreateComment(ctx, comment))
	assert.ErrorIs(t, store.CreateComment(ctx, comment), ErrConflict)

	got, err := store.CommentByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.AuthorName)

	store.SeedTags([]Tag{{ID: 1, Title: "rock"}, {ID: 2, Title: "jazz"}})
	tags, err := store.Tags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	store.SeedArtists([]Artist{{ID: "a1", Name: "The Band"}})
	count, err := store.ArtistsCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
