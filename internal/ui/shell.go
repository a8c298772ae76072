package ui

import (
	"context"
	"log/slog"
	"sync"

	"newshub/internal/appstate"
	"newshub/internal/contract"
	"newshub/internal/remote"
)

// Shell is the root controller. It owns session bootstrap, URL history
// recording and the aggregate counter fan-out.
type Shell struct {
	store   *appstate.Store
	news    NewsGateway
	users   UsersGateway
	artists ArtistsGateway
	nav     Navigator
	log     *slog.Logger
}

func NewShell(
	store *appstate.Store,
	news NewsGateway,
	users UsersGateway,
	artists ArtistsGateway,
	nav Navigator,
	log *slog.Logger,
) *Shell {
	return &Shell{
		store:   store,
		news:    news,
		users:   users,
		artists: artists,
		nav:     nav,
		log:     log,
	}
}

// Bootstrap fetches the three aggregate sizes. The fetches are
// independent and unordered; each updates a disjoint counter, and a
// failed fetch contributes a delta of 0 instead of propagating.
func (s *Shell) Bootstrap(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		s.store.Dispatch(appstate.AddToNewsCount(s.sizeOrZero(ctx, "news", s.news.Size)))
	}()
	go func() {
		defer wg.Done()
		s.store.Dispatch(appstate.AddToUserCount(s.sizeOrZero(ctx, "users", s.users.Size)))
	}()
	go func() {
		defer wg.Done()
		s.store.Dispatch(appstate.AddToArtistCount(s.sizeOrZero(ctx, "artists", s.artists.Size)))
	}()

	wg.Wait()
}

func (s *Shell) sizeOrZero(ctx context.Context, entity string, fetch func(context.Context) contract.ApiResponse) int {
	res := fetch(ctx)
	if res.Status != contract.StatusSuccess {
		s.log.Warn("size fetch failed", "entity", entity, "status", res.Status)
		return 0
	}

	size, err := remote.Result[int](res)
	if err != nil {
		s.log.Warn("size result unreadable", "entity", entity, "error", err)
		return 0
	}

	return size
}

// RecordNavigation appends a visited route to the history.
func (s *Shell) RecordNavigation(url string) {
	s.store.Dispatch(appstate.AddURLToHistory(url))
}

// Logout resets the session to the empty, logged-out user, drops the
// persisted record and returns home.
func (s *Shell) Logout() {
	s.store.Dispatch(appstate.ChangeUserInfo(contract.EmptyUser("")))
	s.store.Dispatch(appstate.ChangeUserLoggedStatus(false))

	if err := s.store.ClearSession(); err != nil {
		s.log.Warn("clear session failed", "error", err)
	}

	s.nav.NavigateTo(RouteHome)
}

func (s *Shell) Login() {
	s.nav.NavigateTo(RouteLogin)
}

// EditProfile navigates to the current user's profile page, reading
// the id from a state snapshot.
func (s *Shell) EditProfile() {
	userID := appstate.UserInfo(s.store.Current()).ID
	s.nav.NavigateTo(RouteHome + "/user/" + userID)
}
