package ui

import (
	"context"
	"log/slog"

	"newshub/internal/appstate"
	"newshub/internal/contract"
	"newshub/internal/remote"
)

// ProfileEdit drives the profile editing screen for one target user.
type ProfileEdit struct {
	Editing contract.User
	Loading bool

	store    *appstate.Store
	users    UsersGateway
	nav      Navigator
	notifier Notifier
	log      *slog.Logger
}

// NewProfileEdit resolves the target user from the route id. A missing
// id redirects to not-found with no fetch; a failed fetch redirects to
// not-found too. Loading is cleared on both branches.
func NewProfileEdit(
	ctx context.Context,
	store *appstate.Store,
	users UsersGateway,
	nav Navigator,
	notifier Notifier,
	log *slog.Logger,
	routeID string,
) *ProfileEdit {
	c := &ProfileEdit{
		Editing:  contract.EmptyUser(""),
		store:    store,
		users:    users,
		nav:      nav,
		notifier: notifier,
		log:      log,
	}

	if routeID == "" {
		nav.NavigateTo(RouteNotFound)
		return c
	}

	c.Loading = true

	res := users.Get(ctx, routeID)
	if res.Status == contract.StatusSuccess {
		if user, err := remote.Result[contract.User](res); err == nil {
			c.Editing = user
		} else {
			log.Warn("user result unreadable", "error", err)
			nav.NavigateTo(RouteNotFound)
		}
	} else {
		nav.NavigateTo(RouteNotFound)
	}
	c.Loading = false

	return c
}

// OnSaveUser sends the edited profile if and only if the session user
// is the profile's owner. The check is a client-side convenience; the
// server re-validates. A mismatch notifies locally and makes no
// network call.
func (c *ProfileEdit) OnSaveUser(ctx context.Context) {
	userID := appstate.UserInfo(c.store.Current()).ID

	if userID != c.Editing.ID {
		c.notifier.Error("You don't have permission to do this!")
		return
	}

	res := c.users.Edit(ctx, c.Editing)
	if res.Status == contract.StatusSuccess {
		c.notifier.Success("Saved successfully!")
		return
	}

	c.log.Error("profile save failed", "status", res.Status, "msg", res.Msg)
	c.nav.NavigateTo(RouteError)
}
