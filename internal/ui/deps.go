// Package ui contains the per-screen controllers. Each controller gets
// its collaborators through its constructor: the state store, the
// remote gateways it needs, a Navigator for route changes and a
// Notifier for transient messages. There is no ambient state anywhere.
package ui

import (
	"context"

	"newshub/internal/contract"
)

// Navigator performs a route change. Navigation is how workflows
// report not-found and error outcomes.
type Navigator interface {
	NavigateTo(url string)
}

// Notifier surfaces transient user-facing messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NewsGateway is the slice of the news service the controllers use.
type NewsGateway interface {
	Size(ctx context.Context) contract.ApiResponse
	Get(ctx context.Context, id string) contract.ApiResponse
	Create(ctx context.Context, news contract.News) contract.ApiResponse
	Edit(ctx context.Context, news contract.News) contract.ApiResponse
}

// UsersGateway is the slice of the users service the controllers use.
type UsersGateway interface {
	Size(ctx context.Context) contract.ApiResponse
	Get(ctx context.Context, id string) contract.ApiResponse
	Edit(ctx context.Context, user contract.User) contract.ApiResponse
}

// ArtistsGateway is the slice of the artist service the controllers
// use.
type ArtistsGateway interface {
	Size(ctx context.Context) contract.ApiResponse
	Tags(ctx context.Context) contract.ApiResponse
}

// Route targets shared by the workflows.
const (
	RouteHome     = "/home"
	RouteLogin    = "/login"
	RouteNotFound = "/notfound"
	RouteError    = "/error"
)
