package remote

import (
	"context"
	"net/http"

	"newshub/internal/contract"
)

// UsersService is the gateway for account management.
type UsersService struct {
	client *Client
}

func NewUsersService(client *Client) *UsersService {
	return &UsersService{client: client}
}

// Size reports how many users exist. On success the result is an
// integer.
func (s *UsersService) Size(ctx context.Context) contract.ApiResponse {
	return s.client.call(ctx, http.MethodGet, "/api/users/size", nil)
}

// Get fetches one user by id. On success the result is a
// contract.User.
func (s *UsersService) Get(ctx context.Context, id string) contract.ApiResponse {
	return s.client.call(ctx, http.MethodGet, "/api/users/"+id, nil)
}

// Create registers a user. The (name, password) uniqueness constraint
// is enforced server-side and surfaces as a 400 envelope.
func (s *UsersService) Create(ctx context.Context, user contract.User) contract.ApiResponse {
	return s.client.call(ctx, http.MethodPost, "/api/users", user)
}

// Edit saves profile changes.
func (s *UsersService) Edit(ctx context.Context, user contract.User) contract.ApiResponse {
	return s.client.call(ctx, http.MethodPut, "/api/users/"+user.ID, user)
}
