package remote

import (
	"context"
	"net/http"

	"newshub/internal/contract"
)

// ArtistsService is the gateway for artist and tag lookups.
type ArtistsService struct {
	client *Client
}

func NewArtistsService(client *Client) *ArtistsService {
	return &ArtistsService{client: client}
}

// Size reports how many artists exist. On success the result is an
// integer.
func (s *ArtistsService) Size(ctx context.Context) contract.ApiResponse {
	return s.client.call(ctx, http.MethodGet, "/api/artists/size", nil)
}

// Tags lists the labels available when composing an article. On
// success the result is a []contract.Tag.
func (s *ArtistsService) Tags(ctx context.Context) contract.ApiResponse {
	return s.client.call(ctx, http.MethodGet, "/api/artists/tags", nil)
}
