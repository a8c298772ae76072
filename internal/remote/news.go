package remote

import (
	"context"
	"net/http"

	"newshub/internal/contract"
)

// NewsService is the gateway for news management.
type NewsService struct {
	client *Client
}

func NewNewsService(client *Client) *NewsService {
	return &NewsService{client: client}
}

// Size reports how many news articles exist. On success the result is
// an integer.
func (s *NewsService) Size(ctx context.Context) contract.ApiResponse {
	return s.client.call(ctx, http.MethodGet, "/api/news/size", nil)
}

// Get fetches one article by id. On success the result is a
// contract.News.
func (s *NewsService) Get(ctx context.Context, id string) contract.ApiResponse {
	return s.client.call(ctx, http.MethodGet, "/api/news/"+id, nil)
}

// Create submits a new article. The client-assigned id and date are
// sent as-is; the server stores them verbatim.
func (s *NewsService) Create(ctx context.Context, news contract.News) contract.ApiResponse {
	return s.client.call(ctx, http.MethodPost, "/api/news", news)
}

// Edit updates an existing article in place.
func (s *NewsService) Edit(ctx context.Context, news contract.News) contract.ApiResponse {
	return s.client.call(ctx, http.MethodPut, "/api/news/"+news.ID, news)
}
