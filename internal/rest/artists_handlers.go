package rest

import (
	"github.com/labstack/echo/v4"

	"newshub/internal/contract"
)

// ArtistsSize handles GET /api/artists/size
func (h *Handler) ArtistsSize(c echo.Context) error {
	count, err := h.store.ArtistsCount(c.Request().Context())
	if err != nil {
		return h.storageError(c, "artists count", err)
	}

	return respond(c, contract.Success(count))
}

// Tags handles GET /api/artists/tags
func (h *Handler) Tags(c echo.Context) error {
	tags, err := h.store.Tags(c.Request().Context())
	if err != nil {
		return h.storageError(c, "tags", err)
	}

	result := make([]contract.Tag, len(tags))
	for i, tag := range tags {
		result[i] = tag.Contract()
	}

	return respond(c, contract.Success(result))
}
