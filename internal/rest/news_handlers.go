package rest

import (
	"github.com/labstack/echo/v4"

	"newshub/internal/contract"
	"newshub/internal/db"
)

// NewsSize handles GET /api/news/size
func (h *Handler) NewsSize(c echo.Context) error {
	count, err := h.store.NewsCount(c.Request().Context())
	if err != nil {
		return h.storageError(c, "news count", err)
	}

	return respond(c, contract.Success(count))
}

// NewsByID handles GET /api/news/:id
func (h *Handler) NewsByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respond(c, contract.BadRequest())
	}

	news, err := h.store.NewsByID(c.Request().Context(), id)
	if err != nil {
		return h.storageError(c, "news by id", err)
	}
	if news == nil {
		return respond(c, contract.NotFound())
	}

	return respond(c, contract.Success(news.Contract()))
}

// CreateNews handles POST /api/news. The client assigns id, author and
// date; they are stored verbatim.
func (h *Handler) CreateNews(c echo.Context) error {
	var news contract.News
	if err := c.Bind(&news); err != nil {
		return respond(c, contract.BadRequest())
	}
	if news.ID == "" || news.AuthorID == "" {
		return respond(c, contract.BadRequest())
	}

	record := db.NewNews(news)
	if err := h.store.CreateNews(c.Request().Context(), &record); err != nil {
		return h.storageError(c, "create news", err)
	}

	return respond(c, contract.Success(record.Contract()))
}

// EditNews handles PUT /api/news/:id
func (h *Handler) EditNews(c echo.Context) error {
	var news contract.News
	if err := c.Bind(&news); err != nil {
		return respond(c, contract.BadRequest())
	}
	if news.ID == "" || news.ID != c.Param("id") {
		return respond(c, contract.BadRequest())
	}

	record := db.NewNews(news)
	if err := h.store.UpdateNews(c.Request().Context(), &record); err != nil {
		return h.storageError(c, "edit news", err)
	}

	return respond(c, contract.Success(record.Contract()))
}
