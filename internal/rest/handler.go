// Package rest exposes the storage layer behind the ApiResponse
// contract. Every route answers with the envelope; the HTTP status
// mirrors the envelope's status field.
package rest

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"

	"newshub/internal/contract"
	"newshub/internal/db"
)

type Handler struct {
	store db.Store
	log   *slog.Logger
}

func NewHandler(store db.Store, log *slog.Logger) *Handler {
	return &Handler{
		store: store,
		log:   log,
	}
}

func respond(c echo.Context, res contract.ApiResponse) error {
	return c.JSON(res.Status, res)
}

// storageError maps a storage failure onto the envelope taxonomy.
func (h *Handler) storageError(c echo.Context, op string, err error) error {
	if errors.Is(err, db.ErrConflict) {
		return respond(c, contract.BadRequest())
	}
	if errors.Is(err, db.ErrNotFound) {
		return respond(c, contract.NotFound())
	}

	h.log.Error("storage failure", "op", op, "error", err)
	return respond(c, contract.ServerError())
}
