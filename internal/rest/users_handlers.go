package rest

import (
	"github.com/labstack/echo/v4"

	"newshub/internal/contract"
	"newshub/internal/db"
)

// UsersSize handles GET /api/users/size
func (h *Handler) UsersSize(c echo.Context) error {
	count, err := h.store.UsersCount(c.Request().Context())
	if err != nil {
		return h.storageError(c, "users count", err)
	}

	return respond(c, contract.Success(count))
}

// UserByID handles GET /api/users/:id
func (h *Handler) UserByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respond(c, contract.BadRequest())
	}

	user, err := h.store.UserByID(c.Request().Context(), id)
	if err != nil {
		return h.storageError(c, "user by id", err)
	}
	if user == nil {
		return respond(c, contract.NotFound())
	}

	return respond(c, contract.Success(user.Contract()))
}

// CreateUser handles POST /api/users. The (name, password) pair must
// be unique; a collision answers 400.
func (h *Handler) CreateUser(c echo.Context) error {
	var user contract.User
	if err := c.Bind(&user); err != nil {
		return respond(c, contract.BadRequest())
	}
	if user.ID == "" || user.Name == "" || user.Password == "" {
		return respond(c, contract.BadRequest())
	}

	record := db.NewUser(user)
	if err := h.store.CreateUser(c.Request().Context(), &record); err != nil {
		return h.storageError(c, "create user", err)
	}

	return respond(c, contract.Success(record.Contract()))
}

// EditUser handles PUT /api/users/:id
func (h *Handler) EditUser(c echo.Context) error {
	var user contract.User
	if err := c.Bind(&user); err != nil {
		return respond(c, contract.BadRequest())
	}
	if user.ID == "" || user.ID != c.Param("id") {
		return respond(c, contract.BadRequest())
	}

	record := db.NewUser(user)
	if err := h.store.UpdateUser(c.Request().Context(), &record); err != nil {
		return h.storageError(c, "edit user", err)
	}

	return respond(c, contract.Success(record.Contract()))
}

// DeleteUser handles DELETE /api/users/:id
func (h *Handler) DeleteUser(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respond(c, contract.BadRequest())
	}

	if err := h.store.DeleteUser(c.Request().Context(), id); err != nil {
		return h.storageError(c, "delete user", err)
	}

	return respond(c, contract.Success(nil))
}
