package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes builds the echo instance with all routes attached.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	api := e.Group("/api")

	api.GET("/news/size", h.NewsSize)
	api.GET("/news/:id", h.NewsByID)
	api.POST("/news", h.CreateNews)
	api.PUT("/news/:id", h.EditNews)

	api.GET("/users/size", h.UsersSize)
	api.GET("/users/:id", h.UserByID)
	api.POST("/users", h.CreateUser)
	api.PUT("/users/:id", h.EditUser)
	api.DELETE("/users/:id", h.DeleteUser)

	api.GET("/artists/size", h.ArtistsSize)
	api.GET("/artists/tags", h.Tags)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}
