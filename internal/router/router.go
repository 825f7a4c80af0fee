package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"userform/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	formHandler *handler.FormHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Form
	e.GET("/", formHandler.ShowForm)
	e.POST("/save", formHandler.Save)

	api := e.Group("/api")
	api.GET("/users/:id", userHandler.GetUser)
}
