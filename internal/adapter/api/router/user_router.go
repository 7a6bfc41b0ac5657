package router

import (
	"github.com/labstack/echo/v4"

	"campusmarket/internal/adapter/api/handler"
	"campusmarket/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	profile := e.Group("/profile")
	profile.Use(authMiddleware.Authenticate)
	profile.GET("/me", userHandler.Me)
	profile.PATCH("/me", userHandler.UpdateMe)
	profile.DELETE("/me", userHandler.DeleteMe)

	e.GET("/users/search", userHandler.Search, authMiddleware.Authenticate)
}
