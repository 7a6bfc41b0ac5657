package router

import (
	"github.com/labstack/echo/v4"

	"campusmarket/internal/adapter/api/handler"
	"campusmarket/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	// Reads accept an optional token: with one, RLS evaluates as the caller;
	// without, as the anonymous role.
	e.GET("/listings", listingHandler.List, authMiddleware.OptionalAuthenticate)
	e.GET("/listings/recent", listingHandler.Recent)
	e.GET("/listings/:id", listingHandler.GetByID, authMiddleware.OptionalAuthenticate)

	e.POST("/listings", listingHandler.Create, authMiddleware.Authenticate)
	e.PATCH("/listings/:id", listingHandler.Update, authMiddleware.Authenticate)
	e.DELETE("/listings/:id", listingHandler.Delete, authMiddleware.Authenticate)
}
