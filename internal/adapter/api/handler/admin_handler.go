package handler

import (
	"github.com/labstack/echo/v4"

	"campusmarket/internal/usecase"
	"campusmarket/pkg/response"
)

// AdminHandler serves the administrative-scope operations. Every route it
// backs sits behind both the auth gate and the admin gate.
type AdminHandler struct {
	listingUseCase *usecase.ListingUseCase
	userUseCase    *usecase.UserUseCase
}

func NewAdminHandler(listingUseCase *usecase.ListingUseCase, userUseCase *usecase.UserUseCase) *AdminHandler {
	return &AdminHandler{
		listingUseCase: listingUseCase,
		userUseCase:    userUseCase,
	}
}

// ListSellerListings returns every listing of a given seller, bypassing
// row-level security.
func (h *AdminHandler) ListSellerListings(c echo.Context) error {
	listings, err := h.listingUseCase.GetBySeller(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listings)
}

func (h *AdminHandler) SoftDeleteUser(c echo.Context) error {
	if err := h.userUseCase.SoftDeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"deleted": true})
}
