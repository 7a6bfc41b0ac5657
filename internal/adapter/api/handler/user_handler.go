package handler

import (
	"github.com/labstack/echo/v4"

	"campusmarket/internal/adapter/api/middleware"
	"campusmarket/internal/domain/entity"
	"campusmarket/internal/usecase"
	"campusmarket/pkg/errors"
	"campusmarket/pkg/response"
	"campusmarket/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.userUseCase.GetSelf(c.Request().Context(), middleware.AccessToken(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) UpdateMe(c echo.Context) error {
	var patch entity.UserPatch
	if err := c.Bind(&patch); err != nil {
		return response.Error(c, errors.BadRequest("invalid request body", err))
	}

	user, err := h.userUseCase.UpdateSelf(c.Request().Context(), middleware.AccessToken(c), patch)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

// DeleteMe soft-deletes the caller's own account; the row is retained with
// status DELETED.
func (h *UserHandler) DeleteMe(c echo.Context) error {
	if err := h.userUseCase.DeleteSelf(c.Request().Context(), middleware.AccessToken(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"deleted": true})
}

// Search serves GET /users/search with either a name= or an email= query.
func (h *UserHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.AccessToken(c)

	_, limit, err := utils.ParseOffsetLimit(c, 10)
	if err != nil {
		return response.Error(c, errors.BadRequest(err.Error(), nil))
	}

	if name := c.QueryParam("name"); name != "" {
		users, searchErr := h.userUseCase.SearchByName(ctx, token, name, limit)
		if searchErr != nil {
			return response.Error(c, searchErr)
		}
		return response.Success(c, users)
	}

	if email := c.QueryParam("email"); email != "" {
		users, searchErr := h.userUseCase.SearchByEmail(ctx, token, email, limit)
		if searchErr != nil {
			return response.Error(c, searchErr)
		}
		return response.Success(c, users)
	}

	return response.Error(c, errors.BadRequest("name or email query parameter required", nil))
}
