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

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type createListingRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	CategoryID  string  `json:"category_id" validate:"required"`
	ConditionID string  `json:"condition_id" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	IsFree      bool    `json:"is_free"`
	Status      string  `json:"status"`
	Location    string  `json:"location"`
}

// List serves GET /listings. A `query` parameter selects the paginated
// free-text search; otherwise a single equality filter or the plain scan
// applies. Without a token the anonymous scope answers.
func (h *ListingHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.AccessToken(c)

	if c.QueryParam("query") != "" {
		params, err := h.searchParams(c)
		if err != nil {
			return response.Error(c, err)
		}
		result, err := h.listingUseCase.Search(ctx, token, *params)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, result)
	}

	if categoryID := c.QueryParam("category"); categoryID != "" {
		listings, err := h.listingUseCase.GetByCategory(ctx, token, categoryID)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, listings)
	}

	if rawCondition := c.QueryParam("condition"); rawCondition != "" {
		condition, ok := entity.NormalizeCondition(rawCondition)
		if !ok {
			return response.Error(c, errors.BadRequest("invalid condition", nil))
		}
		listings, err := h.listingUseCase.GetByCondition(ctx, token, condition)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, listings)
	}

	if status := c.QueryParam("status"); status != "" {
		listings, err := h.listingUseCase.GetByStatus(ctx, token, entity.ListingStatus(status))
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, listings)
	}

	listings, err := h.listingUseCase.GetAll(ctx, token)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listings)
}

// searchParams reads the search filters. Here `condition` is a condition_id
// foreign key, unlike the name-based condition filter on the equality path
// above.
func (h *ListingHandler) searchParams(c echo.Context) (*entity.SearchListingsParams, error) {
	offset, limit, err := utils.ParseOffsetLimit(c, 20)
	if err != nil {
		return nil, errors.BadRequest(err.Error(), nil)
	}
	minPrice, err := utils.ParseOptionalFloat(c, "minPrice")
	if err != nil {
		return nil, errors.BadRequest(err.Error(), nil)
	}
	maxPrice, err := utils.ParseOptionalFloat(c, "maxPrice")
	if err != nil {
		return nil, errors.BadRequest(err.Error(), nil)
	}
	isFree, err := utils.ParseOptionalBool(c, "isFree")
	if err != nil {
		return nil, errors.BadRequest(err.Error(), nil)
	}

	return &entity.SearchListingsParams{
		Query:       c.QueryParam("query"),
		CategoryID:  c.QueryParam("category"),
		ConditionID: c.QueryParam("condition"),
		Status:      entity.ListingStatus(c.QueryParam("status")),
		IsFree:      isFree,
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		Offset:      offset,
		Limit:       limit,
	}, nil
}

func (h *ListingHandler) GetByID(c echo.Context) error {
	listing, err := h.listingUseCase.GetByID(c.Request().Context(), middleware.AccessToken(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

// Recent is the public landing-page feed: 20 newest rows, anonymous scope,
// regardless of caller.
func (h *ListingHandler) Recent(c echo.Context) error {
	listings, err := h.listingUseCase.GetMostRecent(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listings)
}

func (h *ListingHandler) Create(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Create(c.Request().Context(), middleware.AccessToken(c), entity.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		ConditionID: req.ConditionID,
		Price:       req.Price,
		IsFree:      req.IsFree,
		Status:      entity.ListingStatus(req.Status),
		Location:    req.Location,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, listing)
}

func (h *ListingHandler) Update(c echo.Context) error {
	var patch entity.ListingPatch
	if err := c.Bind(&patch); err != nil {
		return response.Error(c, errors.BadRequest("invalid request body", err))
	}

	listing, err := h.listingUseCase.Update(c.Request().Context(), middleware.AccessToken(c), c.Param("id"), patch)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *ListingHandler) Delete(c echo.Context) error {
	id, err := h.listingUseCase.Delete(c.Request().Context(), middleware.AccessToken(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": id})
}
