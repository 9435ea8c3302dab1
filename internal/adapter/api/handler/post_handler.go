package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/usecase"
	"nearbuy/pkg/errors"
	"nearbuy/pkg/response"
	"nearbuy/pkg/utils"
)

type PostHandler struct {
	postUseCase *usecase.PostUseCase
}

func NewPostHandler(postUseCase *usecase.PostUseCase) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
	}
}

type createPostRequest struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Price       *int64   `json:"price" validate:"omitempty,gt=0"`
	ImageURLs   []string `json:"image_urls" validate:"omitempty,dive,url"`
	Type        string   `json:"type" validate:"required,oneof=request offer announcement"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active completed cancelled"`
}

func (h *PostHandler) CreatePost(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	post, err := h.postUseCase.CreatePost(c.Request().Context(), uid, usecase.CreatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURLs:   req.ImageURLs,
		Type:        entity.PostType(req.Type),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postUseCase.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *PostHandler) ListMyPosts(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	posts, total, err := h.postUseCase.ListUserPosts(c.Request().Context(), uid, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, posts, total, pagination.Page, pagination.PageSize)
}

func (h *PostHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	post, err := h.postUseCase.UpdateStatus(c.Request().Context(), uid, c.Param("id"), entity.PostStatus(req.Status))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

// Nearby handles the geo search. Latitude, longitude and radius come from
// query parameters; page defaults to 1 but an explicit page below 1 is
// rejected rather than clamped.
func (h *PostHandler) Nearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("lat is required and must be a number", err))
	}

	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("lon is required and must be a number", err))
	}

	radiusKm := 10.0
	if radiusStr := c.QueryParam("radius_km"); radiusStr != "" {
		radiusKm, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("radius_km must be a number", err))
		}
	}

	page := 1
	if pageStr := c.QueryParam("page"); pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil {
			return response.Error(c, errors.BadRequest("page must be an integer", err))
		}
	}

	pageSize := 20
	if sizeStr := c.QueryParam("limit"); sizeStr != "" {
		pageSize, err = strconv.Atoi(sizeStr)
		if err != nil {
			return response.Error(c, errors.BadRequest("limit must be an integer", err))
		}
	}

	result, err := h.postUseCase.FindNearby(c.Request().Context(), lat, lon, radiusKm, page, pageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
