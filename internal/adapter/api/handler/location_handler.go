package handler

import (
	"github.com/labstack/echo/v4"

	"nearbuy/internal/usecase"
	"nearbuy/pkg/response"
)

type LocationHandler struct {
	locationUseCase *usecase.LocationUseCase
}

func NewLocationHandler(locationUseCase *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{
		locationUseCase: locationUseCase,
	}
}

// Pointers so that a coordinate of exactly 0 still passes required.
type setLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

func (h *LocationHandler) SetLocation(c echo.Context) error {
	var req setLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	location, err := h.locationUseCase.SetLocation(c.Request().Context(), uid, *req.Latitude, *req.Longitude)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, location)
}

func (h *LocationHandler) GetMyLocation(c echo.Context) error {
	uid := c.Get("uid").(string)

	location, err := h.locationUseCase.GetMyLocation(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, location)
}
