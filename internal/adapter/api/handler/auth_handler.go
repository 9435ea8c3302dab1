package handler

import (
	"github.com/labstack/echo/v4"

	"nearbuy/internal/usecase"
	"nearbuy/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// Register creates the user record for a freshly verified phone number.
// Idempotent for already-registered callers.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	phone := c.Get("phone").(string)

	user, err := h.authUseCase.Register(c.Request().Context(), uid, phone, usecase.RegisterInput{
		Name: req.Name,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

func (h *AuthHandler) GetMe(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.authUseCase.GetUserByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
