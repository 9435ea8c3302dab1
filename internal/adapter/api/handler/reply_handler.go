package handler

import (
	"github.com/labstack/echo/v4"

	"nearbuy/internal/usecase"
	"nearbuy/pkg/response"
)

type ReplyHandler struct {
	replyUseCase *usecase.ReplyUseCase
}

func NewReplyHandler(replyUseCase *usecase.ReplyUseCase) *ReplyHandler {
	return &ReplyHandler{
		replyUseCase: replyUseCase,
	}
}

type createReplyRequest struct {
	Price       int64    `json:"price" validate:"required,gt=0"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	ImageURLs   []string `json:"image_urls" validate:"omitempty,dive,url"`
}

func (h *ReplyHandler) CreateReply(c echo.Context) error {
	var req createReplyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	reply, err := h.replyUseCase.CreateReply(c.Request().Context(), uid, usecase.CreateReplyInput{
		PostID:      c.Param("id"),
		Price:       req.Price,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, reply)
}

func (h *ReplyHandler) ListPostReplies(c echo.Context) error {
	replies, err := h.replyUseCase.ListPostReplies(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, replies)
}

func (h *ReplyHandler) AcceptReply(c echo.Context) error {
	uid := c.Get("uid").(string)

	reply, err := h.replyUseCase.AcceptReply(c.Request().Context(), uid, c.Param("id"), c.Param("replyId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reply)
}
