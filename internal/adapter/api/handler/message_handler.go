package handler

import (
	"github.com/labstack/echo/v4"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/usecase"
	"nearbuy/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type createMessageRequest struct {
	ThreadID string                 `json:"thread_id"`
	Text     string                 `json:"text" validate:"omitempty,max=2000"`
	Price    *int64                 `json:"price" validate:"omitempty,gt=0"`
	Type     string                 `json:"type" validate:"omitempty,oneof=text image"`
	Meta     map[string]interface{} `json:"meta"`
}

// CreateMessage starts a new thread on the post when no thread_id is given,
// or appends to an existing thread.
func (h *MessageHandler) CreateMessage(c echo.Context) error {
	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	message, err := h.messageUseCase.CreateMessage(c.Request().Context(), uid, usecase.CreateMessageInput{
		PostID:   c.Param("id"),
		ThreadID: req.ThreadID,
		Text:     req.Text,
		Price:    req.Price,
		Type:     entity.MessageType(req.Type),
		Meta:     req.Meta,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *MessageHandler) GetThreadMessages(c echo.Context) error {
	uid := c.Get("uid").(string)

	messages, err := h.messageUseCase.GetThreadMessages(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *MessageHandler) GetPostMessages(c echo.Context) error {
	uid := c.Get("uid").(string)

	groups, err := h.messageUseCase.GetPostMessages(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, groups)
}

func (h *MessageHandler) GetUserThreads(c echo.Context) error {
	uid := c.Get("uid").(string)

	threads, err := h.messageUseCase.GetUserThreads(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, threads)
}
