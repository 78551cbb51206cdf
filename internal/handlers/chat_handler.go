package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"avoqado-web/internal/dto"
	"avoqado-web/internal/errors"
	"avoqado-web/internal/services"

	"github.com/labstack/echo/v4"
)

// ChatHandler serves the website assistant
type ChatHandler struct {
	chatService      services.ChatServiceInterface
	maxMessageLength int
}

// NewChatHandler creates a new chat handler. maxMessageLength <= 0 disables the length check.
func NewChatHandler(chatService services.ChatServiceInterface, maxMessageLength int) *ChatHandler {
	return &ChatHandler{
		chatService:      chatService,
		maxMessageLength: maxMessageLength,
	}
}

// Chat answers a visitor question
// @Summary Ask the assistant
// @Description Answers from the pricing catalog or the FAQ when possible, otherwise from the configured AI provider.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message and recent history"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} errors.ErrorResponse "CHAT_001 - Message required"
// @Failure 400 {object} errors.ErrorResponse "CHAT_002 - Message too long"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ChatMessageRequired)
	}

	if strings.TrimSpace(req.Message) == "" {
		return SendError(c, errors.ChatMessageRequired)
	}

	if h.maxMessageLength > 0 && utf8.RuneCountInString(req.Message) > h.maxMessageLength {
		return SendError(c, errors.ChatMessageTooLong)
	}

	if err := c.Validate(&req); err != nil {
		if details, _, ok := fieldErrors(err); ok {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(details...))
		}
		return SendSystemError(c, err)
	}

	answer, err := h.chatService.Answer(c.Request().Context(), req.Message, req.HistoryModels())
	if stderrors.Is(err, services.ErrEmptyMessage) {
		return SendError(c, errors.ChatMessageRequired)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ChatResponse{
		Success: true,
		Answer:  answer.Answer,
		Source:  answer.Source,
	})
}
