package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexai-legal/lexai-backend/internal/dto"
	"github.com/lexai-legal/lexai-backend/internal/service"
	"github.com/lexai-legal/lexai-backend/pkg/middleware"
	"github.com/lexai-legal/lexai-backend/pkg/response"
)

// ChatHandler handles assistant chat HTTP requests
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SendMessage handles an inbound chat message
// POST /api/chat/message
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, orgID, ok := middleware.AuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	resp, err := h.chatService.SendMessage(c.Request.Context(), userID, orgID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
		return
	}

	c.JSON(http.StatusOK, response.Success(resp))
}

// History handles listing the organization's conversations
// GET /api/chat/history
func (h *ChatHandler) History(c *gin.Context) {
	_, orgID, ok := middleware.AuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	resp, err := h.chatService.History(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
		return
	}

	c.JSON(http.StatusOK, response.Success(resp))
}

// GetConversation handles fetching a single conversation
// GET /api/chat/conversation/:id
func (h *ChatHandler) GetConversation(c *gin.Context) {
	_, orgID, ok := middleware.AuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	conv, err := h.chatService.GetConversation(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Conversation not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
		return
	}

	c.JSON(http.StatusOK, response.Success(conv))
}
