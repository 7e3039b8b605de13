package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nila-backend/internal/domain"
	"nila-backend/internal/llm"
	"nila-backend/internal/service"
)

// historyTimeLayout formatea la hora que ve el cliente, estilo "03:04 PM".
const historyTimeLayout = "03:04 PM"

// ChatHandler mantiene dependencias para los endpoints de conversación.
type ChatHandler struct {
	logger   *zap.Logger
	chatServ *service.ChatService
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, chatServ *service.ChatService) *ChatHandler {
	return &ChatHandler{
		logger:   logger,
		chatServ: chatServ,
	}
}

// Health maneja GET /.
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Nila Backend is running (Auth Enabled)"})
}

type historyItem struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
	Time   string `json:"time"`
}

// History maneja GET /history. Devuelve los mensajes del usuario autenticado
// en orden cronológico.
func (h *ChatHandler) History(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}

	messages, err := h.chatServ.History(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("history failed", zap.Error(err), zap.String("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load history"})
		return
	}

	items := make([]historyItem, 0, len(messages))
	for _, msg := range messages {
		sender := "user"
		if msg.Role == domain.RoleModel {
			sender = "nila"
		}
		items = append(items, historyItem{
			ID:     msg.ID,
			Text:   msg.Content,
			Sender: sender,
			Time:   msg.CreatedAt.Format(historyTimeLayout),
		})
	}

	c.JSON(http.StatusOK, items)
}

// Chat maneja POST /chat. Ejecuta un turno completo contra el modelo y
// devuelve las burbujas de la respuesta.
func (h *ChatHandler) Chat(c *gin.Context) {
	user, ok := GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	bubbles, err := h.chatServ.Chat(c.Request.Context(), user.ID, req.Message)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API Key not configured"})
			return
		}
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		var upErr *service.UpstreamError
		if errors.As(err, &upErr) {
			// El mensaje del usuario ya quedó persistido; se expone el detalle
			// de la falla del modelo como diagnóstico.
			h.logger.Error("model call failed", zap.Error(err), zap.String("user_id", user.ID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": upErr.Error()})
			return
		}
		h.logger.Error("chat turn failed", zap.Error(err), zap.String("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": bubbles})
}
