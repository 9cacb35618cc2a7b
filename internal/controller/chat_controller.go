package controller

import (
	"errors"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

type ChatRequest struct {
	Messages []model.ChatMessage `json:"messages"`
	Topic    string              `json:"topic"`
}

// Reply 答疑对话
// @Summary 转发对话历史并返回助手回复
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "对话历史与当前话题"
// @Success 200 {object} util.Response
// @Router /api/chat [post]
func (c *ChatController) Reply(ctx *gin.Context) {
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.chatService.Reply(ctx.Request.Context(), req.Topic, req.Messages)
	if err != nil {
		if errors.Is(err, util.ErrMessagesRequired) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"reply": reply})
}
