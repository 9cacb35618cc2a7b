package controller

import (
	"errors"
	"time"

	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressionController struct {
	progression *service.ProgressionService
}

func NewProgressionController(progression *service.ProgressionService) *ProgressionController {
	return &ProgressionController{progression: progression}
}

// GetProgress 进度总览
// @Summary 当前 XP、连续天数、等级、徽章与每周学习分钟数
// @Tags Progression
// @Produce json
// @Success 200 {object} util.Response{data=model.ProgressSnapshot}
// @Router /api/progress [get]
func (c *ProgressionController) GetProgress(ctx *gin.Context) {
	snapshot, err := c.progression.Snapshot(util.GetUserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, snapshot)
}

// Checkin 会话开始签到
// @Summary 推进连续学习天数（每次会话开始调用一次）
// @Tags Progression
// @Produce json
// @Success 200 {object} util.Response{data=model.ProgressSnapshot}
// @Router /api/checkin [post]
func (c *ProgressionController) Checkin(ctx *gin.Context) {
	userID := util.GetUserID(ctx)
	if _, err := c.progression.Checkin(userID, time.Now()); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	snapshot, err := c.progression.Snapshot(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, snapshot)
}

type XPEventRequest struct {
	Kind string `json:"kind" binding:"required"`
}

// RecordEvent 上报加经验事件
// @Summary 上报 saving / export 等客户端事件并发放对应经验
// @Tags Progression
// @Accept json
// @Produce json
// @Param request body XPEventRequest true "事件种类"
// @Success 200 {object} util.Response
// @Router /api/progress/events [post]
func (c *ProgressionController) RecordEvent(ctx *gin.Context) {
	var req XPEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	xp, err := c.progression.Award(util.GetUserID(ctx), service.XPEventKind(req.Kind))
	if err != nil {
		if errors.Is(err, util.ErrUnknownXPEvent) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"xp": xp})
}
