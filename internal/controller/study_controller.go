package controller

import (
	"errors"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudyController struct {
	studyService *service.StudyService
}

func NewStudyController(studyService *service.StudyService) *StudyController {
	return &StudyController{studyService: studyService}
}

type GenerateNotesRequest struct {
	Topic string          `json:"topic"`
	Mode  model.StudyMode `json:"mode"`
}

// GenerateNotes 生成学习笔记
// @Summary 按主题和模式生成结构化学习笔记
// @Tags Study
// @Accept json
// @Produce json
// @Param request body GenerateNotesRequest true "主题与学习模式"
// @Success 200 {object} util.Response{data=model.StudyNotes}
// @Router /api/study [post]
func (c *StudyController) GenerateNotes(ctx *gin.Context) {
	var req GenerateNotesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Mode == "" {
		req.Mode = model.ModeDeep
	}

	notes, err := c.studyService.GenerateNotes(ctx.Request.Context(), util.GetUserID(ctx), req.Topic, req.Mode)
	if err != nil {
		if errors.Is(err, util.ErrTopicRequired) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"notes": notes})
}
