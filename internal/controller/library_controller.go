package controller

import (
	"errors"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LibraryController struct {
	libraryService *service.LibraryService
}

func NewLibraryController(libraryService *service.LibraryService) *LibraryController {
	return &LibraryController{libraryService: libraryService}
}

// List 笔记库列表
// @Summary 已保存的笔记，最新在前
// @Tags Library
// @Produce json
// @Success 200 {object} util.Response{data=[]model.LibraryEntry}
// @Router /api/library [get]
func (c *LibraryController) List(ctx *gin.Context) {
	entries, err := c.libraryService.List(util.GetUserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"entries": entries})
}

type SaveEntryRequest struct {
	Topic string            `json:"topic"`
	Notes *model.StudyNotes `json:"notes" binding:"required"`
	Mode  model.StudyMode   `json:"mode"`
}

// Save 保存笔记
// @Summary 保存笔记到库（同名主题原位覆盖，超过 20 条淘汰最旧）
// @Tags Library
// @Accept json
// @Produce json
// @Param request body SaveEntryRequest true "笔记条目"
// @Success 200 {object} util.Response{data=[]model.LibraryEntry}
// @Router /api/library [post]
func (c *LibraryController) Save(ctx *gin.Context) {
	var req SaveEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Mode == "" {
		req.Mode = model.ModeDeep
	}

	entries, err := c.libraryService.Save(util.GetUserID(ctx), model.LibraryEntry{
		Topic: req.Topic,
		Notes: req.Notes,
		Mode:  req.Mode,
	})
	if err != nil {
		if errors.Is(err, util.ErrTopicRequired) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"entries": entries})
}

// Delete 删除笔记
// @Summary 按主题删除库中的笔记
// @Tags Library
// @Produce json
// @Param topic path string true "主题"
// @Success 200 {object} util.Response{data=[]model.LibraryEntry}
// @Router /api/library/{topic} [delete]
func (c *LibraryController) Delete(ctx *gin.Context) {
	entries, err := c.libraryService.Delete(util.GetUserID(ctx), ctx.Param("topic"))
	if err != nil {
		if errors.Is(err, util.ErrEntryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"entries": entries})
}
