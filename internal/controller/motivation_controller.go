package controller

import (
	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MotivationController struct {
	motivationService *service.MotivationService
}

func NewMotivationController(motivationService *service.MotivationService) *MotivationController {
	return &MotivationController{motivationService: motivationService}
}

// GetCurrentMotivation 当前激励语
// @Summary 当前轮换到的激励语
// @Tags Motivation
// @Produce json
// @Success 200 {object} util.Response{data=service.Motivation}
// @Router /api/motivation [get]
func (c *MotivationController) GetCurrentMotivation(ctx *gin.Context) {
	util.Success(ctx, c.motivationService.Current())
}
