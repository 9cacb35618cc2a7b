package controller

import (
	"errors"
	"time"

	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlannerController struct {
	plannerService *service.PlannerService
}

func NewPlannerController(plannerService *service.PlannerService) *PlannerController {
	return &PlannerController{plannerService: plannerService}
}

type GenerateScheduleRequest struct {
	Subjects []string `json:"subjects"`
	ExamDate string   `json:"examDate"`
}

// GenerateSchedule 生成备考计划
// @Summary 按科目和考试日期生成分阶段备考计划
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body GenerateScheduleRequest true "科目列表与考试日期(YYYY-MM-DD)"
// @Success 200 {object} util.Response{data=model.StudySchedule}
// @Router /api/planner [post]
func (c *PlannerController) GenerateSchedule(ctx *gin.Context) {
	var req GenerateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	schedule, err := c.plannerService.GenerateSchedule(ctx.Request.Context(), util.GetUserID(ctx), req.Subjects, req.ExamDate, time.Now())
	if err != nil {
		if errors.Is(err, util.ErrSubjectsRequired) || errors.Is(err, util.ErrExamDateInvalid) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"schedule": schedule})
}
