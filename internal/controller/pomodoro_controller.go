package controller

import (
	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PomodoroController struct {
	pomodoroService *service.PomodoroService
}

func NewPomodoroController(pomodoroService *service.PomodoroService) *PomodoroController {
	return &PomodoroController{pomodoroService: pomodoroService}
}

// State 番茄钟状态
// @Summary 当前番茄钟会话快照
// @Tags Pomodoro
// @Produce json
// @Success 200 {object} util.Response{data=model.PomodoroState}
// @Router /api/pomodoro [get]
func (c *PomodoroController) State(ctx *gin.Context) {
	util.Success(ctx, c.pomodoroService.State(util.GetUserID(ctx)))
}

// Start 启动番茄钟
// @Summary 启动或继续倒计时
// @Tags Pomodoro
// @Produce json
// @Success 200 {object} util.Response{data=model.PomodoroState}
// @Router /api/pomodoro/start [post]
func (c *PomodoroController) Start(ctx *gin.Context) {
	util.Success(ctx, c.pomodoroService.Start(util.GetUserID(ctx)))
}

// Pause 暂停番茄钟
// @Summary 暂停倒计时并保留剩余时间
// @Tags Pomodoro
// @Produce json
// @Success 200 {object} util.Response{data=model.PomodoroState}
// @Router /api/pomodoro/pause [post]
func (c *PomodoroController) Pause(ctx *gin.Context) {
	util.Success(ctx, c.pomodoroService.Pause(util.GetUserID(ctx)))
}

// Reset 重置番茄钟
// @Summary 停表并回到完整的工作阶段
// @Tags Pomodoro
// @Produce json
// @Success 200 {object} util.Response{data=model.PomodoroState}
// @Router /api/pomodoro/reset [post]
func (c *PomodoroController) Reset(ctx *gin.Context) {
	util.Success(ctx, c.pomodoroService.Reset(util.GetUserID(ctx)))
}
