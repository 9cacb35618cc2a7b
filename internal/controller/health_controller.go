package controller

import (
	"time"

	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	stateBackend string
	demoMode     bool
}

func NewHealthController(stateBackend string, demoMode bool) *HealthController {
	return &HealthController{stateBackend: stateBackend, demoMode: demoMode}
}

// HealthCheck 健康检查
// @Summary 服务健康状态
// @Tags Health
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status":       "ok",
		"stateBackend": c.stateBackend,
		"demoMode":     c.demoMode,
		"time":         time.Now().Format(time.RFC3339),
	})
}
