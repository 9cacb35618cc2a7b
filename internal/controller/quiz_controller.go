package controller

import (
	"errors"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	quizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

type GenerateQuizRequest struct {
	Topic string `json:"topic"`
	Notes string `json:"notes"`
}

// Generate 生成测验
// @Summary 按主题生成 MCQ / 判断 / 短答三段式测验
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body GenerateQuizRequest true "主题与可选笔记上下文"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /api/quiz [post]
func (c *QuizController) Generate(ctx *gin.Context) {
	var req GenerateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.quizService.Generate(ctx.Request.Context(), util.GetUserID(ctx), req.Topic, req.Notes)
	if err != nil {
		if errors.Is(err, util.ErrTopicRequired) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"quiz": quiz})
}

type ScoreQuizRequest struct {
	Quiz    *model.Quiz        `json:"quiz" binding:"required"`
	Answers *model.QuizAnswers `json:"answers" binding:"required"`
}

// Score 测验判分
// @Summary 对照标准答案判分并按答对题数发放经验
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body ScoreQuizRequest true "测验原文与用户作答"
// @Success 200 {object} util.Response{data=service.ScoreResult}
// @Router /api/quiz/score [post]
func (c *QuizController) Score(ctx *gin.Context) {
	var req ScoreQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.quizService.Score(util.GetUserID(ctx), req.Quiz, req.Answers)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
