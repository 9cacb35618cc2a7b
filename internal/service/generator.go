package service

import (
	"context"
	"time"

	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/model"
	"study_buddy_backend/pkg/logger"
)

// ContentGenerator 三类内容请求加对话的生成策略。
// 凭证缺失时在启动期一次性选择演示实现，请求路径上不再判断凭证
type ContentGenerator interface {
	Notes(ctx context.Context, topic string, mode model.StudyMode) (*model.StudyNotes, error)
	Quiz(ctx context.Context, topic, notesContext string) (*model.Quiz, error)
	Schedule(ctx context.Context, subjects []string, days int, today time.Time) (*model.StudySchedule, error)
	Chat(ctx context.Context, topic string, history []model.ChatMessage, message string) (string, error)

	// Name 监控标签用，gemini 或 demo
	Name() string
}

func NewContentGenerator(cfg config.AIConfig) ContentGenerator {
	if !cfg.CredentialsPresent() {
		logger.Log.Info("AI credentials absent, serving deterministic demo content")
		return NewDemoGenerator()
	}
	return NewGeminiGenerator(NewAIService(cfg))
}
