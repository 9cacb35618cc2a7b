package service

import (
	"context"
	"strings"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/util"
	"study_buddy_backend/pkg/logger"
	"study_buddy_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type StudyService struct {
	gen         ContentGenerator
	progression *ProgressionService
}

func NewStudyService(gen ContentGenerator, progression *ProgressionService) *StudyService {
	return &StudyService{gen: gen, progression: progression}
}

// GenerateNotes 生成结构化学习笔记并发放 studying 经验
func (s *StudyService) GenerateNotes(ctx context.Context, userID, topic string, mode model.StudyMode) (*model.StudyNotes, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, util.ErrTopicRequired
	}
	if !mode.Valid() {
		mode = model.ModeDeep
	}

	notes, err := s.gen.Notes(ctx, topic, mode)
	if err != nil {
		monitoring.GenerationCounter.WithLabelValues("notes", s.gen.Name(), "error").Inc()
		return nil, err
	}
	monitoring.GenerationCounter.WithLabelValues("notes", s.gen.Name(), "success").Inc()

	if _, err := s.progression.Award(userID, XPEventStudying); err != nil {
		// XP 写入失败只记日志，笔记照常返回
		logger.Log.Warn("failed to award studying xp", zap.String("user", userID), zap.Error(err))
	}
	return notes, nil
}
