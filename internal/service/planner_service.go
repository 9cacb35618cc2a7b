package service

import (
	"context"
	"math"
	"strings"
	"time"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/util"
	"study_buddy_backend/pkg/logger"
	"study_buddy_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type PlannerService struct {
	gen         ContentGenerator
	progression *ProgressionService
}

func NewPlannerService(gen ContentGenerator, progression *ProgressionService) *PlannerService {
	return &PlannerService{gen: gen, progression: progression}
}

// DaysUntil 按日历日向上取整计算剩余天数
func DaysUntil(examDate, now time.Time) int {
	return int(math.Ceil(examDate.Sub(now).Hours() / 24))
}

// GenerateSchedule 生成备考计划并发放 planner 经验
func (s *PlannerService) GenerateSchedule(ctx context.Context, userID string, subjects []string, examDate string, now time.Time) (*model.StudySchedule, error) {
	filtered := make([]string, 0, len(subjects))
	for _, sub := range subjects {
		if trimmed := strings.TrimSpace(sub); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	if len(filtered) == 0 {
		return nil, util.ErrSubjectsRequired
	}

	exam, err := time.ParseInLocation(model.DateLayout, examDate, now.Location())
	if err != nil {
		return nil, util.ErrExamDateInvalid
	}
	days := DaysUntil(exam, now)
	if days <= 0 {
		return nil, util.ErrExamDateInvalid
	}

	schedule, err := s.gen.Schedule(ctx, filtered, days, now)
	if err != nil {
		monitoring.GenerationCounter.WithLabelValues("schedule", s.gen.Name(), "error").Inc()
		return nil, err
	}
	monitoring.GenerationCounter.WithLabelValues("schedule", s.gen.Name(), "success").Inc()

	if _, err := s.progression.Award(userID, XPEventPlanner); err != nil {
		logger.Log.Warn("failed to award planner xp", zap.String("user", userID), zap.Error(err))
	}
	return schedule, nil
}
