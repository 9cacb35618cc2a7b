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

type QuizService struct {
	gen         ContentGenerator
	progression *ProgressionService
}

func NewQuizService(gen ContentGenerator, progression *ProgressionService) *QuizService {
	return &QuizService{gen: gen, progression: progression}
}

// Generate 生成测验并发放 quiz-generated 经验
func (s *QuizService) Generate(ctx context.Context, userID, topic, notesContext string) (*model.Quiz, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, util.ErrTopicRequired
	}

	quiz, err := s.gen.Quiz(ctx, topic, notesContext)
	if err != nil {
		monitoring.GenerationCounter.WithLabelValues("quiz", s.gen.Name(), "error").Inc()
		return nil, err
	}
	monitoring.GenerationCounter.WithLabelValues("quiz", s.gen.Name(), "success").Inc()

	if _, err := s.progression.Award(userID, XPEventQuizGenerated); err != nil {
		logger.Log.Warn("failed to award quiz xp", zap.String("user", userID), zap.Error(err))
	}
	return quiz, nil
}

// ScoreResult 判分结果
type ScoreResult struct {
	Correct  int `json:"correct"`
	Total    int `json:"total"`
	XPEarned int `json:"xpEarned"`
	TotalXP  int `json:"totalXp"`
}

// Score 对照标准答案判分：每答对一题 10 经验。
// 短答题没有自动判分标准，永远不参与计分
func (s *QuizService) Score(userID string, quiz *model.Quiz, answers *model.QuizAnswers) (*ScoreResult, error) {
	correct := 0

	for i, q := range quiz.MCQ {
		if i < len(answers.MCQ) && answers.MCQ[i] == q.Answer {
			correct++
		}
	}
	for i, q := range quiz.TrueFalse {
		if i < len(answers.TrueFalse) && answers.TrueFalse[i] != nil && *answers.TrueFalse[i] == q.Answer {
			correct++
		}
	}

	earned := correct * 10
	total, err := s.progression.AwardAmount(userID, XPEventQuizAnswered, earned)
	if err != nil {
		return nil, err
	}

	return &ScoreResult{
		Correct:  correct,
		Total:    len(quiz.MCQ) + len(quiz.TrueFalse),
		XPEarned: earned,
		TotalXP:  total,
	}, nil
}
