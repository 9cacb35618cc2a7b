package service

import (
	"encoding/json"
	"strconv"
	"time"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/repository"
	"study_buddy_backend/internal/util"
	"study_buddy_backend/pkg/logger"
	"study_buddy_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// 等级档位表，升序
var tiers = []model.Tier{
	{Name: "Seedling", Icon: "🌱", MinXP: 0},
	{Name: "Scholar", Icon: "📘", MinXP: 50},
	{Name: "Thinker", Icon: "💡", MinXP: 150},
	{Name: "Explorer", Icon: "🔭", MinXP: 300},
	{Name: "Master", Icon: "🏆", MinXP: 500},
	{Name: "Legend", Icon: "⭐", MinXP: 1000},
}

// 徽章目录，达到门槛即解锁且不会回收
var badges = []model.Badge{
	{ID: "first_study", Icon: "📖", Label: "First Study", XPRequired: 10},
	{ID: "quiz_master", Icon: "🧩", Label: "Quiz Master", XPRequired: 50},
	{ID: "voice_user", Icon: "🎤", Label: "Voice Explorer", XPRequired: 80},
	{ID: "streak_3", Icon: "🔥", Label: "3-Day Streak", XPRequired: 100},
	{ID: "note_saver", Icon: "📚", Label: "Note Keeper", XPRequired: 150},
	{ID: "deep_diver", Icon: "🌊", Label: "Deep Diver", XPRequired: 200},
}

// XPEventKind 加经验的事件种类。quiz-answered 的数值由判分结果计算，不在此表内
type XPEventKind string

const (
	XPEventStudying      XPEventKind = "studying"
	XPEventQuizGenerated XPEventKind = "quiz-generated"
	XPEventQuizAnswered  XPEventKind = "quiz-answered"
	XPEventPlanner       XPEventKind = "planner"
	XPEventSaving        XPEventKind = "saving"
	XPEventExport        XPEventKind = "export"
	XPEventPomodoro      XPEventKind = "pomodoro"
)

var xpByKind = map[XPEventKind]int{
	XPEventStudying:      25,
	XPEventQuizGenerated: 10,
	XPEventPlanner:       20,
	XPEventSaving:        10,
	XPEventExport:        5,
	XPEventPomodoro:      15,
}

// ComputeLevel 对任意非负 XP 取 MinXP <= xp 的最高档；
// 进度百分比夹在 [0,100]，顶档恒为 100
func ComputeLevel(xp int) model.LevelInfo {
	idx := 0
	for i, t := range tiers {
		if xp >= t.MinXP {
			idx = i
		}
	}

	info := model.LevelInfo{Level: tiers[idx], ProgressPercent: 100}
	if idx+1 < len(tiers) {
		next := tiers[idx+1]
		info.NextLevel = &next
		progress := float64(xp-tiers[idx].MinXP) / float64(next.MinXP-tiers[idx].MinXP) * 100
		if progress > 100 {
			progress = 100
		}
		if progress < 0 {
			progress = 0
		}
		info.ProgressPercent = progress
	}
	return info
}

// EarnedBadges 返回门槛不超过 xp 的全部徽章，随 XP 单调增长
func EarnedBadges(xp int) []model.Badge {
	earned := make([]model.Badge, 0, len(badges))
	for _, b := range badges {
		if xp >= b.XPRequired {
			earned = append(earned, b)
		}
	}
	return earned
}

type ProgressionService struct {
	States repository.StateRepository
}

func NewProgressionService(states repository.StateRepository) *ProgressionService {
	return &ProgressionService{States: states}
}

func (s *ProgressionService) getInt(userID, key string, fallback int) (int, error) {
	val, ok, err := s.States.Get(userID, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback, nil
	}
	return n, nil
}

func (s *ProgressionService) setInt(userID, key string, n int) error {
	return s.States.Set(userID, key, strconv.Itoa(n))
}

// XP 当前经验值，缺省为 0
func (s *ProgressionService) XP(userID string) (int, error) {
	return s.getInt(userID, model.StateKeyXP, 0)
}

// Award 按事件种类加固定经验，写库后返回新 XP。经验只增不减
func (s *ProgressionService) Award(userID string, kind XPEventKind) (int, error) {
	amount, ok := xpByKind[kind]
	if !ok {
		return 0, util.ErrUnknownXPEvent
	}
	return s.AwardAmount(userID, kind, amount)
}

// AwardAmount 加指定数值的经验（quiz-answered 用，数值 = 10 × 答对题数）
func (s *ProgressionService) AwardAmount(userID string, kind XPEventKind, amount int) (int, error) {
	if amount < 0 {
		amount = 0
	}
	xp, err := s.XP(userID)
	if err != nil {
		return 0, err
	}
	xp += amount
	if err := s.setInt(userID, model.StateKeyXP, xp); err != nil {
		return 0, err
	}

	monitoring.XPCounter.WithLabelValues(string(kind)).Add(float64(amount))
	logger.Log.Debug("xp awarded",
		zap.String("user", userID),
		zap.String("kind", string(kind)),
		zap.Int("amount", amount),
		zap.Int("total", xp),
	)
	return xp, nil
}

// Checkin 每次会话开始执行一次的连续天数推进：
// 同一天不变；恰好隔一天 +1；其他情况（含首次）重置为 1。
// 无论走哪个分支，streak 和 last_active 都无条件写回
func (s *ProgressionService) Checkin(userID string, today time.Time) (int, error) {
	todayStr := today.Format(model.DateLayout)

	streak, err := s.getInt(userID, model.StateKeyStreak, 1)
	if err != nil {
		return 0, err
	}
	if streak < 1 {
		streak = 1
	}

	lastActive, ok, err := s.States.Get(userID, model.StateKeyLastActive)
	if err != nil {
		return 0, err
	}

	switch {
	case ok && lastActive == todayStr:
		// 同一天，保持
	case ok && lastActive == today.AddDate(0, 0, -1).Format(model.DateLayout):
		streak++
	default:
		streak = 1
	}

	if err := s.setInt(userID, model.StateKeyStreak, streak); err != nil {
		return 0, err
	}
	if err := s.States.Set(userID, model.StateKeyLastActive, todayStr); err != nil {
		return 0, err
	}
	return streak, nil
}

// WeeklyMinutes 7 格学习分钟数，缺省全零
func (s *ProgressionService) WeeklyMinutes(userID string) ([]int, error) {
	val, ok, err := s.States.Get(userID, model.StateKeyWeeklyMinutes)
	if err != nil {
		return nil, err
	}
	minutes := make([]int, 7)
	if !ok {
		return minutes, nil
	}
	if err := json.Unmarshal([]byte(val), &minutes); err != nil || len(minutes) != 7 {
		return make([]int, 7), nil
	}
	return minutes, nil
}

// AddStudyMinutes 给最后一格（今天）累加分钟数，番茄钟完成时调用
func (s *ProgressionService) AddStudyMinutes(userID string, minutes int) error {
	current, err := s.WeeklyMinutes(userID)
	if err != nil {
		return err
	}
	current[6] += minutes

	data, err := json.Marshal(current)
	if err != nil {
		return err
	}
	return s.States.Set(userID, model.StateKeyWeeklyMinutes, string(data))
}

// Snapshot 汇总进度总览
func (s *ProgressionService) Snapshot(userID string) (*model.ProgressSnapshot, error) {
	xp, err := s.XP(userID)
	if err != nil {
		return nil, err
	}
	streak, err := s.getInt(userID, model.StateKeyStreak, 0)
	if err != nil {
		return nil, err
	}
	minutes, err := s.WeeklyMinutes(userID)
	if err != nil {
		return nil, err
	}

	return &model.ProgressSnapshot{
		XP:            xp,
		Streak:        streak,
		Level:         ComputeLevel(xp),
		Badges:        EarnedBadges(xp),
		WeeklyMinutes: minutes,
	}, nil
}
