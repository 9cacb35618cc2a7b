package service

import (
	"sync"
	"time"

	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/model"
	"study_buddy_backend/pkg/logger"

	"go.uber.org/zap"
)

// pomodoroSession 单个用户的番茄钟。stop 只在持锁时关闭一次
type pomodoroSession struct {
	phase     string
	remaining int
	running   bool
	rounds    int
	stop      chan struct{}
}

// PomodoroService 服务端番茄钟。每个运行中的会话一个秒级 tick 协程，
// 手动重置和服务关停都必须释放 tick 源，不允许孤儿协程
type PomodoroService struct {
	mu          sync.Mutex
	sessions    map[string]*pomodoroSession
	progression *ProgressionService

	workSeconds  int
	breakSeconds int
	tick         time.Duration
}

func NewPomodoroService(cfg config.PomodoroConfig, progression *ProgressionService) *PomodoroService {
	work := cfg.WorkMinutes
	if work <= 0 {
		work = 25
	}
	brk := cfg.BreakMinutes
	if brk <= 0 {
		brk = 5
	}
	return &PomodoroService{
		sessions:     make(map[string]*pomodoroSession),
		progression:  progression,
		workSeconds:  work * 60,
		breakSeconds: brk * 60,
		tick:         time.Second,
	}
}

func (s *PomodoroService) session(userID string) *pomodoroSession {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &pomodoroSession{phase: model.PomodoroPhaseWork, remaining: s.workSeconds}
		s.sessions[userID] = sess
	}
	return sess
}

func (s *PomodoroService) snapshot(sess *pomodoroSession) *model.PomodoroState {
	total := s.workSeconds
	if sess.phase == model.PomodoroPhaseBreak {
		total = s.breakSeconds
	}
	return &model.PomodoroState{
		Phase:            sess.phase,
		Running:          sess.running,
		RemainingSeconds: sess.remaining,
		TotalSeconds:     total,
		CompletedRounds:  sess.rounds,
	}
}

// State 当前会话快照
func (s *PomodoroService) State(userID string) *model.PomodoroState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(s.session(userID))
}

// Start 启动或继续倒计时。已在运行则是空操作
func (s *PomodoroService) Start(userID string) *model.PomodoroState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(userID)
	if sess.running {
		return s.snapshot(sess)
	}

	sess.running = true
	sess.stop = make(chan struct{})
	go s.run(userID, sess.stop)
	return s.snapshot(sess)
}

// Pause 暂停倒计时，保留剩余秒数
func (s *PomodoroService) Pause(userID string) *model.PomodoroState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(userID)
	s.halt(sess)
	return s.snapshot(sess)
}

// Reset 停表并回到完整的工作阶段
func (s *PomodoroService) Reset(userID string) *model.PomodoroState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(userID)
	s.halt(sess)
	sess.phase = model.PomodoroPhaseWork
	sess.remaining = s.workSeconds
	return s.snapshot(sess)
}

// Shutdown 停掉所有会话的 tick 协程，服务退出时调用
func (s *PomodoroService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		s.halt(sess)
	}
}

// halt 调用方必须持有 s.mu
func (s *PomodoroService) halt(sess *pomodoroSession) {
	if sess.running {
		sess.running = false
		close(sess.stop)
		sess.stop = nil
	}
}

func (s *PomodoroService) run(userID string, stop chan struct{}) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if done := s.step(userID, stop); done {
				return
			}
		}
	}
}

// step 返回 true 表示本阶段结束，tick 协程应当退出
func (s *PomodoroService) step(userID string, stop chan struct{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok || sess.stop != stop {
		// 会话已被重置或替换
		return true
	}

	sess.remaining--
	if sess.remaining > 0 {
		return false
	}

	s.halt(sess)
	if sess.phase == model.PomodoroPhaseWork {
		sess.rounds++
		sess.phase = model.PomodoroPhaseBreak
		sess.remaining = s.breakSeconds

		if _, err := s.progression.Award(userID, XPEventPomodoro); err != nil {
			logger.Log.Warn("failed to award pomodoro xp", zap.String("user", userID), zap.Error(err))
		}
		if err := s.progression.AddStudyMinutes(userID, s.workSeconds/60); err != nil {
			logger.Log.Warn("failed to record study minutes", zap.String("user", userID), zap.Error(err))
		}
		logger.Log.Info("pomodoro round completed",
			zap.String("user", userID),
			zap.Int("rounds", sess.rounds),
		)
	} else {
		sess.phase = model.PomodoroPhaseWork
		sess.remaining = s.workSeconds
	}
	return true
}
