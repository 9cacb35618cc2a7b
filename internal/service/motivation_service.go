package service

import (
	"math/rand"
	"sync"
	"time"
)

// Motivation 激励语条目
type Motivation struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// 内置激励语目录。静态产品文案，不落库
var motivations = []Motivation{
	{Text: "Study now, shine later. ✨", Author: "Study Buddy"},
	{Text: "Small steps every day lead to big success. 🌱", Author: "Study Buddy"},
	{Text: "Consistency beats intensity. 🔥", Author: "Study Buddy"},
	{Text: "Your future self is watching you. 👀", Author: "Study Buddy"},
	{Text: "Don't stop until you're proud. 💪", Author: "Study Buddy"},
	{Text: "The secret of getting ahead is getting started. 🚀", Author: "Mark Twain"},
	{Text: "One page a day builds a library of knowledge. 📚", Author: "Study Buddy"},
	{Text: "Hard work beats talent when talent doesn't work hard. ⭐", Author: "Tim Notke"},
	{Text: "You are exactly where you need to be. 🌸", Author: "Study Buddy"},
	{Text: "Progress, not perfection. 🌈", Author: "Study Buddy"},
}

// MotivationService 轮换展示激励语，每 12 小时随机换一条（不与当前重复）
type MotivationService struct {
	mu         sync.Mutex
	currentIdx int
	lastSwitch time.Time
	interval   time.Duration
}

func NewMotivationService() *MotivationService {
	return &MotivationService{
		currentIdx: time.Now().Day() % len(motivations),
		lastSwitch: time.Now(),
		interval:   12 * time.Hour,
	}
}

// Current 当前激励语
func (s *MotivationService) Current() Motivation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Since(s.lastSwitch) >= s.interval && len(motivations) > 1 {
		next := rand.Intn(len(motivations) - 1)
		if next >= s.currentIdx {
			next++
		}
		s.currentIdx = next
		s.lastSwitch = time.Now()
	}
	return motivations[s.currentIdx]
}
