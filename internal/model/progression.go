package model

// Tier 等级档位，按 MinXP 升序排列，当前等级取 MinXP <= xp 的最高档
type Tier struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	MinXP int    `json:"minXp"`
}

// Badge 达到 XP 门槛即永久解锁
type Badge struct {
	ID         string `json:"id"`
	Icon       string `json:"icon"`
	Label      string `json:"label"`
	XPRequired int    `json:"xpRequired"`
}

// LevelInfo 由 XP 推导，不落库
type LevelInfo struct {
	Level           Tier    `json:"level"`
	NextLevel       *Tier   `json:"nextLevel,omitempty"`
	ProgressPercent float64 `json:"progressPercent"`
}

// ProgressSnapshot 进度总览
type ProgressSnapshot struct {
	XP            int       `json:"xp"`
	Streak        int       `json:"streak"`
	Level         LevelInfo `json:"level"`
	Badges        []Badge   `json:"badges"`
	WeeklyMinutes []int     `json:"weeklyMinutes"`
}
