package model

import "time"

// 每用户状态键。结构化的值以 JSON 字符串存储，标量以十进制字符串存储
const (
	StateKeyXP            = "xp"
	StateKeyStreak        = "streak"
	StateKeyLastActive    = "last_active"
	StateKeyWeeklyMinutes = "weekly_minutes"
	StateKeyLibrary       = "library"
)

// DateLayout 日历日期的存储格式，streak 判定只看日历日，不看时刻
const DateLayout = "2006-01-02"

// StateEntry 键值状态落库表（database 后端）。同一 (user_id, key) 后写覆盖先写
type StateEntry struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:64;not null;uniqueIndex:idx_user_state_key"`
	Key       string `gorm:"size:64;not null;uniqueIndex:idx_user_state_key"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (StateEntry) TableName() string {
	return "state_entries"
}
