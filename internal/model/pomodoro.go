package model

const (
	PomodoroPhaseWork  = "work"
	PomodoroPhaseBreak = "break"
)

// PomodoroState 番茄钟会话快照
type PomodoroState struct {
	Phase            string `json:"phase"`
	Running          bool   `json:"running"`
	RemainingSeconds int    `json:"remainingSeconds"`
	TotalSeconds     int    `json:"totalSeconds"`
	CompletedRounds  int    `json:"completedRounds"`
}
