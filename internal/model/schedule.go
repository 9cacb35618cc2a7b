package model

type SchedulePhase struct {
	Name     string   `json:"name"`
	Days     string   `json:"days"`
	Focus    string   `json:"focus"`
	Subjects []string `json:"subjects"`
}

// StudySchedule 备考计划，生成式模型按此 JSON 合同返回
type StudySchedule struct {
	TotalDays          int                 `json:"totalDays"`
	DailyHours         float64             `json:"dailyHours"`
	Phases             []SchedulePhase     `json:"phases"`
	WeeklySchedule     map[string][]string `json:"weeklySchedule"`
	WeakTopicReminders []string            `json:"weakTopicReminders"`
	RevisionStrategy   string              `json:"revisionStrategy"`
}
