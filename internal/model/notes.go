package model

import "time"

type StudyMode string

const (
	ModeExam       StudyMode = "exam"
	ModeDeep       StudyMode = "deep"
	ModeQuick      StudyMode = "quick"
	ModeSimplified StudyMode = "simplified"
)

// Valid 未知模式回落到 deep，与生成端的默认保持一致
func (m StudyMode) Valid() bool {
	switch m {
	case ModeExam, ModeDeep, ModeQuick, ModeSimplified:
		return true
	}
	return false
}

type Definition struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type ComparisonTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// StudyNotes 结构化学习笔记，生成式模型按此 JSON 合同返回
type StudyNotes struct {
	Title          string          `json:"title"`
	Beginner       string          `json:"beginner"`
	Intermediate   string          `json:"intermediate"`
	Advanced       string          `json:"advanced"`
	Applications   []string        `json:"applications"`
	Definitions    []Definition    `json:"definitions"`
	KeyPoints      []string        `json:"keyPoints"`
	ExamQuestions  []string        `json:"examQuestions"`
	MermaidDiagram string          `json:"mermaidDiagram"`
	ComparisonTab  ComparisonTable `json:"comparisonTable"`
	Formulas       []string        `json:"formulas"`
}

// LibraryEntry 笔记库条目，最新在前，按 topic 去重，上限 20 条
type LibraryEntry struct {
	Topic   string      `json:"topic"`
	Notes   *StudyNotes `json:"notes"`
	Mode    StudyMode   `json:"mode"`
	SavedAt time.Time   `json:"savedAt"`
}
