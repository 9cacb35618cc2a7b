package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/util"
)

// 各学习模式的指令前缀，决定笔记的口吻和深度
var modePrompts = map[model.StudyMode]string{
	model.ModeExam:       "You are a study helper. Generate concise, exam-focused notes. Focus on key definitions, formulas, and likely exam questions. Be brief and precise.",
	model.ModeDeep:       "You are an expert teacher. Generate comprehensive, in-depth explanations with examples, analogies, and detailed breakdowns for every concept.",
	model.ModeQuick:      "You are a study assistant. Generate a very quick summary with bullet points only. Maximum 3 bullets per section. Fast and scannable.",
	model.ModeSimplified: "You are explaining to a curious 12-year-old. Use very simple language, fun analogies, and avoid jargon. Make it relatable and easy to understand.",
}

const notesFormat = `Generate structured study notes in the following JSON format (respond with ONLY valid JSON, no markdown):
{
  "title": "Topic Title",
  "beginner": "Beginner-friendly explanation in 2-4 sentences",
  "intermediate": "Intermediate concepts and key ideas (200-300 words)",
  "advanced": "Advanced insights and nuances (200-300 words)",
  "applications": ["application 1", "application 2", "application 3", "application 4"],
  "definitions": [{"term": "term1", "definition": "definition1"}, {"term": "term2", "definition": "definition2"}],
  "keyPoints": ["key point 1", "key point 2", "key point 3", "key point 4", "key point 5"],
  "examQuestions": ["question 1?", "question 2?", "question 3?", "question 4?"],
  "mermaidDiagram": "graph TD\n  A[\"Start\"] --> B[\"Step 1\"]\n  B --> C[\"Step 2\"]",
  "comparisonTable": {
    "headers": ["Aspect", "Option A", "Option B"],
    "rows": [["Row 1", "Val A", "Val B"]]
  },
  "formulas": ["formula or important rule 1", "formula or important rule 2"]
}

STRICT RULE FOR mermaidDiagram:
1. Every node label MUST be in double quotes, e.g., A["Label"].
2. Avoid using parentheses ( ) or brackets [ ] inside valid labels unless they are inside double quotes.
3. Keep the diagram simple and easy to read.
4. Use ONLY 'graph TD' (top-down) for consistency.`

// GeminiGenerator 真实生成实现：拼 prompt、调模型、剥围栏、解析 JSON。
// 解析失败视为终态错误，不做部分恢复
type GeminiGenerator struct {
	ai *AIService
}

func NewGeminiGenerator(ai *AIService) *GeminiGenerator {
	return &GeminiGenerator{ai: ai}
}

func (g *GeminiGenerator) Name() string { return "gemini" }

func (g *GeminiGenerator) Notes(ctx context.Context, topic string, mode model.StudyMode) (*model.StudyNotes, error) {
	instruction, ok := modePrompts[mode]
	if !ok {
		instruction = modePrompts[model.ModeDeep]
	}

	prompt := fmt.Sprintf("%s\n\nTopic: %s\n\n%s", instruction, topic, notesFormat)

	text, err := g.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var notes model.StudyNotes
	if err := json.Unmarshal([]byte(StripCodeFence(text)), &notes); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrBadModelOutput, err)
	}
	return &notes, nil
}

func (g *GeminiGenerator) Quiz(ctx context.Context, topic, notesContext string) (*model.Quiz, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Based on the topic "%s", generate a quiz with the following structure. Respond ONLY with valid JSON:
{
  "mcq": [
    {
      "question": "Question text?",
      "options": ["A) Option A", "B) Option B", "C) Option C", "D) Option D"],
      "answer": "A) Option A",
      "explanation": "Why this answer is correct"
    }
  ],
  "trueFalse": [
    {
      "statement": "Statement here",
      "answer": true,
      "explanation": "Explanation"
    }
  ],
  "shortAnswer": [
    {
      "question": "Short answer question?",
      "answer": "Model answer"
    }
  ]
}

Generate 4 MCQ, 4 True/False, and 3 Short Answer questions.`, topic)
	if notesContext != "" {
		fmt.Fprintf(&sb, "\n\nBase the questions on these notes where possible:\n%s", notesContext)
	}

	text, err := g.ai.GenerateText(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	var quiz model.Quiz
	if err := json.Unmarshal([]byte(StripCodeFence(text)), &quiz); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrBadModelOutput, err)
	}
	return &quiz, nil
}

func (g *GeminiGenerator) Schedule(ctx context.Context, subjects []string, days int, today time.Time) (*model.StudySchedule, error) {
	prompt := fmt.Sprintf(`Create a study schedule for a student.
Subjects: %s
Days until exam: %d
Today's date: %s

Generate a JSON study schedule:
{
  "totalDays": %d,
  "dailyHours": 3,
  "phases": [
    {
      "name": "Phase 1: Foundation",
      "days": "Days 1-X",
      "focus": "What to study",
      "subjects": ["subject1", "subject2"]
    }
  ],
  "weeklySchedule": {
    "Monday": ["Subject - Topic (2h)", "Subject - Topic (1h)"],
    "Tuesday": ["..."],
    "Wednesday": ["..."],
    "Thursday": ["..."],
    "Friday": ["..."],
    "Saturday": ["..."],
    "Sunday": ["Review (1h)", "Rest"]
  },
  "weakTopicReminders": ["Reminder 1", "Reminder 2", "Reminder 3"],
  "revisionStrategy": "Brief revision strategy advice"
}

Respond with ONLY valid JSON.`, strings.Join(subjects, ", "), days, today.Format("Mon Jan 2 2006"), days)

	text, err := g.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var schedule model.StudySchedule
	if err := json.Unmarshal([]byte(StripCodeFence(text)), &schedule); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrBadModelOutput, err)
	}
	return &schedule, nil
}

func (g *GeminiGenerator) Chat(ctx context.Context, topic string, history []model.ChatMessage, message string) (string, error) {
	if topic == "" {
		topic = "a topic"
	}
	system := fmt.Sprintf(`You are a friendly, encouraging AI study buddy. The student is currently studying: "%s".
Answer their doubts clearly, use simple language, give examples when helpful. Be warm and supportive. Keep responses concise (under 200 words).`, topic)

	// 最新一轮带上当前话题前缀，历史保持原文
	return g.ai.ChatText(ctx, system, history, fmt.Sprintf("[Context: studying %s] %s", topic, message))
}
