package service

import (
	"context"
	"fmt"
	"time"

	"study_buddy_backend/internal/model"
)

// DemoGenerator 无凭证时的确定性本地内容。形状与真实响应完全一致，
// 这是产品策略而不是错误兜底
type DemoGenerator struct{}

func NewDemoGenerator() *DemoGenerator {
	return &DemoGenerator{}
}

func (g *DemoGenerator) Name() string { return "demo" }

func (g *DemoGenerator) Notes(_ context.Context, topic string, _ model.StudyMode) (*model.StudyNotes, error) {
	return &model.StudyNotes{
		Title:        topic,
		Beginner:     fmt.Sprintf("%s is a fascinating subject that forms the foundation of many important concepts. Let's explore it step by step! Think of it as a building block that connects to many real-world situations.", topic),
		Intermediate: fmt.Sprintf("At an intermediate level, %s involves understanding core principles and their interconnections. This includes analyzing patterns, relationships, and the underlying mechanisms that drive the subject forward. Students at this stage begin to see how theoretical concepts translate into practical applications.", topic),
		Advanced:     fmt.Sprintf("Advanced study of %s delves into nuanced theories, edge cases, and cutting-edge research. This level requires critical thinking, synthesis of multiple concepts, and the ability to evaluate competing frameworks. Researchers and professionals engage with %s at this depth to push boundaries.", topic, topic),
		Applications: []string{
			fmt.Sprintf("Real-world application 1 of %s", topic),
			fmt.Sprintf("Real-world application 2 of %s", topic),
			fmt.Sprintf("Industry use case involving %s", topic),
			"Science and technology applications",
		},
		Definitions: []model.Definition{
			{Term: "Core Concept", Definition: fmt.Sprintf("The fundamental principle underlying %s", topic)},
			{Term: "Key Term", Definition: fmt.Sprintf("An important term specific to the study of %s", topic)},
		},
		KeyPoints: []string{
			fmt.Sprintf("%s is foundational to understanding related subjects", topic),
			"Break complex ideas into smaller components",
			"Connect theory to real-world examples",
			"Practice regularly to reinforce understanding",
			"Review and revise consistently",
		},
		ExamQuestions: []string{
			fmt.Sprintf("What are the main principles of %s?", topic),
			fmt.Sprintf("Explain the practical applications of %s.", topic),
			fmt.Sprintf("Compare and contrast key aspects of %s.", topic),
			fmt.Sprintf("What are common misconceptions about %s?", topic),
		},
		MermaidDiagram: fmt.Sprintf("graph TD\n  A[\"Start: %s\"] --> B[\"Core Concepts\"]\n  B --> C[\"Applications\"]\n  B --> D[\"Theory\"]\n  C --> E[\"Real World\"]\n  D --> F[\"Advanced Study\"]", topic),
		ComparisonTab: model.ComparisonTable{
			Headers: []string{"Aspect", "Basic Level", "Advanced Level"},
			Rows: [][]string{
				{"Complexity", "Low", "High"},
				{"Prerequisites", "None", "Foundational knowledge"},
				{"Time to learn", "1-2 weeks", "3-6 months"},
			},
		},
		Formulas: []string{
			fmt.Sprintf("Key formula or rule related to %s", topic),
			"Important principle or theorem to remember",
		},
	}, nil
}

func (g *DemoGenerator) Quiz(_ context.Context, topic, _ string) (*model.Quiz, error) {
	return &model.Quiz{
		MCQ: []model.MCQQuestion{
			{
				Question:    fmt.Sprintf("What is the primary purpose of studying %s?", topic),
				Options:     []string{"A) To memorize facts", "B) To understand concepts", "C) To pass exams only", "D) To avoid other subjects"},
				Answer:      "B) To understand concepts",
				Explanation: "Understanding concepts is more valuable than rote memorization as it enables application.",
			},
			{
				Question:    fmt.Sprintf("Which approach is best for learning %s?", topic),
				Options:     []string{"A) Read once and forget", "B) Active recall and spaced repetition", "C) Passive reading only", "D) Skip difficult parts"},
				Answer:      "B) Active recall and spaced repetition",
				Explanation: "Active recall with spaced repetition is scientifically proven to be the most effective learning strategy.",
			},
			{
				Question:    fmt.Sprintf("What characterizes a strong understanding of %s?", topic),
				Options:     []string{"A) Ability to recite facts", "B) Speed of recall", "C) Ability to apply knowledge to new problems", "D) Number of notes taken"},
				Answer:      "C) Ability to apply knowledge to new problems",
				Explanation: "True understanding is demonstrated by applying concepts to novel situations.",
			},
			{
				Question:    fmt.Sprintf("Which learning mode is best for exam preparation on %s?", topic),
				Options:     []string{"A) Deep Learning Mode", "B) Quick Summary Mode", "C) Exam Revision Mode", "D) Voice Mode"},
				Answer:      "C) Exam Revision Mode",
				Explanation: "Exam Revision Mode provides concise, exam-focused content optimized for test preparation.",
			},
		},
		TrueFalse: []model.TrueFalseQuestion{
			{Statement: fmt.Sprintf("Understanding the basics of %s is not necessary before advanced study.", topic), Answer: false, Explanation: "Foundational knowledge is essential before advancing to complex topics."},
			{Statement: fmt.Sprintf("%s has real-world applications beyond academic study.", topic), Answer: true, Explanation: fmt.Sprintf("%s is widely applied in industry, research, and everyday life.", topic)},
			{Statement: "Consistent daily practice is more effective than long occasional study sessions.", Answer: true, Explanation: "Spaced, consistent practice leads to better retention than irregular cramming."},
			{Statement: "Visual aids like flowcharts do not help with understanding complex topics.", Answer: false, Explanation: "Visual representations significantly improve comprehension and retention of information."},
		},
		ShortAnswer: []model.ShortAnswerQuestion{
			{Question: fmt.Sprintf("In your own words, explain the core concept of %s.", topic), Answer: fmt.Sprintf("%s involves understanding fundamental principles and applying them to solve problems and explain phenomena in the real world.", topic)},
			{Question: fmt.Sprintf("List three important applications of %s.", topic), Answer: "Applications include: (1) Solving real-world problems, (2) Foundation for advanced research, (3) Industry implementations and innovations."},
			{Question: fmt.Sprintf("What study strategies would you use to master %s?", topic), Answer: "Effective strategies include: active recall practice, spaced repetition, visual note-taking, connecting concepts to real examples, and regular self-testing."},
		},
	}, nil
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (g *DemoGenerator) Schedule(_ context.Context, subjects []string, days int, _ time.Time) (*model.StudySchedule, error) {
	// 三阶段按 40%/35%/25% 切分，取整余数全部归入第三阶段
	phase1 := days * 40 / 100
	phase2 := days * 35 / 100
	phase3 := days - phase1 - phase2

	weekly := map[string][]string{
		"Saturday": {"Full Mock Exam (3h)", "Review Mistakes (1h)"},
		"Sunday":   {"Light Review (1h)", "Rest & Relax"},
	}
	for _, day := range weekdays[:5] {
		var tasks []string
		for i, s := range subjects {
			hours := "1h"
			if i == 0 {
				hours = "2h"
			}
			switch day {
			case "Monday":
				tasks = append(tasks, fmt.Sprintf("%s - Core Concepts (%s)", s, hours))
			case "Tuesday":
				tasks = append(tasks, fmt.Sprintf("%s - Practice Problems (1.5h)", s))
			case "Wednesday":
				tasks = append(tasks, fmt.Sprintf("%s - Deep Dive (%s)", s, hours))
			case "Thursday":
				tasks = append(tasks, fmt.Sprintf("%s - Revision Notes (1h)", s))
			case "Friday":
				tasks = append(tasks, fmt.Sprintf("%s - Mock Test (1h)", s))
			}
		}
		weekly[day] = tasks
	}

	reminders := make([]string, 0, len(subjects))
	for _, s := range subjects {
		reminders = append(reminders, fmt.Sprintf("Review difficult sections of %s regularly", s))
	}

	return &model.StudySchedule{
		TotalDays:  days,
		DailyHours: 4,
		Phases: []model.SchedulePhase{
			{Name: "Phase 1: Foundation Building", Days: fmt.Sprintf("Days 1-%d", phase1), Focus: "Cover all basics and core concepts", Subjects: subjects},
			{Name: "Phase 2: Practice & Application", Days: fmt.Sprintf("Days %d-%d", phase1+1, phase1+phase2), Focus: "Practice problems, past papers, and applications", Subjects: subjects},
			{Name: "Phase 3: Revision & Mock Tests", Days: fmt.Sprintf("Days %d-%d", phase1+phase2+1, phase1+phase2+phase3), Focus: "Quick revision, full mock exams, and weak area focus", Subjects: subjects},
		},
		WeeklySchedule:     weekly,
		WeakTopicReminders: reminders,
		RevisionStrategy:   fmt.Sprintf("With %d days remaining, focus on understanding fundamentals first, then practice extensively. Use spaced repetition for key facts and do full mock exams in the final week.", days),
	}, nil
}

func (g *DemoGenerator) Chat(_ context.Context, topic string, _ []model.ChatMessage, message string) (string, error) {
	if topic == "" {
		topic = "your topic"
	}
	return fmt.Sprintf("Great question about %q! This is a demo response. Configure your Gemini API key to enable real AI responses. In a real session, I would provide a detailed explanation related to %s, covering the key concepts and helping you understand the nuances.", message, topic), nil
}
