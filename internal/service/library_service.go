package service

import (
	"encoding/json"
	"strings"
	"time"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/repository"
	"study_buddy_backend/internal/util"
	"study_buddy_backend/pkg/logger"

	"go.uber.org/zap"
)

// MaxLibraryEntries 笔记库条数上限，超出时淘汰最旧的
const MaxLibraryEntries = 20

type LibraryService struct {
	States      repository.StateRepository
	progression *ProgressionService
}

func NewLibraryService(states repository.StateRepository, progression *ProgressionService) *LibraryService {
	return &LibraryService{States: states, progression: progression}
}

// List 笔记库，最新在前
func (s *LibraryService) List(userID string) ([]model.LibraryEntry, error) {
	val, ok, err := s.States.Get(userID, model.StateKeyLibrary)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.LibraryEntry{}, nil
	}

	var entries []model.LibraryEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		logger.Log.Warn("library state corrupted, resetting", zap.String("user", userID), zap.Error(err))
		return []model.LibraryEntry{}, nil
	}
	return entries, nil
}

// Save 保存笔记并发放 saving 经验。
// 同名 topic 原位替换，不改变其他条目的相对顺序；新 topic 插到最前并截断到上限
func (s *LibraryService) Save(userID string, entry model.LibraryEntry) ([]model.LibraryEntry, error) {
	entry.Topic = strings.TrimSpace(entry.Topic)
	if entry.Topic == "" {
		return nil, util.ErrTopicRequired
	}
	if entry.SavedAt.IsZero() {
		entry.SavedAt = time.Now()
	}

	entries, err := s.List(userID)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range entries {
		if entries[i].Topic == entry.Topic {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append([]model.LibraryEntry{entry}, entries...)
	}
	if len(entries) > MaxLibraryEntries {
		entries = entries[:MaxLibraryEntries]
	}

	if err := s.write(userID, entries); err != nil {
		return nil, err
	}

	if _, err := s.progression.Award(userID, XPEventSaving); err != nil {
		logger.Log.Warn("failed to award saving xp", zap.String("user", userID), zap.Error(err))
	}
	return entries, nil
}

// Delete 按 topic 删除条目
func (s *LibraryService) Delete(userID, topic string) ([]model.LibraryEntry, error) {
	entries, err := s.List(userID)
	if err != nil {
		return nil, err
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.Topic == topic {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return nil, util.ErrEntryNotFound
	}

	if err := s.write(userID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *LibraryService) write(userID string, entries []model.LibraryEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.States.Set(userID, model.StateKeyLibrary, string(data))
}
