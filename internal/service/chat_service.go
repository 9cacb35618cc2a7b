package service

import (
	"context"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/util"
	"study_buddy_backend/pkg/monitoring"
)

type ChatService struct {
	gen ContentGenerator
}

func NewChatService(gen ContentGenerator) *ChatService {
	return &ChatService{gen: gen}
}

// NormalizeHistory 把历史消息的角色归一为 user / model，并执行交替过滤：
// 历史必须以 user 开头且严格交替，破坏交替的消息被丢弃而不是重排。
// 上游模型对历史有这个硬性合同，开场的助手问候就是在这里被丢掉的
func NormalizeHistory(messages []model.ChatMessage) []model.ChatMessage {
	history := make([]model.ChatMessage, 0, len(messages))
	for _, m := range messages {
		role := model.RoleModel
		if m.Role == model.RoleUser {
			role = model.RoleUser
		}

		if len(history) == 0 {
			if role == model.RoleUser {
				history = append(history, model.ChatMessage{Role: role, Content: m.Content})
			}
			continue
		}
		if history[len(history)-1].Role != role {
			history = append(history, model.ChatMessage{Role: role, Content: m.Content})
		}
	}
	return history
}

// Reply 取最新一条为本轮提问，其余做归一和过滤后作为会话历史转发
func (s *ChatService) Reply(ctx context.Context, topic string, messages []model.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", util.ErrMessagesRequired
	}

	last := messages[len(messages)-1]
	history := NormalizeHistory(messages[:len(messages)-1])

	reply, err := s.gen.Chat(ctx, topic, history, last.Content)
	if err != nil {
		monitoring.GenerationCounter.WithLabelValues("chat", s.gen.Name(), "error").Inc()
		return "", err
	}
	monitoring.GenerationCounter.WithLabelValues("chat", s.gen.Name(), "success").Inc()
	return reply, nil
}
