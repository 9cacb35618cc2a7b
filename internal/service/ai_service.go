package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/util"
	"study_buddy_backend/pkg/logger"

	"go.uber.org/zap"
)

// AIService 生成式模型客户端（Gemini generateContent REST 接口）。
// 依次尝试首选模型和备用模型，每个请求最多一次降级重试，失败即向上抛错
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent   `json:"systemInstruction,omitempty"`
	Contents          []geminiContent  `json:"contents"`
	GenerationConfig  *geminiGenConfig `json:"generationConfig,omitempty"`
}

type geminiGenConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateText 单轮生成。prompt 已经是拼装好的完整指令
func (s *AIService) GenerateText(ctx context.Context, prompt string) (string, error) {
	contents := []geminiContent{
		{Role: model.RoleUser, Parts: []geminiPart{{Text: prompt}}},
	}
	return s.generate(ctx, nil, contents)
}

// ChatText 多轮对话。history 必须已经过角色归一和交替过滤，
// 每次调用（包括降级重试）都用完整历史开一个全新会话，不携带任何服务端会话状态
func (s *AIService) ChatText(ctx context.Context, system string, history []model.ChatMessage, message string) (string, error) {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, geminiContent{
			Role:  m.Role,
			Parts: []geminiPart{{Text: m.Content}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  model.RoleUser,
		Parts: []geminiPart{{Text: message}},
	})

	var sys *geminiContent
	if system != "" {
		sys = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}
	return s.generate(ctx, sys, contents)
}

func (s *AIService) generate(ctx context.Context, system *geminiContent, contents []geminiContent) (string, error) {
	var lastErr error
	for _, m := range []string{s.config.Model, s.config.FallbackModel} {
		if m == "" {
			continue
		}
		text, err := s.callModel(ctx, m, system, contents)
		if err == nil {
			return text, nil
		}
		logger.Log.Warn("model attempt failed",
			zap.String("model", m),
			zap.Error(err),
		)
		lastErr = err
	}
	return "", fmt.Errorf("%w: %v", util.ErrModelUnavailable, lastErr)
}

func (s *AIService) callModel(ctx context.Context, modelName string, system *geminiContent, contents []geminiContent) (string, error) {
	reqBody := geminiRequest{
		SystemInstruction: system,
		Contents:          contents,
	}
	if s.config.MaxTokens > 0 {
		reqBody.GenerationConfig = &geminiGenConfig{MaxOutputTokens: s.config.MaxTokens}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimSuffix(s.config.BaseURL, "/"), modelName, strings.TrimSpace(s.config.APIKey))

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("gemini API error: %s", result.Error.Message)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// StripCodeFence 去掉包裹结构化输出的首尾代码围栏（含 ```json 变体）。
// 幂等：对没有围栏的文本原样返回
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "```") {
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	if strings.HasSuffix(strings.TrimSpace(s), "```") {
		s = strings.TrimSpace(s)
		s = s[:len(s)-3]
	}

	return strings.TrimSpace(s)
}
