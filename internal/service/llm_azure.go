package service

import (
	"ai_interviewer_backend/internal/config"
	"context"
	"net/http"
	"time"
)

// AzureClient Azure 托管推理端点。与 OpenAI 协议的差别：
// 路径带 /v1 前缀，且请求头部固定注入一条面试官 system 消息。
type AzureClient struct {
	cfg    config.LLMConfig
	client *http.Client
}

func NewAzureClient(cfg config.LLMConfig) *AzureClient {
	return &AzureClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (s *AzureClient) Provider() string { return "azure" }

func (s *AzureClient) Chat(ctx context.Context, messages []ChatMessage, temperature float32, maxTokens int) (string, error) {
	withSystem := make([]ChatMessage, 0, len(messages)+1)
	withSystem = append(withSystem, ChatMessage{Role: "system", Content: "You are an interviewer."})
	withSystem = append(withSystem, messages...)

	return doChatCompletion(ctx, s.client, s.Provider(), s.cfg, s.cfg.BaseURL+"/v1/chat/completions", withSystem, temperature, maxTokens)
}
