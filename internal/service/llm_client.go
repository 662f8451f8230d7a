package service

import (
	"ai_interviewer_backend/internal/config"
	"ai_interviewer_backend/pkg/logger"
	"context"

	"go.uber.org/zap"
)

// 默认采样参数，调用方可按场景覆盖 maxTokens
const (
	DefaultTemperature = 0.6
	DefaultMaxTokens   = 800
	GenMaxTokens       = 2048
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LLMClient 把"发一组对话消息、拿回一段文本"收敛成一个接口，
// 业务层只依赖它，后端实现由配置选择。失败统一返回 *util.GatewayError。
type LLMClient interface {
	Chat(ctx context.Context, messages []ChatMessage, temperature float32, maxTokens int) (string, error)
	Provider() string
}

// NewLLMClient 根据配置选择实现，未知 provider 回落到 mock
func NewLLMClient(cfg config.LLMConfig) LLMClient {
	switch cfg.Provider {
	case "openai", "ollama", "vllm":
		logger.Log.Info("Using OpenAI-compatible LLM client",
			zap.String("model", cfg.Model), zap.String("baseUrl", cfg.BaseURL))
		return NewOpenAIClient(cfg)
	case "azure":
		logger.Log.Info("Using Azure LLM client",
			zap.String("model", cfg.Model), zap.String("baseUrl", cfg.BaseURL))
		return NewAzureClient(cfg)
	case "mock", "":
		logger.Log.Info("Using mock LLM client")
		return NewMockClient()
	default:
		logger.Log.Warn("Unknown LLM provider, falling back to mock", zap.String("provider", cfg.Provider))
		return NewMockClient()
	}
}
