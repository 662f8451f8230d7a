package service

import (
	"ai_interviewer_backend/internal/config"
	"ai_interviewer_backend/internal/util"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// OpenAIClient 兼容 OpenAI /chat/completions 协议的后端（ollama、vllm 等同样适用）
type OpenAIClient struct {
	cfg    config.LLMConfig
	client *http.Client
}

func NewOpenAIClient(cfg config.LLMConfig) *OpenAIClient {
	return &OpenAIClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (s *OpenAIClient) Provider() string { return "openai" }

func (s *OpenAIClient) Chat(ctx context.Context, messages []ChatMessage, temperature float32, maxTokens int) (string, error) {
	return doChatCompletion(ctx, s.client, s.Provider(), s.cfg, s.cfg.BaseURL+"/chat/completions", messages, temperature, maxTokens)
}

// doChatCompletion openai 与 azure 两个实现共用的请求收发
func doChatCompletion(ctx context.Context, client *http.Client, provider string, cfg config.LLMConfig, url string, messages []ChatMessage, temperature float32, maxTokens int) (string, error) {
	reqBody := chatCompletionRequest{
		Model:       cfg.Model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &util.GatewayError{Provider: provider, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &util.GatewayError{Provider: provider, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	if cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", &util.GatewayError{Provider: provider, Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &util.GatewayError{
			Provider: provider,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("%s", string(body)),
		}
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &util.GatewayError{Provider: provider, Err: err}
	}

	if result.Error != nil {
		return "", &util.GatewayError{Provider: provider, Err: fmt.Errorf("%s", result.Error.Message)}
	}

	if len(result.Choices) == 0 {
		return "", &util.GatewayError{Provider: provider, Err: fmt.Errorf("LLM returned no choices")}
	}

	return result.Choices[0].Message.Content, nil
}
