package service

import (
	"ai_interviewer_backend/internal/config"
	"ai_interviewer_backend/pkg/logger"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ProxyResult D-ID 上游的原样应答，状态码和 Content-Type 透传给前端
type ProxyResult struct {
	Status      int
	ContentType string
	Body        []byte
}

// StreamService D-ID Clips Streams 的薄代理。把 WebRTC 信令
// (create / sdp / ice / payload / delete) 转发到上游，密钥只留在服务端。
// 客户端刻意不带 CookieJar：D-ID 负载均衡的 Set-Cookie 会污染
// session_id，会话一律通过请求体里的 session_id 字段维持。
type StreamService struct {
	cfg    config.DIDConfig
	client *http.Client
}

func NewStreamService(cfg config.DIDConfig) *StreamService {
	return &StreamService{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *StreamService) Configured() bool {
	return s.cfg.APIKey != ""
}

func (s *StreamService) authorization() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(s.cfg.APIKey+":"))
}

func (s *StreamService) do(ctx context.Context, method, path string, body []byte, sessionID string) (*ProxyResult, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.cfg.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", s.authorization())
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// session_id 同时走请求体和 Cookie，上游两种都认
	if sessionID != "" {
		req.Header.Set("Cookie", sessionID)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("d-id request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	logger.Log.Debug("D-ID proxy call",
		zap.String("method", method), zap.String("path", path), zap.Int("status", resp.StatusCode))

	return &ProxyResult{Status: resp.StatusCode, ContentType: contentType, Body: respBody}, nil
}

// extractSessionID 从转发体里取 session_id，取不到就空串
func extractSessionID(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	var sessionID string
	if raw, ok := payload["session_id"]; ok {
		json.Unmarshal(raw, &sessionID)
	}
	return sessionID
}

// CreateStream 建流。前端可以发空对象，presenter_id / driver_id
// 缺省时注入配置里的固定数字人
func (s *StreamService) CreateStream(ctx context.Context, body []byte) (*ProxyResult, error) {
	payload := map[string]any{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("invalid stream create payload: %w", err)
		}
	}
	if _, ok := payload["presenter_id"]; !ok {
		payload["presenter_id"] = s.cfg.DefaultPresenter
	}
	if _, ok := payload["driver_id"]; !ok {
		payload["driver_id"] = s.cfg.DefaultDriver
	}

	merged, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return s.do(ctx, http.MethodPost, "/clips/streams", merged, "")
}

// SubmitSDP WebRTC answer 上报。前端发 {session_id, answer}，
// 重新包装后转发，响应按 SDP 透传
func (s *StreamService) SubmitSDP(ctx context.Context, streamID string, body []byte) (*ProxyResult, error) {
	var payload struct {
		SessionID string          `json:"session_id"`
		Answer    json.RawMessage `json:"answer"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid sdp payload: %w", err)
	}

	forwarded, err := json.Marshal(map[string]any{
		"session_id": payload.SessionID,
		"answer":     payload.Answer,
	})
	if err != nil {
		return nil, err
	}

	result, err := s.do(ctx, http.MethodPost, "/clips/streams/"+streamID+"/sdp", forwarded, payload.SessionID)
	if err != nil {
		return nil, err
	}
	result.ContentType = "application/sdp"
	return result, nil
}

// SubmitICE ICE candidate 原文转发
func (s *StreamService) SubmitICE(ctx context.Context, streamID string, body []byte) (*ProxyResult, error) {
	return s.do(ctx, http.MethodPost, "/clips/streams/"+streamID+"/ice", body, extractSessionID(body))
}

// SendPayload 向已建立的流推送播报内容（script 等），原文转发
func (s *StreamService) SendPayload(ctx context.Context, streamID string, body []byte) (*ProxyResult, error) {
	return s.do(ctx, http.MethodPost, "/clips/streams/"+streamID, body, extractSessionID(body))
}

// DeleteStream 关流，请求体带 session_id
func (s *StreamService) DeleteStream(ctx context.Context, streamID string, body []byte) (*ProxyResult, error) {
	return s.do(ctx, http.MethodDelete, "/clips/streams/"+streamID, body, extractSessionID(body))
}

// Presenters 拉取可用数字人列表
func (s *StreamService) Presenters(ctx context.Context) (*ProxyResult, error) {
	return s.do(ctx, http.MethodGet, "/clips/presenters", nil, "")
}
