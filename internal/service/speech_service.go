package service

import (
	"ai_interviewer_backend/internal/config"
	"ai_interviewer_backend/pkg/logger"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// speechTokenTTL Azure 令牌有效期 10 分钟，缓存 9 分钟留出刷新余量
const speechTokenTTL = 9 * time.Minute

const speechTokenCacheKey = "speech:token"

// SpeechToken 前端语音识别所需的短期凭证
type SpeechToken struct {
	Token  string `json:"token"`
	Region string `json:"region"`
}

// SpeechService 向 Azure STS 换取语音令牌，Redis 可用时做短期缓存
type SpeechService struct {
	cfg    config.SpeechConfig
	rdb    *redis.Client // 可为 nil，此时每次直连 Azure
	client *http.Client
}

func NewSpeechService(cfg config.SpeechConfig, rdb *redis.Client) *SpeechService {
	return &SpeechService{
		cfg:    cfg,
		rdb:    rdb,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SpeechService) Configured() bool {
	return s.cfg.Key != "" && s.cfg.Region != ""
}

// IssueToken 返回可用令牌。优先命中缓存，miss 时向
// https://{region}.api.cognitive.microsoft.com/sts/v1.0/issueToken 签发
func (s *SpeechService) IssueToken(ctx context.Context) (*SpeechToken, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("speech service is not configured")
	}

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, speechTokenCacheKey).Result()
		if err == nil && cached != "" {
			return &SpeechToken{Token: cached, Region: s.cfg.Region}, nil
		}
		if err != nil && err != redis.Nil {
			logger.Log.Warn("Speech token cache read failed", zap.Error(err))
		}
	}

	url := fmt.Sprintf("https://%s.api.cognitive.microsoft.com/sts/v1.0/issueToken", s.cfg.Region)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", s.cfg.Key)
	req.Header.Set("Content-Length", "0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech token request failed: status %d", resp.StatusCode)
	}

	token := string(body)

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, speechTokenCacheKey, token, speechTokenTTL).Err(); err != nil {
			logger.Log.Warn("Speech token cache write failed", zap.Error(err))
		}
	}

	return &SpeechToken{Token: token, Region: s.cfg.Region}, nil
}
