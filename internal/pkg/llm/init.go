package llm

import (
	"Todak/internal/api/config"
	log "log/slog"
	"strings"
	"time"
)

// NewProvider 根据配置选择 provider，缺少 key 时退化为 NopProvider
func NewProvider(cfg config.LLMConfig) (Provider, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if name == "" || name == ProviderNone || cfg.ApiKey == "" {
		log.Warn("AI大模型未配置，使用兜底文案", "provider", name)
		return NopProvider{}, nil
	}

	switch name {
	case ProviderOpenAI:
		p, err := NewOpenAIProvider(cfg)
		if err != nil {
			log.Error("AI大模型初始化失败", "err", err)
			return nil, err
		}
		return p, nil
	case ProviderGemini:
		return NewGeminiProvider(cfg), nil
	default:
		log.Warn("未知的AI大模型 provider，使用兜底文案", "provider", name)
		return NopProvider{}, nil
	}
}

// NewCompanionFromConfig provider 与并发、超时设置一起装配
func NewCompanionFromConfig(cfg config.LLMConfig) (*CompanionImpl, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return NewCompanion(provider, Options{
		Timeout:        time.Duration(cfg.TimeoutSeconds) * time.Second,
		MaxConcurrency: cfg.MaxConcurrency,
		Temperature:    cfg.Temperature,
	}), nil
}
