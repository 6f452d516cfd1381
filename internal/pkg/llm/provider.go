package llm

import (
	"context"
	"errors"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

var (
	ErrNoProvider    = errors.New("llm provider not configured")
	ErrEmptyResponse = errors.New("llm returned empty response")
)

// Request 一次 prompt/response 往返
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	// JSON 要求模型输出 JSON 对象，Schema 仅部分 provider 支持
	JSON   bool
	Schema map[string]any
}

// Provider 可替换的大模型实现，由配置决定
type Provider interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
}

// NopProvider 未配置 key 时使用，所有调用都走兜底文案
type NopProvider struct{}

func (NopProvider) Name() string {
	return ProviderNone
}

func (NopProvider) Generate(context.Context, Request) (string, error) {
	return "", ErrNoProvider
}
