package llm

import (
	"Todak/internal/api/config"
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIProvider 兼容 OpenAI 协议的服务，JSON 请求使用单独的 json_object 客户端
type OpenAIProvider struct {
	text  llms.Model
	json  llms.Model
	model string
}

func NewOpenAIProvider(cfg config.LLMConfig) (*OpenAIProvider, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.ApiKey),
	}
	if cfg.Model != "" {
		opts = append(opts, openai.WithModel(cfg.Model))
	}
	if cfg.URL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.URL))
	}

	text, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	jsonClient, err := openai.New(append(opts, openai.WithResponseFormat(&openai.ResponseFormat{
		Type: "json_object",
	}))...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai json client: %w", err)
	}

	return &OpenAIProvider{text: text, json: jsonClient, model: cfg.Model}, nil
}

func (p *OpenAIProvider) Name() string {
	return ProviderOpenAI
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (string, error) {
	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(req.System),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(req.Prompt),
			},
		},
	}

	client := p.text
	if req.JSON {
		client = p.json
	}

	callOpts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if p.model != "" {
		callOpts = append(callOpts, llms.WithModel(p.model))
	}

	resp, err := client.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Content, nil
}
