package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katakuxiko/infinitegpt/internal/config"
	"github.com/katakuxiko/infinitegpt/internal/model"
	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a helpful assistant."

var errNoChoices = errors.New("empty choices in completion response")

// Completer выполняет задачу над одним чанком
type Completer interface {
	Complete(ctx context.Context, task string, ch model.Chunk) model.Completion
}

// LLMClient — клиент для OpenAI совместимого chat completion API
type LLMClient struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// NewLLMClient создаёт новый клиент с настройками из config
func NewLLMClient(cfg *config.Config) *LLMClient {
	oaiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oaiCfg.BaseURL = cfg.BaseURL
	}
	return &LLMClient{
		client:      openai.NewClientWithConfig(oaiCfg),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

var _ Completer = (*LLMClient)(nil)

// buildPrompt — фиксированный шаблон запроса
func buildPrompt(task, text string) string {
	return fmt.Sprintf("Please %s the following: %s.", task, text)
}

// Complete не возвращает ошибку наружу: она лежит в Completion.Err
func (l *LLMClient) Complete(ctx context.Context, task string, ch model.Chunk) model.Completion {
	resp, err := l.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: l.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: buildPrompt(task, ch.Text)},
			},
			MaxTokens:   l.maxTokens,
			N:           1,
			Temperature: l.temperature,
		},
	)
	if err != nil {
		return model.Completion{Index: ch.Index, Err: fmt.Errorf("chat completion: %w", err)}
	}
	if len(resp.Choices) == 0 {
		return model.Completion{Index: ch.Index, Err: errNoChoices}
	}
	return model.Completion{
		Index: ch.Index,
		Text:  strings.TrimSpace(resp.Choices[0].Message.Content),
	}
}
