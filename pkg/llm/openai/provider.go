// Package openai talks to OpenAI and any endpoint that speaks the OpenAI chat
// completions protocol (the Hugging Face router, vLLM, LocalAI).
package openai

import (
	"context"
	"errors"
	"fmt"

	"notepad-be/pkg/llm"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

const DefaultModel = "gpt-3.5-turbo"

var ErrNoChoices = errors.New("openai: response contained no choices")

type OpenAIProvider struct {
	client    *lcopenai.LLM
	modelName string
}

var _ llm.LLMProvider = &OpenAIProvider{}

// NewOpenAIProvider builds a provider. baseURL may be empty for the public
// OpenAI API.
func NewOpenAIProvider(apiKey, baseURL, modelName string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("openai: api key is required")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	opts := []lcopenai.Option{
		lcopenai.WithToken(apiKey),
		lcopenai.WithModel(modelName),
	}
	if baseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(baseURL))
	}

	client, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("openai: create client: %w", err)
	}

	return &OpenAIProvider{
		client:    client,
		modelName: modelName,
	}, nil
}

func (p *OpenAIProvider) Model() string {
	return p.modelName
}

func (p *OpenAIProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.NewOptions(opts...)

	messages := make([]llms.MessageContent, 0, len(history))
	for _, msg := range history {
		messages = append(messages, llms.TextParts(messageType(msg.Role), msg.Content))
	}

	model := p.modelName
	if options.Model != "" {
		model = options.Model
	}

	callOpts := []llms.CallOption{
		llms.WithModel(model),
		llms.WithTemperature(options.Temperature),
	}
	if options.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(options.MaxTokens))
	}

	resp, err := p.client.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		return "", fmt.Errorf("openai: generate content: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	return resp.Choices[0].Content, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func messageType(role string) llms.ChatMessageType {
	switch role {
	case llm.RoleSystem:
		return llms.ChatMessageTypeSystem
	case llm.RoleAssistant, "model":
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
