package factory

import (
	"context"
	"fmt"

	"notepad-be/pkg/llm"
	"notepad-be/pkg/llm/gemini"
	"notepad-be/pkg/llm/ollama"
	"notepad-be/pkg/llm/openai"
)

const (
	ProviderOpenAI      = "openai"
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
	ProviderOllama      = "ollama"

	defaultOllamaURL        = "http://localhost:11434"
	defaultOllamaModel      = "llama3"
	defaultHuggingFaceURL   = "https://router.huggingface.co/v1"
	defaultHuggingFaceModel = "meta-llama/Llama-3.1-8B-Instruct"
)

type Settings struct {
	Provider string
	Model    string
	APIKey   string
	// BaseURL overrides the provider endpoint. Ignored by gemini.
	BaseURL string
}

func NewLLMProvider(ctx context.Context, s Settings) (llm.LLMProvider, error) {
	switch s.Provider {
	case ProviderOpenAI, "":
		return openai.NewOpenAIProvider(s.APIKey, s.BaseURL, s.Model)
	case ProviderHuggingFace:
		// the router speaks the OpenAI chat completions protocol
		baseURL := s.BaseURL
		if baseURL == "" {
			baseURL = defaultHuggingFaceURL
		}
		model := s.Model
		if model == "" {
			model = defaultHuggingFaceModel
		}
		return openai.NewOpenAIProvider(s.APIKey, baseURL, model)
	case ProviderGemini:
		return gemini.NewGeminiProvider(ctx, s.APIKey, s.Model)
	case ProviderOllama:
		baseURL := s.BaseURL
		if baseURL == "" {
			baseURL = defaultOllamaURL
		}
		model := s.Model
		if model == "" {
			model = defaultOllamaModel
		}
		return ollama.NewOllamaProvider(baseURL, model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", s.Provider)
	}
}
