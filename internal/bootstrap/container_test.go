package bootstrap

import (
	"testing"
	"time"

	"notepad-be/internal/config"
	"notepad-be/internal/pkg/logger"
	"notepad-be/internal/repository/memory"
	"notepad-be/internal/repository/rediscache"
	"notepad-be/pkg/llm/factory"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewNoteCacheSelection(t *testing.T) {
	nop := logger.NewNopLogger()

	assert.IsType(t, &memory.NoteCache{}, newNoteCache(config.CacheConfig{NoteTTL: time.Minute}, nop))

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	assert.IsType(t, &rediscache.NoteCache{},
		newNoteCache(config.CacheConfig{RedisURL: "redis://" + addr, NoteTTL: time.Minute}, nop))

	mr.Close()
	assert.IsType(t, &memory.NoteCache{},
		newNoteCache(config.CacheConfig{RedisURL: "redis://" + addr, NoteTTL: time.Minute}, nop))
}

func TestLLMSettingsPicksProviderKey(t *testing.T) {
	cfg := &config.Config{
		Keys: config.APIKeys{OpenAI: "oa", GoogleGemini: "gm", HuggingFace: "hf"},
		Ai: config.AIConfig{
			OpenAIBaseURL: "http://proxy",
			OllamaBaseURL: "http://ollama:11434",
		},
	}

	cfg.Ai.LLMProvider = factory.ProviderOpenAI
	assert.Equal(t, factory.Settings{Provider: "openai", APIKey: "oa", BaseURL: "http://proxy"}, llmSettings(cfg))

	cfg.Ai.LLMProvider = factory.ProviderGemini
	assert.Equal(t, "gm", llmSettings(cfg).APIKey)

	cfg.Ai.LLMProvider = factory.ProviderHuggingFace
	assert.Equal(t, "hf", llmSettings(cfg).APIKey)

	cfg.Ai.LLMProvider = factory.ProviderOllama
	assert.Equal(t, "http://ollama:11434", llmSettings(cfg).BaseURL)
	assert.Empty(t, llmSettings(cfg).APIKey)
}
