package service

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"notepad-be/internal/dto"
	"notepad-be/internal/pkg/apperror"
	"notepad-be/internal/pkg/logger"
	"notepad-be/pkg/llm"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	completionSystemPrompt = "You are a helpful writing assistant. Keep responses concise and helpful."
	completionMaxTokens    = 1000

	minTemperature = 0.0
	maxTemperature = 2.0

	msgLoginRequired   = "You must be logged in to use AI features"
	msgInvalidPrompt   = "The function must be called with a valid prompt"
	msgGenerationError = "Failed to generate AI response"
)

type ICompletionService interface {
	// GenerateResponse forwards the prompt to the configured LLM on behalf of
	// userId. An empty userId means the caller is not signed in.
	GenerateResponse(ctx context.Context, userId string, req *dto.CompletionRequest) (*dto.CompletionResponse, error)
}

type completionService struct {
	provider        llm.LLMProvider
	logger          logger.ILogger
	maxPromptLength int

	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func NewCompletionService(
	provider llm.LLMProvider,
	log logger.ILogger,
	meter metric.Meter,
	maxPromptLength int,
) (ICompletionService, error) {
	requests, err := meter.Int64Counter(
		"completion_requests_total",
		metric.WithDescription("Completion requests by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("create completion counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		"completion_duration_seconds",
		metric.WithDescription("Time spent waiting for the LLM provider"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create completion histogram: %w", err)
	}

	return &completionService{
		provider:        provider,
		logger:          log,
		maxPromptLength: maxPromptLength,
		requests:        requests,
		duration:        duration,
	}, nil
}

func (s *completionService) GenerateResponse(ctx context.Context, userId string, req *dto.CompletionRequest) (res *dto.CompletionResponse, err error) {
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = string(apperror.KindOf(err))
		}
		s.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}()

	if userId == "" {
		return nil, apperror.NewUnauthenticatedError(msgLoginRequired)
	}

	prompt, temperature, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	opts := []llm.Option{
		llm.WithTemperature(temperature),
		llm.WithMaxTokens(completionMaxTokens),
	}
	if req.Model != "" {
		opts = append(opts, llm.WithModel(req.Model))
	}

	start := time.Now()
	text, err := s.provider.Chat(ctx, BuildCompletionMessages(prompt, req.Context), opts...)
	s.duration.Record(ctx, time.Since(start).Seconds())

	if err != nil {
		correlationId := uuid.NewString()
		s.logger.Error("CompletionService", "LLM provider call failed", map[string]interface{}{
			"correlation_id": correlationId,
			"user_id":        userId,
			"model":          req.Model,
			"error":          err,
		})
		return nil, apperror.NewInternalError(msgGenerationError, err).WithCorrelationId(correlationId)
	}

	return &dto.CompletionResponse{Text: text}, nil
}

func (s *completionService) validate(req *dto.CompletionRequest) (string, float64, error) {
	if req == nil || req.Prompt == nil || *req.Prompt == "" {
		return "", 0, apperror.NewInvalidArgumentError(msgInvalidPrompt)
	}

	prompt := *req.Prompt
	if s.maxPromptLength > 0 && utf8.RuneCountInString(prompt) > s.maxPromptLength {
		return "", 0, apperror.NewInvalidArgumentError(
			fmt.Sprintf("The prompt must be at most %d characters", s.maxPromptLength),
		)
	}

	temperature := llm.DefaultTemperature
	if req.Temperature != nil {
		t := *req.Temperature
		if math.IsNaN(t) || t < minTemperature || t > maxTemperature {
			return "", 0, apperror.NewInvalidArgumentError(
				fmt.Sprintf("The temperature must be between %g and %g", minTemperature, maxTemperature),
			)
		}
		temperature = t
	}

	return prompt, temperature, nil
}

// BuildCompletionMessages returns the system instruction followed by the user
// turn. A non-empty context is appended to the prompt.
func BuildCompletionMessages(prompt, context string) []llm.Message {
	user := prompt
	if context != "" {
		user = prompt + "\n\nContext: " + context
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: completionSystemPrompt},
		{Role: llm.RoleUser, Content: user},
	}
}
