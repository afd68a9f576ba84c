package analyzer

import (
	"context"

	"github.com/danuarta/certificate-analyzer-api/internal/utils"
)

// Analyzer sends a prompt, with optional inline image data, to a generative
// model and returns the raw text response.
type Analyzer interface {
	Analyze(ctx context.Context, model, prompt string, image *InlineImage) (string, error)
}

type geminiAnalyzer struct {
	client        *Client
	fallbackModel string
	logger        *utils.Logger
}

// NewGeminiAnalyzer wraps a Client with a single-retry fallback: when the
// requested model is deprecated or unknown, the identical payload is sent
// once to fallbackModel. Every other failure, including a failure of the
// fallback call itself, propagates unchanged.
func NewGeminiAnalyzer(client *Client, fallbackModel string, logger *utils.Logger) Analyzer {
	return &geminiAnalyzer{
		client:        client,
		fallbackModel: fallbackModel,
		logger:        logger,
	}
}

func (a *geminiAnalyzer) Analyze(ctx context.Context, model, prompt string, image *InlineImage) (string, error) {
	text, err := a.client.GenerateContent(ctx, model, prompt, image)
	if err == nil {
		return text, nil
	}

	if model == a.fallbackModel || !shouldFallback(err) {
		return "", err
	}

	a.logger.Warn("model unavailable, retrying with fallback",
		"model", model,
		"fallback", a.fallbackModel,
		"error", err)

	return a.client.GenerateContent(ctx, a.fallbackModel, prompt, image)
}
