package llm

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Generator is the surface the rest of the app depends on, so services can
// swap in a stub under test.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Client wraps the Gemini API behind a single text-in/text-out call.
type Client struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

var _ Generator = (*Client)(nil)

func NewClient(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating gemini client")
	}

	return &Client{client: client, model: model, logger: logger}, nil
}

// GenerateText performs one completion call and returns the raw text.
// Upstream failures propagate to the caller, they are never swallowed here.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, span := otel.Tracer("safarnama/llm").Start(ctx, "GenerateText", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", c.model),
	))
	defer span.End()

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate content failed")
		return "", errors.Wrap(err, "genai generate content")
	}

	text := result.Text()
	if text == "" {
		err := fmt.Errorf("empty completion from model %s", c.model)
		span.RecordError(err)
		span.SetStatus(codes.Error, "empty completion")
		return "", err
	}

	c.logger.Debug("llm completion",
		zap.Int("prompt_len", len(prompt)),
		zap.Int("response_len", len(text)))

	span.SetAttributes(attribute.Int("response.length", len(text)))
	span.SetStatus(codes.Ok, "content generated")
	return text, nil
}
