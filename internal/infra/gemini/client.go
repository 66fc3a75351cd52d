// Package gemini implements domain.Completer on top of the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/issue-drafter/internal/domain"
	"google.golang.org/genai"
)

// Ensure Client implements domain.Completer.
var _ domain.Completer = (*Client)(nil)

// temperature keeps drafts close to the request rather than creative.
const temperature = 0.2

// contentGenerator is the part of *genai.Models used by Client.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config configures a Client.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration // 0 disables the per-call timeout
}

// Client sends prompts to a Gemini model.
type Client struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

// New creates a Client for the Gemini API.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create GenAI client: %w", err)
	}
	return newWithGenerator(client.Models, cfg), nil
}

func newWithGenerator(models contentGenerator, cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = domain.DefaultModel
	}
	return &Client{
		models:  models,
		model:   model,
		timeout: cfg.Timeout,
	}
}

// Complete sends prompt as a single user turn and returns the reply text.
// Every failure is reported as a *domain.UpstreamError.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](temperature),
	})
	if err != nil {
		return "", &domain.UpstreamError{Err: fmt.Errorf("generate content with %s: %w", c.model, err)}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &domain.UpstreamError{Err: emptyResponseError(resp)}
	}
	return text, nil
}

// emptyResponseError explains why a response carried no text.
func emptyResponseError(resp *genai.GenerateContentResponse) error {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != "" {
		return fmt.Errorf("empty response (finish reason %s)", resp.Candidates[0].FinishReason)
	}
	return errors.New("empty response")
}
