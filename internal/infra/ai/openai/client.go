package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/Pan-Binghong/family-constellation/internal/config"
	"github.com/Pan-Binghong/family-constellation/internal/domain/analysis"
)

type Client struct {
	*openai.Client
	TextModel         string
	VisionModel       string
	BasicMaxTokens    int
	ExtendedMaxTokens int
}

func NewClient(cfg *config.Config) *Client {
	oc := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.OpenAI.BaseURL, "/")
	}
	return &Client{
		Client:            openai.NewClientWithConfig(oc),
		TextModel:         cfg.OpenAI.TextModel,
		VisionModel:       cfg.OpenAI.VisionModel,
		BasicMaxTokens:    cfg.OpenAI.BasicMaxTokens,
		ExtendedMaxTokens: cfg.OpenAI.ExtendedMaxTokens,
	}
}

// Complete sends prompt as a single user message and returns the first choice.
func (c *Client) Complete(ctx context.Context, tier analysis.Tier, prompt string) (string, error) {
	model, maxTokens := c.TextModel, c.BasicMaxTokens
	if tier == analysis.TierExtended {
		model, maxTokens = c.VisionModel, c.ExtendedMaxTokens
	}

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if isReasoningModel(model) {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: %v", analysis.ErrQuotaExceeded, err)
		}
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", analysis.ErrEmptyCompletion
	}

	return StripThinking(resp.Choices[0].Message.Content), nil
}

func isReasoningModel(model string) bool {
	for _, p := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, p) {
			return true
		}
	}
	return false
}

var (
	thinkBlock = regexp.MustCompile(`(?is)<think>.*?</think>`)
	blankRuns  = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// StripThinking removes <think>...</think> reasoning blocks some models emit
// ahead of the answer. The raw text is returned if nothing else remains.
func StripThinking(text string) string {
	out := thinkBlock.ReplaceAllString(text, "")
	out = blankRuns.ReplaceAllString(out, "\n\n")
	out = strings.TrimSpace(out)
	if out == "" {
		return text
	}
	return out
}
