package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"contentkit/pkg/logger"
)

// TextClient calls the text completion API, typically to draft blog post
// bodies in markdown.
type TextClient struct {
	config Config
	client *fasthttp.Client
	retry  *Retry
	log    *logger.Logger
}

type textRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens,omitempty"`
}

type textResponse struct {
	Text  string    `json:"text"`
	Error *apiError `json:"error,omitempty"`
}

// NewTextClient creates a text generation client.
func NewTextClient(config Config) (*TextClient, error) {
	if config.Endpoint == "" {
		return nil, fmt.Errorf("text api endpoint is required")
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("text api key is required")
	}

	return &TextClient{
		config: config,
		client: newHTTPClient(config.Timeout),
		retry:  NewRetry(2, time.Second),
		log:    logger.GetLogger().WithComponent("text_client"),
	}, nil
}

// Generate returns the generated text for a prompt.
func (c *TextClient) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	request := textRequest{
		Model:     c.config.Model,
		Prompt:    prompt,
		MaxTokens: maxTokens,
	}

	var body []byte
	err := c.retry.Execute(ctx, func() error {
		var reqErr error
		body, reqErr = postJSON(c.client, c.config, request)
		return reqErr
	})
	if err != nil {
		c.log.WithError(err).Error("Text generation failed")
		return "", err
	}

	return parseTextResponse(body)
}

func parseTextResponse(body []byte) (string, error) {
	if len(body) == 0 {
		return "", fmt.Errorf("empty response from text api")
	}

	var response textResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to decode text response: %w", err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("text api error: %s", response.Error.Message)
	}
	if response.Text == "" {
		return "", fmt.Errorf("text api returned no content")
	}
	return response.Text, nil
}
