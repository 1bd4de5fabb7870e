package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"contentkit/pkg/logger"
)

// ImageClient calls the image generation API, used for post cover images
// and feature illustrations.
type ImageClient struct {
	config Config
	client *fasthttp.Client
	retry  *Retry
	log    *logger.Logger
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Size   string `json:"size,omitempty"`
}

type imageResponse struct {
	URL   string    `json:"url"`
	Error *apiError `json:"error,omitempty"`
}

// NewImageClient creates an image generation client.
func NewImageClient(config Config) (*ImageClient, error) {
	if config.Endpoint == "" {
		return nil, fmt.Errorf("image api endpoint is required")
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("image api key is required")
	}

	return &ImageClient{
		config: config,
		client: newHTTPClient(config.Timeout),
		retry:  NewRetry(2, time.Second),
		log:    logger.GetLogger().WithComponent("image_client"),
	}, nil
}

// Generate returns the URL of a generated image for a prompt.
func (c *ImageClient) Generate(ctx context.Context, prompt, size string) (string, error) {
	request := imageRequest{
		Model:  c.config.Model,
		Prompt: prompt,
		Size:   size,
	}

	var body []byte
	err := c.retry.Execute(ctx, func() error {
		var reqErr error
		body, reqErr = postJSON(c.client, c.config, request)
		return reqErr
	})
	if err != nil {
		c.log.WithError(err).Error("Image generation failed")
		return "", err
	}

	return parseImageResponse(body)
}

func parseImageResponse(body []byte) (string, error) {
	if len(body) == 0 {
		return "", fmt.Errorf("empty response from image api")
	}

	var response imageResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to decode image response: %w", err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("image api error: %s", response.Error.Message)
	}
	if response.URL == "" {
		return "", fmt.Errorf("image api returned no url")
	}
	return response.URL, nil
}
