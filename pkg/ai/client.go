// Package ai holds thin HTTP clients for the external generative APIs:
// one for text completion, one for image generation. Both are specified
// by their request/response contract only; prompt construction and result
// handling belong to the caller.
package ai

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

// Config configures one generative API client.
type Config struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

const defaultTimeout = 60 * time.Second

// apiError is the error envelope both APIs share.
type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

func newHTTPClient(timeout time.Duration) *fasthttp.Client {
	return &fasthttp.Client{
		ReadTimeout:         timeout,
		WriteTimeout:        timeout,
		MaxConnsPerHost:     10,
		MaxIdleConnDuration: 90 * time.Second,
	}
}

// postJSON sends an authenticated JSON POST and returns the raw response
// body. Non-2xx statuses are returned as errors carrying the status code
// so the retry helper can classify them.
func postJSON(client *fasthttp.Client, config Config, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(config.Endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Authorization", "Bearer "+config.APIKey)
	req.SetBody(body)

	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if err := client.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("api returned status %d: %s", status, resp.Body())
	}

	out := make([]byte, len(resp.Body()))
	copy(out, resp.Body())
	return out, nil
}
