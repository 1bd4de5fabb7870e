package ai

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestParseTextResponse_Success(t *testing.T) {
	body := `{"text": "## Five Networking Tips\n\nStart with..."}`

	text, err := parseTextResponse([]byte(body))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if text == "" {
		t.Error("Expected generated text")
	}
}

func TestParseTextResponse_APIError(t *testing.T) {
	body := `{"error": {"message": "model overloaded", "type": "server_error"}}`

	if _, err := parseTextResponse([]byte(body)); err == nil {
		t.Error("Expected error for error envelope")
	}
}

func TestParseTextResponse_EmptyBody(t *testing.T) {
	if _, err := parseTextResponse(nil); err == nil {
		t.Error("Expected error for empty body")
	}
}

func TestParseTextResponse_NoContent(t *testing.T) {
	if _, err := parseTextResponse([]byte(`{}`)); err == nil {
		t.Error("Expected error for missing text")
	}
}

func TestParseImageResponse(t *testing.T) {
	url, err := parseImageResponse([]byte(`{"url": "https://images.example.com/gen/1.png"}`))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if url != "https://images.example.com/gen/1.png" {
		t.Errorf("Expected image url, got: %s", url)
	}

	if _, err := parseImageResponse([]byte(`{"error": {"message": "bad prompt"}}`)); err == nil {
		t.Error("Expected error for error envelope")
	}
	if _, err := parseImageResponse([]byte(`{}`)); err == nil {
		t.Error("Expected error for missing url")
	}
}

func TestNewClients_RequireConfig(t *testing.T) {
	if _, err := NewTextClient(Config{Endpoint: "https://api.example.com"}); err == nil {
		t.Error("Expected error for missing api key")
	}
	if _, err := NewTextClient(Config{APIKey: "k"}); err == nil {
		t.Error("Expected error for missing endpoint")
	}
	if _, err := NewImageClient(Config{Endpoint: "https://api.example.com"}); err == nil {
		t.Error("Expected error for missing api key")
	}
}

func TestRetry_StopsOnNonRetryable(t *testing.T) {
	retry := NewRetry(3, time.Millisecond)

	calls := 0
	err := retry.Execute(context.Background(), func() error {
		calls++
		return errors.New("api returned status 401: unauthorized")
	})
	if err == nil {
		t.Fatal("Expected error")
	}
	if calls != 1 {
		t.Errorf("Expected 1 call for non-retryable error, got: %d", calls)
	}
}

func TestRetry_RetriesServerErrors(t *testing.T) {
	retry := NewRetry(2, time.Millisecond)

	calls := 0
	err := retry.Execute(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("api returned status 503: overloaded")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Expected eventual success, got: %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got: %d", calls)
	}
}

func TestRetry_RespectsContext(t *testing.T) {
	retry := NewRetry(5, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := retry.Execute(ctx, func() error {
		return errors.New("api returned status 500: boom")
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got: %v", err)
	}
}
