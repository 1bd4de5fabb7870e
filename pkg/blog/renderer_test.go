package blog

import (
	"strings"
	"testing"
)

func TestGoldmarkRenderer_Render(t *testing.T) {
	renderer := NewGoldmarkRenderer()

	html, err := renderer.Render("# Heading\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(html, "<h1>Heading</h1>") {
		t.Errorf("Expected rendered heading, got: %q", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("Expected rendered bold text, got: %q", html)
	}
}

func TestGoldmarkRenderer_Tables(t *testing.T) {
	renderer := NewGoldmarkRenderer()

	html, err := renderer.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("Expected rendered table, got: %q", html)
	}
}

func TestExcerpt(t *testing.T) {
	body := "# Title\n\nFirst paragraph with the hook.\n\nSecond paragraph."
	if got := Excerpt(body, 280); got != "First paragraph with the hook." {
		t.Errorf("Expected first paragraph, got: %q", got)
	}

	long := strings.Repeat("word ", 100)
	got := Excerpt(long, 50)
	if len(got) > 55 {
		t.Errorf("Expected truncated excerpt, got %d chars", len(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Expected ellipsis suffix, got: %q", got)
	}

	if got := Excerpt("", 280); got != "" {
		t.Errorf("Expected empty excerpt, got: %q", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Networking at Conferences", "networking-at-conferences"},
		{"  QR Codes: Do They Work?  ", "qr-codes-do-they-work"},
		{"100% DIY!", "100-diy"},
	}
	for _, tc := range tests {
		if got := Slugify(tc.title); got != tc.expected {
			t.Errorf("Slugify(%q) = %q, expected %q", tc.title, got, tc.expected)
		}
	}
}
