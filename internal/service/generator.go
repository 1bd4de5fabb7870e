package service

import (
	"context"
	"fmt"

	"contentkit/pkg/ai"
)

const draftMaxTokens = 2000

type generatorService struct {
	text  *ai.TextClient
	image *ai.ImageClient
}

// NewGeneratorService wires the generative API clients.
func NewGeneratorService(text *ai.TextClient, image *ai.ImageClient) GeneratorService {
	return &generatorService{text: text, image: image}
}

func (s *generatorService) DraftPost(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf(
		"Write a blog post in markdown about %q. Use a friendly, practical tone with clear section headings.",
		topic)
	return s.text.Generate(ctx, prompt, draftMaxTokens)
}

func (s *generatorService) CoverImage(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf("A clean, modern illustration for a blog post about %s", topic)
	return s.image.Generate(ctx, prompt, "1024x576")
}
