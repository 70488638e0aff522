package services

import (
	"context"
	"time"

	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
	"github.com/Tomas-vilte/RepoPulse/internal/domain/ports"
	"github.com/Tomas-vilte/RepoPulse/internal/logger"
	"github.com/Tomas-vilte/RepoPulse/internal/version"
)

// Synthesizer genera contenido derivado (blog post, release notes, tweet,
// feature page) a partir del contenido procesado.
type Synthesizer struct {
	ai  ports.AIProvider
	now func() time.Time
}

func NewSynthesizer(ai ports.AIProvider) *Synthesizer {
	return &Synthesizer{
		ai:  ai,
		now: time.Now,
	}
}

// Generate pide el texto al proveedor de IA y lo envuelve con su metadata.
// Cualquier falla upstream se propaga: acá no hay degradación ni retry.
func (s *Synthesizer) Generate(ctx context.Context, content models.ProcessedContent, contentType string) (models.GeneratedContent, error) {
	logger.Info(ctx, "generating content",
		"content_type", contentType,
		"pull_requests", len(content.PullRequests),
	)

	text, err := s.ai.GenerateContent(ctx, content, contentType)
	if err != nil {
		return models.GeneratedContent{}, err
	}

	return models.GeneratedContent{
		Content:     text,
		ContentType: contentType,
		Metadata: models.GenerationMetadata{
			Timestamp: s.now().UTC().Format(time.RFC3339),
			Version:   version.Version,
		},
	}, nil
}
