package services

import (
	"context"

	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
	"github.com/Tomas-vilte/RepoPulse/internal/domain/ports"
	"github.com/Tomas-vilte/RepoPulse/internal/logger"
)

// Umbrales fijos de los tiers. Complejidad mira líneas tocadas; impacto mira
// cantidad de archivos y commits en conjunto.
const (
	complexityMediumThreshold = 50
	complexityHighThreshold   = 200
	impactLowThreshold        = 3
	impactMediumThreshold     = 10
)

// Enricher agrega detalle de GitHub y análisis de IA a las PRs elegidas.
type Enricher struct {
	vcs ports.VCSClient
	ai  ports.AIProvider
}

func NewEnricher(vcs ports.VCSClient, ai ports.AIProvider) *Enricher {
	return &Enricher{
		vcs: vcs,
		ai:  ai,
	}
}

// Enrich procesa los items secuencialmente. Los que no son pull_request se
// saltean en silencio; un item que falla se loguea y no frena a los demás.
// Nunca se devuelve error por un item malo: el resultado es siempre parcial
// en el peor caso, vacío.
func (e *Enricher) Enrich(ctx context.Context, items []models.SelectedItem) []models.EnrichedPR {
	enriched := make([]models.EnrichedPR, 0, len(items))

	for _, item := range items {
		if item.Type != string(models.TypePullRequest) {
			logger.Debug(ctx, "skipping non pull request item", "type", item.Type, "number", item.Number)
			continue
		}

		detail, err := e.vcs.GetPullRequestDetail(ctx, item.Number)
		if err != nil {
			logger.Error(ctx, "error enriching item, skipping", err, "number", item.Number)
			continue
		}

		enriched = append(enriched, models.EnrichedPR{
			Number:       detail.Number,
			Title:        detail.Title,
			Body:         detail.Body,
			State:        detail.State,
			Merged:       detail.Merged,
			FilesChanged: detail.Files,
			Commits:      detail.Commits,
			Analysis:     e.analyze(ctx, detail),
		})
		logger.Debug(ctx, "pull request enriched", "number", detail.Number)
	}

	return enriched
}

// analyze pide el resumen a la IA y calcula los tiers. Si la IA falla, el
// análisis degrada a placeholders en vez de tirar abajo el item.
func (e *Enricher) analyze(ctx context.Context, detail models.PullRequestDetail) models.PRAnalysis {
	summary, err := e.ai.SummarizePullRequest(ctx, detail)
	if err != nil {
		logger.Error(ctx, "AI analysis failed", err, "number", detail.Number)
		return models.PRAnalysis{
			Summary:    "AI analysis failed",
			Complexity: models.TierUnknown,
			Impact:     models.TierUnknown,
		}
	}

	return models.PRAnalysis{
		Summary:    summary,
		Complexity: AssessComplexity(detail.Files),
		Impact:     AssessImpact(detail.Files, detail.Commits),
	}
}

// AssessComplexity bucketea el total de líneas agregadas más eliminadas.
// Función pura: <50 Low, <200 Medium, el resto High.
func AssessComplexity(files []models.FileChange) models.Tier {
	totalChanges := 0
	for _, file := range files {
		totalChanges += file.Additions + file.Deletions
	}

	switch {
	case totalChanges < complexityMediumThreshold:
		return models.TierLow
	case totalChanges < complexityHighThreshold:
		return models.TierMedium
	default:
		return models.TierHigh
	}
}

// AssessImpact bucketea por cantidad de archivos y commits: ambos por debajo
// del umbral chico es Low, ambos por debajo del grande es Medium, si no High.
func AssessImpact(files []models.FileChange, commits []models.CommitSummary) models.Tier {
	switch {
	case len(files) < impactLowThreshold && len(commits) < impactLowThreshold:
		return models.TierLow
	case len(files) < impactMediumThreshold && len(commits) < impactMediumThreshold:
		return models.TierMedium
	default:
		return models.TierHigh
	}
}
