package ports

import (
	"context"

	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
)

// AIProvider define la interfaz del servicio de generación de texto.
type AIProvider interface {
	// SummarizePullRequest pide un resumen en lenguaje natural del detalle
	// de una PR (título, descripción, archivos y commits).
	SummarizePullRequest(ctx context.Context, pr models.PullRequestDetail) (string, error)

	// GenerateContent genera prosa del tipo pedido (blog_post, release_notes,
	// tweet, feature_page) a partir del contenido procesado. Un tipo no
	// reconocido cae al template de blog_post.
	GenerateContent(ctx context.Context, content models.ProcessedContent, contentType string) (string, error)

	// GetModelName retorna el nombre del modelo actual (ej: "gemini-1.5-flash")
	GetModelName() string
}
