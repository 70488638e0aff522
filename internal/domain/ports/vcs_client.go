package ports

import (
	"context"

	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
)

// VCSClient define los métodos para consultar la actividad reciente de un
// repositorio en el proveedor de control de versiones. Un cliente queda
// ligado a un único repositorio y credencial en su construcción.
type VCSClient interface {
	// ListRecentPullRequests retorna hasta 30 PRs creadas dentro de la ventana
	// de daysBack días, en el orden en que las reporta el proveedor.
	ListRecentPullRequests(ctx context.Context, daysBack int) ([]models.PullRequest, error)
	// ListRecentIssues retorna hasta 30 issues dentro de la ventana,
	// excluyendo las PRs que el proveedor mezcla en el mismo endpoint.
	ListRecentIssues(ctx context.Context, daysBack int) ([]models.Issue, error)
	// ListRecentCommits retorna hasta 30 commits dentro de la ventana.
	ListRecentCommits(ctx context.Context, daysBack int) ([]models.Commit, error)
	// GetPullRequestDetail obtiene una PR con sus archivos modificados y commits.
	GetPullRequestDetail(ctx context.Context, number int) (models.PullRequestDetail, error)
}
