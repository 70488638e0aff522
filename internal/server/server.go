package server

import (
	"strings"

	"github.com/Tomas-vilte/RepoPulse/internal/config"
	domainerrors "github.com/Tomas-vilte/RepoPulse/internal/domain/errors"
	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
	"github.com/Tomas-vilte/RepoPulse/internal/domain/ports"
)

// VCSFactory construye un cliente VCS ligado a un repo y una credencial.
// El gateway crea un cliente nuevo por request porque el token puede venir
// en el payload.
type VCSFactory func(owner, repo, token string) ports.VCSClient

// Server agrupa las dependencias de los handlers. No guarda estado entre
// requests.
type Server struct {
	cfg    *config.Config
	ai     ports.AIProvider // nil cuando no hay API key configurada
	newVCS VCSFactory
}

func New(cfg *config.Config, ai ports.AIProvider, newVCS VCSFactory) *Server {
	return &Server{
		cfg:    cfg,
		ai:     ai,
		newVCS: newVCS,
	}
}

type (
	fetchRequest struct {
		RepoName    string `json:"repo_name"`
		GitHubToken string `json:"github_token"`
		// puntero para distinguir "ausente" (usa el default) de un 0 explícito
		DaysBack *int `json:"days_back"`
	}

	enrichRequest struct {
		RepoName      string                `json:"repo_name"`
		GitHubToken   string                `json:"github_token"`
		SelectedItems []models.SelectedItem `json:"selected_items"`
	}

	generateRequest struct {
		ProcessedContent models.ProcessedContent `json:"processed_content"`
		ContentType      string                  `json:"content_type"`
	}
)

const defaultDaysBack = 7

// splitRepoName valida el formato "owner/repo" y lo separa.
func splitRepoName(repoName string) (owner, repo string, err error) {
	parts := strings.SplitN(repoName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", domainerrors.NewInvalidInputError("repo_name",
			"Repository name must be in the format 'owner/repo'")
	}
	return parts[0], parts[1], nil
}

// resolveToken prefiere el token del payload y cae al configurado.
func (s *Server) resolveToken(requestToken string) string {
	token := strings.TrimSpace(requestToken)
	if token != "" {
		return token
	}
	return s.cfg.GitHubToken
}
