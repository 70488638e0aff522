package server

import (
	"errors"
	"net/http"
	"time"

	domainerrors "github.com/Tomas-vilte/RepoPulse/internal/domain/errors"
	"github.com/Tomas-vilte/RepoPulse/internal/logger"
	"github.com/Tomas-vilte/RepoPulse/internal/services"
	"github.com/gin-gonic/gin"
)

// handleFetchGitHubContent implementa POST /api/fetch-github-content:
// fan-out de PRs, issues y commits, agregación por categoría y envelope de
// metadata. Los errores de validación vuelven tal cual; el resto se loguea
// completo y se responde genérico.
func (s *Server) handleFetchGitHubContent(c *gin.Context) {
	ctx := c.Request.Context()

	var req fetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	daysBack := defaultDaysBack
	if req.DaysBack != nil {
		daysBack = *req.DaysBack
	}
	if daysBack < 1 || daysBack > 30 {
		respondError(c, http.StatusBadRequest, "days_back must be between 1 and 30")
		return
	}

	owner, repo, err := splitRepoName(req.RepoName)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	token := s.resolveToken(req.GitHubToken)
	if token == "" {
		respondError(c, http.StatusUnauthorized,
			"GitHub authentication failed: no GitHub token provided and no default token found in environment")
		return
	}

	ctx = logger.With(ctx, "repo", req.RepoName, "days_back", daysBack)
	logger.Info(ctx, "starting content fetch")

	activityService := services.NewActivityService(s.newVCS(owner, repo, token))

	data, err := activityService.Collect(ctx, daysBack)
	if err != nil {
		var notFound *domainerrors.RepoNotFoundError
		var authErr *domainerrors.AuthError
		switch {
		case errors.As(err, &notFound):
			respondError(c, http.StatusBadRequest, notFound.Error())
		case errors.As(err, &authErr):
			respondError(c, http.StatusUnauthorized, "GitHub authentication failed")
		default:
			logger.Error(ctx, "failed to fetch GitHub content", err)
			respondError(c, http.StatusInternalServerError, "Failed to fetch GitHub content")
		}
		return
	}

	processed := activityService.Process(data)

	response := gin.H{
		"metadata": gin.H{
			"repository":   req.RepoName,
			"collected_at": time.Now().UTC().Format(time.RFC3339),
			"days_back":    daysBack,
			"total_items": gin.H{
				"pulls":   len(data.Pulls),
				"issues":  len(data.Issues),
				"commits": len(data.Commits),
			},
		},
		"processed_content": processed,
	}
	if processed.TotalItems() == 0 {
		response["message"] = "No pull requests found in the specified time period"
	}

	c.JSON(http.StatusOK, response)
}

// handleEnrichContent implementa POST /api/enrich-content. Las fallas por
// item se saltean adentro del enricher; acá solo se corta si falta la
// configuración de Gemini o la credencial de GitHub.
func (s *Server) handleEnrichContent(c *gin.Context) {
	ctx := c.Request.Context()

	if s.ai == nil {
		respondError(c, http.StatusInternalServerError, "Gemini API key not configured")
		return
	}

	var req enrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	owner, repo, err := splitRepoName(req.RepoName)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	token := s.resolveToken(req.GitHubToken)
	if token == "" {
		respondError(c, http.StatusInternalServerError,
			"Failed to enrich content: no GitHub token provided and no default token found in environment")
		return
	}

	ctx = logger.With(ctx, "repo", req.RepoName)
	logger.Info(ctx, "starting content enrichment", "items", len(req.SelectedItems))

	enricher := services.NewEnricher(s.newVCS(owner, repo, token), s.ai)
	enriched := enricher.Enrich(ctx, req.SelectedItems)

	c.JSON(http.StatusOK, gin.H{
		"metadata": gin.H{
			"repository":  req.RepoName,
			"enriched_at": time.Now().UTC().Format(time.RFC3339),
			"total_items": len(enriched),
		},
		"pull_requests": enriched,
	})
}

// handleGenerateContent implementa POST /api/generate-content.
func (s *Server) handleGenerateContent(c *gin.Context) {
	ctx := c.Request.Context()

	if s.ai == nil {
		respondError(c, http.StatusInternalServerError, "Gemini API key not configured")
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	ctx = logger.With(ctx, "content_type", req.ContentType)

	synthesizer := services.NewSynthesizer(s.ai)
	result, err := synthesizer.Generate(ctx, req.ProcessedContent, req.ContentType)
	if err != nil {
		logger.Error(ctx, "failed to generate content", err)
		respondError(c, http.StatusInternalServerError, "Failed to generate content")
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondError emite el body de error uniforme {"detail": "..."}.
func respondError(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}
