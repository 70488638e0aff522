package github

import (
	"context"
	"net/http"
	"time"

	domainerrors "github.com/Tomas-vilte/RepoPulse/internal/domain/errors"
	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
	"github.com/Tomas-vilte/RepoPulse/internal/domain/ports"
	"github.com/Tomas-vilte/RepoPulse/internal/logger"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

// maxItems es el tope de items por tipo de recurso en una consulta windowed.
const maxItems = 30

type PullRequestsService interface {
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error)
}

type IssuesService interface {
	ListByRepo(ctx context.Context, owner, repo string, opts *github.IssueListByRepoOptions) ([]*github.Issue, *github.Response, error)
}

type RepositoriesService interface {
	ListCommits(ctx context.Context, owner, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error)
}

type GitHubClient struct {
	prService     PullRequestsService
	issuesService IssuesService
	repoService   RepositoriesService
	owner         string
	repo          string
	timeout       time.Duration
	now           func() time.Time
}

func NewGitHubClient(owner, repo, token string, timeout time.Duration) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		prService:     client.PullRequests,
		issuesService: client.Issues,
		repoService:   client.Repositories,
		owner:         owner,
		repo:          repo,
		timeout:       timeout,
		now:           time.Now,
	}
}

func NewGitHubClientWithServices(
	prService PullRequestsService,
	issuesService IssuesService,
	repoService RepositoriesService,
	owner string,
	repo string,
	timeout time.Duration,
	now func() time.Time,
) *GitHubClient {
	if now == nil {
		now = time.Now
	}
	return &GitHubClient{
		prService:     prService,
		issuesService: issuesService,
		repoService:   repoService,
		owner:         owner,
		repo:          repo,
		timeout:       timeout,
		now:           now,
	}
}

// since calcula el límite inferior (inclusivo) de la ventana en UTC.
func (ghc *GitHubClient) since(daysBack int) time.Time {
	return ghc.now().UTC().AddDate(0, 0, -daysBack)
}

func (ghc *GitHubClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, ghc.timeout)
}

// inWindow normaliza a UTC antes de comparar; un timestamp sin zona se
// interpreta como UTC. El borde de la ventana es inclusivo.
func inWindow(created time.Time, since time.Time) bool {
	return !created.UTC().Before(since)
}

// ListRecentPullRequests pide una página ordenada por update descendente y
// corta al llegar al tope o al primer item más viejo que la ventana. Eso
// hace del resultado una aproximación: items viejos por creación pero
// actualizados recientemente pueden cortar el recorrido antes de tiempo.
// Se mantiene así a propósito porque el resto del pipeline asume ese shape.
func (ghc *GitHubClient) ListRecentPullRequests(ctx context.Context, daysBack int) ([]models.PullRequest, error) {
	ctx, cancel := ghc.withTimeout(ctx)
	defer cancel()

	opts := &github.PullRequestListOptions{
		State:     "all",
		Sort:      "updated",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: maxItems,
		},
	}

	pulls, resp, err := ghc.prService.List(ctx, ghc.owner, ghc.repo, opts)
	if err != nil {
		return nil, ghc.mapError(resp, "list pull requests", err)
	}

	since := ghc.since(daysBack)
	result := make([]models.PullRequest, 0, len(pulls))
	for _, pull := range pulls {
		if !inWindow(pull.GetCreatedAt().Time, since) {
			break
		}
		result = append(result, normalizePullRequest(pull))
		if len(result) >= maxItems {
			break
		}
	}

	logger.Debug(ctx, "pull requests fetched", "repo", ghc.repo, "count", len(result))
	return result, nil
}

// ListRecentIssues filtra del lado del cliente porque el parámetro since del
// endpoint filtra por update, no por creación. También descarta las PRs que
// GitHub devuelve mezcladas en el endpoint de issues.
func (ghc *GitHubClient) ListRecentIssues(ctx context.Context, daysBack int) ([]models.Issue, error) {
	ctx, cancel := ghc.withTimeout(ctx)
	defer cancel()

	since := ghc.since(daysBack)
	opts := &github.IssueListByRepoOptions{
		State: "all",
		Since: since,
		ListOptions: github.ListOptions{
			PerPage: maxItems,
		},
	}

	issues, resp, err := ghc.issuesService.ListByRepo(ctx, ghc.owner, ghc.repo, opts)
	if err != nil {
		return nil, ghc.mapError(resp, "list issues", err)
	}

	result := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.IsPullRequest() {
			continue
		}
		if !inWindow(issue.GetCreatedAt().Time, since) {
			continue
		}
		result = append(result, normalizeIssue(issue))
		if len(result) >= maxItems {
			break
		}
	}

	logger.Debug(ctx, "issues fetched", "repo", ghc.repo, "count", len(result))
	return result, nil
}

// ListRecentCommits usa el parámetro since del endpoint (los commits sí se
// filtran por fecha del lado del servidor) y corta en el tope.
func (ghc *GitHubClient) ListRecentCommits(ctx context.Context, daysBack int) ([]models.Commit, error) {
	ctx, cancel := ghc.withTimeout(ctx)
	defer cancel()

	since := ghc.since(daysBack)
	opts := &github.CommitsListOptions{
		Since: since,
		ListOptions: github.ListOptions{
			PerPage: maxItems,
		},
	}

	commits, resp, err := ghc.repoService.ListCommits(ctx, ghc.owner, ghc.repo, opts)
	if err != nil {
		return nil, ghc.mapError(resp, "list commits", err)
	}

	result := make([]models.Commit, 0, len(commits))
	for _, commit := range commits {
		if !inWindow(commit.GetCommit().GetAuthor().GetDate().Time, since) {
			break
		}
		result = append(result, normalizeCommit(commit))
		if len(result) >= maxItems {
			break
		}
	}

	logger.Debug(ctx, "commits fetched", "repo", ghc.repo, "count", len(result))
	return result, nil
}

// GetPullRequestDetail junta la PR con sus archivos modificados y commits.
func (ghc *GitHubClient) GetPullRequestDetail(ctx context.Context, number int) (models.PullRequestDetail, error) {
	ctx, cancel := ghc.withTimeout(ctx)
	defer cancel()

	pull, resp, err := ghc.prService.Get(ctx, ghc.owner, ghc.repo, number)
	if err != nil {
		return models.PullRequestDetail{}, ghc.mapError(resp, "get pull request", err)
	}

	files, resp, err := ghc.prService.ListFiles(ctx, ghc.owner, ghc.repo, number, &github.ListOptions{})
	if err != nil {
		return models.PullRequestDetail{}, ghc.mapError(resp, "list pull request files", err)
	}

	commits, resp, err := ghc.prService.ListCommits(ctx, ghc.owner, ghc.repo, number, &github.ListOptions{})
	if err != nil {
		return models.PullRequestDetail{}, ghc.mapError(resp, "list pull request commits", err)
	}

	detail := models.PullRequestDetail{
		Number:  number,
		Title:   pull.GetTitle(),
		Body:    pull.GetBody(),
		State:   pull.GetState(),
		Merged:  pull.GetMerged(),
		Files:   make([]models.FileChange, 0, len(files)),
		Commits: make([]models.CommitSummary, 0, len(commits)),
	}

	for _, file := range files {
		detail.Files = append(detail.Files, models.FileChange{
			Filename:  file.GetFilename(),
			Additions: file.GetAdditions(),
			Deletions: file.GetDeletions(),
			Status:    file.GetStatus(),
		})
	}

	for _, commit := range commits {
		author := commit.GetCommit().GetAuthor().GetName()
		if author == "" {
			author = "Unknown"
		}
		detail.Commits = append(detail.Commits, models.CommitSummary{
			SHA:     commit.GetSHA(),
			Message: commit.GetCommit().GetMessage(),
			Author:  author,
		})
	}

	return detail, nil
}

func (ghc *GitHubClient) mapError(resp *github.Response, op string, err error) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return domainerrors.NewRepoNotFoundError(ghc.owner + "/" + ghc.repo)
		case http.StatusUnauthorized, http.StatusForbidden:
			return domainerrors.NewAuthError("GitHub", err)
		}
	}
	return domainerrors.NewUpstreamError("GitHub", op, err)
}

func normalizePullRequest(pull *github.PullRequest) models.PullRequest {
	pr := models.PullRequest{
		Number:    pull.GetNumber(),
		Title:     pull.GetTitle(),
		Body:      pull.GetBody(),
		State:     pull.GetState(),
		Merged:    pull.GetMerged(),
		CreatedAt: pull.GetCreatedAt().Time.UTC(),
		UpdatedAt: pull.GetUpdatedAt().Time.UTC(),
		URL:       pull.GetHTMLURL(),
		Author:    pull.GetUser().GetLogin(),
		Labels:    labelNames(pull.Labels),
	}
	if pull.MergedAt != nil {
		mergedAt := pull.GetMergedAt().Time.UTC()
		pr.MergedAt = &mergedAt
		pr.Merged = true
	}
	return pr
}

func normalizeIssue(issue *github.Issue) models.Issue {
	normalized := models.Issue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		State:     issue.GetState(),
		CreatedAt: issue.GetCreatedAt().Time.UTC(),
		UpdatedAt: issue.GetUpdatedAt().Time.UTC(),
		URL:       issue.GetHTMLURL(),
		Author:    issue.GetUser().GetLogin(),
		Labels:    labelNames(issue.Labels),
	}
	if issue.ClosedAt != nil {
		closedAt := issue.GetClosedAt().Time.UTC()
		normalized.ClosedAt = &closedAt
	}
	return normalized
}

func normalizeCommit(commit *github.RepositoryCommit) models.Commit {
	author := commit.GetCommit().GetAuthor().GetName()
	if author == "" {
		author = "Unknown"
	}
	return models.Commit{
		SHA:     commit.GetSHA(),
		Message: commit.GetCommit().GetMessage(),
		Date:    commit.GetCommit().GetAuthor().GetDate().Time.UTC(),
		Author:  author,
		URL:     commit.GetHTMLURL(),
	}
}

func labelNames(labels []*github.Label) []string {
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.GetName())
	}
	return names
}
