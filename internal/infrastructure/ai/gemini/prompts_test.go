package gemini

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildAnalysisPrompt(t *testing.T) {
	t.Run("should include title, counts and summaries", func(t *testing.T) {
		prompt := buildAnalysisPrompt(models.PullRequestDetail{
			Number: 42,
			Title:  "Add retries",
			Body:   "retries for the fetcher",
			Files: []models.FileChange{
				{Filename: "fetcher.go", Additions: 10, Deletions: 2, Status: "modified"},
			},
			Commits: []models.CommitSummary{
				{SHA: "abc", Message: "add retries"},
			},
		})

		assert.Contains(t, prompt, "Pull Request Title: Add retries")
		assert.Contains(t, prompt, "Description: retries for the fetcher")
		assert.Contains(t, prompt, "Files Changed: 1")
		assert.Contains(t, prompt, "Total Commits: 1")
		assert.Contains(t, prompt, "- fetcher.go: +10, -2, modified")
		assert.Contains(t, prompt, "- add retries")
	})

	t.Run("should replace empty body with placeholder", func(t *testing.T) {
		prompt := buildAnalysisPrompt(models.PullRequestDetail{Title: "Silent PR"})

		assert.Contains(t, prompt, "Description: No description provided")
	})
}

func TestFormatFileChanges(t *testing.T) {
	t.Run("should show only the first five files", func(t *testing.T) {
		files := make([]models.FileChange, 8)
		for i := range files {
			files[i] = models.FileChange{Filename: fmt.Sprintf("file%d.go", i), Status: "modified"}
		}

		formatted := formatFileChanges(files)

		assert.Equal(t, 5, strings.Count(formatted, "\n")+1)
		assert.Contains(t, formatted, "file4.go")
		assert.NotContains(t, formatted, "file5.go")
	})
}

func TestFormatCommitMessages(t *testing.T) {
	t.Run("should show only the first five commits", func(t *testing.T) {
		commits := make([]models.CommitSummary, 7)
		for i := range commits {
			commits[i] = models.CommitSummary{Message: fmt.Sprintf("commit %d", i)}
		}

		formatted := formatCommitMessages(commits)

		assert.Contains(t, formatted, "commit 4")
		assert.NotContains(t, formatted, "commit 5")
	})
}

func TestBuildContentPrompt(t *testing.T) {
	content := models.ProcessedContent{
		PullRequests: []models.ContentPullRequest{
			{Number: 12, Title: "Dark mode", Body: "new theme", Commits: []models.ContentCommit{
				{Message: "add toggle", Explanation: "settings entry"},
			}},
		},
	}

	t.Run("should pick the template for each content type", func(t *testing.T) {
		assert.Contains(t, buildContentPrompt(content, "blog_post"), "technical blog post")
		assert.Contains(t, buildContentPrompt(content, "release_notes"), "release notes")
		assert.Contains(t, buildContentPrompt(content, "tweet"), "tweet thread")
		assert.Contains(t, buildContentPrompt(content, "feature_page"), "feature page")
	})

	t.Run("should fall back to blog post for unknown types", func(t *testing.T) {
		prompt := buildContentPrompt(content, "newsletter")

		assert.Contains(t, prompt, "technical blog post")
	})

	t.Run("should embed one block per pull request", func(t *testing.T) {
		prompt := buildContentPrompt(content, "blog_post")

		assert.Contains(t, prompt, "PR #12: Dark mode")
		assert.Contains(t, prompt, "- add toggle: settings entry")
	})
}
