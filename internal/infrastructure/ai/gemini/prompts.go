package gemini

import (
	"fmt"
	"strings"

	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
)

// maxPromptItems limita cuántos archivos y commits entran al prompt.
const maxPromptItems = 5

const analysisPromptTemplate = `You are a code review assistant. Analyze the pull request and provide insights.

Pull Request Title: %s
Description: %s

Files Changed: %d
Total Commits: %d

File Changes Summary:
%s

Commit Messages:
%s`

const (
	blogPostPromptTemplate = `You are a technical writer creating content from GitHub pull requests.

Write a technical blog post about the following changes:
%s

Focus on the key features, improvements, and their impact.
Format the post with proper headings, sections, and technical details.`

	releaseNotesPromptTemplate = `You are a technical writer creating content from GitHub pull requests.

Create release notes from these changes:
%s

Group the changes by type (features, fixes, improvements).
Keep it concise but informative.`

	tweetPromptTemplate = `You are a technical writer creating content from GitHub pull requests.

Write an engaging tweet thread (3-5 tweets) about these updates:
%s

Focus on the most important changes and their benefits.
Format with tweet numbers (1/X).
Keep each tweet within 280 characters.`

	featurePagePromptTemplate = `You are a technical writer creating content from GitHub pull requests.

Create a feature page describing these changes:
%s

Include:
- Feature overview
- Key benefits
- Technical details
- Example use cases`
)

func buildAnalysisPrompt(pr models.PullRequestDetail) string {
	body := pr.Body
	if body == "" {
		body = "No description provided"
	}
	return fmt.Sprintf(analysisPromptTemplate,
		pr.Title,
		body,
		len(pr.Files),
		len(pr.Commits),
		formatFileChanges(pr.Files),
		formatCommitMessages(pr.Commits),
	)
}

func formatFileChanges(files []models.FileChange) string {
	if len(files) > maxPromptItems {
		files = files[:maxPromptItems]
	}
	lines := make([]string, 0, len(files))
	for _, file := range files {
		lines = append(lines, fmt.Sprintf("- %s: +%d, -%d, %s", file.Filename, file.Additions, file.Deletions, file.Status))
	}
	return strings.Join(lines, "\n")
}

func formatCommitMessages(commits []models.CommitSummary) string {
	if len(commits) > maxPromptItems {
		commits = commits[:maxPromptItems]
	}
	lines := make([]string, 0, len(commits))
	for _, commit := range commits {
		lines = append(lines, fmt.Sprintf("- %s", commit.Message))
	}
	return strings.Join(lines, "\n")
}

// buildContentPrompt arma el prompt del tipo pedido. Un contentType
// desconocido cae al template de blog_post.
func buildContentPrompt(content models.ProcessedContent, contentType string) string {
	template := blogPostPromptTemplate
	switch models.ContentType(contentType) {
	case models.ContentTypeReleaseNotes:
		template = releaseNotesPromptTemplate
	case models.ContentTypeTweet:
		template = tweetPromptTemplate
	case models.ContentTypeFeaturePage:
		template = featurePagePromptTemplate
	}
	return fmt.Sprintf(template, buildPRSummaries(content))
}

// buildPRSummaries concatena un bloque de texto por PR: número, título,
// descripción y commits con su explicación.
func buildPRSummaries(content models.ProcessedContent) string {
	summaries := make([]string, 0, len(content.PullRequests))
	for _, pr := range content.PullRequests {
		commitLines := make([]string, 0, len(pr.Commits))
		for _, commit := range pr.Commits {
			commitLines = append(commitLines, fmt.Sprintf("- %s: %s", commit.Message, commit.Explanation))
		}
		summaries = append(summaries, fmt.Sprintf("PR #%d: %s\n%s\n\nCommits:\n%s",
			pr.Number, pr.Title, pr.Body, strings.Join(commitLines, "\n")))
	}
	return strings.Join(summaries, "\n\n")
}
