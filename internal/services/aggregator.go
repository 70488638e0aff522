package services

import (
	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
)

// Aggregator normaliza la actividad cruda y la agrupa por categoría.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate procesa las tres listas en orden fijo (pulls, issues, commits)
// preservando el orden interno de cada una. Ningún item se descarta: todo
// cae en alguna categoría, con other como default.
func (a *Aggregator) Aggregate(data models.ActivityData) models.AggregatedContent {
	content := models.NewAggregatedContent()

	for _, pull := range data.Pulls {
		item := newPullRequestItem(pull)
		category := Categorize(pull.Title, pull.Body, pull.Labels)
		content[category] = append(content[category], item)
	}

	for _, issue := range data.Issues {
		item := newIssueItem(issue)
		category := Categorize(issue.Title, issue.Body, issue.Labels)
		content[category] = append(content[category], item)
	}

	for _, commit := range data.Commits {
		item := newCommitItem(commit)
		category := Categorize("", commit.Message, nil)
		content[category] = append(content[category], item)
	}

	return content
}

func newPullRequestItem(pull models.PullRequest) models.ActivityItem {
	return models.ActivityItem{
		Type:      models.TypePullRequest,
		Number:    pull.Number,
		Title:     pull.Title,
		Body:      pull.Body,
		State:     pull.State,
		CreatedAt: pull.CreatedAt,
		URL:       pull.URL,
		Author:    pull.Author,
		Labels:    emptyIfNil(pull.Labels),
	}
}

func newIssueItem(issue models.Issue) models.ActivityItem {
	return models.ActivityItem{
		Type:      models.TypeIssue,
		Number:    issue.Number,
		Title:     issue.Title,
		Body:      issue.Body,
		State:     issue.State,
		CreatedAt: issue.CreatedAt,
		URL:       issue.URL,
		Author:    issue.Author,
		Labels:    emptyIfNil(issue.Labels),
	}
}

// Los commits no tienen título ni labels: el mensaje va como body.
func newCommitItem(commit models.Commit) models.ActivityItem {
	return models.ActivityItem{
		Type:      models.TypeCommit,
		SHA:       commit.SHA,
		Body:      commit.Message,
		CreatedAt: commit.Date,
		URL:       commit.URL,
		Author:    commit.Author,
	}
}

func emptyIfNil(labels []string) []string {
	if labels == nil {
		return []string{}
	}
	return labels
}
