package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssessComplexity(t *testing.T) {
	tests := []struct {
		name     string
		files    []models.FileChange
		expected models.Tier
	}{
		{"49 changed lines is Low", []models.FileChange{{Additions: 40, Deletions: 9}}, models.TierLow},
		{"50 changed lines is Medium", []models.FileChange{{Additions: 40, Deletions: 10}}, models.TierMedium},
		{"199 changed lines is Medium", []models.FileChange{{Additions: 100, Deletions: 99}}, models.TierMedium},
		{"200 changed lines is High", []models.FileChange{{Additions: 150, Deletions: 50}}, models.TierHigh},
		{"no files is Low", nil, models.TierLow},
		{"sums across files", []models.FileChange{{Additions: 30}, {Deletions: 25}}, models.TierMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AssessComplexity(tt.files))
		})
	}
}

func TestAssessImpact(t *testing.T) {
	files := func(n int) []models.FileChange {
		return make([]models.FileChange, n)
	}
	commits := func(n int) []models.CommitSummary {
		return make([]models.CommitSummary, n)
	}

	tests := []struct {
		name     string
		files    []models.FileChange
		commits  []models.CommitSummary
		expected models.Tier
	}{
		{"2 files and 2 commits is Low", files(2), commits(2), models.TierLow},
		{"9 files and 9 commits is Medium", files(9), commits(9), models.TierMedium},
		{"10 files and 1 commit is High", files(10), commits(1), models.TierHigh},
		{"1 file and 10 commits is High", files(1), commits(10), models.TierHigh},
		{"2 files and 3 commits is Medium", files(2), commits(3), models.TierMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AssessImpact(tt.files, tt.commits))
		})
	}
}

func TestEnricher_Enrich(t *testing.T) {
	detail := models.PullRequestDetail{
		Number: 42,
		Title:  "Add retries",
		Body:   "adds retries to the fetcher",
		State:  "open",
		Files: []models.FileChange{
			{Filename: "fetcher.go", Additions: 30, Deletions: 5, Status: "modified"},
		},
		Commits: []models.CommitSummary{
			{SHA: "abc", Message: "add retries", Author: "tomi"},
		},
	}

	t.Run("should enrich a pull request with AI analysis and tiers", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		mockAI := &MockAIProvider{}
		enricher := NewEnricher(mockVCS, mockAI)

		mockVCS.On("GetPullRequestDetail", mock.Anything, 42).Return(detail, nil)
		mockAI.On("SummarizePullRequest", mock.Anything, detail).Return("a tidy summary", nil)

		enriched := enricher.Enrich(context.Background(), []models.SelectedItem{
			{Type: "pull_request", Number: 42},
		})

		require.Len(t, enriched, 1)
		assert.Equal(t, 42, enriched[0].Number)
		assert.Equal(t, "a tidy summary", enriched[0].Analysis.Summary)
		assert.Equal(t, models.TierLow, enriched[0].Analysis.Complexity)
		assert.Equal(t, models.TierLow, enriched[0].Analysis.Impact)
		assert.Equal(t, detail.Files, enriched[0].FilesChanged)
		assert.Equal(t, detail.Commits, enriched[0].Commits)
		mockVCS.AssertExpectations(t)
		mockAI.AssertExpectations(t)
	})

	t.Run("should silently skip items that are not pull requests", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		mockAI := &MockAIProvider{}
		enricher := NewEnricher(mockVCS, mockAI)

		enriched := enricher.Enrich(context.Background(), []models.SelectedItem{
			{Type: "issue", Number: 7},
			{Type: "commit", Number: 0},
		})

		assert.Empty(t, enriched)
		mockVCS.AssertNotCalled(t, "GetPullRequestDetail")
	})

	t.Run("should continue after a failing item", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		mockAI := &MockAIProvider{}
		enricher := NewEnricher(mockVCS, mockAI)

		mockVCS.On("GetPullRequestDetail", mock.Anything, 1).Return(detail, nil)
		mockVCS.On("GetPullRequestDetail", mock.Anything, 2).
			Return(models.PullRequestDetail{}, errors.New("boom"))
		mockAI.On("SummarizePullRequest", mock.Anything, detail).Return("ok", nil)

		enriched := enricher.Enrich(context.Background(), []models.SelectedItem{
			{Type: "pull_request", Number: 1},
			{Type: "pull_request", Number: 2},
		})

		require.Len(t, enriched, 1)
		assert.Equal(t, 42, enriched[0].Number)
	})

	t.Run("should degrade analysis to placeholders when AI fails", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		mockAI := &MockAIProvider{}
		enricher := NewEnricher(mockVCS, mockAI)

		mockVCS.On("GetPullRequestDetail", mock.Anything, 42).Return(detail, nil)
		mockAI.On("SummarizePullRequest", mock.Anything, detail).
			Return("", errors.New("model unavailable"))

		enriched := enricher.Enrich(context.Background(), []models.SelectedItem{
			{Type: "pull_request", Number: 42},
		})

		require.Len(t, enriched, 1)
		assert.Equal(t, "AI analysis failed", enriched[0].Analysis.Summary)
		assert.Equal(t, models.TierUnknown, enriched[0].Analysis.Complexity)
		assert.Equal(t, models.TierUnknown, enriched[0].Analysis.Impact)
	})
}
