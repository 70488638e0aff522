package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
	"github.com/Tomas-vilte/RepoPulse/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSynthesizer_Generate(t *testing.T) {
	content := models.ProcessedContent{
		PullRequests: []models.ContentPullRequest{
			{Number: 1, Title: "Add dark mode", Body: "new theme", Commits: []models.ContentCommit{
				{Message: "add toggle", Explanation: "settings entry"},
			}},
		},
	}

	t.Run("should wrap generated text with metadata", func(t *testing.T) {
		mockAI := &MockAIProvider{}
		synthesizer := NewSynthesizer(mockAI)
		frozen := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		synthesizer.now = func() time.Time { return frozen }

		mockAI.On("GenerateContent", mock.Anything, content, "release_notes").
			Return("## v1.0\n- dark mode", nil)

		result, err := synthesizer.Generate(context.Background(), content, "release_notes")

		require.NoError(t, err)
		assert.Equal(t, "## v1.0\n- dark mode", result.Content)
		assert.Equal(t, "release_notes", result.ContentType)
		assert.Equal(t, "2024-06-01T12:00:00Z", result.Metadata.Timestamp)
		assert.Equal(t, version.Version, result.Metadata.Version)
		mockAI.AssertExpectations(t)
	})

	t.Run("should propagate upstream failures", func(t *testing.T) {
		mockAI := &MockAIProvider{}
		synthesizer := NewSynthesizer(mockAI)

		mockAI.On("GenerateContent", mock.Anything, content, "tweet").
			Return("", errors.New("quota exceeded"))

		_, err := synthesizer.Generate(context.Background(), content, "tweet")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}
