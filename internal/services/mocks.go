package services

import (
	"context"

	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) ListRecentPullRequests(ctx context.Context, daysBack int) ([]models.PullRequest, error) {
	args := m.Called(ctx, daysBack)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PullRequest), args.Error(1)
}

func (m *MockVCSClient) ListRecentIssues(ctx context.Context, daysBack int) ([]models.Issue, error) {
	args := m.Called(ctx, daysBack)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Issue), args.Error(1)
}

func (m *MockVCSClient) ListRecentCommits(ctx context.Context, daysBack int) ([]models.Commit, error) {
	args := m.Called(ctx, daysBack)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Commit), args.Error(1)
}

func (m *MockVCSClient) GetPullRequestDetail(ctx context.Context, number int) (models.PullRequestDetail, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(models.PullRequestDetail), args.Error(1)
}

type MockAIProvider struct {
	mock.Mock
}

func (m *MockAIProvider) SummarizePullRequest(ctx context.Context, pr models.PullRequestDetail) (string, error) {
	args := m.Called(ctx, pr)
	return args.String(0), args.Error(1)
}

func (m *MockAIProvider) GenerateContent(ctx context.Context, content models.ProcessedContent, contentType string) (string, error) {
	args := m.Called(ctx, content, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockAIProvider) GetModelName() string {
	args := m.Called()
	return args.String(0)
}
