package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainerrors "github.com/Tomas-vilte/RepoPulse/internal/domain/errors"
	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
	"github.com/Tomas-vilte/RepoPulse/internal/domain/ports"
	"github.com/Tomas-vilte/RepoPulse/internal/logger"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ ports.AIProvider = (*GeminiProvider)(nil)

// Parámetros de sampling fijos para la generación de contenido.
const (
	generationTemperature     = 0.7
	generationMaxOutputTokens = 1000
)

type GeminiProvider struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	timeout   time.Duration
}

func NewGeminiProvider(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, domainerrors.NewNotConfiguredError("Gemini", "API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(generationTemperature)
	model.SetMaxOutputTokens(generationMaxOutputTokens)

	return &GeminiProvider{
		client:    client,
		model:     model,
		modelName: modelName,
		timeout:   timeout,
	}, nil
}

// Close libera el cliente subyacente.
func (g *GeminiProvider) Close() error {
	return g.client.Close()
}

// GetModelName implementa ports.AIProvider
func (g *GeminiProvider) GetModelName() string {
	return g.modelName
}

// SummarizePullRequest implementa ports.AIProvider
func (g *GeminiProvider) SummarizePullRequest(ctx context.Context, pr models.PullRequestDetail) (string, error) {
	return g.generate(ctx, buildAnalysisPrompt(pr), "summarize pull request")
}

// GenerateContent implementa ports.AIProvider
func (g *GeminiProvider) GenerateContent(ctx context.Context, content models.ProcessedContent, contentType string) (string, error) {
	return g.generate(ctx, buildContentPrompt(content, contentType), "generate content")
}

func (g *GeminiProvider) generate(ctx context.Context, prompt, op string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	logger.Debug(ctx, "sending prompt to Gemini", "model", g.modelName, "op", op)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", domainerrors.NewUpstreamError("Gemini", op, err)
	}

	text := formatResponse(resp)
	if text == "" {
		return "", domainerrors.NewUpstreamError("Gemini", op, errors.New("empty response from model"))
	}
	return text, nil
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				formattedContent.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return strings.TrimSpace(formattedContent.String())
}
