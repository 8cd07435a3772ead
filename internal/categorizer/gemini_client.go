package categorizer

import (
	"context"
	"fmt"
	"strings"

	"finbot/core/internal/logging"
	"finbot/core/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ AIClient = (*GeminiClient)(nil)

// GeminiClient implements AIClient against the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiClient creates a Gemini-backed AIClient using the given API key and
// model name.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	// Low temperature and a tiny output budget: the prompt asks for a single
	// label, anything longer is noise the caller will reject anyway.
	temperature := float32(0.1)
	maxTokens := int32(16)
	model.Temperature = &temperature
	model.MaxOutputTokens = &maxTokens

	return &GeminiClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Categorize sends a closed-vocabulary prompt for the transaction and returns
// the model's raw reply. The caller validates the reply against the label set.
func (c *GeminiClient) Categorize(ctx context.Context, tx models.Transaction, labels []string) (string, error) {
	prompt := buildCategorizationPrompt(tx, labels)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini API")
	}

	reply := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])

	c.logger.WithFields(
		logging.Field{Key: "description", Value: tx.Description},
		logging.Field{Key: "reply", Value: reply},
	).Debug("Received categorization reply from Gemini")

	return reply, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// buildCategorizationPrompt enumerates the allowed labels explicitly so the
// model cannot invent a category, and asks for the bare label only.
func buildCategorizationPrompt(tx models.Transaction, labels []string) string {
	return fmt.Sprintf(`Categorize the following financial transaction into exactly one of these categories:
%s

Transaction:
Description: %s
Amount: %s

Respond with ONLY the category name (for example "%s"), no explanation.`,
		strings.Join(labels, ", "),
		tx.Description,
		tx.Amount.StringFixed(2),
		firstLabel(labels))
}

func firstLabel(labels []string) string {
	if len(labels) == 0 {
		return "other"
	}
	return labels[0]
}
