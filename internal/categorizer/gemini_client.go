package categorizer

import (
	"context"
	"fmt"
	"strings"

	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements AIClient on top of Google's Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiClient creates a Gemini-backed classifier client.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger,
	}, nil
}

// Classify asks Gemini to pick one category from the closed list.
func (c *GeminiClient) Classify(ctx context.Context, tx models.Transaction, categories []string) (string, error) {
	prompt := buildPrompt(tx, categories)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini API")
	}

	answer := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	c.logger.WithField(logging.FieldCategory, strings.TrimSpace(answer)).Debug("Gemini response")
	return answer, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// buildPrompt renders the classification request. The instructions pin
// the answer to the closed list verbatim so the response survives the
// exact-membership check.
func buildPrompt(tx models.Transaction, categories []string) string {
	var b strings.Builder
	b.WriteString("Categorize the following financial transaction:\n")
	fmt.Fprintf(&b, "Description: %s\n", tx.Description)
	if !tx.Amount.IsZero() {
		fmt.Fprintf(&b, "Amount: %s\n", tx.Amount.String())
	}
	if tx.Date != "" {
		fmt.Fprintf(&b, "Date: %s\n", tx.Date)
	}
	b.WriteString("\nAssign this transaction to exactly one of the following categories:\n")
	b.WriteString(strings.Join(categories, ", "))
	b.WriteString("\n\nRespond with ONLY the category name, exactly as it appears in the list above. Do not add explanations, punctuation, or any other text.")
	return b.String()
}
