package classify

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"echo-analytics/config"
)

const classifierInstruction = `
You are a topic classifier for corporate social-media posts.
Classify the provided text into a theme hierarchy.

The response MUST be a single line of plain text with exactly three segments
separated by "||":

Theme||Subtheme||Subsubtheme

Constraints:
- No markdown, no quotes, no explanation. Only the raw label line.
- Each segment is a short noun phrase (1-4 words).
- If the text is empty or meaningless, respond with: Other||Other||Other
`

// GeminiClassifier predicts label triples with a Gemini model. It satisfies
// Classifier; the pipeline never depends on this concrete type.
type GeminiClassifier struct {
	client *genai.Client
	model  string
}

func NewGeminiClassifier(ctx context.Context) (*GeminiClassifier, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	llmCfg := config.GetConfig().LLM
	if llmCfg.Provider != "google" {
		return nil, fmt.Errorf("unsupported LLM provider: %s", llmCfg.Provider)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClassifier{client: client, model: llmCfg.ClassifierModel}, nil
}

func (c *GeminiClassifier) Predict(ctx context.Context, text string) (LabelTriple, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(text),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: classifierInstruction}}},
		},
	)
	if err != nil {
		return LabelTriple{}, err
	}
	return ParseLabel(result.Text())
}
