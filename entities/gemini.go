package entities

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"echo-analytics/config"
)

// GeminiExtractor asks a Gemini model for one "Type: value" line per entity
// type. Types absent from the response stay null in the result map.
type GeminiExtractor struct {
	client      *genai.Client
	model       string
	entityTypes []string
}

func NewGeminiExtractor(ctx context.Context, entityTypes []string) (*GeminiExtractor, error) {
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
	return &GeminiExtractor{
		client:      client,
		model:       llmCfg.ExtractorModel,
		entityTypes: entityTypes,
	}, nil
}

func (e *GeminiExtractor) Extract(ctx context.Context, message string) (EntityMap, error) {
	prompt := fmt.Sprintf(
		"Please extract the following entity types from the text: %s.\n"+
			"Respond with one line per entity type in the form \"Type: value\".\n\nText: %s",
		strings.Join(e.entityTypes, ", "), message,
	)

	result, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, err
	}
	return e.parseResponse(result.Text()), nil
}

func (e *GeminiExtractor) parseResponse(text string) EntityMap {
	out := EntityMap{}
	for _, et := range e.entityTypes {
		out[et] = nil
	}

	for _, line := range strings.Split(text, "\n") {
		for _, et := range e.entityTypes {
			if !strings.Contains(line, et) {
				continue
			}
			if _, value, found := strings.Cut(line, ":"); found {
				v := strings.TrimSpace(value)
				if v != "" && !strings.EqualFold(v, "none") && !strings.EqualFold(v, "null") {
					out[et] = &v
				}
			}
		}
	}
	return out
}
