package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gl "cloud.google.com/go/ai/generativelanguage/apiv1beta"
	pb "cloud.google.com/go/ai/generativelanguage/apiv1beta/generativelanguagepb"
	"github.com/google/generative-ai-go/genai"
	gax "github.com/googleapis/gax-go/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/proto"

	"solace-backend/internal/models"
)

// GeminiService sends generation requests through the generated REST client,
// one attempt per call. Model listing goes through genai.
type GeminiService struct {
	generative  *gl.GenerativeClient
	client      *genai.Client
	modelName   string
	temperature float32
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, temperature float32, opts ...option.ClientOption) (*GeminiService, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)

	generative, err := gl.NewGenerativeRESTClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		generative.Close()
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		generative:  generative,
		client:      client,
		modelName:   modelName,
		temperature: temperature,
	}, nil
}

func (s *GeminiService) Close() error {
	return errors.Join(s.generative.Close(), s.client.Close())
}

func (s *GeminiService) ModelName() string {
	return s.modelName
}

// Generate sends a single prompt and returns the concatenated candidate text.
// Retries are disabled; errors are returned unwrapped so callers can classify them.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	req := &pb.GenerateContentRequest{
		Model: qualifiedModelName(s.modelName),
		Contents: []*pb.Content{{
			Role:  "user",
			Parts: []*pb.Part{{Data: &pb.Part_Text{Text: prompt}}},
		}},
		GenerationConfig: &pb.GenerationConfig{Temperature: proto.Float32(s.temperature)},
	}

	resp, err := s.generative.GenerateContent(ctx, req, gax.WithRetry(func() gax.Retryer { return nil }))
	if err != nil {
		return "", err
	}
	return extractText(resp), nil
}

// ListModels returns every model visible to the configured API key.
func (s *GeminiService) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	it := s.client.ListModels(ctx)

	list := []models.ModelInfo{}
	for {
		m, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		list = append(list, models.ModelInfo{
			Name:                       m.Name,
			DisplayName:                m.DisplayName,
			Description:                m.Description,
			InputTokenLimit:            m.InputTokenLimit,
			OutputTokenLimit:           m.OutputTokenLimit,
			SupportedGenerationMethods: m.SupportedGenerationMethods,
		})
	}
	return list, nil
}

// Helper functions

func extractText(resp *pb.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.GetCandidates() {
		for _, part := range cand.GetContent().GetParts() {
			text.WriteString(part.GetText())
		}
	}
	return text.String()
}

func qualifiedModelName(name string) string {
	if strings.HasPrefix(name, "models/") || strings.HasPrefix(name, "tunedModels/") {
		return name
	}
	return "models/" + name
}
