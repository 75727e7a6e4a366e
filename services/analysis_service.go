package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"github.com/cskyle2026/Diabetes/models"
	"github.com/cskyle2026/Diabetes/utils"
)

// ErrAnalysisFailed is the single opaque failure of the analysis
// contract. Network errors, auth errors and malformed responses all
// collapse into it; the only remediation is a new photo.
var ErrAnalysisFailed = errors.New("analysis failed")

const analysisModel = "gemini-2.5-flash"

// AnalysisService is the contract with the generative model: one captured
// image plus a profile summary in, one structured nutrition analysis out.
type AnalysisService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewAnalysisService(ctx context.Context) (*AnalysisService, error) {
	opts := []option.ClientOption{}
	if f := os.Getenv("GOOGLE_CREDENTIALS_FILE"); f != "" {
		opts = append(opts, option.WithCredentialsFile(f))
	}

	client, err := genai.NewClient(ctx, os.Getenv("GOOGLE_PROJECT_ID"), os.Getenv("GOOGLE_LOCATION"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := client.GenerativeModel(analysisModel)
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema,
	}

	return &AnalysisService{client: client, model: model}, nil
}

// The response schema pins the model to the AnalysisResult shape: six
// string nutrition fields, a three-way alert level and an always-present
// substitutes array.
var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"foodName": {Type: genai.TypeString, Description: "The name of the identified food item."},
		"nutrition": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"calories": {Type: genai.TypeString, Description: "Estimated calories (e.g., '250 kcal')."},
				"carbs":    {Type: genai.TypeString, Description: "Estimated carbohydrates (e.g., '30g')."},
				"sugar":    {Type: genai.TypeString, Description: "Estimated sugar (e.g., '15g')."},
				"fat":      {Type: genai.TypeString, Description: "Estimated fat (e.g., '10g')."},
				"sodium":   {Type: genai.TypeString, Description: "Estimated sodium (e.g., '500mg')."},
				"protein":  {Type: genai.TypeString, Description: "Estimated protein (e.g., '20g')."},
			},
			Required: []string{"calories", "carbs", "sugar", "fat", "sodium", "protein"},
		},
		"alertLevel":  {Type: genai.TypeString, Description: "One of: 'GREEN', 'YELLOW', or 'RED'."},
		"explanation": {Type: genai.TypeString, Description: "A brief explanation for the given alert level, considering the user's health profile."},
		"substitutes": {
			Type:        genai.TypeArray,
			Description: "A list of 3 healthier food substitutes. Provide this if the alertLevel is 'RED' or 'YELLOW'. Otherwise, return an empty array.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"foodName", "nutrition", "alertLevel", "explanation", "substitutes"},
}

func buildAnalysisPrompt(profile *models.HealthProfile, lang models.LanguageCode) string {
	conditions := make([]string, 0, len(profile.Conditions))
	for _, c := range profile.Conditions {
		conditions = append(conditions, string(c))
	}

	return fmt.Sprintf(`Based on the user's health profile below, analyze the food in the image.

User Profile:
- Age: %d
- Gender: %s
- Health Conditions: %s

Please provide a detailed analysis of the food. All text responses must be in %s.
If the food's alert level is 'RED' or 'YELLOW', provide a list of 3 healthier substitutes.
`, profile.Age, profile.Gender, strings.Join(conditions, ", "), lang.DisplayName())
}

// AnalyzeFood sends the capture and the profile summary to the model and
// validates the structured response.
func (s *AnalysisService) AnalyzeFood(ctx context.Context, imageDataURI string, profile *models.HealthProfile, lang models.LanguageCode) (*models.AnalysisResult, error) {
	mimeType, data, err := utils.DecodeDataURI(imageDataURI)
	if err != nil {
		log.Printf("analysis: bad capture payload: %v", err)
		return nil, ErrAnalysisFailed
	}

	prompt := buildAnalysisPrompt(profile, lang)
	resp, err := s.model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(prompt),
	)
	if err != nil {
		log.Printf("analysis: model call failed: %v", err)
		return nil, ErrAnalysisFailed
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Printf("analysis: empty model response")
		return nil, ErrAnalysisFailed
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		log.Printf("analysis: unexpected part type in model response")
		return nil, ErrAnalysisFailed
	}

	// The schema requests bare JSON, but strip a code fence if the model
	// wraps one anyway.
	raw := strings.TrimSpace(string(text))
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("analysis: unparseable model response: %v", err)
		return nil, ErrAnalysisFailed
	}
	if !result.AlertLevel.Valid() {
		log.Printf("analysis: alert level %q outside contract", result.AlertLevel)
		return nil, ErrAnalysisFailed
	}
	if result.Substitutes == nil {
		result.Substitutes = []string{}
	}

	return &result, nil
}

// Close releases the underlying client.
func (s *AnalysisService) Close() error {
	return s.client.Close()
}
