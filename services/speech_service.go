package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const speechEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-preview-tts:generateContent"

// SpeechService narrates analysis outcomes. It is strictly decorative:
// callers log its errors and move on, the primary flow never depends on
// it.
type SpeechService struct {
	apiKey string
	client *http.Client
}

func NewSpeechService() *SpeechService {
	return &SpeechService{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Synthesize returns base64-encoded raw PCM (16-bit LE, mono, 24 kHz)
// for text, or empty when the service produced no audio.
func (s *SpeechService) Synthesize(ctx context.Context, text string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("speech synthesis disabled: GEMINI_API_KEY not set")
	}

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{{
			"parts": []map[string]string{{"text": text}},
		}},
		"generationConfig": map[string]interface{}{
			"responseModalities": []string{"AUDIO"},
			"speechConfig": map[string]interface{}{
				"voiceConfig": map[string]interface{}{
					"prebuiltVoiceConfig": map[string]string{"voiceName": "Kore"},
				},
			},
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal speech payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, speechEndpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create speech request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call speech API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read speech response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("speech API error %d: %s", resp.StatusCode, string(body))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					InlineData struct {
						Data string `json:"data"`
					} `json:"inlineData"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to parse speech JSON: %w", err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return out.Candidates[0].Content.Parts[0].InlineData.Data, nil
}
