// Package advice fetches AI-generated plant-care recommendations for
// today's weather from the Gemini API.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nhle/plant-reminder/internal/weather"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Advisor calls the Gemini generateContent endpoint to produce a short
// set of care recommendations for the current conditions.
type Advisor struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New constructs an advisor. Returns an error when no API key is
// available; callers treat a nil advisor as "advice unavailable".
func New(apiKey, model string) (*Advisor, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key required")
	}
	if model == "" {
		model = "gemini-pro"
	}
	return &Advisor{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// DailyAdvice asks the model for per-point care recommendations given
// today's weather condition and temperature. lang selects the prompt
// language ("id" for Indonesian, anything else English).
func (a *Advisor) DailyAdvice(
	ctx context.Context,
	obs weather.Observation,
	lang string,
) (string, error) {
	var prompt string
	if lang == "id" {
		prompt = fmt.Sprintf(
			"Cuaca hari ini adalah %s dengan suhu sekitar %.0f°C.\n"+
				"Buatkan rekomendasi perawatan tanaman berdasarkan kondisi ini.\n"+
				"Gunakan format per-point dan berikan penjelasan singkat tiap poin.",
			obs.Condition, obs.TemperatureC,
		)
	} else {
		prompt = fmt.Sprintf(
			"Today's weather is %s with a temperature around %.0f°C.\n"+
				"Give plant care recommendations for these conditions.\n"+
				"Use bullet points with a short explanation for each.",
			obs.Condition, obs.TemperatureC,
		)
	}

	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		a.baseURL, a.model, a.apiKey)

	var resp generateResponse
	if err := a.doJSON(ctx, url, reqBody, &resp); err != nil {
		return "", fmt.Errorf("fetching care advice: %w", err)
	}

	if len(resp.Candidates) == 0 ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// doJSON posts a JSON payload and decodes the JSON response.
func (a *Advisor) doJSON(
	ctx context.Context,
	url string,
	payload any,
	out any,
) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error.Message != "" {
			return fmt.Errorf("gemini api error: %s", errResp.Error.Message)
		}
		return fmt.Errorf("gemini api error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
