package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spec-kit/wellness-service/internal/config"
)

// Client talks to a text-classification inference server over HTTP.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a Client from classifier configuration.
func NewClient(cfg config.ClassifierConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// candidate mirrors one ranked label in the server's response.
type candidate struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify posts the text to the model endpoint and returns the top-ranked
// label. The server answers with candidates ranked per input, either nested
// ([[{label,score}...]]) or flat ([{label,score}...]).
func (c *Client) Classify(ctx context.Context, text string) (Prediction, error) {
	body, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return Prediction{}, fmt.Errorf("encoding request: %w", err)
	}

	url := c.baseURL + "/models/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Prediction{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("requesting classification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Prediction{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Prediction{}, fmt.Errorf("decoding response: %w", err)
	}

	candidates, err := decodeCandidates(raw)
	if err != nil {
		return Prediction{}, err
	}
	if len(candidates) == 0 {
		return Prediction{}, fmt.Errorf("empty classification for input")
	}

	top := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.Score > top.Score {
			top = cand
		}
	}
	return Prediction{Label: top.Label, Confidence: top.Score}, nil
}

func decodeCandidates(raw json.RawMessage) ([]candidate, error) {
	var nested [][]candidate
	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) == 0 {
			return nil, nil
		}
		return nested[0], nil
	}

	var flat []candidate
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("unrecognized classification payload: %w", err)
	}
	return flat, nil
}

// Healthy reports whether the inference server responds at all.
func (c *Client) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
