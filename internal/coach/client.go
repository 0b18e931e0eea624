// Package coach talks to a local OpenAI-compatible chat endpoint (Ollama by
// default). The coach is strictly optional: every failure collapses into a
// placeholder reply so callers never see an error.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OfflineMarker prefixes every reply produced when the endpoint cannot be
// reached or answers with garbage.
const OfflineMarker = "(Coach offline)"

const chatCompletionsPath = "/v1/chat/completions"

type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat sends a system and a user instruction, non-streaming, and returns the
// trimmed reply. It never returns an error: any failure becomes an
// OfflineMarker-prefixed string embedding the detail.
func (c *Client) Chat(ctx context.Context, systemPrompt, userPrompt string) string {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: false,
	})
	if err != nil {
		return offline(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return offline(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return offline(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return offline(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return offline(err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return offline(err)
	}
	if len(parsed.Choices) == 0 {
		return offline(fmt.Errorf("response has no choices"))
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content)
}

func offline(err error) string {
	return fmt.Sprintf("%s %v", OfflineMarker, err)
}
