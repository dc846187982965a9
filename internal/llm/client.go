package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/srinipusuluri/sfdc-adminX/pkg/errutils"
)

// Decoding parameters are fixed: low temperature biases the model toward
// literal reproduction of the instructed JSON shape, and the token cap
// bounds the reply length. A structured command never needs more.
const (
	temperature = 0.1
	maxTokens   = 500
)

// Client is a thin chat-completions client for an OpenAI-compatible
// endpoint. The API key is forwarded opaquely; the client holds no other
// state and is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	httpCli *http.Client
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpCli: &http.Client{Timeout: timeout},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends one system+user message pair and returns the assistant
// reply text. A single attempt only: retrying a model call on the same
// input is not guaranteed to change the outcome.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", errutils.Wrap("failed to marshal completion request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errutils.Wrap("failed to build completion request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return "", errutils.Wrap("completion request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errutils.Wrap("failed to read completion response", err)
	}

	var out completionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", errutils.Wrap("failed to decode completion response", err)
	}

	if resp.StatusCode != http.StatusOK {
		if out.Error != nil {
			return "", fmt.Errorf("completion request rejected: %s", out.Error.Message)
		}
		return "", fmt.Errorf("completion request rejected: status %d", resp.StatusCode)
	}

	if len(out.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
