package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Raj-Aarav/FinWise/apierr"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

const defaultBaseURL = "https://api.openai.com/v1"

const systemPrompt = "You are a personal-finance assistant. Give short, practical advice " +
	"about budgeting, saving and spending based on the figures you are given."

// ClientConfig configures the OpenAI-backed completer. BaseURL and Timeout
// are optional.
type ClientConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client calls the OpenAI chat completions API. Transient failures are
// retried by the underlying transport.
type Client struct {
	httpClient *retryablehttp.Client
	apiKey     string
	model      string
	baseURL    string
}

func NewClient(cfg ClientConfig) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 2
	httpClient.Logger = nil
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	httpClient.HTTPClient.Timeout = cfg.Timeout

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    baseURL,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt to the completions endpoint and returns the
// first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		MaxTokens:   300,
		Temperature: 0.7,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", apierr.Internal(errors.Wrap(err, "marshaling completion request"))
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", body)
	if err != nil {
		return "", apierr.Internal(errors.Wrap(err, "building completion request"))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierr.Upstream("completion service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", apierr.Upstream("completion service unavailable",
			fmt.Errorf("completion request returned status %d: %s", resp.StatusCode, detail))
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", apierr.Upstream("completion service unavailable", err)
	}
	if len(completion.Choices) == 0 {
		return "", apierr.Upstream("completion service unavailable",
			errors.New("completion response contained no choices"))
	}
	return completion.Choices[0].Message.Content, nil
}
