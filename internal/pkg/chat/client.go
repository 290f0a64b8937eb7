// Package chat talks to an OpenAI-compatible chat completion endpoint and
// grounds the answer in an enrichment brief.
package chat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/Vodeneev/betbrief/internal/pkg/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	systemPrompt = "You are a football assistant in a chat. Answer in the language of the user's message. " +
		"Be brief and concrete."

	groundedPrompt = "Use only the facts in the data block below for fixtures, kickoff times, scores, odds, " +
		"injuries and line-ups. If the data says there are no fixtures, say so and do not invent any. " +
		"Odds and predictions are not guarantees; say so when recommending a bet.\n\nDATA:\n"

	ungroundedPrompt = "No live football data is available for this message. Do not state fixtures, " +
		"kickoff times, scores or odds as facts."
)

var ErrEmptyCompletion = errors.New("empty completion")

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	Stream      bool      `json:"stream"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Client calls {base_url}/chat/completions.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	attempts    int
	retryDelay  time.Duration
	logger      *slog.Logger
}

func NewClient(cfg *config.ChatConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	attempts := cfg.MaxRetries
	if attempts <= 0 {
		attempts = 3
	}
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		attempts:    attempts,
		retryDelay:  time.Second,
		logger:      logger,
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool { return c.apiKey != "" }

// Messages builds the prompt for userText. An empty brief means the enricher
// found nothing and the model is told no data is available.
func Messages(brief, userText string) []Message {
	msgs := []Message{{Role: "system", Content: systemPrompt}}
	if brief != "" {
		msgs = append(msgs, Message{Role: "system", Content: groundedPrompt + brief})
	} else {
		msgs = append(msgs, Message{Role: "system", Content: ungroundedPrompt})
	}
	return append(msgs, Message{Role: "user", Content: userText})
}

// Answer asks the model to answer userText using brief.
func (c *Client) Answer(ctx context.Context, brief, userText string) (string, error) {
	return c.Complete(ctx, Messages(brief, userText))
}

// Complete sends messages and returns the first choice.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal body: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			}
		}
		text, retry, err := c.do(ctx, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		c.logger.Warn("Chat completion failed", "attempt", attempt+1, "error", err)
		if !retry {
			break
		}
	}
	return "", fmt.Errorf("chat completion: %w", lastErr)
}

func (c *Client) do(ctx context.Context, body []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return "", retry, fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var cr completionResponse
	if err := json.Unmarshal(data, &cr); err != nil {
		return "", false, fmt.Errorf("decode response: %w", err)
	}
	if cr.Error != nil {
		return "", false, fmt.Errorf("api error: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 || strings.TrimSpace(cr.Choices[0].Message.Content) == "" {
		return "", true, ErrEmptyCompletion
	}
	return strings.TrimSpace(cr.Choices[0].Message.Content), false, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
