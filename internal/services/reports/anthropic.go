package reports

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"leadfair/internal/domain"
)

// AnthropicClient talks to the hosted completion API. One attempt per call;
// the audit flow degrades to an empty report instead of retrying.
type AnthropicClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
	Stream    bool               `json:"stream,omitempty"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	return &AnthropicClient{
		apiKey:  apiKey,
		baseURL: "https://api.anthropic.com/v1",
		model:   model,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

func (c *AnthropicClient) newRequest(ctx context.Context, body anthropicRequest) (*http.Request, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("API key not configured")
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	return req, nil
}

// Complete sends one prompt and returns the joined text content blocks.
func (c *AnthropicClient) Complete(ctx context.Context, system string, messages []domain.Message) (string, error) {
	body := anthropicRequest{
		Model:     c.model,
		MaxTokens: 4096,
		System:    system,
		Messages:  toAnthropicMessages(messages),
	}
	req, err := c.newRequest(ctx, body)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("API error: %s", parsed.Error.Message)
	}
	if len(parsed.Content) == 0 {
		return "", fmt.Errorf("no completion returned")
	}

	var out strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(out.String()), nil
}

// Stream requests an incremental completion and forwards each text delta on
// the returned channel. The channel closes at end of stream; at most one
// error is sent before closing. Deltas cannot be replayed or restarted.
func (c *AnthropicClient) Stream(ctx context.Context, system string, messages []domain.Message) (<-chan string, <-chan error) {
	deltas := make(chan string, 64)
	errc := make(chan error, 1)

	go func() {
		defer close(deltas)
		defer close(errc)

		body := anthropicRequest{
			Model:     c.model,
			MaxTokens: 4096,
			System:    system,
			Messages:  toAnthropicMessages(messages),
			Stream:    true,
		}
		req, err := c.newRequest(ctx, body)
		if err != nil {
			errc <- err
			return
		}
		req.Header.Set("Accept", "text/event-stream")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			errc <- fmt.Errorf("request failed: %w", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			raw, _ := io.ReadAll(resp.Body)
			errc <- fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(raw))
			return
		}

		sc := bufio.NewScanner(resp.Body)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			line := sc.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "" || data == "[DONE]" {
				continue
			}

			var evt struct {
				Type  string `json:"type"`
				Delta *struct {
					Type string `json:"type"`
					Text string `json:"text,omitempty"`
				} `json:"delta,omitempty"`
				Error *struct {
					Type    string `json:"type"`
					Message string `json:"message"`
				} `json:"error,omitempty"`
			}
			if err := json.Unmarshal([]byte(data), &evt); err != nil {
				continue
			}
			if evt.Error != nil {
				errc <- fmt.Errorf("API error: %s", evt.Error.Message)
				return
			}
			if evt.Type == "message_stop" {
				return
			}
			if evt.Delta != nil && evt.Delta.Text != "" {
				select {
				case deltas <- evt.Delta.Text:
				case <-ctx.Done():
					return
				}
			}
		}
		if err := sc.Err(); err != nil {
			errc <- fmt.Errorf("read stream: %w", err)
		}
	}()

	return deltas, errc
}

func toAnthropicMessages(messages []domain.Message) []anthropicMessage {
	out := make([]anthropicMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role != "assistant" {
			role = "user"
		}
		out = append(out, anthropicMessage{Role: role, Content: m.Content})
	}
	return out
}
