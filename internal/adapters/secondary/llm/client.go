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

	"log/slog"

	"github.com/TBOO-AI/agent/internal/domain"
)

const (
	chatCompletions = "v1/chat/completions"
	defaultTimeout  = 60 * time.Second
)

// Client клиент OpenAI-совместимого сервиса генерации текста
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент сервиса генерации
func NewClient(cfg *Config, log *slog.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Log: log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete отправляет готовый промпт и возвращает текст ответа модели
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := completionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + chatCompletions
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", &domain.DownstreamServiceError{Service: "generation", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.DownstreamServiceError{Service: "generation", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("generation API returned non-200 status",
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return "", &domain.DownstreamServiceError{
			Service: "generation",
			Err:     fmt.Errorf("status %d: %s", resp.StatusCode, truncateString(string(body), 200)),
		}
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", &domain.DownstreamServiceError{
			Service: "generation",
			Err:     fmt.Errorf("unmarshal response: %w", err),
		}
	}

	if len(completion.Choices) == 0 {
		return "", &domain.DownstreamServiceError{
			Service: "generation",
			Err:     fmt.Errorf("empty choices in response"),
		}
	}

	result := strings.TrimSpace(completion.Choices[0].Message.Content)
	c.Log.Debug("completion received",
		"prompt_length", len(prompt),
		"result_length", len(result),
	)

	return result, nil
}

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
