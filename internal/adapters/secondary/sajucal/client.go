package sajucal

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
	calendarEndpoint = "v1/calendar"
	defaultTimeout   = 30 * time.Second
)

// Client клиент внешнего сервиса пересчёта данных рождения
// в календарь Четырёх Столпов
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент календарного сервиса
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

// Resolve пересчитывает данные рождения в календарные атрибуты.
// Вызывается один раз, когда все четыре слота анкеты заполнены.
func (c *Client) Resolve(ctx context.Context, birthDate, birthTime, birthPlace, gender string) (*domain.CalendarAttributes, error) {
	reqBody := calendarRequest{
		BirthDate:  birthDate,
		BirthTime:  birthTime,
		BirthPlace: birthPlace,
		Gender:     gender,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + calendarEndpoint
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, &domain.DownstreamServiceError{Service: "calendar", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.DownstreamServiceError{Service: "calendar", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("calendar API returned non-200 status",
			"status_code", resp.StatusCode,
		)
		return nil, &domain.DownstreamServiceError{
			Service: "calendar",
			Err:     fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	var calResp calendarResponse
	if err := json.Unmarshal(body, &calResp); err != nil {
		return nil, &domain.DownstreamServiceError{
			Service: "calendar",
			Err:     fmt.Errorf("unmarshal response: %w", err),
		}
	}

	c.Log.Debug("calendar resolved",
		"birth_date", birthDate,
		"dae_won", calResp.DaeWon,
	)

	return calResp.toDomain(), nil
}
