package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/TBOO-AI/agent/internal/domain"
)

const (
	searchRecentEndpoint = "2/tweets/search/recent"
	createTweetEndpoint  = "2/tweets"
	usersMeEndpoint      = "2/users/me"
	defaultTimeout       = 30 * time.Second
)

// Client клиент платформы X (Twitter API v2)
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент платформы
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

func (c *Client) buildURL(endpoint string) string {
	return strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + endpoint
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.BearerToken)
	}
}

// SearchMentions возвращает свежие упоминания хэндла, новые первыми
func (c *Client) SearchMentions(ctx context.Context, handle string, limit int) ([]*domain.InboundMessage, error) {
	query := url.Values{}
	query.Set("query", "@"+handle)
	query.Set("max_results", strconv.Itoa(limit))
	query.Set("tweet.fields", "author_id,referenced_tweets")
	query.Set("expansions", "author_id")
	query.Set("user.fields", "username")

	reqURL := c.buildURL(searchRecentEndpoint) + "?" + query.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, &domain.DownstreamServiceError{Service: "platform", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.DownstreamServiceError{Service: "platform", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("mention search returned non-200 status",
			"status_code", resp.StatusCode,
		)
		return nil, &domain.DownstreamServiceError{
			Service: "platform",
			Err:     fmt.Errorf("search status %d", resp.StatusCode),
		}
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, &domain.DownstreamServiceError{
			Service: "platform",
			Err:     fmt.Errorf("unmarshal search response: %w", err),
		}
	}

	// author_id -> username из блока includes
	usernames := make(map[string]string, len(searchResp.Includes.Users))
	for _, user := range searchResp.Includes.Users {
		usernames[user.ID] = user.Username
	}

	mentions := make([]*domain.InboundMessage, 0, len(searchResp.Data))
	for _, tweet := range searchResp.Data {
		msg := &domain.InboundMessage{
			ID:     tweet.ID,
			Handle: usernames[tweet.AuthorID],
			Text:   tweet.Text,
		}
		for _, ref := range tweet.ReferencedTweets {
			if ref.Type == "replied_to" {
				msg.InReplyToID = ref.ID
				break
			}
		}
		mentions = append(mentions, msg)
	}

	c.Log.Debug("mentions fetched",
		"handle", handle,
		"count", len(mentions),
	)

	return mentions, nil
}

// PostReply публикует один пост-ответ и возвращает id созданного поста
func (c *Client) PostReply(ctx context.Context, text string, inReplyToID string) (string, error) {
	reqBody := createTweetRequest{Text: text}
	if inReplyToID != "" {
		reqBody.Reply = &struct {
			InReplyToTweetID string `json:"in_reply_to_tweet_id"`
		}{InReplyToTweetID: inReplyToID}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(createTweetEndpoint), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", &domain.DownstreamServiceError{Service: "platform", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.DownstreamServiceError{Service: "platform", Err: err}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.Log.Debug("create tweet returned non-success status",
			"status_code", resp.StatusCode,
		)
		return "", &domain.DownstreamServiceError{
			Service: "platform",
			Err:     fmt.Errorf("create tweet status %d", resp.StatusCode),
		}
	}

	var createResp createTweetResponse
	if err := json.Unmarshal(body, &createResp); err != nil {
		return "", &domain.DownstreamServiceError{
			Service: "platform",
			Err:     fmt.Errorf("unmarshal create response: %w", err),
		}
	}

	if createResp.Data.ID == "" {
		return "", &domain.DownstreamServiceError{
			Service: "platform",
			Err:     fmt.Errorf("empty tweet id in response"),
		}
	}

	c.Log.Debug("reply posted",
		"tweet_id", createResp.Data.ID,
		"in_reply_to", inReplyToID,
	)

	return createResp.Data.ID, nil
}

// VerifyCredentials проверяет, что сессия платформы жива
func (c *Client) VerifyCredentials(ctx context.Context) (bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(usersMeEndpoint), nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return false, &domain.DownstreamServiceError{Service: "platform", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.Log.Warn("credentials check failed",
			"status_code", resp.StatusCode,
		)
		return false, nil
	}

	var me meResponse
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, nil
	}
	if err := json.Unmarshal(body, &me); err != nil {
		return false, nil
	}

	return me.Data.ID != "", nil
}
