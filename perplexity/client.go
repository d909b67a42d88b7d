package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/habiliai/perplexity-mcp/config"
	"github.com/habiliai/perplexity-mcp/errors"
	"github.com/habiliai/perplexity-mcp/internal/mylog"
	"github.com/tidwall/gjson"
)

const maxLoggedBody = 1000

type (
	// Searcher answers a search request. Implementations report every
	// failure through SearchResult.Error.
	Searcher interface {
		Search(ctx context.Context, req SearchRequest) SearchResult
	}

	Client struct {
		apiKey  string
		baseURL string
		client  *http.Client
		logger  *slog.Logger
	}

	Option func(*Client)
)

var _ Searcher = (*Client)(nil)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.client = httpClient
	}
}

func NewClient(conf *config.PerplexityConfig, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:  conf.APIKey,
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		client:  &http.Client{Timeout: conf.Timeout},
		logger:  logger,
	}
	if c.baseURL == "" {
		c.baseURL = config.DefaultPerplexityBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		c.logger.Warn("Perplexity API key is not set. API calls will fail.")
	}

	return c
}

// BuildMessages returns the upstream conversation for req: the optional
// system prompt followed by a single user message.
func BuildMessages(req SearchRequest) []Message {
	messages := make([]Message, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, Message{
			Role:    RoleSystem,
			Content: req.SystemPrompt,
		})
	}

	content := "Please search the web for information about: " + req.Query
	if len(req.FocusDomains) > 0 {
		content += "\nFocus on these domains: " + strings.Join(req.FocusDomains, ", ")
	}

	return append(messages, Message{
		Role:    RoleUser,
		Content: content,
	})
}

// Search calls the chat completions endpoint once. It never returns a Go
// error: HTTP, transport and decoding failures all land in SearchResult.Error.
func (c *Client) Search(ctx context.Context, req SearchRequest) SearchResult {
	answer, err := c.complete(ctx, req)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			c.logger.ErrorContext(ctx, "Perplexity API returned an error", "status", apiErr.StatusCode, mylog.Err(err))
			return SearchResult{
				Query:   req.Query,
				Results: []SearchResultItem{},
				Error:   apiErr.Error(),
			}
		}

		c.logger.ErrorContext(ctx, "error searching with Perplexity API", mylog.Err(err))
		return SearchResult{
			Query:   req.Query,
			Results: []SearchResultItem{},
			Error:   fmt.Sprintf("Error processing request: %s", errors.Cause(err).Error()),
		}
	}

	return SearchResult{
		Query:   req.Query,
		Results: []SearchResultItem{},
		Answer:  answer,
	}
}

func (c *Client) complete(ctx context.Context, req SearchRequest) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model:          req.EffectiveModel(),
		Messages:       BuildMessages(req),
		ResponseFormat: req.ResponseFormat,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to encode request")
	}

	c.logger.DebugContext(ctx, "calling Perplexity API", "model", req.EffectiveModel(), "request", string(body))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrapf(err, "failed to create request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", errors.Wrapf(err, "failed to call Perplexity API")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newAPIError(resp.StatusCode, respBody)
	}

	c.logger.DebugContext(ctx, "received Perplexity API response", "body", truncate(string(respBody), maxLoggedBody))

	if !gjson.ValidBytes(respBody) {
		return "", errors.Errorf("invalid JSON in response body: %s", truncate(string(respBody), 100))
	}

	return gjson.GetBytes(respBody, "choices.0.message.content").String(), nil
}

// truncate cuts s to at most n bytes without splitting a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
