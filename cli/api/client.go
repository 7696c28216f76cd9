// Package api is the deckctl HTTP client for the newsdeck server.
package api

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"newsdeck/domain"
)

// Client calls the newsdeck REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("server responded %d: %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("server responded %d: %s", e.StatusCode, e.Message)
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Topics(ctx context.Context) ([]domain.TopicSummary, error) {
	var body struct {
		Topics []domain.TopicSummary `json:"topics"`
	}
	if err := c.getJSON(ctx, "/api/topics", nil, &body); err != nil {
		return nil, err
	}
	return body.Topics, nil
}

// Feed runs one aggregation for topic. Nil keywords use the topic's own.
func (c *Client) Feed(ctx context.Context, topic string, keywords []string) (*domain.AggregationResult, error) {
	var result domain.AggregationResult
	if err := c.getJSON(ctx, "/api/feeds", feedQuery(topic, keywords, 0), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) News(ctx context.Context, topic string) (*domain.TopicNews, error) {
	q := url.Values{}
	if topic != "" {
		q.Set("topic", topic)
	}
	var news domain.TopicNews
	if err := c.getJSON(ctx, "/api/news", q, &news); err != nil {
		return nil, err
	}
	return &news, nil
}

func (c *Client) Read(ctx context.Context, articleURL string) (*domain.ExtractedArticle, error) {
	var article domain.ExtractedArticle
	if err := c.getJSON(ctx, "/api/read", url.Values{"url": {articleURL}}, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (c *Client) Osint(ctx context.Context) (*domain.OsintFeed, error) {
	var feed domain.OsintFeed
	if err := c.getJSON(ctx, "/api/osint", nil, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// Watch follows the feed stream and calls fn for every result until ctx ends,
// the server closes the stream, or fn returns an error.
func (c *Client) Watch(ctx context.Context, topic string, keywords []string, interval time.Duration, fn func(domain.AggregationResult) error) error {
	req, err := c.newRequest(ctx, "/api/feeds/stream", feedQuery(topic, keywords, interval))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	// The stream outlives any request timeout.
	streamClient := &http.Client{Transport: c.httpClient.Transport}
	resp, err := streamClient.Do(req)
	if err != nil {
		return fmt.Errorf("open stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		data, ok := strings.CutPrefix(line, "data: ")
		if !ok {
			continue
		}
		var result domain.AggregationResult
		if err := json.Unmarshal([]byte(data), &result); err != nil {
			return fmt.Errorf("decode stream frame: %w", err)
		}
		if err := fn(result); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("read stream: %w", err)
	}
	return nil
}

func feedQuery(topic string, keywords []string, interval time.Duration) url.Values {
	q := url.Values{"topic": {topic}}
	if keywords != nil {
		q.Set("keywords", strings.Join(keywords, ","))
	}
	if interval > 0 {
		q.Set("interval", interval.String())
	}
	return q
}

func (c *Client) newRequest(ctx context.Context, path string, query url.Values) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "deckctl")
	return req, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, path, query)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// decodeError understands both {"error","details"} and the
// {"code","message"} error bodies.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
		Message string `json:"message"`
	}
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	if json.Unmarshal(raw, &body) == nil {
		switch {
		case body.Message != "":
			apiErr.Message = body.Message
		case body.Error != "":
			apiErr.Message = body.Error
		}
		apiErr.Details = body.Details
	}
	return apiErr
}
