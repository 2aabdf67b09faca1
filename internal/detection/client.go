// Package detection - клиент внешнего сервиса распознавания изображений (YOLO API).
//
// Сервис работает асинхронно: задание отправляется POST-запросом, а результат читается
// отдельным GET-запросом по тому же идентификатору, когда обработка завершена.
package detection

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	detectionsPath = "/api/v1/detecciones"
	verifyPath     = "/api/v1/clients/verify"
	maxBodyBytes   = 4 << 20
)

// Config - параметры клиента
type Config struct {
	BaseURL   string
	APIKey    string
	ClientID  string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
	// Transport позволяет подменить транспорт в тестах
	Transport http.RoundTripper
}

// Client - HTTP-клиент сервиса распознавания с ограничением частоты запросов
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient создает клиент сервиса распознавания
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 5
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 5
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

// Submit отправляет изображение на распознавание под идентификатором queryID
func (c *Client) Submit(ctx context.Context, queryID, imageURL string) (*SubmitResponse, error) {
	body, err := json.Marshal(SubmitRequest{QueryID: queryID, ImageURL: imageURL})
	if err != nil {
		return nil, &SubmitError{QueryID: queryID, Err: fmt.Errorf("marshal request: %w", err)}
	}

	status, payload, err := c.do(ctx, http.MethodPost, detectionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, &SubmitError{QueryID: queryID, Err: err}
	}
	if status < 200 || status >= 300 {
		return nil, &SubmitError{QueryID: queryID, StatusCode: status, Err: errors.New(snippet(payload))}
	}

	var resp SubmitResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, &SubmitError{QueryID: queryID, StatusCode: status, Err: fmt.Errorf("decode response: %w", err)}
	}
	return &resp, nil
}

// FetchResult читает результат задания. Пока обработка не закончена, возвращает ErrNotReady.
func (c *Client) FetchResult(ctx context.Context, queryID string) (*Result, error) {
	status, payload, err := c.do(ctx, http.MethodGet, detectionsPath+"/"+url.PathEscape(queryID), nil)
	if err != nil {
		return nil, &FetchError{QueryID: queryID, Err: err}
	}
	if status < 200 || status >= 300 {
		return nil, &FetchError{QueryID: queryID, StatusCode: status, Err: errors.New(snippet(payload))}
	}

	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, &FetchError{QueryID: queryID, StatusCode: status, Err: fmt.Errorf("decode response: %w", err)}
	}
	if envelope.Outcome == nil {
		return nil, ErrNotReady
	}
	if envelope.Outcome.Category == "" {
		return nil, &FetchError{QueryID: queryID, StatusCode: status, Err: errors.New("result has no category")}
	}
	if conf := envelope.Outcome.Confidence; conf < 0 || conf > 1 {
		return nil, &FetchError{QueryID: queryID, StatusCode: status, Err: fmt.Errorf("confidence %v is outside [0, 1]", conf)}
	}

	return &Result{
		Category:       envelope.Outcome.Category,
		Confidence:     envelope.Outcome.Confidence,
		DetectionCount: envelope.Outcome.DetectionCount,
		ResultURL:      envelope.Outcome.ResultURL,
		Details:        envelope.Outcome.Details,
		Raw:            json.RawMessage(payload),
	}, nil
}

// VerifyCredentials проверяет ключ API и сверяет идентификатор клиента
func (c *Client) VerifyCredentials(ctx context.Context) (*Credentials, error) {
	status, payload, err := c.do(ctx, http.MethodGet, verifyPath, nil)
	if err != nil {
		return nil, fmt.Errorf("detection: verify credentials: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("detection: verify credentials returned status %d: %s", status, snippet(payload))
	}

	var creds Credentials
	if err := json.Unmarshal(payload, &creds); err != nil {
		return nil, fmt.Errorf("detection: decode credentials: %w", err)
	}
	if c.cfg.ClientID != "" && creds.Client.ClientID != c.cfg.ClientID {
		return &creds, fmt.Errorf("detection: credentials belong to client %q, expected %q", creds.Client.ClientID, c.cfg.ClientID)
	}
	return &creds, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", errRateLimitWait, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, payload, nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 256 {
		s = s[:256] + "..."
	}
	if s == "" {
		return "empty response body"
	}
	return s
}
