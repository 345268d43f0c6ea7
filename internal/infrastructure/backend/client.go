package backend

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

	"github.com/venue-admin/internal/config"
	apperrors "github.com/venue-admin/internal/pkg/errors"
	"go.uber.org/zap"
)

// maxErrorBody caps how much of a failed response is kept in error details.
const maxErrorBody = 4 << 10

type authKey struct{}

// WithAuthorization attaches the dashboard's Authorization header so that
// backend calls made for this request carry the same credentials.
func WithAuthorization(ctx context.Context, header string) context.Context {
	if header == "" {
		return ctx
	}
	return context.WithValue(ctx, authKey{}, header)
}

func authorizationFrom(ctx context.Context) string {
	v, _ := ctx.Value(authKey{}).(string)
	return v
}

// Client - HTTP клиент REST бэкенда площадок. Реализует все репозитории ресурсов.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает новый клиент бэкенда
func NewClient(cfg *config.BackendConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger.Named("backend"),
	}
}

// path joins escaped segments onto the base URL.
func (c *Client) path(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

// do sends body as JSON (when non-nil) and decodes the response into out
// (when non-nil). Any non-2xx status is returned as an *errors.AppError.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth := authorizationFrom(ctx); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	c.logger.Debug("Calling backend",
		zap.String("method", method),
		zap.String("url", endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request",
			zap.String("method", method),
			zap.String("url", endpoint),
			zap.Error(err))
		return apperrors.ErrBackend.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("Backend returned error",
			zap.String("method", method),
			zap.String("url", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(raw)))
		return statusError(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// пустое тело при 2xx: изменение применено, out остаётся нулевым
		if errors.Is(err, io.EOF) {
			return nil
		}
		c.logger.Error("Failed to decode response", zap.Error(err))
		return apperrors.ErrBackend.Wrap(fmt.Errorf("failed to decode response: %w", err))
	}

	return nil
}

func statusError(status int, raw []byte) error {
	details := map[string]interface{}{
		"status": status,
	}
	var parsed interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &parsed); err == nil {
			details["body"] = parsed
		} else {
			details["body"] = string(raw)
		}
	}

	base := apperrors.ErrBackend
	if status == http.StatusNotFound {
		base = apperrors.ErrNotFound
	}
	return base.WithDetails(details).Wrap(fmt.Errorf("backend status %d", status))
}
