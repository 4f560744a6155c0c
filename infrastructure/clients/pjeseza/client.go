package pjeseza

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"pjeseza-web/domain/dto"
	"pjeseza-web/domain/model"
	"pjeseza-web/domain/repository"
	"pjeseza-web/infrastructure/logger"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
)

// APIError carries the status and detail message of a non-2xx backend
// response so handlers can translate it for the browser.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

// IsAuthError reports whether the backend rejected the bearer token.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized
}

type client struct {
	host       string
	httpClient *http.Client
}

// NewClient creates the processing API client. host is the backend base URL
// without a trailing slash.
func NewClient(host string, timeout time.Duration) repository.IVideoAPI {
	return &client{
		host:       strings.TrimRight(host, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do sends one JSON round-trip and decodes the response into out. A non-2xx
// status is mapped to *APIError with the backend's detail message.
func (c *client) do(ctx context.Context, method, path, token string, body, out interface{}, requestID string) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.host+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.asAPIError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// asAPIError reads at most 4KB of the error body. The backend sends
// {"detail": "..."}; anything else falls back to the raw text.
func (c *client) asAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var backendErr dto.BackendError
	detail := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &backendErr); err == nil && backendErr.Detail != "" {
		detail = backendErr.Detail
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"status": resp.StatusCode,
		"detail": detail,
	}).Warn("Backend request failed")

	return &APIError{StatusCode: resp.StatusCode, Detail: detail}
}

func (c *client) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	var res dto.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", req, &res, ""); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	var res dto.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", req, &res, ""); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) Me(ctx context.Context, token string) (*model.User, error) {
	var res model.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &res, ""); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) VideoInfo(ctx context.Context, token, url string) (*dto.VideoInfoResponse, error) {
	var res dto.VideoInfoResponse
	req := dto.VideoInfoRequest{URL: url}
	if err := c.do(ctx, http.MethodPost, "/api/video/info", token, req, &res, ""); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) CreateClip(ctx context.Context, token string, req dto.ClipCreateRequest, requestID string) (*dto.ClipCreateResponse, error) {
	var res dto.ClipCreateResponse
	if err := c.do(ctx, http.MethodPost, "/api/video/clip", token, req, &res, requestID); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) ListClips(ctx context.Context, token string, q dto.ClipListQuery) ([]model.ClipResult, error) {
	path := "/api/video/clips"
	values, err := query.Values(q)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var res dto.ClipListResponse
	if err := c.do(ctx, http.MethodGet, path, token, nil, &res, ""); err != nil {
		return nil, err
	}
	return res.Clips, nil
}

func (c *client) DownloadClip(ctx context.Context, token, clipID string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/video/download/"+clipID, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("request download: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, "", c.asAPIError(resp)
	}

	filename := "clip.mp4"
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			filename = params["filename"]
		}
	}
	return resp.Body, filename, nil
}

func (c *client) AdminStats(ctx context.Context, token string) (*dto.AdminStats, error) {
	var res dto.AdminStats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", token, nil, &res, ""); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) AdminUsers(ctx context.Context, token string) ([]model.User, error) {
	var res dto.AdminUsersResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", token, nil, &res, ""); err != nil {
		return nil, err
	}
	return res.Users, nil
}
