package host

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/endpoint/summary-panel/internal/models"
)

// HTTPClient talks to the platform's app bridge over JSON.
type HTTPClient struct {
	BaseURL  string
	Token    string
	TicketID string
	Client   *http.Client
}

// StatusError is returned when the bridge answers with a non-2xx status.
type StatusError struct {
	Op     string
	Status int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("host %s: http status %d", e.Op, e.Status)
}

type currentUserResponse struct {
	CurrentUser models.CurrentUser `json:"currentUser"`
}

type getRequest struct {
	Keys []string `json:"keys"`
}

type setRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type resizeRequest struct {
	Height int `json:"height"`
}

func NewHTTPFactory(baseURL, token string, timeout time.Duration) Factory {
	client := &http.Client{Timeout: timeout}
	return func(ticketID string) Client {
		return &HTTPClient{BaseURL: baseURL, Token: token, TicketID: ticketID, Client: client}
	}
}

func (h *HTTPClient) CurrentUser(ctx context.Context) (models.CurrentUser, error) {
	var r currentUserResponse
	if err := h.do(ctx, "currentUser", http.MethodGet, "/current_user", nil, &r); err != nil {
		return models.CurrentUser{}, err
	}
	return r.CurrentUser, nil
}

func (h *HTTPClient) Metadata(ctx context.Context) (models.Metadata, error) {
	var r models.Metadata
	if err := h.do(ctx, "metadata", http.MethodGet, "/metadata", nil, &r); err != nil {
		return models.Metadata{}, err
	}
	return r, nil
}

func (h *HTTPClient) Get(ctx context.Context, keys []string) (map[string]any, error) {
	out := map[string]any{}
	if err := h.do(ctx, "get", http.MethodPost, h.ticketPath("get"), getRequest{Keys: keys}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *HTTPClient) Set(ctx context.Context, key string, value string) error {
	return h.do(ctx, "set", http.MethodPost, h.ticketPath("set"), setRequest{Key: key, Value: value}, nil)
}

func (h *HTTPClient) Resize(ctx context.Context, maxHeight int) error {
	return h.do(ctx, "resize", http.MethodPost, "/resize", resizeRequest{Height: maxHeight}, nil)
}

func (h *HTTPClient) ticketPath(action string) string {
	return "/tickets/" + url.PathEscape(h.TicketID) + "/fields/" + action
}

func (h *HTTPClient) do(ctx context.Context, op, method, path string, in any, out any) error {
	if h.Client == nil {
		h.Client = &http.Client{Timeout: 10 * time.Second}
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("host %s: encode: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.Token != "" {
		req.Header.Set("Authorization", "Bearer "+h.Token)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return fmt.Errorf("host %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("host %s: %w", op, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return StatusError{Op: op, Status: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("host %s: decode: %w", op, err)
	}
	return nil
}
