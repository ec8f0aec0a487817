package options

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPFetcher loads options from GET <base>/<sourceID>. The response must be a
// JSON array of strings or of objects carrying a "name" (or "label") key.
type HTTPFetcher struct {
	base    string
	client  *http.Client
	timeout time.Duration
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient overrides the client used for requests.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithTimeout caps each request.
func WithTimeout(timeout time.Duration) HTTPOption {
	return func(f *HTTPFetcher) {
		f.timeout = timeout
	}
}

// NewHTTPFetcher constructs a fetcher rooted at base.
func NewHTTPFetcher(base string, opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{
		base:   strings.TrimRight(base, "/"),
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, sourceID string) ([]string, error) {
	if f.base == "" {
		return nil, errors.New("options: http base url is required")
	}
	reqCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	url := f.base + "/" + strings.TrimLeft(sourceID, "/")
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrSourceNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("options: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decodeOptionPayload(data)
}

func decodeOptionPayload(data []byte) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("options: decode payload: %w", err)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var text string
		if err := json.Unmarshal(item, &text); err == nil {
			out = append(out, text)
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(item, &obj); err != nil {
			return nil, fmt.Errorf("options: unsupported option entry %s", item)
		}
		name := pickName(obj)
		if name == "" {
			return nil, fmt.Errorf("options: option entry without name %s", item)
		}
		out = append(out, name)
	}
	return out, nil
}

func pickName(obj map[string]any) string {
	for _, key := range []string{"name", "label", "value"} {
		if v, ok := obj[key]; ok && v != nil {
			return strings.TrimSpace(fmt.Sprint(v))
		}
	}
	return ""
}
