package volunteer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/volunteer-ngo/signup-gateway/internal/core/domain"
)

const (
	createPath     = "/vol/create"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// Config captures the settings for the volunteer backend client.
type Config struct {
	Timeout time.Duration
	// HTTPClient overrides the default client, mostly for tests.
	HTTPClient *http.Client
}

// Client posts signups to the volunteer backend.
type Client struct {
	http *http.Client
}

// NewClient returns a Client. A default timeout is applied when none is
// provided.
func NewClient(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{http: hc}
}

// Create sends POST {baseURL}/vol/create with req as the JSON body. A
// non-2xx reply is returned as an error together with whatever response
// body could be decoded.
func (c *Client) Create(ctx context.Context, baseURL string, req domain.SignupRequest) (*domain.SignupResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode signup: %w", err)
	}

	url := strings.TrimRight(baseURL, "/") + createPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build signup request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post signup: %w", err)
	}
	defer res.Body.Close()

	var out domain.SignupResponse
	decErr := json.NewDecoder(io.LimitReader(res.Body, maxBodyBytes)).Decode(&out)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		se := &StatusError{Code: res.StatusCode}
		if decErr == nil {
			return &out, se
		}
		return nil, se
	}
	if decErr != nil {
		return nil, fmt.Errorf("decode signup response: %w", decErr)
	}
	return &out, nil
}

// StatusError reports a non-2xx reply from the volunteer backend.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("volunteer backend returned %d %s", e.Code, http.StatusText(e.Code))
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
