package antithesis

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/antithesis-trigger/pkg/domain/interfaces"
	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

const defaultTimeout = 30 * time.Second

// maxResponseBody bounds how much of the response is kept for logging
const maxResponseBody = 64 * 1024

type client struct {
	httpClient *http.Client
}

// Option is a functional option for the launch client
type Option func(*client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(x *client) {
		x.httpClient = c
	}
}

// WithTimeout sets the timeout of a launch request
func WithTimeout(d time.Duration) Option {
	return func(x *client) {
		x.httpClient.Timeout = d
	}
}

// NewClient creates a launch client
func NewClient(opts ...Option) interfaces.Launcher {
	c := &client{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type launchRequest struct {
	Params model.RequestBody `json:"params"`
}

// Launch posts the request body to the launch endpoint
func (c *client) Launch(ctx context.Context, url string, body model.RequestBody, auth model.BasicAuth) (*model.LaunchResponse, error) {
	raw, err := json.Marshal(launchRequest{Params: body.Pruned()})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal launch request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create launch request", goerr.V("url", url))
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(auth.Username, auth.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send launch request", goerr.V("url", url))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read launch response",
			goerr.V("url", url),
			goerr.V("status_code", resp.StatusCode),
		)
	}

	return &model.LaunchResponse{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
