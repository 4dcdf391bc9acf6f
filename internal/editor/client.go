package editor

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

const (
	// DefaultProbeTimeout bounds the liveness check. Probing only lists
	// commands, so it gets a tighter budget than a real dispatch.
	DefaultProbeTimeout = 1500 * time.Millisecond
	// DefaultDispatchTimeout bounds a command dispatch. The editor does real
	// work before answering, so it tolerates a little more than a probe.
	DefaultDispatchTimeout = 2 * time.Second

	commandPath = "/command/"
)

// Client talks to the command endpoint of a Defold editor instance on
// localhost. The zero value is not usable; use NewClient.
type Client struct {
	host     string
	probe    *http.Client
	dispatch *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHost overrides the target host (default "localhost").
func WithHost(host string) ClientOption {
	return func(c *Client) {
		c.host = host
	}
}

// WithProbeTimeout overrides the liveness probe timeout.
func WithProbeTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.probe.Timeout = d
	}
}

// WithDispatchTimeout overrides the command dispatch timeout.
func WithDispatchTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.dispatch.Timeout = d
	}
}

// NewClient creates a client with default timeouts.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		host:     "localhost",
		probe:    &http.Client{Timeout: DefaultProbeTimeout},
		dispatch: &http.Client{Timeout: DefaultDispatchTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Probe reports whether a live editor instance answers on port. Every
// failure mode (connection refused, timeout, non-2xx) collapses to false;
// callers decide fallback from the boolean alone.
func (c *Client) Probe(ctx context.Context, port string) bool {
	url := fmt.Sprintf("http://%s:%s%s", c.host, port, commandPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.probe.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return is2xx(resp.StatusCode)
}

// Dispatch sends command to the editor on port and reports success. The
// underlying error, if any, is logged for diagnostics only and never
// surfaced to the caller.
func (c *Client) Dispatch(ctx context.Context, port string, command Command) bool {
	url := fmt.Sprintf("http://%s:%s%s%s", c.host, port, commandPath, command)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		log.Printf("dispatch %s: %v", command, err)
		return false
	}

	resp, err := c.dispatch.Do(req)
	if err != nil {
		log.Printf("dispatch %s to port %s: %v", command, port, err)
		return false
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		log.Printf("dispatch %s to port %s: editor returned %d", command, port, resp.StatusCode)
		return false
	}

	return true
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
