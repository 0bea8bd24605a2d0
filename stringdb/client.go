package stringdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/ppinet/builder"
)

const (
	// DefaultBaseURL is the public STRING API host.
	DefaultBaseURL = "https://string-db.org"

	// SpeciesHuman is the NCBI taxonomy identifier for Homo sapiens.
	SpeciesHuman = 9606

	// networkPath is the TSV network endpoint.
	networkPath = "/api/tsv/network"

	// defaultTimeout bounds a single request.
	defaultTimeout = 30 * time.Second

	// maxErrorBody limits how much of a failed response is quoted in errors.
	maxErrorBody = 512
)

// Client fetches interaction networks from a STRING API endpoint.
// A Client is safe for concurrent use.
type Client struct {
	BaseURL string
	Species int
	Caller  string // optional caller_identity sent to STRING
	HTTP    *http.Client
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.HTTP = h }
}

// WithCaller sets the caller_identity query parameter STRING asks API users to send.
func WithCaller(id string) ClientOption {
	return func(c *Client) { c.Caller = id }
}

// NewClient returns a Client for baseURL and species. A trailing slash on
// baseURL is ignored.
func NewClient(baseURL string, species int, opts ...ClientOption) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Species: species,
		HTTP:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NetworkURL returns the request URL for proteins. Identifiers are joined by
// a carriage return ("%0d"), the separator STRING expects.
func (c *Client) NetworkURL(proteins []string) string {
	ids := make([]string, len(proteins))
	for i, p := range proteins {
		ids[i] = url.QueryEscape(p)
	}
	q := "identifiers=" + strings.Join(ids, "%0d") + "&species=" + strconv.Itoa(c.Species)
	if c.Caller != "" {
		q += "&caller_identity=" + url.QueryEscape(c.Caller)
	}

	return c.BaseURL + networkPath + "?" + q
}

// Fetch retrieves the interaction network among proteins and decodes it.
//
// Errors: ErrNoProteins for an empty list, ErrNetwork for transport
// failures, ErrStatus for any non-200 reply, and Decode errors for a
// malformed body. Context cancellation is returned as ctx.Err().
func (c *Client) Fetch(ctx context.Context, proteins []string) ([]builder.Record, error) {
	if len(proteins) == 0 {
		return nil, fmt.Errorf("Fetch: %w", ErrNoProteins)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.NetworkURL(proteins), nil)
	if err != nil {
		return nil, fmt.Errorf("Fetch: %w", err)
	}
	req.Header.Set("Accept", "text/tab-separated-values")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("Fetch: %w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("Fetch: %w: %d %s", ErrStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	records, err := Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Fetch: %w", err)
	}

	return records, nil
}
