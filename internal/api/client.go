package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/shopvault/shopvault/internal/config"
	"github.com/shopvault/shopvault/internal/models"
)

// fileLibraryQuery pages through the files connection. The node is a
// union; each variant exposes its own URL-bearing field, so every
// recognized variant gets an inline fragment. Cursors are requested
// per edge because pagination resumes after the last consumed edge,
// not after a page.
const fileLibraryQuery = `
query FileLibrary($first: Int!, $after: String) {
  files(first: $first, after: $after) {
    pageInfo { hasNextPage }
    edges {
      cursor
      node {
        __typename
        ... on GenericFile { id createdAt url }
        ... on MediaImage { id createdAt image { url } }
        ... on Video { id createdAt originalSource { url } }
        ... on ExternalVideo { id createdAt embeddedUrl }
        ... on Model3d { id createdAt originalSource { url } }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Client talks to the store's Admin GraphQL endpoint.
type Client struct {
	httpClient  *nethttp.Client
	endpoint    string
	accessToken string
	pageSize    int
	pageTimeout time.Duration
}

// NewClient creates an Admin API client from the given configuration.
func NewClient(cfg *config.Config) *Client {
	// Shared client plumbing (connection reuse, sane transport
	// defaults) comes from retryablehttp, but RetryMax is zero: a
	// page fetch gets exactly one attempt, and a failure aborts the
	// whole enumeration rather than resuming mid-stream with a
	// possibly invalidated cursor. The passthrough error handler
	// hands back the response itself on retryable statuses (429,
	// 5xx); without it the client would swallow the response and the
	// status/body would never reach the protocol-error branch.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		httpClient:  retryClient.StandardClient(),
		endpoint:    cfg.Endpoint(),
		accessToken: cfg.Shopify.AccessToken,
		pageSize:    cfg.Archive.PageSize,
		pageTimeout: cfg.PageTimeout(),
	}
}

// FetchAll walks the files connection from the start of the stream to
// the last page and returns every node in edge order.
//
// The loop runs while pageInfo.hasNextPage holds; the continuation
// cursor is always the cursor of the last edge of the page just
// consumed. Any failure is fatal: a *TransportError when the endpoint
// is unreachable or a page fetch times out, a *ProtocolError when the
// response is malformed or carries a GraphQL error list.
func (c *Client) FetchAll(ctx context.Context) ([]models.FileNode, error) {
	var all []models.FileNode
	var cursor *string

	for {
		conn, err := c.fetchPage(ctx, cursor)
		if err != nil {
			return nil, err
		}

		for _, edge := range conn.Edges {
			all = append(all, edge.Node)
		}

		if !conn.PageInfo.HasNextPage {
			return all, nil
		}
		if len(conn.Edges) == 0 {
			// hasNextPage with an empty page leaves no edge to
			// resume after; treat it as a broken response instead
			// of spinning on the same cursor.
			return nil, &ProtocolError{Body: "hasNextPage is true but page has no edges"}
		}
		last := conn.Edges[len(conn.Edges)-1].Cursor
		cursor = &last
	}
}

// fetchPage issues one files query starting after the given cursor.
// The request is bounded by the page timeout; exceeding it aborts the
// in-flight request.
func (c *Client) fetchPage(ctx context.Context, after *string) (*models.FilesConnection, error) {
	reqBody := graphQLRequest{
		Query: fileLibraryQuery,
		Variables: map[string]any{
			"first": c.pageSize,
			"after": func() any {
				if after == nil || *after == "" {
					return nil
				}
				return *after
			}(),
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal files query: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.pageTimeout)
	defer cancel()

	req, err := nethttp.NewRequestWithContext(reqCtx, nethttp.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build files query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProtocolError{Status: resp.StatusCode, Body: string(body)}
	}

	var out models.FilesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &ProtocolError{Body: string(body)}
	}
	if len(out.Errors) > 0 {
		return nil, &ProtocolError{Errors: out.Errors}
	}

	return &out.Data.Files, nil
}
