package pathstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dgallion1/docnav/internal/content"
	"github.com/dgallion1/docnav/internal/doctree"
	"github.com/dgallion1/docnav/internal/parser"
)

// Client reads page metadata from the pathstore HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	prefix     string
	limit      int
	httpClient *http.Client
}

// NewClient creates a client that lists pages stored under prefix.
func NewClient(baseURL, apiKey, prefix string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		prefix:  strings.Trim(prefix, "/"),
		limit:   10000,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NodeResponse is a single node from a prefix scan.
type NodeResponse struct {
	Key   string `json:"key_path"`
	Value any    `json:"value"`
}

// ListChildren does a prefix scan under the given key.
func (c *Client) ListChildren(ctx context.Context, key string, limit int) ([]NodeResponse, error) {
	u := c.baseURL + "/kv/" + key + "/*"
	if limit > 0 {
		u += "?limit=" + url.QueryEscape(fmt.Sprintf("%d", limit))
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("list children: %w", err)}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("list children %s: status %d: %s", key, resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, &RetryableError{Err: err}
		}
		return nil, err
	}

	var result struct {
		Nodes []NodeResponse `json:"nodes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode children: %w", err)
	}
	return result.Nodes, nil
}

// Pages lists every page record under the client's prefix. Each node value
// is an object with "path" and optional "title", "sidebar_title" and
// "sidebar_order"; other keys are kept as extra metadata. When "path" is
// absent the key below the prefix is used.
func (c *Client) Pages(ctx context.Context) ([]doctree.Page, error) {
	nodes, err := c.ListChildren(ctx, c.prefix, c.limit)
	if err != nil {
		return nil, err
	}

	pages := make([]doctree.Page, 0, len(nodes))
	for _, n := range nodes {
		page, err := c.pageFromNode(n)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func (c *Client) pageFromNode(n NodeResponse) (doctree.Page, error) {
	fields, ok := n.Value.(map[string]any)
	if !ok {
		return doctree.Page{}, fmt.Errorf("node %s: value is %T, want object", n.Key, n.Value)
	}

	rawPath, _ := fields["path"].(string)
	if rawPath == "" {
		rawPath = strings.TrimPrefix(strings.TrimPrefix(n.Key, c.prefix), "/")
	}
	page := doctree.Page{Path: content.NormalizePath(rawPath)}
	if page.Path == "" {
		return doctree.Page{}, fmt.Errorf("node %s: no page path", n.Key)
	}

	for key, v := range fields {
		switch key {
		case "path":
		case "title":
			page.Meta.Title, _ = v.(string)
		case "sidebar_title":
			page.Meta.SidebarTitle, _ = v.(string)
		case "sidebar_order":
			if v == nil {
				continue
			}
			order, err := parser.ParseOrder(fmt.Sprint(v))
			if err != nil {
				return doctree.Page{}, fmt.Errorf("node %s: %w", n.Key, err)
			}
			page.Meta.SidebarOrder = order
		default:
			if page.Meta.Extra == nil {
				page.Meta.Extra = make(map[string]any)
			}
			page.Meta.Extra[key] = v
		}
	}
	return page, nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// RetryableError marks a failure worth retrying: transport errors, 429 and
// 5xx responses.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }
