package confluence

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// PageLimit is the page size for content listing requests.
	PageLimit = 50
)

// Page is one wiki page as returned by the content listing API.
type Page struct {
	// Title is the page title.
	Title string

	// URL is the canonical web URL of the page.
	URL string

	// BodyHTML is the storage-format HTML body.
	BodyHTML string
}

// Client is a minimal Confluence REST API client scoped to one base URL
// and one set of credentials.
type Client struct {
	baseURL    string
	creds      domain.Credentials
	httpClient *http.Client
}

// NewClient creates a client for the given base URL and credentials.
// A nil httpClient falls back to a default with DefaultTimeout.
func NewClient(baseURL string, creds domain.Credentials, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		creds:      creds,
		httpClient: httpClient,
	}
}

// contentList mirrors the REST content listing response.
type contentList struct {
	Results []pageJSON `json:"results"`
	Size    int        `json:"size"`
	Links   struct {
		Next string `json:"next"`
	} `json:"_links"`
}

// pageJSON mirrors one content entry in the listing response.
type pageJSON struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Links struct {
		WebUI string `json:"webui"`
	} `json:"_links"`
	Body struct {
		Storage struct {
			Value string `json:"value"`
		} `json:"storage"`
	} `json:"body"`
}

// ListSpacePages enumerates every page in the space, following pagination
// until the listing is exhausted. The full set is collected in memory;
// spaces are bounded in practice and downstream reporting needs the
// complete set.
func (c *Client) ListSpacePages(ctx context.Context, spaceKey string) ([]Page, error) {
	var pages []Page

	for start := 0; ; start += PageLimit {
		list, err := c.listContent(ctx, spaceKey, start)
		if err != nil {
			return nil, err
		}

		for _, p := range list.Results {
			pages = append(pages, Page{
				Title:    p.Title,
				URL:      c.baseURL + p.Links.WebUI,
				BodyHTML: p.Body.Storage.Value,
			})
		}

		if list.Size < PageLimit || list.Links.Next == "" {
			break
		}
	}

	return pages, nil
}

// listContent fetches one page of the space content listing.
func (c *Client) listContent(ctx context.Context, spaceKey string, start int) (*contentList, error) {
	q := url.Values{}
	q.Set("spaceKey", spaceKey)
	q.Set("type", "page")
	q.Set("expand", "body.storage")
	q.Set("limit", strconv.Itoa(PageLimit))
	q.Set("start", strconv.Itoa(start))

	reqURL := fmt.Sprintf("%s/rest/api/content?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	c.authorize(req)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			URL:        reqURL,
		}
	}

	var list contentList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode content listing: %w", err)
	}
	return &list, nil
}

// authorize attaches the appropriate authentication header.
// Username plus API token uses basic auth; a bare secret is sent as a
// bearer token (personal access token style).
func (c *Client) authorize(req *http.Request) {
	if c.creds.Principal != "" {
		req.SetBasicAuth(c.creds.Principal, c.creds.Secret)
		return
	}
	req.Header.Set("Authorization", "Bearer "+c.creds.Secret)
}
