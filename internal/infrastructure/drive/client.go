package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fireflysocial/events-service/internal/application/event"
)

// Client resolves drive file ids against the media service.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: client}
}

type fileResp struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	URL     string `json:"url"`
}

func (c *Client) Get(ctx context.Context, fileID string) (*event.StoredFile, error) {
	u := fmt.Sprintf("%s/internal/files/%s", c.baseURL, url.PathEscape(fileID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build drive request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch drive file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("drive returned status: %d", resp.StatusCode)
	}

	var f fileResp
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode drive file: %w", err)
	}
	return &event.StoredFile{ID: f.ID, OwnerID: f.OwnerID, URL: f.URL}, nil
}
