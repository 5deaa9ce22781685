package cover

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// lookupTimeout bounds a single cover lookup so a slow upstream cannot
// hold up the surrounding request.
const lookupTimeout = 3 * time.Second

// Client queries the Google Books volumes API for candidate cover images.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient creates a Client against the given base URL, for example
// "https://www.googleapis.com/books/v1". rps caps outbound lookups.
func NewClient(baseURL string, rps int) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: lookupTimeout,
		},
		baseURL: baseURL,
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), rps),
	}
}

// volumesResponse matches the subset of the volumes API we read.
type volumesResponse struct {
	Items []struct {
		VolumeInfo struct {
			ImageLinks struct {
				Thumbnail      string `json:"thumbnail"`
				SmallThumbnail string `json:"smallThumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// FetchCover looks up a cover image URL for the given title and author.
// It returns an empty string when the lookup succeeds but no image link is
// available, and an error on any transport or decode failure. A single
// attempt is made; callers absorb failure by keeping their original cover.
func (c *Client) FetchCover(ctx context.Context, title, author string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	query := url.QueryEscape(title + " " + author)
	u := fmt.Sprintf("%s/volumes?q=%s&maxResults=1", c.baseURL, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("volumes lookup returned status %d", resp.StatusCode)
	}

	var body volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	if len(body.Items) == 0 {
		return "", nil
	}

	// Prefer the larger variant over the small thumbnail.
	links := body.Items[0].VolumeInfo.ImageLinks
	if links.Thumbnail != "" {
		return links.Thumbnail, nil
	}
	return links.SmallThumbnail, nil
}
