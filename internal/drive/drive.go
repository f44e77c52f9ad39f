package drive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"
)

var (
	ErrInvalidFolderURL = errors.New("invalid drive folder url")
	ErrSyncUnavailable  = errors.New("drive listing unavailable")
)

var folderIDPattern = regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`)

// ExtractFolderID pulls the folder id out of a shared-folder URL, e.g.
// https://drive.google.com/drive/folders/FOLDER_ID?usp=sharing.
func ExtractFolderID(folderURL string) (string, error) {
	m := folderIDPattern.FindStringSubmatch(folderURL)
	if m == nil {
		return "", ErrInvalidFolderURL
	}
	return m[1], nil
}

var digitRuns = regexp.MustCompile(`\d+`)

// ExtractFileOrder derives a display-order key from a filename: the value
// of the last digit run ("IMG_0042.jpg" -> 42). Filenames without digits
// fall back to the sum of their character codes — deterministic, but only a
// total order, not a meaningful sort.
func ExtractFileOrder(filename string) int {
	runs := digitRuns.FindAllString(filename, -1)
	if len(runs) > 0 {
		if n, err := strconv.Atoi(runs[len(runs)-1]); err == nil {
			return n
		}
	}
	sum := 0
	for _, r := range filename {
		sum += int(r)
	}
	return sum
}

// ViewURL is the browser view page for a file.
func ViewURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/file/d/%s/view", fileID)
}

// ThumbnailURL renders the file at the requested pixel width.
func ThumbnailURL(fileID string, width int) string {
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w%d", fileID, width)
}

// DirectURL is the direct-download form of a file link.
func DirectURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/uc?export=download&id=%s", fileID)
}

// File is one image entry of a folder listing.
type File struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
}

// Client lists public Drive folders through the v3 REST API. Public
// folders only need an API key; private folders are out of scope.
type Client struct {
	APIKey  string
	BaseURL string

	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    "https://www.googleapis.com/drive/v3",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ListImages returns the image-typed files under a folder, ordered by name.
func (c *Client) ListImages(ctx context.Context, folderID string) ([]File, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("%w: api key not configured", ErrSyncUnavailable)
	}

	q := url.Values{}
	q.Set("q", fmt.Sprintf("'%s' in parents and mimeType contains 'image/'", folderID))
	q.Set("key", c.APIKey)
	q.Set("fields", "files(id,name,mimeType)")
	q.Set("orderBy", "name")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/files?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyncUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyncUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: drive api returned %d", ErrSyncUnavailable, resp.StatusCode)
	}

	var body struct {
		Files []File `json:"files"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyncUnavailable, err)
	}
	return body.Files, nil
}
