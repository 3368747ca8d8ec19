package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"sort"
	"strings"
	"time"

	"phlegm-site/internal/config"
	"phlegm-site/internal/models"
)

// ErrUploadFailed is the only error surfaced for a failed upload. There is
// no partial-upload recovery and no retry; details go to the log.
var ErrUploadFailed = errors.New("upload failed")

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".webm": true,
}

// StorageClient talks to the object-storage HTTP API (PUT to upload, GET to
// list) and keeps the AccessKey credential out of the browser.
type StorageClient struct {
	zone        string
	accessKey   string
	storageHost string
	cdnHost     string
	httpClient  *http.Client
	now         func() time.Time
}

func NewStorageClient(cfg *config.StorageConfig) *StorageClient {
	return &StorageClient{
		zone:        cfg.StorageZone,
		accessKey:   cfg.AccessKey,
		storageHost: strings.TrimRight(cfg.StorageHost, "/"),
		cdnHost:     cfg.CDNHost,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		now:         time.Now,
	}
}

func (c *StorageClient) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

// ObjectName builds a collision-resistant object name: a millisecond
// timestamp prefix plus the original filename with everything outside
// [A-Za-z0-9.-] replaced by underscores.
func (c *StorageClient) ObjectName(filename string) string {
	return fmt.Sprintf("%d_%s", c.now().UnixMilli(), sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Upload PUTs the raw bytes to {storageHost}/{zone}/{folder}/{name} and
// returns the public CDN URL.
func (c *StorageClient) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (*UploadResult, error) {
	objectName := c.ObjectName(filename)
	uploadURL := fmt.Sprintf("%s/%s/%s/%s", c.storageHost, c.zone, folder, objectName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, body)
	if err != nil {
		log.Printf("Error building storage upload request: %v", err)
		return nil, ErrUploadFailed
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("AccessKey", c.accessKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Storage upload failed: %v", err)
		return nil, ErrUploadFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("Storage upload failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		return nil, ErrUploadFailed
	}

	return &UploadResult{
		URL:      fmt.Sprintf("https://%s/%s/%s", c.cdnHost, folder, objectName),
		Filename: objectName,
	}, nil
}

type storageObject struct {
	Guid        string `json:"Guid"`
	ObjectName  string `json:"ObjectName"`
	Length      int64  `json:"Length"`
	LastChanged string `json:"LastChanged"`
	IsDirectory bool   `json:"IsDirectory"`
}

// ListFiles enumerates the folder and returns recognized media files, newest
// first by modification time.
func (c *StorageClient) ListFiles(ctx context.Context, folder string) ([]models.MediaFile, error) {
	listURL := fmt.Sprintf("%s/%s/%s/", c.storageHost, c.zone, folder)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build storage list request: %w", err)
	}
	req.Header.Set("AccessKey", c.accessKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage files: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("Storage list failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		return nil, fmt.Errorf("failed to list storage files: status=%d", resp.StatusCode)
	}

	var objects []storageObject
	if err := json.NewDecoder(resp.Body).Decode(&objects); err != nil {
		return nil, fmt.Errorf("failed to decode storage listing: %w", err)
	}

	files := []models.MediaFile{}
	for _, obj := range objects {
		if obj.IsDirectory {
			continue
		}
		ext := strings.ToLower(path.Ext(obj.ObjectName))
		if !imageExtensions[ext] && !videoExtensions[ext] {
			continue
		}
		files = append(files, models.MediaFile{
			Name:     obj.ObjectName,
			URL:      fmt.Sprintf("https://%s/%s/%s", c.cdnHost, folder, obj.ObjectName),
			Size:     obj.Length,
			Modified: obj.LastChanged,
			IsVideo:  videoExtensions[ext],
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return parseStorageTime(files[i].Modified).After(parseStorageTime(files[j].Modified))
	})

	return files, nil
}

func parseStorageTime(s string) time.Time {
	for _, layout := range []string{"2006-01-02T15:04:05.999", "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
