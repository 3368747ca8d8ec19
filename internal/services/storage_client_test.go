package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"phlegm-site/internal/config"
)

func newTestStorageClient(serverURL string) *StorageClient {
	return NewStorageClient(&config.StorageConfig{
		StorageZone: "chromasmith",
		AccessKey:   "test-key",
		StorageHost: serverURL,
		CDNHost:     "chromasmith-cdn.b-cdn.net",
	})
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"My Photo!!.PNG":    "My_Photo__.PNG",
		"show-2025.jpg":     "show-2025.jpg",
		"weird name (1).mp4": "weird_name__1_.mp4",
		"ünïcode.png":       "_n_code.png",
	}
	for in, want := range cases {
		assert.Equal(t, want, sanitizeFilename(in), "input %q", in)
	}
}

func TestObjectNameIsTimestampPrefixed(t *testing.T) {
	c := newTestStorageClient("http://storage.test")
	c.now = func() time.Time { return time.UnixMilli(1700000000000) }

	name := c.ObjectName("My Photo!!.PNG")
	assert.Equal(t, "1700000000000_My_Photo__.PNG", name)
	assert.Regexp(t, regexp.MustCompile(`^\d+_My_Photo__\.PNG$`), name)
}

func TestUploadSendsAccessKeyAndBuildsCDNURL(t *testing.T) {
	var gotMethod, gotPath, gotKey, gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.Header.Get("AccessKey")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := newTestStorageClient(server.URL)
	c.now = func() time.Time { return time.UnixMilli(1700000000000) }

	result, err := c.Upload(context.Background(), "phleghm-website", "band pic.jpg", "image/jpeg", strings.NewReader("jpegbytes"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/chromasmith/phleghm-website/1700000000000_band_pic.jpg", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "image/jpeg", gotContentType)
	assert.Equal(t, "jpegbytes", gotBody)

	assert.Equal(t, "https://chromasmith-cdn.b-cdn.net/phleghm-website/1700000000000_band_pic.jpg", result.URL)
	assert.Equal(t, "1700000000000_band_pic.jpg", result.Filename)
}

func TestUploadNon2xxFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	c := newTestStorageClient(server.URL)
	_, err := c.Upload(context.Background(), "phleghm-website", "x.jpg", "image/jpeg", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestListFilesFiltersAndSortsNewestFirst(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("AccessKey"))
		assert.Equal(t, "/chromasmith/phleghm-website/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"ObjectName": "hero", "IsDirectory": true, "LastChanged": "2025-08-01T10:00:00"},
			{"ObjectName": "notes.txt", "Length": 12, "LastChanged": "2025-08-02T10:00:00"},
			{"ObjectName": "old.jpg", "Length": 1024, "LastChanged": "2025-07-01T10:00:00"},
			{"ObjectName": "clip.mp4", "Length": 4096, "LastChanged": "2025-08-03T10:00:00"}
		]`)
	}))
	defer server.Close()

	c := newTestStorageClient(server.URL)
	files, err := c.ListFiles(context.Background(), "phleghm-website")
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "clip.mp4", files[0].Name)
	assert.True(t, files[0].IsVideo)
	assert.Equal(t, "old.jpg", files[1].Name)
	assert.False(t, files[1].IsVideo)
	assert.Equal(t, "https://chromasmith-cdn.b-cdn.net/phleghm-website/clip.mp4", files[0].URL)
}

func TestListFilesNon2xxFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer server.Close()

	c := newTestStorageClient(server.URL)
	_, err := c.ListFiles(context.Background(), "missing-folder")
	assert.Error(t, err)
}
