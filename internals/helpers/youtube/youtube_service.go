// Adapter for the external video processing endpoint. Videos are submitted as
// a multipart POST and come back as a YouTube content id; there is no delete —
// removing a reference from a record never touches the hosted asset.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"jebshit_backend/internals/configs"
)

// DefaultMaxVideoSize is the ceiling for a single video upload (100MB).
const DefaultMaxVideoSize = int64(100 * 1024 * 1024)

var (
	ErrInvalidType   = errors.New("file is not a video")
	ErrTooLarge      = errors.New("video exceeds the maximum allowed size")
	ErrNotConfigured = errors.New("video upload endpoint is not configured")
)

type Service struct {
	Endpoint string
	Client   *http.Client
	MaxSize  int64
}

func NewFromEnv() *Service {
	return New(configs.YouTubeUploadURL)
}

func New(endpoint string) *Service {
	return &Service{
		Endpoint: strings.TrimSpace(endpoint),
		Client:   &http.Client{Timeout: 10 * time.Minute},
		MaxSize:  DefaultMaxVideoSize,
	}
}

type uploadResponse struct {
	YouTubeID string `json:"youtubeId"`
	Message   string `json:"message"`
}

// Upload validates the file locally, then streams it with its metadata to the
// processing endpoint. Returns the external content id for embedding.
func (s *Service) Upload(ctx context.Context, fh *multipart.FileHeader, title, description string) (string, error) {
	if s.Endpoint == "" {
		return "", ErrNotConfigured
	}
	if !IsVideoHeader(fh) {
		return "", ErrInvalidType
	}
	if fh.Size > s.MaxSize {
		return "", ErrTooLarge
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		defer pw.Close()
		defer mw.Close()
		part, err := mw.CreateFormFile("file", fh.Filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		src, err := fh.Open()
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		defer src.Close()
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(err)
			return
		}
		_ = mw.WriteField("title", title)
		if description != "" {
			_ = mw.WriteField("description", description)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, pr)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("video upload: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e uploadResponse
		if json.Unmarshal(body, &e) == nil && e.Message != "" {
			return "", fmt.Errorf("video upload failed: %s", e.Message)
		}
		return "", fmt.Errorf("video upload failed with status %d", resp.StatusCode)
	}

	var out uploadResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("video upload: bad response: %w", err)
	}
	if strings.TrimSpace(out.YouTubeID) == "" {
		return "", errors.New("video upload: no youtubeId in response")
	}
	return out.YouTubeID, nil
}

// IsVideoHeader checks the declared media type (and falls back to extension).
func IsVideoHeader(fh *multipart.FileHeader) bool {
	ct := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if strings.HasPrefix(ct, "video/") {
		return true
	}
	if ct != "" {
		return false
	}
	switch strings.ToLower(path.Ext(fh.Filename)) {
	case ".mp4", ".mov", ".webm", ".ogg":
		return true
	}
	return false
}
