package oss

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"jebshit_backend/internals/configs"
)

// DefaultMaxImageSize is the ceiling for single-image uploads (5MB).
const DefaultMaxImageSize = int64(5 * 1024 * 1024)

var (
	ErrInvalidType = errors.New("file is not an image")
	ErrTooLarge    = errors.New("image exceeds the maximum allowed size")
)

// ObjectAPI is the slice of the OSS bucket API the service needs.
// *oss.Bucket satisfies it; tests substitute a recorder.
type ObjectAPI interface {
	PutObject(objectKey string, reader io.Reader, options ...oss.Option) error
	DeleteObject(objectKey string, options ...oss.Option) error
}

// ProgressFunc receives coarse staged progress (0, 50, 80, 100).
// It is an estimate, not a byte count.
type ProgressFunc func(pct int)

type ImageService struct {
	bucket  ObjectAPI
	baseURL string // e.g. https://bucket.oss-region.aliyuncs.com
	prefix  string // optional key prefix, no leading/trailing slash
	maxSize int64
}

// NewImageServiceFromEnv wires the service from OSS_ENDPOINT / OSS_BUCKET /
// OSS_ACCESS_KEY_ID / OSS_ACCESS_KEY_SECRET (+ optional OSS_PREFIX).
func NewImageServiceFromEnv() (*ImageService, error) {
	endpoint := configs.GetEnv("OSS_ENDPOINT")
	bucketName := configs.GetEnv("OSS_BUCKET")
	keyID := configs.GetEnv("OSS_ACCESS_KEY_ID")
	keySecret := configs.GetEnv("OSS_ACCESS_KEY_SECRET")
	if endpoint == "" || bucketName == "" || keyID == "" || keySecret == "" {
		return nil, errors.New("OSS env is incomplete")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}

	host := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	return &ImageService{
		bucket:  bucket,
		baseURL: fmt.Sprintf("https://%s.%s", bucketName, host),
		prefix:  strings.Trim(configs.GetEnv("OSS_PREFIX"), "/"),
		maxSize: DefaultMaxImageSize,
	}, nil
}

// NewImageService builds a service around an injected bucket (tests).
func NewImageService(bucket ObjectAPI, baseURL, prefix string, maxSize int64) *ImageService {
	if maxSize <= 0 {
		maxSize = DefaultMaxImageSize
	}
	return &ImageService{bucket: bucket, baseURL: strings.TrimRight(baseURL, "/"), prefix: strings.Trim(prefix, "/"), maxSize: maxSize}
}

// ===================== UPLOAD =====================

// UploadImage validates the file, re-encodes decodable images to WebP and
// writes the object under {prefix}/{dir}/{unixMillis}-{sanitizedName}.
// Validation failures return before any network call is made.
func (s *ImageService) UploadImage(ctx context.Context, fh *multipart.FileHeader, dir string, progress ProgressFunc) (string, error) {
	report := func(p int) {
		if progress != nil {
			progress(p)
		}
	}
	report(0)

	if !IsImageHeader(fh) {
		return "", ErrInvalidType
	}
	if fh.Size > s.maxSize {
		return "", ErrTooLarge
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, s.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(raw)) > s.maxSize {
		return "", ErrTooLarge
	}

	filename := fh.Filename
	var body []byte
	var opts []oss.Option
	if webpBody, err := EncodeWebP(raw, filename); err == nil {
		body = webpBody
		filename = replaceExt(filename, ".webp")
		opts = append(opts, oss.ContentType("image/webp"))
	} else {
		// undecodable but declared image: store the original bytes
		body = raw
		if ct := fh.Header.Get("Content-Type"); ct != "" {
			opts = append(opts, oss.ContentType(ct))
		}
	}
	report(50)

	key := s.buildObjectKey(dir, filename)
	if err := s.bucket.PutObject(key, bytes.NewReader(body), opts...); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	report(80)

	u := s.PublicURL(key)
	report(100)
	return u, nil
}

// ===================== DELETE (best-effort policy) =====================

// DeleteByPublicURL removes the object referenced by a public URL.
// This is the best-effort orphan-cleanup path: a malformed reference or an
// already-deleted object is logged and swallowed, never surfaced, so stale
// references cannot block record deletion.
func (s *ImageService) DeleteByPublicURL(ctx context.Context, publicURL string) {
	key, err := s.ExtractKey(publicURL)
	if err != nil {
		log.Printf("[WARN] oss: skip delete, %v", err)
		return
	}
	if err := ctx.Err(); err != nil {
		log.Printf("[WARN] oss: skip delete of %s: %v", key, err)
		return
	}
	if err := s.bucket.DeleteObject(key); err != nil {
		log.Printf("[WARN] oss: delete %s failed: %v", key, err)
	}
}

// DeleteManyByPublicURL applies the same best-effort policy to a batch.
func (s *ImageService) DeleteManyByPublicURL(ctx context.Context, publicURLs []string) {
	for _, u := range publicURLs {
		if strings.TrimSpace(u) == "" {
			continue
		}
		s.DeleteByPublicURL(ctx, u)
	}
}

// ===================== KEYS & URLS =====================

func (s *ImageService) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

// ExtractKey recovers the object key from a public URL produced by PublicURL.
func (s *ImageService) ExtractKey(publicURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("not a public object URL: %q", publicURL)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if decoded, err := url.PathUnescape(key); err == nil {
		key = decoded
	}
	if key == "" {
		return "", fmt.Errorf("empty object key in %q", publicURL)
	}
	return key, nil
}

func (s *ImageService) buildObjectKey(dir, filename string) string {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeFilename(filename))
	parts := make([]string, 0, 3)
	if s.prefix != "" {
		parts = append(parts, s.prefix)
	}
	if d := strings.Trim(dir, "/"); d != "" {
		parts = append(parts, d)
	} else {
		parts = append(parts, "images")
	}
	parts = append(parts, name)
	return strings.Join(parts, "/")
}

// SanitizeFilename keeps [a-zA-Z0-9.-], everything else becomes '_'.
func SanitizeFilename(name string) string {
	name = path.Base(name)
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

// IsImageHeader checks the declared media type (and falls back to extension).
func IsImageHeader(fh *multipart.FileHeader) bool {
	ct := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if strings.HasPrefix(ct, "image/") {
		return true
	}
	if ct != "" {
		return false
	}
	switch strings.ToLower(path.Ext(fh.Filename)) {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
		return true
	}
	return false
}

func replaceExt(name, ext string) string {
	if old := path.Ext(name); old != "" {
		return strings.TrimSuffix(name, old) + ext
	}
	return name + ext
}
