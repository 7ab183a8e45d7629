package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	aliyun "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helperOSS "jebshit_backend/internals/helpers/oss"
	"jebshit_backend/internals/helpers/youtube"
)

type fakeBucket struct {
	putKeys    []string
	deleteKeys []string
}

func (f *fakeBucket) PutObject(key string, reader io.Reader, options ...aliyun.Option) error {
	f.putKeys = append(f.putKeys, key)
	return nil
}

func (f *fakeBucket) DeleteObject(key string, options ...aliyun.Option) error {
	f.deleteKeys = append(f.deleteKeys, key)
	return nil
}

func newMediaApp(t *testing.T, videoEndpoint string) (*fiber.App, *fakeBucket) {
	t.Helper()
	bucket := &fakeBucket{}
	images := helperOSS.NewImageService(bucket, "https://cdn.jebshit.example.com", "jebshit", 0)
	ctrl := NewMediaController(images, youtube.New(videoEndpoint))

	app := fiber.New()
	app.Post("/media/images", ctrl.UploadImage)
	app.Delete("/media/images", ctrl.DeleteImage)
	app.Post("/media/videos", ctrl.UploadVideo)
	app.Post("/media/batch", ctrl.UploadBatch)
	return app, bucket
}

type filePart struct {
	field, name, contentType string
	body                     []byte
}

func multipartRequest(t *testing.T, path string, fields map[string]string, files []filePart) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		if f.contentType != "" {
			h.Set("Content-Type", f.contentType)
		}
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.body)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestUploadImageReturnsURL(t *testing.T) {
	app, bucket := newMediaApp(t, "")

	req := multipartRequest(t, "/media/images", map[string]string{"dir": "news"}, []filePart{
		{"file", "pic.png", "image/png", []byte("png-bytes")},
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	out := decode(t, resp)
	url := out["data"].(map[string]any)["url"].(string)
	assert.Contains(t, url, "/jebshit/news/")
	require.Len(t, bucket.putKeys, 1)
}

func TestUploadImageRejectsWrongTypeBeforeStorage(t *testing.T) {
	app, bucket := newMediaApp(t, "")

	req := multipartRequest(t, "/media/images", nil, []filePart{
		{"file", "doc.pdf", "application/pdf", []byte("%PDF")},
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, bucket.putKeys)
}

func TestDeleteImageAlwaysSucceeds(t *testing.T) {
	app, bucket := newMediaApp(t, "")

	body, _ := json.Marshal(fiber.Map{"url": "https://cdn.jebshit.example.com/jebshit/news/x.webp"})
	req := httptest.NewRequest("DELETE", "/media/images", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"jebshit/news/x.webp"}, bucket.deleteKeys)
}

func TestUploadVideoProxiesEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"youtubeId":"vid42"}`))
	}))
	defer srv.Close()
	app, _ := newMediaApp(t, srv.URL)

	req := multipartRequest(t, "/media/videos", map[string]string{"title": "Eid prayer"}, []filePart{
		{"file", "clip.mp4", "video/mp4", []byte("mp4-bytes")},
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decode(t, resp)
	assert.Equal(t, "vid42", out["data"].(map[string]any)["youtube_id"])
}

func TestUploadVideoUpstreamFailureIs502(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"encode failed"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()
	app, _ := newMediaApp(t, srv.URL)

	req := multipartRequest(t, "/media/videos", map[string]string{"title": "t"}, []filePart{
		{"file", "clip.mp4", "video/mp4", []byte("mp4-bytes")},
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestBatchPartitionsAndEnforcesSlots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"youtubeId":"vid1"}`))
	}))
	defer srv.Close()
	app, bucket := newMediaApp(t, srv.URL)

	req := multipartRequest(t, "/media/batch", map[string]string{
		"dir":            "stories",
		"title":          "Story media",
		"max_images":     "4",
		"current_images": "3", // one image slot left
		"max_videos":     "3",
		"current_videos": "0",
	}, []filePart{
		{"files", "a.png", "image/png", []byte("a")},
		{"files", "b.png", "image/png", []byte("b")}, // over the ceiling
		{"files", "clip.mp4", "video/mp4", []byte("v")},
		{"files", "notes.txt", "text/plain", []byte("n")},
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode(t, resp)
	data := out["data"].(map[string]any)
	assert.Equal(t, float64(2), data["uploaded"])
	assert.Len(t, data["image_urls"].([]any), 1)
	assert.Len(t, data["youtube_ids"].([]any), 1)
	assert.Len(t, data["failures"].([]any), 2, "over-ceiling image and text file fail individually")
	assert.Len(t, bucket.putKeys, 1)
}
