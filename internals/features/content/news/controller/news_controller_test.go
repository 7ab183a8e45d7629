package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	aliyun "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	newsModel "jebshit_backend/internals/features/content/news/model"
	helperOSS "jebshit_backend/internals/helpers/oss"
)

type fakeBucket struct {
	deleteKeys []string
}

func (f *fakeBucket) PutObject(key string, reader io.Reader, options ...aliyun.Option) error {
	return nil
}

func (f *fakeBucket) DeleteObject(key string, options ...aliyun.Option) error {
	f.deleteKeys = append(f.deleteKeys, key)
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *fakeBucket, *helperOSS.ImageService) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&newsModel.NewsModel{}))

	bucket := &fakeBucket{}
	images := helperOSS.NewImageService(bucket, "https://cdn.jebshit.example.com", "jebshit", 0)
	ctrl := NewNewsController(db, images)

	app := fiber.New()
	app.Get("/news", ctrl.List)
	app.Post("/news", ctrl.Create)
	app.Put("/news/:id", ctrl.Update)
	app.Delete("/news/:id", ctrl.Delete)
	return app, bucket, images
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp, out
}

func TestCreateDefaultsToDraftAndStamps(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, out := doJSON(t, app, "POST", "/news", fiber.Map{
		"title":   "Water project update",
		"content": "The new well is operational.",
		"date":    "2024-05-01",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := out["data"].(map[string]any)
	assert.Equal(t, "draft", data["status"])
	assert.Equal(t, "2024-05-01", data["date"])
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, data["created_at"], data["updated_at"])
}

func TestCreateValidation(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, out := doJSON(t, app, "POST", "/news", fiber.Map{"description": "no title or content"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, false, out["success"])
	assert.NotEmpty(t, out["errors"])
}

func TestListFiltersByQuery(t *testing.T) {
	app, _, _ := newTestApp(t)

	for _, title := range []string{"Ramadan schedule", "Road works", "ramadan drive"} {
		resp, _ := doJSON(t, app, "POST", "/news", fiber.Map{"title": title, "content": "c"})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, out := doJSON(t, app, "GET", "/news?q=ramadan", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, out["data"].([]any), 2)

	resp, out = doJSON(t, app, "GET", "/news", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, out["data"].([]any), 3)
}

func TestUpdateCleansRemovedMedia(t *testing.T) {
	app, bucket, images := newTestApp(t)

	keep := images.PublicURL("jebshit/news/keep.webp")
	drop := images.PublicURL("jebshit/news/drop.webp")

	resp, out := doJSON(t, app, "POST", "/news", fiber.Map{
		"title":      "With media",
		"content":    "c",
		"media_urls": []string{keep, drop},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := out["data"].(map[string]any)["id"].(string)

	resp, out = doJSON(t, app, "PUT", "/news/"+id, fiber.Map{"media_urls": []string{keep}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := out["data"].(map[string]any)
	assert.Len(t, data["media_urls"].([]any), 1)
	assert.Equal(t, []string{"jebshit/news/drop.webp"}, bucket.deleteKeys)
}

func TestUpdateUnknownIDIs404(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, _ := doJSON(t, app, "PUT", "/news/6ba7b810-9dad-11d1-80b4-00c04fd430c8", fiber.Map{"title": "x"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/news/not-a-uuid", fiber.Map{"title": "x"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteRemovesBlobsThenRecord(t *testing.T) {
	app, bucket, images := newTestApp(t)

	u := images.PublicURL("jebshit/news/only.webp")
	resp, out := doJSON(t, app, "POST", "/news", fiber.Map{
		"title": "Doomed", "content": "c", "media_urls": []string{u},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := out["data"].(map[string]any)["id"].(string)

	resp, _ = doJSON(t, app, "DELETE", "/news/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"jebshit/news/only.webp"}, bucket.deleteKeys)

	resp, out = doJSON(t, app, "GET", "/news", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, out["data"])

	// deleting again still succeeds
	resp, _ = doJSON(t, app, "DELETE", "/news/"+id, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
