package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "jebshit_backend/internals/helpers"
	helperOSS "jebshit_backend/internals/helpers/oss"
	"jebshit_backend/internals/helpers/youtube"
	"jebshit_backend/internals/i18n"
	"jebshit_backend/internals/metrics"
	"jebshit_backend/internals/middlewares"
)

// MediaController handles standalone blob uploads: the editor uploads media
// first, then saves records carrying the returned references.
type MediaController struct {
	Images *helperOSS.ImageService
	Videos *youtube.Service
}

func NewMediaController(images *helperOSS.ImageService, videos *youtube.Service) *MediaController {
	return &MediaController{Images: images, Videos: videos}
}

// ===================== IMAGE =====================

// POST /api/a/media/images  (multipart: file, optional dir)
func (h *MediaController) UploadImage(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing file")
	}

	url, err := h.Images.UploadImage(c.UserContext(), fh, c.FormValue("dir"), nil)
	if err != nil {
		metrics.MediaUploads.WithLabelValues("image", "failure").Inc()
		switch {
		case errors.Is(err, helperOSS.ErrInvalidType):
			return helper.JsonError(c, fiber.StatusBadRequest, i18n.T(lang, "upload.invalid_type"))
		case errors.Is(err, helperOSS.ErrTooLarge):
			return helper.JsonError(c, fiber.StatusBadRequest, i18n.T(lang, "upload.too_large"))
		default:
			return helper.JsonError(c, fiber.StatusBadGateway, i18n.T(lang, "upload.failed"))
		}
	}

	metrics.MediaUploads.WithLabelValues("image", "success").Inc()
	return helper.JsonCreated(c, i18n.T(lang, "saved"), fiber.Map{"url": url})
}

// DELETE /api/a/media/images  (json: {"url": "..."})
// Blob deletion is best-effort; the response is success regardless.
func (h *MediaController) DeleteImage(c *fiber.Ctx) error {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing url")
	}
	h.Images.DeleteByPublicURL(c.UserContext(), req.URL)
	return helper.JsonOK(c, i18n.T(middlewares.Lang(c), "deleted"), nil)
}

// ===================== VIDEO =====================

// POST /api/a/media/videos  (multipart: file, title, optional description)
func (h *MediaController) UploadVideo(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing file")
	}
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing title")
	}

	youtubeID, err := h.Videos.Upload(c.UserContext(), fh, title, strings.TrimSpace(c.FormValue("description")))
	if err != nil {
		metrics.MediaUploads.WithLabelValues("video", "failure").Inc()
		switch {
		case errors.Is(err, youtube.ErrInvalidType):
			return helper.JsonError(c, fiber.StatusBadRequest, i18n.T(lang, "upload.invalid_type"))
		case errors.Is(err, youtube.ErrTooLarge):
			return helper.JsonError(c, fiber.StatusBadRequest, i18n.T(lang, "upload.too_large"))
		case errors.Is(err, youtube.ErrNotConfigured):
			return helper.JsonError(c, fiber.StatusServiceUnavailable, i18n.T(lang, "upload.failed"))
		default:
			return helper.JsonError(c, fiber.StatusBadGateway, i18n.T(lang, "upload.failed"))
		}
	}

	metrics.MediaUploads.WithLabelValues("video", "success").Inc()
	return helper.JsonCreated(c, i18n.T(lang, "saved"), fiber.Map{"youtube_id": youtubeID})
}

// ===================== BATCH =====================

type batchFailure struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// POST /api/a/media/batch
// Multipart form: files (repeated), dir, title, max_images, max_videos,
// current_images, current_videos. Files are partitioned by declared MIME type,
// uploads stop when the remaining slots run out, and one failed file never
// aborts the rest of the batch.
func (h *MediaController) UploadBatch(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)
	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid multipart form")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing files")
	}

	dir := c.FormValue("dir")
	title := strings.TrimSpace(c.FormValue("title"))
	imageSlots := remainingSlots(c.FormValue("max_images"), c.FormValue("current_images"))
	videoSlots := remainingSlots(c.FormValue("max_videos"), c.FormValue("current_videos"))

	var (
		imageURLs  []string
		youtubeIDs []string
		failures   []batchFailure
	)

	for _, fh := range files {
		switch {
		case helperOSS.IsImageHeader(fh):
			if imageSlots == 0 {
				failures = append(failures, batchFailure{fh.Filename, i18n.T(lang, "upload.max_reached")})
				continue
			}
			url, err := h.Images.UploadImage(c.UserContext(), fh, dir, nil)
			if err != nil {
				metrics.MediaUploads.WithLabelValues("image", "failure").Inc()
				failures = append(failures, batchFailure{fh.Filename, uploadReason(lang, err)})
				continue
			}
			metrics.MediaUploads.WithLabelValues("image", "success").Inc()
			imageURLs = append(imageURLs, url)
			if imageSlots > 0 {
				imageSlots--
			}
		case youtube.IsVideoHeader(fh):
			if videoSlots == 0 {
				failures = append(failures, batchFailure{fh.Filename, i18n.T(lang, "upload.max_reached")})
				continue
			}
			id, err := h.Videos.Upload(c.UserContext(), fh, title, "")
			if err != nil {
				metrics.MediaUploads.WithLabelValues("video", "failure").Inc()
				failures = append(failures, batchFailure{fh.Filename, uploadReason(lang, err)})
				continue
			}
			metrics.MediaUploads.WithLabelValues("video", "success").Inc()
			youtubeIDs = append(youtubeIDs, id)
			if videoSlots > 0 {
				videoSlots--
			}
		default:
			failures = append(failures, batchFailure{fh.Filename, i18n.T(lang, "upload.invalid_type")})
		}
	}

	return helper.JsonOK(c, i18n.T(lang, "saved"), fiber.Map{
		"uploaded":    len(imageURLs) + len(youtubeIDs),
		"image_urls":  imageURLs,
		"youtube_ids": youtubeIDs,
		"failures":    failures,
	})
}

// remainingSlots computes max − current, clamped at zero. A missing or
// unparseable max means unlimited (-1).
func remainingSlots(maxVal, currentVal string) int {
	max, err := parseCount(maxVal)
	if err != nil || max < 0 {
		return -1
	}
	current, err := parseCount(currentVal)
	if err != nil || current < 0 {
		current = 0
	}
	if current >= max {
		return 0
	}
	return max - current
}

func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1, errors.New("empty")
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1, errors.New("not a number")
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

func uploadReason(lang string, err error) string {
	switch {
	case errors.Is(err, helperOSS.ErrInvalidType), errors.Is(err, youtube.ErrInvalidType):
		return i18n.T(lang, "upload.invalid_type")
	case errors.Is(err, helperOSS.ErrTooLarge), errors.Is(err, youtube.ErrTooLarge):
		return i18n.T(lang, "upload.too_large")
	default:
		return i18n.T(lang, "upload.failed")
	}
}
