package oss

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	aliyun "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBucket struct {
	putKeys    []string
	deleteKeys []string
	putErr     error
	deleteErr  error
}

func (f *fakeBucket) PutObject(key string, reader io.Reader, options ...aliyun.Option) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.putKeys = append(f.putKeys, key)
	return nil
}

func (f *fakeBucket) DeleteObject(key string, options ...aliyun.Option) error {
	f.deleteKeys = append(f.deleteKeys, key)
	return f.deleteErr
}

func newTestService(bucket *fakeBucket) *ImageService {
	return NewImageService(bucket, "https://bucket.oss-test.example.com", "jebshit", DefaultMaxImageSize)
}

func makeFileHeader(t *testing.T, filename, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(int64(len(body)) + 1024)
	require.NoError(t, err)
	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadRejectsNonImageBeforeNetwork(t *testing.T) {
	bucket := &fakeBucket{}
	svc := newTestService(bucket)

	fh := makeFileHeader(t, "doc.pdf", "application/pdf", []byte("%PDF"))
	_, err := svc.UploadImage(context.Background(), fh, "news", nil)
	assert.ErrorIs(t, err, ErrInvalidType)
	assert.Empty(t, bucket.putKeys, "no object written for a rejected file")
}

func TestUploadRejectsOversizeBeforeNetwork(t *testing.T) {
	bucket := &fakeBucket{}
	svc := newTestService(bucket)

	fh := makeFileHeader(t, "big.jpg", "image/jpeg", bytes.Repeat([]byte{0xAB}, int(DefaultMaxImageSize)+1))
	_, err := svc.UploadImage(context.Background(), fh, "news", nil)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Empty(t, bucket.putKeys)
}

func TestUploadBuildsKeyAndReportsStagedProgress(t *testing.T) {
	bucket := &fakeBucket{}
	svc := newTestService(bucket)

	var stages []int
	fh := makeFileHeader(t, "my photo!.jpg", "image/jpeg", []byte("not-actually-decodable"))
	url, err := svc.UploadImage(context.Background(), fh, "martyrs", func(p int) { stages = append(stages, p) })
	require.NoError(t, err)

	assert.Equal(t, []int{0, 50, 80, 100}, stages)
	require.Len(t, bucket.putKeys, 1)
	key := bucket.putKeys[0]
	assert.True(t, strings.HasPrefix(key, "jebshit/martyrs/"), key)
	assert.True(t, strings.HasSuffix(key, "-my_photo_.jpg"), key)
	assert.Equal(t, svc.PublicURL(key), url)
}

func TestUploadDefaultsDirToImages(t *testing.T) {
	bucket := &fakeBucket{}
	svc := newTestService(bucket)

	fh := makeFileHeader(t, "pic.png", "image/png", []byte("png-bytes"))
	_, err := svc.UploadImage(context.Background(), fh, "", nil)
	require.NoError(t, err)
	require.Len(t, bucket.putKeys, 1)
	assert.True(t, strings.HasPrefix(bucket.putKeys[0], "jebshit/images/"))
}

func TestUploadSurfacesPutFailure(t *testing.T) {
	bucket := &fakeBucket{putErr: errors.New("boom")}
	svc := newTestService(bucket)

	fh := makeFileHeader(t, "pic.png", "image/png", []byte("png-bytes"))
	_, err := svc.UploadImage(context.Background(), fh, "news", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidType)
	assert.NotErrorIs(t, err, ErrTooLarge)
}

func TestExtractKeyRoundTrip(t *testing.T) {
	svc := newTestService(&fakeBucket{})
	key := "jebshit/news/1700000000000-photo.webp"
	got, err := svc.ExtractKey(svc.PublicURL(key))
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestExtractKeyRejectsGarbage(t *testing.T) {
	svc := newTestService(&fakeBucket{})
	_, err := svc.ExtractKey("not a url")
	assert.Error(t, err)
	_, err = svc.ExtractKey("https://host.example.com/")
	assert.Error(t, err)
}

func TestDeleteByPublicURLSwallowsFailures(t *testing.T) {
	bucket := &fakeBucket{deleteErr: errors.New("denied")}
	svc := newTestService(bucket)

	svc.DeleteByPublicURL(context.Background(), svc.PublicURL("jebshit/news/x.webp"))
	svc.DeleteByPublicURL(context.Background(), "garbage://")
	assert.Len(t, bucket.deleteKeys, 1, "malformed URL skipped, failed delete attempted once")
}

func TestDeleteManyskipsBlanks(t *testing.T) {
	bucket := &fakeBucket{}
	svc := newTestService(bucket)

	svc.DeleteManyByPublicURL(context.Background(), []string{
		svc.PublicURL("jebshit/news/a.webp"),
		"",
		"  ",
		svc.PublicURL("jebshit/news/b.webp"),
	})
	assert.Equal(t, []string{"jebshit/news/a.webp", "jebshit/news/b.webp"}, bucket.deleteKeys)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_photo_.jpg", SanitizeFilename("my photo!.jpg"))
	assert.Equal(t, "a-b.png", SanitizeFilename("a-b.png"))
	assert.Equal(t, "file", SanitizeFilename(""))
	assert.Equal(t, "evil.png", SanitizeFilename("../../evil.png"))
}

func TestIsImageHeader(t *testing.T) {
	assert.True(t, IsImageHeader(makeFileHeader(t, "x.bin", "image/webp", []byte{1})))
	assert.False(t, IsImageHeader(makeFileHeader(t, "x.jpg", "video/mp4", []byte{1})))
	assert.True(t, IsImageHeader(makeFileHeader(t, "x.jpg", "", []byte{1})))
	assert.False(t, IsImageHeader(makeFileHeader(t, "x.exe", "", []byte{1})))
}
