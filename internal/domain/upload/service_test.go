package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"codexgallery/internal/domain/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

var (
	pngPayload = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x00}, 64)...)
	zipPayload = append([]byte("PK\x03\x04"), bytes.Repeat([]byte{0x00}, 64)...)
)

// fakeStorage records calls so tests can assert rejects happen before storage.
type fakeStorage struct {
	calls int
	url   string
	err   error
}

func (f *fakeStorage) Store(_ context.Context, key, _ string, _ []byte) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.url != "" {
		return f.url, nil
	}
	return "http://cdn.local/" + key, nil
}

func setupFileService(t *testing.T) *file.Service {
	t.Helper()
	dsn := fmt.Sprintf("file:upload_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&file.File{}))
	return file.NewService(file.NewRepository(db))
}

func makeFileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	headers := form.File["file"]
	require.Len(t, headers, 1)
	return headers[0]
}

func TestUploadImageCreatesRecord(t *testing.T) {
	files := setupFileService(t)
	storage := &fakeStorage{}
	svc := NewService(storage, files, 0)

	fh := makeFileHeader(t, "logo.png", "image/png", pngPayload)
	result, err := svc.Upload(context.Background(), "staff", fh)
	require.NoError(t, err)

	assert.Equal(t, 1, storage.calls)
	assert.Equal(t, "logo.png", result.Name)
	assert.Contains(t, result.URL, "logo.png")

	listed, err := files.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, file.TypeImage, listed[0].FileType)
	assert.Equal(t, "image/png", listed[0].MimeType)
	assert.Equal(t, int64(len(pngPayload)), listed[0].FileSize)
	assert.Equal(t, int64(0), listed[0].Downloads)
	assert.Equal(t, "staff", listed[0].UploadedBy)
	assert.Equal(t, listed[0].FileURL, listed[0].ThumbnailURL)
}

func TestUploadZipCreatesRecordWithoutThumbnail(t *testing.T) {
	files := setupFileService(t)
	svc := NewService(&fakeStorage{}, files, 0)

	fh := makeFileHeader(t, "bundle.zip", "application/zip", zipPayload)
	_, err := svc.Upload(context.Background(), "anonymous", fh)
	require.NoError(t, err)

	listed, _ := files.List(context.Background())
	require.Len(t, listed, 1)
	assert.Equal(t, file.TypeZip, listed[0].FileType)
	assert.Empty(t, listed[0].ThumbnailURL)
	assert.Equal(t, "anonymous", listed[0].UploadedBy)
}

func TestUploadRejectsOversizedBeforeStorage(t *testing.T) {
	files := setupFileService(t)
	storage := &fakeStorage{}
	svc := NewService(storage, files, 128)

	fh := makeFileHeader(t, "big.png", "image/png", append(pngPayload, bytes.Repeat([]byte{0x01}, 256)...))
	_, err := svc.Upload(context.Background(), "staff", fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Equal(t, 0, storage.calls)

	listed, _ := files.List(context.Background())
	assert.Empty(t, listed)
}

func TestUploadRejectsDisallowedTypeBeforeStorage(t *testing.T) {
	files := setupFileService(t)
	storage := &fakeStorage{}
	svc := NewService(storage, files, 0)

	fh := makeFileHeader(t, "notes.txt", "text/plain", []byte("just some text, definitely not an archive"))
	_, err := svc.Upload(context.Background(), "staff", fh)
	assert.ErrorIs(t, err, ErrInvalidMimeType)
	assert.Equal(t, 0, storage.calls)

	listed, _ := files.List(context.Background())
	assert.Empty(t, listed)
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	files := setupFileService(t)
	svc := NewService(&fakeStorage{}, files, 0)

	fh := makeFileHeader(t, "empty.png", "image/png", nil)
	_, err := svc.Upload(context.Background(), "staff", fh)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestInlineStorageRoundTrip(t *testing.T) {
	files := setupFileService(t)
	svc := NewService(NewInlineStorage(), files, 0)

	fh := makeFileHeader(t, "pixel.png", "image/png", pngPayload)
	result, err := svc.Upload(context.Background(), "staff", fh)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(result.URL, "data:image/png;base64,"), "unexpected url %q", result.URL)
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(result.URL, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, pngPayload, decoded)
}

func TestCheckBatchLimits(t *testing.T) {
	image := func() *multipart.FileHeader {
		return makeFileHeader(t, "a.png", "image/png", pngPayload)
	}
	zip := func() *multipart.FileHeader {
		return makeFileHeader(t, "a.zip", "application/zip", zipPayload)
	}

	ok := []*multipart.FileHeader{image(), image(), zip()}
	assert.NoError(t, CheckBatch(ok))

	tooManyImages := []*multipart.FileHeader{image(), image(), image(), image(), image(), image()}
	assert.ErrorIs(t, CheckBatch(tooManyImages), ErrTooManyFiles)

	tooManyZips := []*multipart.FileHeader{zip(), zip(), zip(), zip()}
	assert.ErrorIs(t, CheckBatch(tooManyZips), ErrTooManyFiles)
}

func TestUploadDetectsTypeFromContentNotFilename(t *testing.T) {
	files := setupFileService(t)
	svc := NewService(&fakeStorage{}, files, 0)

	// A zip payload declared as an image still lands in the zip category.
	fh := makeFileHeader(t, "sneaky.png", "image/png", zipPayload)
	_, err := svc.Upload(context.Background(), "staff", fh)
	require.NoError(t, err)

	listed, _ := files.List(context.Background())
	require.Len(t, listed, 1)
	assert.Equal(t, file.TypeZip, listed[0].FileType)
}
