package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"codexgallery/internal/domain/file"
)

const (
	MaxUploadBytes = 16 * 1024 * 1024 // 16 MB

	MaxImagesPerRequest = 5
	MaxZipsPerRequest   = 3
)

// Raw image types only; svg and friends are scriptable and stay out.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedZipTypes = map[string]bool{
	"application/zip":              true,
	"application/x-zip-compressed": true,
}

// Service validates an incoming payload, hands it to the storage backend and
// records the resulting reference as a File record.
type Service struct {
	storage  Storage
	files    *file.Service
	maxBytes int64
}

func NewService(storage Storage, files *file.Service, maxBytes int64) *Service {
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}
	return &Service{storage: storage, files: files, maxBytes: maxBytes}
}

// Result is what the browser needs to show the uploaded file.
type Result struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

// Upload runs the full pipeline for one multipart file. Size and type are
// rejected before the storage backend or the database is touched.
func (s *Service) Upload(ctx context.Context, uploadedBy string, fh *multipart.FileHeader) (*Result, error) {
	if fh.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fh.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	// Read one byte past the limit so a lying Content-Length can't sneak
	// an oversized payload through.
	data, err := io.ReadAll(io.LimitReader(src, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	mimeType := detectMimeType(data, fh.Header.Get("Content-Type"))
	fileType, ok := categoryFor(mimeType)
	if !ok {
		return nil, ErrInvalidMimeType
	}

	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(fh.Filename))

	fileURL, err := s.storage.Store(ctx, key, mimeType, data)
	if err != nil {
		return nil, err
	}

	thumbnail := ""
	if fileType == file.TypeImage {
		thumbnail = fileURL
	}

	created, err := s.files.Create(ctx, file.CreateInput{
		Filename:     key,
		OriginalName: fh.Filename,
		FileURL:      fileURL,
		FileType:     fileType,
		MimeType:     mimeType,
		FileSize:     int64(len(data)),
		ThumbnailURL: thumbnail,
		UploadedBy:   uploadedBy,
	})
	if err != nil {
		return nil, err
	}

	return &Result{ID: created.ID, URL: created.FileURL, Name: created.OriginalName}, nil
}

// CheckBatch enforces the per-request count limits before any file is
// processed: 5 images / 3 zips, judged by declared content type.
func CheckBatch(headers []*multipart.FileHeader) error {
	images, zips := 0, 0
	for _, fh := range headers {
		declared := strings.Split(fh.Header.Get("Content-Type"), ";")[0]
		if strings.HasPrefix(declared, "image/") {
			images++
		} else {
			zips++
		}
	}
	if images > MaxImagesPerRequest || zips > MaxZipsPerRequest {
		return ErrTooManyFiles
	}
	return nil
}

// detectMimeType sniffs the first 512 bytes; zip archives that sniff as
// generic octet-stream fall back to the declared type.
func detectMimeType(data []byte, declared string) string {
	sniffLen := len(data)
	if sniffLen > 512 {
		sniffLen = 512
	}
	detected := strings.Split(http.DetectContentType(data[:sniffLen]), ";")[0]

	declared = strings.TrimSpace(strings.Split(declared, ";")[0])
	if detected == "application/octet-stream" && allowedZipTypes[declared] {
		return declared
	}
	return detected
}

func categoryFor(mimeType string) (string, bool) {
	if allowedImageTypes[mimeType] {
		return file.TypeImage, true
	}
	if allowedZipTypes[mimeType] {
		return file.TypeZip, true
	}
	return "", false
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 80 {
		name = name[len(name)-80:]
	}
	if name == "" || name == "." {
		return "file"
	}
	return name
}
