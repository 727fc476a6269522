package file

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries everything a File record needs. Downloads is not part
// of the input — new records always start at zero.
type CreateInput struct {
	Filename     string
	OriginalName string
	FileURL      string
	FileType     string
	MimeType     string
	FileSize     int64
	ThumbnailURL string
	UploadedBy   string
}

func (s *Service) List(ctx context.Context) ([]*File, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*File, error) {
	if strings.TrimSpace(in.Filename) == "" ||
		strings.TrimSpace(in.OriginalName) == "" ||
		strings.TrimSpace(in.FileURL) == "" ||
		strings.TrimSpace(in.MimeType) == "" {
		return nil, ErrMissingFields
	}
	if in.FileType != TypeImage && in.FileType != TypeZip {
		return nil, ErrInvalidFileType
	}
	if in.FileSize < 0 {
		return nil, ErrInvalidFileSize
	}

	uploadedBy := strings.TrimSpace(in.UploadedBy)
	if uploadedBy == "" {
		uploadedBy = "admin"
	}

	f := &File{
		ID:           uuid.New().String(),
		Filename:     in.Filename,
		OriginalName: in.OriginalName,
		FileURL:      in.FileURL,
		FileType:     in.FileType,
		MimeType:     in.MimeType,
		FileSize:     in.FileSize,
		ThumbnailURL: in.ThumbnailURL,
		UploadedBy:   uploadedBy,
		Downloads:    0,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// GetAndRecordDownload returns the record as it was loaded and then bumps the
// download counter. The returned Downloads value does not include this
// request's increment; the next read observes it.
func (s *Service) GetAndRecordDownload(ctx context.Context, id string) (*File, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementDownloads(ctx, id); err != nil {
		// The caller already has the payload; losing one count is acceptable.
		log.Printf("file: failed to record download for %s: %v", id, err)
	}

	return f, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFileNotFound
	}
	return nil
}
