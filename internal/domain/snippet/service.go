package snippet

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Title       string
	Description string
	Code        string
	Language    string
	Tags        []string
	DownloadURL string
}

// UpdateInput mirrors CreateInput except the optional fields are pointers:
// nil keeps the stored value, a non-nil value replaces it.
type UpdateInput struct {
	Title       string
	Description string
	Code        string
	Language    *string
	Tags        *[]string
	DownloadURL *string
}

func (s *Service) List(ctx context.Context, limit int) ([]*Snippet, error) {
	return s.repo.List(ctx, limit)
}

func (s *Service) Get(ctx context.Context, id string) (*Snippet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Snippet, error) {
	if hasBlank(in.Title, in.Description, in.Code) {
		return nil, ErrMissingFields
	}

	language := strings.TrimSpace(in.Language)
	if language == "" {
		language = DefaultLanguage
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	sn := &Snippet{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Code:        in.Code,
		Language:    language,
		Tags:        tags,
		DownloadURL: in.DownloadURL,
	}

	if err := s.repo.Create(ctx, sn); err != nil {
		return nil, err
	}
	return sn, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Snippet, error) {
	if hasBlank(in.Title, in.Description, in.Code) {
		return nil, ErrMissingFields
	}

	sn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sn.Title = in.Title
	sn.Description = in.Description
	sn.Code = in.Code
	if in.Language != nil && strings.TrimSpace(*in.Language) != "" {
		sn.Language = *in.Language
	}
	if in.Tags != nil {
		sn.Tags = *in.Tags
	}
	if in.DownloadURL != nil {
		sn.DownloadURL = *in.DownloadURL
	}

	if err := s.repo.Update(ctx, sn); err != nil {
		return nil, err
	}
	return sn, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSnippetNotFound
	}
	return nil
}

func hasBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
