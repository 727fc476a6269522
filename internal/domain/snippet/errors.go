package snippet

import "errors"

var (
	ErrSnippetNotFound = errors.New("snippet not found")
	ErrMissingFields   = errors.New("title, description and code are required")
)
