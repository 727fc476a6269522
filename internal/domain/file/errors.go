package file

import "errors"

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrDuplicateFilename = errors.New("a file with this filename already exists")
	ErrInvalidFileType   = errors.New("fileType must be image or zip")
	ErrInvalidFileSize   = errors.New("fileSize must be >= 0")
	ErrMissingFields     = errors.New("missing required file fields")
)
