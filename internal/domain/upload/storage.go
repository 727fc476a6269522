package upload

import "context"

// Storage turns raw bytes into a retrievable URL. The rest of the pipeline
// depends only on this contract, never on the backend behind it.
type Storage interface {
	Store(ctx context.Context, key, mimeType string, data []byte) (string, error)
}
