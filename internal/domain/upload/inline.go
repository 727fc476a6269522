package upload

import (
	"context"
	"encoding/base64"
	"fmt"
)

// InlineStorage is the no-external-service fallback: the payload is encoded
// into a base64 data URL that is stored directly in the File record.
type InlineStorage struct{}

func NewInlineStorage() InlineStorage { return InlineStorage{} }

func (InlineStorage) Store(_ context.Context, _ string, mimeType string, data []byte) (string, error) {
	if mimeType == "" {
		return "", fmt.Errorf("inline storage requires a mime type")
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
