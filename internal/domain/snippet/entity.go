package snippet

import "time"

// Snippet is a staff-curated code sample shown in the public gallery.
type Snippet struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Code        string    `gorm:"column:code" json:"code"`
	Language    string    `gorm:"column:language" json:"language"`
	Tags        []string  `gorm:"column:tags;serializer:json" json:"tags"`
	DownloadURL string    `gorm:"column:download_url" json:"downloadUrl"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Snippet) TableName() string { return "codex_snippets" }

const DefaultLanguage = "javascript"
