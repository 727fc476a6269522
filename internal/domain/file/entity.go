package file

import "time"

// File is the metadata record behind every gallery download. The binary
// itself lives wherever the upload backend put it — FileURL is either an
// object-store URL or an inline data URL.
type File struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	Filename     string    `gorm:"column:filename;uniqueIndex" json:"filename"`
	OriginalName string    `gorm:"column:original_name" json:"originalName"`
	FileURL      string    `gorm:"column:file_url" json:"fileUrl"`
	FileType     string    `gorm:"column:file_type" json:"fileType"`
	MimeType     string    `gorm:"column:mime_type" json:"mimeType"`
	FileSize     int64     `gorm:"column:file_size" json:"fileSize"`
	ThumbnailURL string    `gorm:"column:thumbnail_url" json:"thumbnailUrl"`
	UploadedBy   string    `gorm:"column:uploaded_by" json:"uploadedBy"`
	Downloads    int64     `gorm:"column:downloads" json:"downloads"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (File) TableName() string { return "codex_files" }

const (
	TypeImage = "image"
	TypeZip   = "zip"
)
