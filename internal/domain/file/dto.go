package file

type CreateFileRequest struct {
	Filename     string `json:"filename" binding:"required"`
	OriginalName string `json:"originalName" binding:"required"`
	FileURL      string `json:"fileUrl" binding:"required"`
	FileType     string `json:"fileType" binding:"required"`
	MimeType     string `json:"mimeType" binding:"required"`
	FileSize     *int64 `json:"fileSize" binding:"required"`
	ThumbnailURL string `json:"thumbnailUrl"`
}
