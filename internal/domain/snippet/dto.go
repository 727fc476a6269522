package snippet

type CreateSnippetRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Code        string   `json:"code" binding:"required"`
	Language    string   `json:"language"`
	Tags        []string `json:"tags"`
	DownloadURL string   `json:"downloadUrl"`
}

type UpdateSnippetRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Code        string    `json:"code" binding:"required"`
	Language    *string   `json:"language"`
	Tags        *[]string `json:"tags"`
	DownloadURL *string   `json:"downloadUrl"`
}
