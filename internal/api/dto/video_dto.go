package dto

// VideoUploadRequest 服务端中转上传请求（multipart/form-data）
// 必填校验在 service 层完成，保证两条摄取路径的文案一致
type VideoUploadRequest struct {
	Title        string `form:"title"`
	Description  string `form:"description"`
	OriginalSize string `form:"originalSize"`
}

// UploadSignature 直传授权凭据，浏览器拿到后直接上传媒体云
type UploadSignature struct {
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	Timestamp int64  `json:"timestamp"`
	Folder    string `json:"folder"`
	Signature string `json:"signature"`
}

// VideoAssetURLs 画廊卡片消费的衍生资源地址
type VideoAssetURLs struct {
	ThumbnailURL string `json:"thumbnailUrl"`
	PreviewURL   string `json:"previewUrl"`
	DownloadURL  string `json:"downloadUrl"`
}
