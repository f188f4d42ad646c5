package dto

// ImageUploadResult 图片上传响应
type ImageUploadResult struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// SocialFormat 社交分享尺寸预设及其分发地址
type SocialFormat struct {
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	AspectRatio string `json:"aspectRatio"`
	URL         string `json:"url"`
}

// SocialFormatList 社交分享预设列表响应
type SocialFormatList struct {
	Formats []SocialFormat `json:"formats"`
}
