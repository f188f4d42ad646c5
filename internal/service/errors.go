package service

import "errors"

// 错误文案直接作为响应体返回，属于对外契约的一部分
var (
	ErrTitleRequired        = errors.New("Title is required")
	ErrFileRequired         = errors.New("Video file is required")
	ErrSizeMetadataRequired = errors.New("Video size metadata is required")
	ErrFileTooLarge         = errors.New("File size too large. Maximum allowed size is 70 MB.")
	ErrImageFileRequired    = errors.New("Image file is required")
	ErrPublicIDRequired     = errors.New("Cloudinary publicId is required")

	ErrCloudNotConfigured = errors.New("Cloudinary credentials not configured on server")
	ErrSchemaOutOfDate    = errors.New("Database is not migrated yet. Run the schema migration in production.")

	ErrVideoNotFound = errors.New("Video not found")

	// ErrUpstream 包装媒体云调用失败，上游消息原样透传给调用方
	ErrUpstream = errors.New("media cloud upload failed")
)
