package service

import (
	"strconv"
	"strings"
)

// 两条摄取路径（签名直传 / 服务端中转）共用同一套校验，
// 避免各自为政地重复判断会话、凭证与表单字段。

// ingestInput 摄取前需要校验的字段集合
type ingestInput struct {
	Title        string
	OriginalSize string
	HasFile      bool
	FileSize     int64
}

// requireCloud 凭证齐全才允许任何上传相关操作
func (s *VideoService) requireCloud() error {
	if !s.cloud.Configured() {
		return ErrCloudNotConfigured
	}
	return nil
}

// validateIngest 在触碰任何上游之前完成全部校验
func (s *VideoService) validateIngest(in ingestInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if !in.HasFile {
		return ErrFileRequired
	}

	size := strings.TrimSpace(in.OriginalSize)
	if size == "" {
		return ErrSizeMetadataRequired
	}
	if _, err := strconv.ParseInt(size, 10, 64); err != nil {
		return ErrSizeMetadataRequired
	}

	if in.FileSize > s.maxUploadBytes {
		return ErrFileTooLarge
	}

	return s.requireCloud()
}
