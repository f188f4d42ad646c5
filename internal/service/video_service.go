package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cloudreel/internal/api/dto"
	"cloudreel/internal/infra/cloudinary"
	"cloudreel/internal/model"
	"cloudreel/internal/repository"
	"cloudreel/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type VideoService struct {
	videoRepo      *repository.VideoRepository
	cloud          *cloudinary.Client
	maxUploadBytes int64
}

func NewVideoService(videoRepo *repository.VideoRepository, cloud *cloudinary.Client, maxUploadBytes int64) *VideoService {
	return &VideoService{
		videoRepo:      videoRepo,
		cloud:          cloud,
		maxUploadBytes: maxUploadBytes,
	}
}

// NewUploadSignature 签名直传授权：对 {folder, timestamp} 签名后交给浏览器，
// 文件字节不经过本服务。无任何副作用
func (s *VideoService) NewUploadSignature() (*dto.UploadSignature, error) {
	if err := s.requireCloud(); err != nil {
		return nil, err
	}

	timestamp := time.Now().Unix()
	folder := s.cloud.VideoFolder()

	return &dto.UploadSignature{
		CloudName: s.cloud.CloudName(),
		APIKey:    s.cloud.APIKey(),
		Timestamp: timestamp,
		Folder:    folder,
		Signature: s.cloud.SignUpload(folder, timestamp),
	}, nil
}

// Upload 服务端中转上传：校验、阻塞式上传媒体云、落一条元数据记录
func (s *VideoService) Upload(ctx context.Context, userID string, req *dto.VideoUploadRequest, file io.Reader, fileSize int64, filename string) (*model.Video, error) {
	if err := s.validateIngest(ingestInput{
		Title:        req.Title,
		OriginalSize: req.OriginalSize,
		HasFile:      file != nil,
		FileSize:     fileSize,
	}); err != nil {
		return nil, err
	}

	result, err := s.cloud.UploadVideo(ctx, file, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err.Error())
	}

	var description *string
	if d := strings.TrimSpace(req.Description); d != "" {
		description = &d
	}

	video := &model.Video{
		UserID:         userID,
		Title:          strings.TrimSpace(req.Title),
		Description:    description,
		PublicID:       result.PublicID,
		OriginalSize:   strings.TrimSpace(req.OriginalSize),
		CompressedSize: strconv.FormatInt(result.Bytes, 10),
		Duration:       result.Duration, // 媒体云未返回时保持 0
	}

	if err := s.videoRepo.Create(video); err != nil {
		logger.Error("Persist video record failed",
			zap.String("user_id", userID),
			zap.String("public_id", result.PublicID),
			zap.Error(err),
		)
		return nil, translateCreateError(err)
	}

	return video, nil
}

// List 返回用户的全部视频记录，按创建时间倒序
func (s *VideoService) List(userID string) ([]model.Video, error) {
	return s.videoRepo.ListByUser(userID)
}

// AssetURLs 为一条归属当前用户的记录构造画廊衍生资源地址
func (s *VideoService) AssetURLs(userID, videoID string) (*dto.VideoAssetURLs, error) {
	video, err := s.videoRepo.GetByIDAndUser(videoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	return &dto.VideoAssetURLs{
		ThumbnailURL: s.cloud.VideoThumbnailURL(video.PublicID),
		PreviewURL:   s.cloud.VideoPreviewURL(video.PublicID),
		DownloadURL:  s.cloud.VideoDownloadURL(video.PublicID),
	}, nil
}

// translateCreateError 把已知的表结构漂移症状翻译成可操作的提示，
// 其余数据库错误原样返回。基于错误文案匹配，是提示而非保证
func translateCreateError(err error) error {
	if isSchemaDrift(err) {
		return ErrSchemaOutOfDate
	}
	return err
}

func isSchemaDrift(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, `column "user_id"`) ||
		strings.Contains(msg, "no column named user_id") ||
		strings.Contains(msg, "idx_videos_user_created")
}
