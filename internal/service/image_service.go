package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloudreel/internal/api/dto"
	"cloudreel/internal/infra/cloudinary"
)

// socialPreset 社交分享尺寸预设
type socialPreset struct {
	Name        string
	Width       int
	Height      int
	AspectRatio string
}

var socialPresets = []socialPreset{
	{Name: "Instagram Square (1:1)", Width: 1080, Height: 1080, AspectRatio: "1:1"},
	{Name: "Instagram Portrait (4:5)", Width: 1080, Height: 1350, AspectRatio: "4:5"},
	{Name: "Twitter Post (16:9)", Width: 1200, Height: 675, AspectRatio: "16:9"},
	{Name: "Twitter Header (3:1)", Width: 1500, Height: 500, AspectRatio: "3:1"},
	{Name: "Facebook Cover (205:78)", Width: 820, Height: 312, AspectRatio: "205:78"},
}

type ImageService struct {
	cloud *cloudinary.Client
}

func NewImageService(cloud *cloudinary.Client) *ImageService {
	return &ImageService{cloud: cloud}
}

// Upload 中转上传图片，返回资产句柄和原始分发地址
func (s *ImageService) Upload(ctx context.Context, file io.Reader, filename string) (*dto.ImageUploadResult, error) {
	if file == nil {
		return nil, ErrImageFileRequired
	}
	if !s.cloud.Configured() {
		return nil, ErrCloudNotConfigured
	}

	result, err := s.cloud.UploadImage(ctx, file, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err.Error())
	}

	return &dto.ImageUploadResult{
		PublicID: result.PublicID,
		URL:      result.SecureURL,
	}, nil
}

// SocialFormats 为一个已上传的图片资产构造全部社交分享预设地址
func (s *ImageService) SocialFormats(publicID string) (*dto.SocialFormatList, error) {
	if strings.TrimSpace(publicID) == "" {
		return nil, ErrPublicIDRequired
	}

	formats := make([]dto.SocialFormat, 0, len(socialPresets))
	for _, p := range socialPresets {
		formats = append(formats, dto.SocialFormat{
			Name:        p.Name,
			Width:       p.Width,
			Height:      p.Height,
			AspectRatio: p.AspectRatio,
			URL:         s.cloud.ImageSocialURL(publicID, p.Width, p.Height),
		})
	}

	return &dto.SocialFormatList{Formats: formats}, nil
}
