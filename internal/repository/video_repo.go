package repository

import (
	"cloudreel/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// GetByIDAndUser 根据记录 ID + 归属用户查询（权限校验用）
func (r *VideoRepository) GetByIDAndUser(id, userID string) (*model.Video, error) {
	var video model.Video
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// ListByUser 返回用户的全部视频记录，按创建时间倒序
func (r *VideoRepository) ListByUser(userID string) ([]model.Video, error) {
	videos := make([]model.Video, 0)
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}
