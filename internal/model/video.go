package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video 视频元数据记录，创建后只读
// JSON 字段名是对外契约的一部分，保持 camelCase
type Video struct {
	ID             string    `gorm:"type:varchar(36);primaryKey;comment:记录标识" json:"id"`
	UserID         string    `gorm:"size:64;not null;index:idx_videos_user_created,priority:1;comment:归属用户" json:"userId"`
	Title          string    `gorm:"size:200;not null;comment:视频标题" json:"title"`
	Description    *string   `gorm:"type:text;comment:视频描述" json:"description"`
	PublicID       string    `gorm:"size:255;not null;comment:媒体云资产标识" json:"publicId"`
	OriginalSize   string    `gorm:"size:32;not null;comment:原始字节数（文本编码）" json:"originalSize"`
	CompressedSize string    `gorm:"size:32;not null;comment:转码后字节数（文本编码）" json:"compressedSize"`
	Duration       float64   `gorm:"default:0;comment:时长（秒）" json:"duration"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index:idx_videos_user_created,priority:2;comment:创建时间" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updatedAt"`
}

func (Video) TableName() string {
	return "videos"
}

// BeforeCreate 创建时生成记录标识
func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
