package router

import (
	"cloudreel/internal/api/handler"
	"cloudreel/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	videoHandler *handler.VideoHandler,
	imageHandler *handler.ImageHandler,
) {
	api := r.Group("/api", middleware.AuthRequired())

	// --- 视频上传模块 ---
	api.GET("/video-upload/signature", videoHandler.Signature)
	api.POST("/video-upload", videoHandler.Upload)

	// --- 视频画廊模块 ---
	api.GET("/videos", videoHandler.List)
	api.GET("/videos/:id/assets", videoHandler.AssetURLs)

	// --- 图片模块 ---
	api.POST("/image-upload", imageHandler.Upload)
	api.GET("/image-upload/formats", imageHandler.SocialFormats)
}
