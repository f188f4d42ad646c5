package handler

import (
	"errors"
	"io"

	"cloudreel/internal/api/dto"
	"cloudreel/internal/api/middleware"
	"cloudreel/internal/api/response"
	"cloudreel/internal/service"
	"cloudreel/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Signature 获取直传签名
// @Summary 获取直传授权签名
// @Description 对 {folder, timestamp} 签名，浏览器凭此直接上传媒体云
// @Tags 视频上传
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UploadSignature "签名凭据"
// @Failure 401 {object} response.ErrorBody "未认证"
// @Failure 500 {object} response.ErrorBody "媒体云凭证未配置"
// @Router /video-upload/signature [get]
func (h *VideoHandler) Signature(c *gin.Context) {
	sig, err := h.videoService.NewUploadSignature()
	if err != nil {
		if errors.Is(err, service.ErrCloudNotConfigured) {
			response.InternalError(c, err.Error())
			return
		}
		logger.Error("Build upload signature failed", zap.Error(err))
		response.InternalError(c, "Unknown server error")
		return
	}

	response.OK(c, sig)
}

// Upload 服务端中转上传
// @Summary 上传视频
// @Description 服务端接收文件并中转给媒体云转码管线，成功后落库返回记录
// @Tags 视频上传
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "视频文件"
// @Param title formData string true "标题"
// @Param description formData string false "描述"
// @Param originalSize formData string true "原始字节数"
// @Success 200 {object} model.Video "创建的记录"
// @Failure 400 {object} response.ErrorBody "缺少必填字段"
// @Failure 401 {object} response.ErrorBody "未认证"
// @Failure 500 {object} response.ErrorBody "媒体云或数据库失败"
// @Router /video-upload [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.VideoUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var (
		file     io.Reader
		fileSize int64
		filename string
	)
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			logger.Error("Open uploaded file failed", zap.Error(err))
			response.InternalError(c, "Failed to read uploaded file")
			return
		}
		defer f.Close()
		file = f
		fileSize = fh.Size
		filename = fh.Filename
	}

	video, err := h.videoService.Upload(c.Request.Context(), userID, &req, file, fileSize, filename)
	if err != nil {
		handleUploadError(c, err)
		return
	}

	response.OK(c, video)
}

// List 我的视频列表
// @Summary 视频列表
// @Description 返回当前用户的全部视频记录，按创建时间倒序
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Video "记录列表"
// @Failure 401 {object} response.ErrorBody "未认证"
// @Failure 500 {object} response.ErrorBody "查询失败"
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	videos, err := h.videoService.List(userID)
	if err != nil {
		logger.Error("List videos failed", zap.String("user_id", userID), zap.Error(err))
		response.InternalError(c, "Error fetching videos")
		return
	}

	response.OK(c, videos)
}

// AssetURLs 画廊衍生资源地址
// @Summary 视频衍生资源地址
// @Description 为一条归属当前用户的记录返回封面/预览/下载地址
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path string true "记录 ID"
// @Success 200 {object} dto.VideoAssetURLs "衍生资源地址"
// @Failure 401 {object} response.ErrorBody "未认证"
// @Failure 404 {object} response.ErrorBody "记录不存在或不属于当前用户"
// @Router /videos/{id}/assets [get]
func (h *VideoHandler) AssetURLs(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	urls, err := h.videoService.AssetURLs(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Build asset urls failed", zap.Error(err))
		response.InternalError(c, "Unknown server error")
		return
	}

	response.OK(c, urls)
}

// handleUploadError 按错误分类映射状态码，未识别的数据库错误原样透传文案
func handleUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrFileRequired),
		errors.Is(err, service.ErrSizeMetadataRequired),
		errors.Is(err, service.ErrFileTooLarge),
		errors.Is(err, service.ErrImageFileRequired):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrCloudNotConfigured),
		errors.Is(err, service.ErrSchemaOutOfDate):
		response.InternalError(c, err.Error())
	case errors.Is(err, service.ErrUpstream):
		logger.Error("Media cloud upload failed", zap.Error(err))
		response.InternalError(c, err.Error())
	default:
		logger.Error("Video upload failed", zap.Error(err))
		response.InternalError(c, err.Error())
	}
}
