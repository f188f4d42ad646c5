package handler

import (
	"io"

	"cloudreel/internal/api/response"
	"cloudreel/internal/service"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	imageService *service.ImageService
}

func NewImageHandler(imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Upload 图片上传
// @Summary 上传图片
// @Description 中转上传图片到媒体云，返回资产句柄和分发地址
// @Tags 图片
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "图片文件"
// @Success 200 {object} dto.ImageUploadResult "上传结果"
// @Failure 400 {object} response.ErrorBody "缺少文件"
// @Failure 401 {object} response.ErrorBody "未认证"
// @Failure 500 {object} response.ErrorBody "媒体云失败"
// @Router /image-upload [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	var (
		file     io.Reader
		filename string
	)
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			response.InternalError(c, "Failed to read uploaded file")
			return
		}
		defer f.Close()
		file = f
		filename = fh.Filename
	}

	result, err := h.imageService.Upload(c.Request.Context(), file, filename)
	if err != nil {
		handleUploadError(c, err)
		return
	}

	response.OK(c, result)
}

// SocialFormats 社交分享预设
// @Summary 社交分享尺寸预设
// @Description 为已上传的图片资产返回全部社交分享尺寸的分发地址
// @Tags 图片
// @Produce json
// @Security BearerAuth
// @Param publicId query string true "资产句柄"
// @Success 200 {object} dto.SocialFormatList "预设列表"
// @Failure 400 {object} response.ErrorBody "缺少 publicId"
// @Failure 401 {object} response.ErrorBody "未认证"
// @Router /image-upload/formats [get]
func (h *ImageHandler) SocialFormats(c *gin.Context) {
	formats, err := h.imageService.SocialFormats(c.Query("publicId"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.OK(c, formats)
}
