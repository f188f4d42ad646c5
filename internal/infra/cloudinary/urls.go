package cloudinary

import "fmt"

// 分发地址构造。publicId 是媒体云侧的不透明资产句柄，
// 变换参数拼在路径里由媒体云按需生成衍生资源。

// VideoThumbnailURL 画廊卡片封面：400x225 填充裁剪 jpg
func (c *Client) VideoThumbnailURL(publicID string) string {
	return c.videoURL("w_400,h_225,c_fill,g_auto,q_auto", publicID, ".jpg")
}

// VideoPreviewURL 悬停预览：从 0 秒起的 8 秒自动画质片段
func (c *Client) VideoPreviewURL(publicID string) string {
	return c.videoURL("q_auto,f_auto:video/so_0,du_8", publicID, "")
}

// VideoDownloadURL 下载链接：1920x1080 mp4
func (c *Client) VideoDownloadURL(publicID string) string {
	return c.videoURL("w_1920,h_1080", publicID, ".mp4")
}

// ImageSocialURL 社交分享尺寸的填充裁剪 png
func (c *Client) ImageSocialURL(publicID string, width, height int) string {
	transformation := fmt.Sprintf("w_%d,h_%d,c_fill,g_auto", width, height)
	return fmt.Sprintf("%s/%s/image/upload/%s/%s.png", c.deliveryBase, c.cfg.CloudName, transformation, publicID)
}

func (c *Client) videoURL(transformation, publicID, ext string) string {
	return fmt.Sprintf("%s/%s/video/upload/%s/%s%s", c.deliveryBase, c.cfg.CloudName, transformation, publicID, ext)
}
