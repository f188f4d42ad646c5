package cloudinary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"cloudreel/internal/config"
	"cloudreel/pkg/logger"

	"go.uber.org/zap"
)

const (
	defaultAPIBase      = "https://api.cloudinary.com"
	defaultDeliveryBase = "https://res.cloudinary.com"
)

// Client 媒体云客户端，负责签名、中转上传和分发地址构造
type Client struct {
	cfg          *config.CloudinaryConfig
	apiBase      string
	deliveryBase string
	httpClient   *http.Client
}

// New 创建指向官方接入点的客户端
func New(cfg *config.CloudinaryConfig) *Client {
	return NewWithEndpoints(cfg, defaultAPIBase, defaultDeliveryBase, nil)
}

// NewWithEndpoints 创建指定接入点的客户端，测试时可指向本地伪服务
func NewWithEndpoints(cfg *config.CloudinaryConfig, apiBase, deliveryBase string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		cfg:          cfg,
		apiBase:      apiBase,
		deliveryBase: deliveryBase,
		httpClient:   httpClient,
	}
}

// Configured 上传凭证是否齐全
func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// VideoFolder 视频资产的固定上传目录
func (c *Client) VideoFolder() string {
	return c.cfg.VideoFolder
}

// CloudName 媒体云账户名
func (c *Client) CloudName() string {
	return c.cfg.CloudName
}

// APIKey 媒体云 API Key（允许下发给客户端用于直传）
func (c *Client) APIKey() string {
	return c.cfg.APIKey
}

// UploadResult 媒体云上传响应中本服务消费的字段
type UploadResult struct {
	PublicID  string  `json:"public_id"`
	Bytes     int64   `json:"bytes"`
	Duration  float64 `json:"duration"`
	Format    string  `json:"format"`
	SecureURL string  `json:"secure_url"`
}

// apiError 媒体云错误响应体
type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UploadVideo 中转上传视频到转码管线，阻塞直到媒体云返回结果
func (c *Client) UploadVideo(ctx context.Context, file io.Reader, filename string) (*UploadResult, error) {
	return c.upload(ctx, "video", c.cfg.VideoFolder, file, filename)
}

// UploadImage 中转上传图片
func (c *Client) UploadImage(ctx context.Context, file io.Reader, filename string) (*UploadResult, error) {
	return c.upload(ctx, "image", c.cfg.ImageFolder, file, filename)
}

func (c *Client) upload(ctx context.Context, resourceType, folder string, file io.Reader, filename string) (*UploadResult, error) {
	timestamp := time.Now().Unix()
	signature := c.SignUpload(folder, timestamp)

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	// 请求体边生成边发送，避免把整个文件读入内存
	go func() {
		fields := map[string]string{
			"api_key":   c.cfg.APIKey,
			"timestamp": strconv.FormatInt(timestamp, 10),
			"folder":    folder,
			"signature": signature,
		}
		for name, value := range fields {
			if err := mw.WriteField(name, value); err != nil {
				pw.CloseWithError(err)
				return
			}
		}

		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	uploadURL := fmt.Sprintf("%s/v1_1/%s/%s/upload", c.apiBase, c.cfg.CloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, pr)
	if err != nil {
		return nil, fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uploading to media cloud: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upload response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("media cloud rejected upload: %s", apiErr.Error.Message)
		}
		return nil, fmt.Errorf("media cloud rejected upload: status %d", resp.StatusCode)
	}

	var result UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding upload response: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("media cloud response missing public_id")
	}

	logger.Info("Media cloud upload completed",
		zap.String("resource_type", resourceType),
		zap.String("public_id", result.PublicID),
		zap.Int64("bytes", result.Bytes),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &result, nil
}
