package main

import (
	"fmt"
	"net/http"
	"time"

	"cloudreel/internal/api/handler"
	"cloudreel/internal/api/middleware"
	"cloudreel/internal/api/router"
	"cloudreel/internal/config"
	"cloudreel/internal/infra/cloudinary"
	"cloudreel/internal/infra/database"
	"cloudreel/internal/model"
	"cloudreel/internal/repository"
	"cloudreel/internal/service"
	"cloudreel/pkg/logger"

	_ "cloudreel/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title CloudReel API
// @version 1.0
// @description 媒体云视频上传与画廊后端

// @contact.name API Support
// @contact.email support@cloudreel.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(&model.Video{}); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 媒体云客户端。凭证缺失只告警，上传接口在请求时返回 500
	cloud := cloudinary.New(&cfg.Cloudinary)
	if !cloud.Configured() {
		logger.Warn("Cloudinary credentials missing, upload endpoints will reject requests")
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 中转上传的请求体上限略高于文件上限，给表单字段留余量
	r.MaxMultipartMemory = 8 << 20

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	videoRepo := repository.NewVideoRepository(db)

	videoService := service.NewVideoService(videoRepo, cloud, cfg.Cloudinary.MaxUploadBytes)
	imageService := service.NewImageService(cloud)

	videoHandler := handler.NewVideoHandler(videoService)
	imageHandler := handler.NewImageHandler(imageService)

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, videoHandler, imageHandler)

	// 启动服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("cloudinary_folder", cfg.Cloudinary.VideoFolder),
		zap.Bool("cloudinary_configured", cloud.Configured()),
	)

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
