package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Cloudinary CloudinaryConfig `mapstructure:"cloudinary"`
	Session    SessionConfig    `mapstructure:"session"`
	Log        LogConfig        `mapstructure:"log"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Mode    string `mapstructure:"mode"`
	Port    int    `mapstructure:"port"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
}

// DSN 返回PostgreSQL连接字符串
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// CloudinaryConfig 媒体云配置
// 凭证缺失不阻止进程启动，上传相关接口会在请求时返回 500
type CloudinaryConfig struct {
	CloudName      string `mapstructure:"cloud_name"`
	APIKey         string `mapstructure:"api_key"`
	APISecret      string `mapstructure:"api_secret"`
	VideoFolder    string `mapstructure:"video_folder"`
	ImageFolder    string `mapstructure:"image_folder"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
}

// Configured 判断上传所需的三项凭证是否齐全
func (c *CloudinaryConfig) Configured() bool {
	return strings.TrimSpace(c.CloudName) != "" &&
		strings.TrimSpace(c.APIKey) != "" &&
		strings.TrimSpace(c.APISecret) != ""
}

// SessionConfig 会话令牌配置（令牌由身份提供方使用共享密钥签发）
type SessionConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// ExpireDuration 返回令牌有效期
func (s *SessionConfig) ExpireDuration() time.Duration {
	return time.Duration(s.ExpireHours) * time.Hour
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// 全局配置实例
var globalConfig *Config

// Load 加载配置文件
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// 读取环境变量
	v.AutomaticEnv()

	// 媒体云与会话密钥沿用部署环境的惯用变量名
	_ = v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	_ = v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	_ = v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")
	_ = v.BindEnv("session.secret", "SESSION_JWT_SECRET")

	v.SetDefault("cloudinary.video_folder", "video-uploads")
	v.SetDefault("cloudinary.image_folder", "image-uploads")
	v.SetDefault("cloudinary.max_upload_bytes", 70*1024*1024)
	v.SetDefault("session.expire_hours", 24)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	globalConfig = &cfg

	return &cfg, nil
}

// Get 获取全局配置
func Get() *Config {
	if globalConfig == nil {
		panic("config not loaded, please call Load() first")
	}
	return globalConfig
}

// GetApp 获取应用配置
func GetApp() *AppConfig {
	return &Get().App
}

// GetDatabase 获取数据库配置
func GetDatabase() *DatabaseConfig {
	return &Get().Database
}

// GetCloudinary 获取媒体云配置
func GetCloudinary() *CloudinaryConfig {
	return &Get().Cloudinary
}

// GetSession 获取会话配置
func GetSession() *SessionConfig {
	return &Get().Session
}

// GetLog 获取日志配置
func GetLog() *LogConfig {
	return &Get().Log
}
