package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server  ServerConfig
	Upload  UploadConfig
	Storage StorageConfig
	Redis   RedisConfig
	SMTP    SMTPConfig
	Auth    AuthConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type UploadConfig struct {
	TempDir     string
	UploadsDir  string
	MaxFileSize int64 // bytes
}

type StorageConfig struct {
	Driver   string // local | s3
	S3Bucket string
	S3Region string
}

type RedisConfig struct {
	Addr string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

type AuthConfig struct {
	AdminToken  string
	AdminUserID string
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Upload: UploadConfig{
			TempDir:     getEnv("UPLOAD_TEMP_DIR", "temp_uploads"),
			UploadsDir:  getEnv("UPLOAD_DIR", "uploads"),
			MaxFileSize: getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 5*1024*1024), // 5MB
		},
		Storage: StorageConfig{
			Driver:   getEnv("STORAGE_DRIVER", "local"),
			S3Bucket: getEnv("S3_BUCKET", ""),
			S3Region: getEnv("S3_REGION", "us-east-1"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     int(getEnvAsInt64("SMTP_PORT", 587)),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
			To:       getEnv("SMTP_NOTIFY_TO", ""),
		},
		Auth: AuthConfig{
			AdminToken:  getEnv("ADMIN_API_TOKEN", ""),
			AdminUserID: getEnv("ADMIN_USER_ID", "admin"),
		},
	}
}

func (c *Config) EnsureDirs() error {
	if err := os.MkdirAll(c.Upload.TempDir, 0o755); err != nil {
		return err
	}
	return os.MkdirAll(c.Upload.UploadsDir, 0o755)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
