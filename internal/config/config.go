package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabaseURL       string
	GinMode           string
	AppEnv            string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	AdminSessionValue string
	GoogleScriptURL   string
	SignatureFolder   string
	UploadFolder      string
}

// Production reports whether cookies should carry the Secure attribute.
func (c AppConfig) Production() bool {
	return c.AppEnv == "production"
}

// Load 从环境变量读取应用配置，并为缺失项提供默认值。
// 管理员凭据的默认值是上线前的占位配置，部署时必须覆盖。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "development"
	}

	adminUsername := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	if adminUsername == "" {
		adminUsername = "Wilson"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Wilson"
	}

	adminSessionValue := os.Getenv("ADMIN_SESSION_VALUE")
	if adminSessionValue == "" {
		adminSessionValue = "Wilson"
	}

	signatureFolder := strings.TrimSpace(os.Getenv("SIGNATURE_UPLOAD_FOLDER"))
	if signatureFolder == "" {
		signatureFolder = "corner-stone/admin"
	}

	uploadFolder := strings.TrimSpace(os.Getenv("UPLOAD_FOLDER"))
	if uploadFolder == "" {
		uploadFolder = "corner-stone/posts"
	}

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		GinMode:           ginMode,
		AppEnv:            appEnv,
		AdminUsername:     adminUsername,
		AdminPassword:     adminPassword,
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		AdminSessionValue: adminSessionValue,
		GoogleScriptURL:   strings.TrimSpace(os.Getenv("GOOGLE_SCRIPT_URL")),
		SignatureFolder:   signatureFolder,
		UploadFolder:      uploadFolder,
	}
}
