package handler

import (
	"github.com/cornerstone/internal/config"
	"github.com/cornerstone/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db      *gorm.DB
	cfg     config.AppConfig
	auth    *service.AdminAuth
	posts   *service.PostService
	media   *service.MediaService
	uploads service.MediaUploader
	contact *service.ContactService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig) *API {
	return &API{
		db:      gdb,
		cfg:     cfg,
		auth:    service.NewAdminAuth(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash, cfg.AdminSessionValue),
		posts:   service.NewPostService(gdb),
		media:   service.NewMediaService(gdb),
		uploads: service.NewCloudinaryService(),
		contact: service.NewContactService(cfg.GoogleScriptURL),
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
