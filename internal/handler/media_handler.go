package handler

import (
	"net/http"

	"github.com/cornerstone/internal/db"
	"github.com/cornerstone/internal/service"
	"github.com/gin-gonic/gin"
)

type mediaPayload struct {
	PublicID     string   `json:"public_id"`
	SecureURL    string   `json:"secure_url"`
	ResourceType string   `json:"resource_type"`
	Format       *string  `json:"format"`
	Bytes        *int64   `json:"bytes"`
	Width        *int     `json:"width"`
	Height       *int     `json:"height"`
	Duration     *float64 `json:"duration"`
}

// GetMedia 返回全部媒体记录，新的在前。
func (a *API) GetMedia(c *gin.Context) {
	uploads, err := a.media.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, errorMessage(err, "Failed to fetch media"))
		return
	}
	respondOK(c, gin.H{"uploads": uploads})
}

// CreateMedia 登记一条已上传到媒体托管服务的资源元数据。
// public_id 重复时静默跳过，payload 返回 null。
func (a *API) CreateMedia(c *gin.Context) {
	var payload mediaPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	if payload.PublicID == "" || payload.SecureURL == "" ||
		(payload.ResourceType != db.ResourceTypeImage && payload.ResourceType != db.ResourceTypeVideo) {
		respondError(c, http.StatusBadRequest, "Missing required media fields")
		return
	}

	upload, err := a.media.Insert(service.MediaInput{
		PublicID:     payload.PublicID,
		SecureURL:    payload.SecureURL,
		ResourceType: payload.ResourceType,
		Format:       payload.Format,
		Bytes:        payload.Bytes,
		Width:        payload.Width,
		Height:       payload.Height,
		Duration:     payload.Duration,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, errorMessage(err, "Failed to save media"))
		return
	}
	respondOK(c, gin.H{"upload": upload})
}
