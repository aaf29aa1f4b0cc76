package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type signaturePayload struct {
	Folder string `json:"folder"`
}

// CloudinarySignature 下发限时签名，让浏览器直传媒体托管服务。
// 账号密钥只参与签名计算，绝不下发到客户端。
func (a *API) CloudinarySignature(c *gin.Context) {
	var payload signaturePayload
	// 请求体可以为空，解析失败时直接使用默认目录。
	_ = c.ShouldBindJSON(&payload)

	folder := strings.TrimSpace(payload.Folder)
	if folder == "" {
		folder = a.cfg.SignatureFolder
	}

	signature, err := a.uploads.SignUpload(folder, time.Now().Unix())
	if err != nil {
		respondError(c, http.StatusInternalServerError, errorMessage(err, "Failed to generate signature"))
		return
	}

	respondOK(c, gin.H{
		"cloudName": signature.CloudName,
		"apiKey":    signature.APIKey,
		"timestamp": signature.Timestamp,
		"signature": signature.Signature,
		"folder":    signature.Folder,
	})
}

// UploadImage 服务端代传单张图片：非图片类型直接拒绝。
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Image file is required")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Only image files are supported")
		return
	}

	folder := strings.TrimSpace(c.PostForm("folder"))
	if folder == "" {
		folder = a.cfg.UploadFolder
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, errorMessage(err, "Failed to upload image"))
		return
	}
	defer src.Close()

	uploaded, err := a.uploads.UploadImage(c.Request.Context(), src, folder)
	if err != nil {
		respondError(c, http.StatusInternalServerError, errorMessage(err, "Failed to upload image"))
		return
	}
	if uploaded.SecureURL == "" {
		respondError(c, http.StatusInternalServerError, "Cloudinary did not return a URL")
		return
	}

	respondOK(c, gin.H{
		"upload": gin.H{
			"publicId":  uploaded.PublicID,
			"secureUrl": uploaded.SecureURL,
			"width":     uploaded.Width,
			"height":    uploaded.Height,
			"format":    uploaded.Format,
			"bytes":     uploaded.Bytes,
		},
	})
}
