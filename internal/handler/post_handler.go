package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/cornerstone/internal/db"
	"github.com/cornerstone/internal/service"
	"github.com/gin-gonic/gin"
)

type createPostPayload struct {
	Title        string          `json:"title"`
	Type         string          `json:"type"`
	Description  string          `json:"description"`
	Images       []string        `json:"images"`
	Tags         []string        `json:"tags"`
	ImageFit     string          `json:"imageFit"`
	ImageSize    string          `json:"imageSize"`
	ImageColumns json.RawMessage `json:"imageColumns"`
}

type updatePostPayload struct {
	Title        *string         `json:"title"`
	Type         *string         `json:"type"`
	Description  *string         `json:"description"`
	Images       *[]string       `json:"images"`
	Tags         *[]string       `json:"tags"`
	Hidden       *bool           `json:"hidden"`
	ImageFit     *string         `json:"imageFit"`
	ImageSize    *string         `json:"imageSize"`
	ImageColumns json.RawMessage `json:"imageColumns"`
}

// GetPortfolio 公开接口：返回未隐藏的作品集文章。
func (a *API) GetPortfolio(c *gin.Context) {
	posts, err := a.posts.List(false)
	if err != nil {
		respondError(c, http.StatusInternalServerError, errorMessage(err, "Failed to fetch portfolio posts"))
		return
	}
	respondOK(c, gin.H{"posts": posts})
}

// GetPosts 管理接口：返回全部文章，包含隐藏项。
func (a *API) GetPosts(c *gin.Context) {
	posts, err := a.posts.List(true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, errorMessage(err, "Failed to load posts"))
		return
	}
	respondOK(c, gin.H{"posts": posts})
}

// CreatePost 创建作品集文章。展示字段在这里归一化，非法值静默落回默认。
func (a *API) CreatePost(c *gin.Context) {
	var payload createPostPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	title := strings.TrimSpace(payload.Title)
	postType := strings.TrimSpace(payload.Type)
	description := strings.TrimSpace(payload.Description)
	if title == "" || postType == "" || description == "" {
		respondError(c, http.StatusBadRequest, "Title, type, and description are required")
		return
	}

	input := service.PostInput{
		Title:        title,
		Type:         postType,
		Description:  description,
		Images:       cleanStrings(payload.Images),
		Tags:         cleanStrings(payload.Tags),
		ImageFit:     normalizeImageFit(payload.ImageFit),
		ImageSize:    normalizeImageSize(payload.ImageSize),
		ImageColumns: parseImageColumns(payload.ImageColumns),
	}

	post, err := a.posts.Create(input)
	if err != nil {
		respondError(c, http.StatusInternalServerError, errorMessage(err, "Failed to create post"))
		return
	}
	respondOK(c, gin.H{"post": post})
}

// UpdatePost 按字段条件更新：只有出现在请求体中的字段才会被修改。
func (a *API) UpdatePost(c *gin.Context) {
	id, err := parsePostIDParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	var payload updatePostPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	patch := service.PostPatch{Hidden: payload.Hidden}

	if payload.Title != nil {
		title := strings.TrimSpace(*payload.Title)
		if title == "" {
			respondError(c, http.StatusBadRequest, "Title cannot be empty")
			return
		}
		patch.Title = &title
	}

	if payload.Type != nil {
		postType := strings.TrimSpace(*payload.Type)
		if postType == "" {
			respondError(c, http.StatusBadRequest, "Type cannot be empty")
			return
		}
		patch.Type = &postType
	}

	if payload.Description != nil {
		description := strings.TrimSpace(*payload.Description)
		if description == "" {
			respondError(c, http.StatusBadRequest, "Description cannot be empty")
			return
		}
		patch.Description = &description
	}

	if payload.Tags != nil {
		tags := cleanStrings(*payload.Tags)
		patch.Tags = &tags
	}

	if payload.Images != nil {
		images := cleanStrings(*payload.Images)
		patch.Images = &images
	}

	// 非法的枚举值与越界列数静默丢弃，与既有前端的宽松约定保持一致。
	if payload.ImageFit != nil {
		if fit := *payload.ImageFit; fit == db.ImageFitContain || fit == db.ImageFitCover {
			patch.ImageFit = &fit
		}
	}
	if payload.ImageSize != nil {
		if size := *payload.ImageSize; size == db.ImageSizeSmall || size == db.ImageSizeMedium || size == db.ImageSizeLarge {
			patch.ImageSize = &size
		}
	}
	patch.ImageColumns = parseImageColumnsPatch(payload.ImageColumns)

	if patch.Empty() {
		respondError(c, http.StatusBadRequest, "No valid fields to update")
		return
	}

	post, err := a.posts.Update(id, patch)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, errorMessage(err, "Failed to update post"))
		return
	}
	respondOK(c, gin.H{"post": post})
}

// DeletePost 按 id 删除文章，幂等：目标不存在时返回 404。
func (a *API) DeletePost(c *gin.Context) {
	id, err := parsePostIDParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	if err := a.posts.Delete(id); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, errorMessage(err, "Failed to delete post"))
		return
	}
	respondOK(c, nil)
}

func normalizeImageFit(fit string) string {
	if fit == db.ImageFitCover {
		return db.ImageFitCover
	}
	return db.ImageFitContain
}

func normalizeImageSize(size string) string {
	if size == db.ImageSizeSmall || size == db.ImageSizeLarge {
		return size
	}
	return db.ImageSizeMedium
}

// parseImageColumns 宽松地解析列数：接受整数或数字字符串，要求落在 [1,3]，
// 其余一律按“未指定”处理。
func parseImageColumns(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err != nil {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return nil
		}
		num = parsed
	}

	if num != math.Trunc(num) {
		return nil
	}
	columns := int(num)
	if columns < 1 || columns > 3 {
		return nil
	}
	return &columns
}

// parseImageColumnsPatch 区分三种情况：字段缺失（不改）、显式 null（清空为
// 自动）、合法整数（设置）。非法值与缺失同样不产生修改。
func parseImageColumnsPatch(raw json.RawMessage) service.ImageColumnsPatch {
	if len(raw) == 0 {
		return service.ImageColumnsPatch{}
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return service.ImageColumnsPatch{Present: true}
	}
	if columns := parseImageColumns(raw); columns != nil {
		return service.ImageColumnsPatch{Present: true, Value: columns}
	}
	return service.ImageColumnsPatch{}
}
