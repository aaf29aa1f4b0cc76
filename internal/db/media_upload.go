package db

import "time"

// 媒体资源类型
const (
	ResourceTypeImage = "image"
	ResourceTypeVideo = "video"
)

// MediaUpload 记录已上传到媒体托管服务的资源元数据。
// 资源本体存储在外部服务，这里只做索引；public_id 是外部分配的自然主键。
type MediaUpload struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	PublicID     string    `gorm:"uniqueIndex;not null" json:"public_id"`
	SecureURL    string    `gorm:"not null" json:"secure_url"`
	ResourceType string    `gorm:"not null" json:"resource_type"`
	Format       *string   `json:"format"`
	Bytes        *int64    `json:"bytes"`
	Width        *int      `json:"width"`
	Height       *int      `json:"height"`
	Duration     *float64  `json:"duration"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName 指定表名
func (MediaUpload) TableName() string {
	return "media_uploads"
}
