package db

import (
	"time"

	"gorm.io/datatypes"
)

// 图片展示方式与尺寸的取值，超出范围的输入在路由层被归一化。
const (
	ImageFitContain = "contain"
	ImageFitCover   = "cover"

	ImageSizeSmall  = "small"
	ImageSizeMedium = "medium"
	ImageSizeLarge  = "large"
)

// PortfolioPost 定义作品集文章模型
type PortfolioPost struct {
	ID           uint64                      `gorm:"primaryKey" json:"id"`
	Title        string                      `gorm:"not null" json:"title"`
	Type         string                      `gorm:"not null" json:"type"`
	Description  string                      `gorm:"not null" json:"description"`
	Images       datatypes.JSONSlice[string] `json:"images"`
	Tags         datatypes.JSONSlice[string] `json:"tags"`
	Hidden       bool                        `gorm:"not null;default:false" json:"hidden"`
	ImageFit     string                      `gorm:"not null;default:contain" json:"image_fit"`
	ImageSize    string                      `gorm:"not null;default:medium" json:"image_size"`
	ImageColumns *int                        `json:"image_columns"`
	CreatedAt    time.Time                   `json:"created_at"`
}

// TableName 指定表名
func (PortfolioPost) TableName() string {
	return "portfolio_posts"
}
