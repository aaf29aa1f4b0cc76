package service

import (
	"github.com/cornerstone/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MediaService persists metadata for assets already stored on the media host.
type MediaService struct {
	db *gorm.DB
}

// MediaInput represents fields accepted when recording an uploaded asset.
type MediaInput struct {
	PublicID     string
	SecureURL    string
	ResourceType string
	Format       *string
	Bytes        *int64
	Width        *int
	Height       *int
	Duration     *float64
}

// NewMediaService creates a MediaService instance.
func NewMediaService(gdb *gorm.DB) *MediaService {
	return &MediaService{db: gdb}
}

// List returns all media records, newest first.
func (s *MediaService) List() ([]db.MediaUpload, error) {
	uploads := make([]db.MediaUpload, 0)
	if err := s.db.Order("created_at desc").Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

// Insert records an uploaded asset keyed on its public_id. A duplicate
// public_id is a silent no-op: the existing row wins and nil is returned.
func (s *MediaService) Insert(input MediaInput) (*db.MediaUpload, error) {
	upload := db.MediaUpload{
		PublicID:     input.PublicID,
		SecureURL:    input.SecureURL,
		ResourceType: input.ResourceType,
		Format:       input.Format,
		Bytes:        input.Bytes,
		Width:        input.Width,
		Height:       input.Height,
		Duration:     input.Duration,
	}

	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "public_id"}},
		DoNothing: true,
	}).Create(&upload)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &upload, nil
}
