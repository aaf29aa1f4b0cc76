package service

import (
	"errors"

	"github.com/cornerstone/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrPostNotFound is returned when no portfolio post matches the given id.
var ErrPostNotFound = errors.New("portfolio post not found")

// PostService handles portfolio post CRUD.
//
// Field validation and normalization happen at the route layer; the service
// only persists what it is given.
type PostService struct {
	db *gorm.DB
}

// PostInput represents fields accepted when creating a portfolio post.
// Defaults for the display fields are applied by the caller.
type PostInput struct {
	Title        string
	Type         string
	Description  string
	Images       []string
	Tags         []string
	ImageFit     string
	ImageSize    string
	ImageColumns *int
}

// ImageColumnsPatch carries the three-way update semantics for image_columns:
// not present leaves the stored value untouched, present with a nil value
// clears the column back to "auto", present with a value sets it.
type ImageColumnsPatch struct {
	Present bool
	Value   *int
}

// PostPatch represents a partial update. Nil pointer fields are left unchanged.
type PostPatch struct {
	Title        *string
	Type         *string
	Description  *string
	Tags         *[]string
	Images       *[]string
	Hidden       *bool
	ImageFit     *string
	ImageSize    *string
	ImageColumns ImageColumnsPatch
}

// Empty reports whether the patch carries no recognized field at all.
func (p PostPatch) Empty() bool {
	return p.Title == nil &&
		p.Type == nil &&
		p.Description == nil &&
		p.Tags == nil &&
		p.Images == nil &&
		p.Hidden == nil &&
		p.ImageFit == nil &&
		p.ImageSize == nil &&
		!p.ImageColumns.Present
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// List returns portfolio posts, newest first. Hidden posts are excluded at
// the query level unless includeHidden is set.
func (s *PostService) List(includeHidden bool) ([]db.PortfolioPost, error) {
	query := s.db.Order("created_at desc")
	if !includeHidden {
		query = query.Where("hidden = ?", false)
	}

	posts := make([]db.PortfolioPost, 0)
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create inserts a new portfolio post and returns the persisted row.
func (s *PostService) Create(input PostInput) (*db.PortfolioPost, error) {
	post := db.PortfolioPost{
		Title:        input.Title,
		Type:         input.Type,
		Description:  input.Description,
		Images:       datatypes.NewJSONSlice(sliceOrEmpty(input.Images)),
		Tags:         datatypes.NewJSONSlice(sliceOrEmpty(input.Tags)),
		ImageFit:     input.ImageFit,
		ImageSize:    input.ImageSize,
		ImageColumns: input.ImageColumns,
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update applies a partial update and returns the updated row.
func (s *PostService) Update(id uint64, patch PostPatch) (*db.PortfolioPost, error) {
	var post db.PortfolioPost
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Type != nil {
		post.Type = *patch.Type
	}
	if patch.Description != nil {
		post.Description = *patch.Description
	}
	if patch.Tags != nil {
		post.Tags = datatypes.NewJSONSlice(sliceOrEmpty(*patch.Tags))
	}
	if patch.Images != nil {
		post.Images = datatypes.NewJSONSlice(sliceOrEmpty(*patch.Images))
	}
	if patch.Hidden != nil {
		post.Hidden = *patch.Hidden
	}
	if patch.ImageFit != nil {
		post.ImageFit = *patch.ImageFit
	}
	if patch.ImageSize != nil {
		post.ImageSize = *patch.ImageSize
	}
	if patch.ImageColumns.Present {
		post.ImageColumns = patch.ImageColumns.Value
	}

	// Save 写全部字段，image_columns 为 nil 时落库为 NULL。
	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a portfolio post by id.
func (s *PostService) Delete(id uint64) error {
	result := s.db.Delete(&db.PortfolioPost{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func sliceOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
