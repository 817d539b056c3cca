package services

import (
	"errors"

	apperrors "accrue/internal/errors"
	"accrue/internal/models"

	"gorm.io/gorm"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(params CreateCategoryParams) (*models.Category, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:      params.Name,
		Direction: params.Direction,
		Icon:      params.Icon,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, storeErr(err)
	}

	return category, nil
}

// ListCategories retrieves categories ordered by direction then name.
// Archived categories are included only when requested.
func (s *categoryService) ListCategories(includeArchived bool) ([]models.Category, error) {
	q := s.db.Model(&models.Category{}).Order("direction, name")
	if !includeArchived {
		q = q.Where("is_archived = ?", false)
	}

	var categories []models.Category
	if err := q.Find(&categories).Error; err != nil {
		return nil, storeErr(err)
	}
	return categories, nil
}

// GetCategory retrieves a category by ID
func (s *categoryService) GetCategory(categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, storeErr(err)
	}
	return &category, nil
}

// UpdateCategory updates an existing category
func (s *categoryService) UpdateCategory(categoryID string, params UpdateCategoryParams) (*models.Category, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	category, err := s.GetCategory(categoryID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.Direction != nil {
		updates["direction"] = *params.Direction
	}
	if params.Icon != nil {
		updates["icon"] = *params.Icon
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, storeErr(err)
		}
		if err := s.db.Where("id = ?", categoryID).First(category).Error; err != nil {
			return nil, storeErr(err)
		}
	}

	return category, nil
}

// ArchiveCategory soft-deletes a category. Historical transactions keep
// referencing it; it is only excluded from active pickers.
func (s *categoryService) ArchiveCategory(categoryID string) error {
	return s.setArchived(categoryID, true)
}

// RestoreCategory unarchives a category.
func (s *categoryService) RestoreCategory(categoryID string) error {
	return s.setArchived(categoryID, false)
}

func (s *categoryService) setArchived(categoryID string, archived bool) error {
	category, err := s.GetCategory(categoryID)
	if err != nil {
		return err
	}
	if err := s.db.Model(category).Update("is_archived", archived).Error; err != nil {
		return storeErr(err)
	}
	return nil
}
