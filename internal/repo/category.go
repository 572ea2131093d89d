package repo

import (
	"context"

	"github.com/closetdev/wardrobe/internal/models"
)

func (r *GormRepo) Categories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepo) CategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).First(&category, id).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	if err := r.DB.WithContext(ctx).Create(category).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateCategory
		}
		return err
	}
	return nil
}

func (r *GormRepo) SaveCategory(ctx context.Context, category *models.Category) error {
	if err := r.DB.WithContext(ctx).Save(category).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateCategory
		}
		return err
	}
	return nil
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
