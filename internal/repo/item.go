package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/closetdev/wardrobe/internal/models"
)

// Every query here is scoped by user_id. An item owned by someone else is
// indistinguishable from a missing one.

func (r *GormRepo) ItemsByOwner(ctx context.Context, userID uint, offset, limit int) ([]models.Item, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Item{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []models.Item{}
	if err := r.DB.WithContext(ctx).
		Preload("Category").
		Preload("Images").
		Where("user_id = ?", userID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *GormRepo) ItemByID(ctx context.Context, userID, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.DB.WithContext(ctx).
		Preload("Category").
		Preload("Images").
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) CreateItem(ctx context.Context, item *models.Item) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) SaveItem(ctx context.Context, item *models.Item) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *GormRepo) DeleteItem(ctx context.Context, userID, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Item{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("item_id = ?", id).Delete(&models.Image{}).Error
	})
}
