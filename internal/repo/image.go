package repo

import (
	"context"

	"github.com/closetdev/wardrobe/internal/models"
)

// AddImages attaches urls to an item after confirming the caller owns it.
func (r *GormRepo) AddImages(ctx context.Context, userID, itemID uint, urls []string) ([]models.Image, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Item{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	if len(urls) == 0 {
		return []models.Image{}, nil
	}

	images := make([]models.Image, 0, len(urls))
	for _, url := range urls {
		images = append(images, models.Image{ImgURL: url, ItemID: itemID})
	}
	if err := r.DB.WithContext(ctx).Create(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GormRepo) ImagesByOwner(ctx context.Context, userID uint) ([]models.Image, error) {
	images := []models.Image{}
	if err := r.DB.WithContext(ctx).
		Select("images.*").
		Joins("JOIN items ON items.id = images.item_id").
		Where("items.user_id = ?", userID).
		Order("images.id ASC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GormRepo) DeleteImage(ctx context.Context, userID, id uint) error {
	result := r.DB.WithContext(ctx).
		Where("images.id = ? AND item_id IN (?)",
			id,
			r.DB.Model(&models.Item{}).Select("id").Where("user_id = ?", userID),
		).
		Delete(&models.Image{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
