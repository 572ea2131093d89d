package repo

import (
	"context"
	"time"

	"github.com/closetdev/wardrobe/internal/models"
)

// RevokeToken records a logout. Revoking an already-revoked token is a
// success, the unique token_hash column just rejects the second row.
func (r *GormRepo) RevokeToken(ctx context.Context, tokenHash string, userID uint, expiresAt time.Time) error {
	revoked := models.RevokedToken{
		TokenHash: tokenHash,
		UserID:    userID,
		ExpiresAt: expiresAt.Unix(),
	}
	if err := r.DB.WithContext(ctx).Create(&revoked).Error; err != nil {
		if isDuplicateKey(err) {
			return nil
		}
		return err
	}
	return nil
}

func (r *GormRepo) TokenRevoked(ctx context.Context, tokenHash string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.RevokedToken{}).
		Where("token_hash = ?", tokenHash).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// PruneRevoked drops revocations whose token has expired on its own, keeping
// the table bounded by the number of logouts inside one token lifetime.
func (r *GormRepo) PruneRevoked(ctx context.Context) (int64, error) {
	result := r.DB.WithContext(ctx).
		Where("expires_at < ?", time.Now().Unix()).
		Delete(&models.RevokedToken{})
	return result.RowsAffected, result.Error
}
