package models

// User is a registered account. The password hash never appears in API
// responses.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type Category struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryName string `gorm:"uniqueIndex;not null"     json:"category_name"`
}

type Item struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `json:"name"`
	Brand      string    `json:"brand"`
	Size       int       `json:"size"`
	Color      string    `json:"color"`
	Fit        string    `json:"fit"`
	CategoryID uint      `gorm:"index"                    json:"category_id"`
	UserID     uint      `gorm:"index;not null"           json:"user_id"`
	Category   *Category `gorm:"foreignKey:CategoryID"    json:"category,omitempty"`
	Images     []Image   `gorm:"foreignKey:ItemID"        json:"images"`
}

type Image struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ImgURL string `gorm:"not null"                 json:"img_url"`
	ItemID uint   `gorm:"index;not null"           json:"item_id"`
}

// RevokedToken is a logged-out bearer token, keyed by the sha256 hex of the
// raw token string. ExpiresAt mirrors the token's own exp claim so rows can
// be pruned once the token would have expired on its own.
type RevokedToken struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TokenHash string `gorm:"uniqueIndex;not null"     json:"token_hash"`
	UserID    uint   `gorm:"index;not null"           json:"user_id"`
	ExpiresAt int64  `gorm:"not null"                 json:"expires_at"`
}
