package repo

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrNotFound          = errors.New("record not found")
)

type GormRepo struct {
	DB *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
