package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/closetdev/wardrobe/internal/models"
)

// DefaultJWTSecret is the documented fallback for local runs. Any real
// deployment must set JWT_SECRET; rotating it invalidates every issued token.
const DefaultJWTSecret = "default_secret_key"

type Config struct {
	HTTP_ADDR     string
	DB_HOST       string
	DB_PORT       string
	DB_USER       string
	DB_PASSWORD   string
	DB_NAME       string
	ES_URL        string
	ES_USER       string
	ES_PASSWORD   string
	JWT_SECRET    string
	KAFKA_ADDRESS string
	LOG_LEVEL     string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		HTTP_ADDR:     os.Getenv("HTTP_ADDR"),
		DB_HOST:       os.Getenv("DB_HOST"),
		DB_PORT:       os.Getenv("DB_PORT"),
		DB_USER:       os.Getenv("DB_USER"),
		DB_PASSWORD:   os.Getenv("DB_PASSWORD"),
		DB_NAME:       os.Getenv("DB_NAME"),
		ES_URL:        os.Getenv("ES_URL"),
		ES_USER:       os.Getenv("ES_USER"),
		ES_PASSWORD:   os.Getenv("ES_PASSWORD"),
		JWT_SECRET:    os.Getenv("JWT_SECRET"),
		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),
		LOG_LEVEL:     os.Getenv("LOG_LEVEL"),
	}

	if config.HTTP_ADDR == "" {
		config.HTTP_ADDR = ":8080"
	}
	if config.JWT_SECRET == "" {
		log.Printf("Warning: JWT_SECRET not set, falling back to the insecure default")
		config.JWT_SECRET = DefaultJWTSecret
	}

	return config, nil
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DB_USER, cfg.DB_PASSWORD, cfg.DB_HOST, cfg.DB_PORT, cfg.DB_NAME,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Item{},
		&models.Image{},
		&models.RevokedToken{},
	); err != nil {
		return nil, fmt.Errorf("db migrate: %w", err)
	}
	if err := SeedCategories(db); err != nil {
		return nil, fmt.Errorf("db seed: %w", err)
	}
	return db, nil
}

var defaultCategories = []string{
	"Shirts",
	"Pants",
	"Sweaters",
	"Sweatpants",
	"Shoes",
	"Accessories",
	"Jackets",
	"Suits + Blazers",
	"Sneakers",
}

// SeedCategories inserts the stock category list, skipping names that
// already exist, so repeated startups leave the table unchanged.
func SeedCategories(db *gorm.DB) error {
	for _, name := range defaultCategories {
		category := models.Category{CategoryName: name}
		if err := db.Where("category_name = ?", name).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}
	return nil
}
