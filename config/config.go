package config

import (
	"fmt"
	"os"

	"github.com/SoloAk21/ecommerce-backend/models"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultPath = "config/config.yaml"

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// InventoryConfig selects how product stock is decremented. The default
// read-check-write sequence matches the legacy behavior and is not safe
// against concurrent requests on the same product; atomic_stock switches to
// a single conditional UPDATE.
type InventoryConfig struct {
	AtomicStock bool `yaml:"atomic_stock"`
}

// OrdersConfig controls multi-item order creation. By default an item
// failure aborts the request but keeps the order row and the stock
// decrements already applied for earlier items; transactional wraps the
// whole flow in one database transaction.
type OrdersConfig struct {
	Transactional bool `yaml:"transactional"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Inventory InventoryConfig `yaml:"inventory"`
	Orders    OrdersConfig    `yaml:"orders"`
}

// Path returns the config file location, overridable with ECOMMERCE_CONFIG.
func Path() string {
	if p := os.Getenv("ECOMMERCE_CONFIG"); p != "" {
		return p
	}
	return defaultPath
}

func LoadConfig(filename string) (Config, error) {
	var config Config
	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}

func SetupDatabaseConnection(config Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.Database.Host,
		config.Database.User,
		config.Database.Password,
		config.Database.Name,
		config.Database.Port,
		config.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the relational schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.Cart{},
	)
}
