package postgres

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/pkg/errors"

	"orders-api/internal/models"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	DbName   string
	SslMode  string
}

func ConnectDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.DbName, cfg.Password, cfg.SslMode)
	return ConnectURL(dsn)
}

// ConnectURL accepts either a postgres:// URL or a key=value DSN.
func ConnectURL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "postgres open")
	}
	if err := db.DB().Ping(); err != nil {
		return nil, errors.Wrap(err, "postgres ping")
	}
	return db, nil
}

// Migrate creates the schema. Deleting an order must take its lines and
// tasks with it, so the child foreign keys cascade at the database level.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderLine{},
		&models.Task{},
	).Error; err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	if err := addForeignKey(db, &models.Order{}, "user_id", "users(id)", "RESTRICT"); err != nil {
		return errors.Wrap(err, "orders fk")
	}
	if err := addForeignKey(db, &models.OrderLine{}, "order_id", "orders(id)", "CASCADE"); err != nil {
		return errors.Wrap(err, "order_lines fk")
	}
	if err := addForeignKey(db, &models.Task{}, "order_id", "orders(id)", "CASCADE"); err != nil {
		return errors.Wrap(err, "tasks fk")
	}
	return nil
}

// addForeignKey tolerates reruns: the constraint may already be there
// from a previous boot.
func addForeignKey(db *gorm.DB, model interface{}, field, dest, onDelete string) error {
	err := db.Model(model).AddForeignKey(field, dest, onDelete, "RESTRICT").Error
	if err != nil && strings.Contains(err.Error(), "already exists") {
		return nil
	}
	return err
}
