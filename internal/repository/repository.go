package repository

import (
	"orders-api/internal/models"
	"orders-api/internal/repository/postgres"

	"github.com/jinzhu/gorm"
)

type UserPostgres interface {
	Create(u *models.User) error
	GetByEmail(email string) (models.User, error)
	GetByID(id uint) (models.User, error)
}

type OrderPostgres interface {
	Create(ord *models.Order) error
	Get(id, userID uint) (models.Order, error)
	GetAll(userID uint) ([]models.Order, error)
	Update(ord *models.Order, lines *[]models.OrderLine) error
	Delete(ord *models.Order) error

	AddTasks(ord *models.Order, tasks []models.Task) error
	UpdateTask(t *models.Task) error
	DeleteTask(t *models.Task) error
}

type Repository struct {
	UserPostgres
	OrderPostgres
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		UserPostgres:  postgres.NewUserPostgres(db),
		OrderPostgres: postgres.NewOrderPostgres(db),
	}
}
