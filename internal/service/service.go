package service

import (
	"github.com/go-playground/validator/v10"

	"orders-api/internal/auth"
	"orders-api/internal/models"
	"orders-api/internal/repository"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

type Auth interface {
	Register(email, password string) error
	Login(email, password string) (string, error)
	UserByID(id uint) (models.User, error)
}

type Order interface {
	CreateOrder(userID uint, in CreateOrderInput) (models.Order, error)
	GetOrder(userID, orderID uint) (models.Order, error)
	GetAllOrders(userID uint) ([]models.Order, error)
	UpdateOrder(userID, orderID uint, in UpdateOrderInput) (models.Order, error)
	DeleteOrder(userID, orderID uint) error
	UpdateOrderStatus(userID, orderID uint, status string) (models.Order, error)

	LinkTasks(userID, orderID uint, tasks []TaskInput) (models.Order, error)
	UpdateTask(userID, orderID, taskID uint, in UpdateTaskInput) (models.Order, error)
	DeleteTask(userID, orderID, taskID uint) error
}

type Service struct {
	repository.UserPostgres
	repository.OrderPostgres

	tokens     *auth.JWTManager
	bcryptCost int
	v          *validator.Validate
}

func NewService(repo *repository.Repository, tokens *auth.JWTManager, bcryptCost int) *Service {
	return &Service{
		UserPostgres:  repo.UserPostgres,
		OrderPostgres: repo.OrderPostgres,
		tokens:        tokens,
		bcryptCost:    bcryptCost,
		v:             validator.New(),
	}
}
