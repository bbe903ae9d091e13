package postgres

import (
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"orders-api/internal/models"
)

type UserPostgresRepo struct {
	db *gorm.DB
}

func NewUserPostgres(db *gorm.DB) *UserPostgresRepo {
	return &UserPostgresRepo{db: db}
}

func (r *UserPostgresRepo) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserPostgresRepo) GetByEmail(email string) (models.User, error) {
	var u models.User
	q := r.db.Where("email = ?", email).First(&u)
	return u, q.Error
}

func (r *UserPostgresRepo) GetByID(id uint) (models.User, error) {
	var u models.User
	q := r.db.Where("id = ?", id).First(&u)
	return u, q.Error
}

// IsUniqueViolation reports whether err is the postgres unique_violation
// (the registration race on the email index).
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
