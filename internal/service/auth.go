package service

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"

	"orders-api/internal/auth"
	"orders-api/internal/models"
	"orders-api/internal/repository/postgres"
)

func (s *Service) Register(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	if _, err := s.UserPostgres.GetByEmail(email); err == nil {
		return ErrConflict
	} else if !gorm.IsRecordNotFoundError(err) {
		return err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	u := models.User{
		Email:    email,
		Password: hash,
		Roles:    models.Roles{models.RoleUser},
	}
	if err := s.UserPostgres.Create(&u); err != nil {
		// Concurrent registration with the same email loses the race on
		// the unique index and must still surface as a conflict.
		if postgres.IsUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *Service) Login(email, password string) (string, error) {
	u, err := s.UserPostgres.GetByEmail(strings.TrimSpace(email))
	if gorm.IsRecordNotFoundError(err) {
		return "", ErrBadCreds
	}
	if err != nil {
		return "", err
	}
	if !auth.CheckPassword(password, u.Password) {
		return "", ErrBadCreds
	}
	return s.tokens.Issue(u.ID)
}

func (s *Service) UserByID(id uint) (models.User, error) {
	u, err := s.UserPostgres.GetByID(id)
	if gorm.IsRecordNotFoundError(err) {
		return models.User{}, ErrNotFound
	}
	return u, err
}
