package service

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrTaskNotFound = errors.New("task not found for this order")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation")
	ErrBadCreds     = errors.New("invalid credentials")
)
