package service

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidLength = errors.New("invalid length")
	ErrDuplicateName = errors.New("duplicate name")
)
