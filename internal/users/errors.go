package users

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or PIN")
	ErrInvalidPIN         = errors.New("PIN must be exactly 4 digits")
	ErrInvalidArgument    = errors.New("invalid argument")
)
