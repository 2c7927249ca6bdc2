package service

import (
	"errors"
)

var (
	// ErrEmailAlreadyRegistered is returned when registering with an
	// email that already has an account
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidCredentials is returned for an unknown email or wrong
	// password; the two cases are deliberately indistinguishable
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned for resources that do not exist or belong
	// to another tenant; the two cases are deliberately indistinguishable
	ErrNotFound = errors.New("resource not found")
)
