package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Catway errors
var (
	ErrCatwayNotFound   = errors.New("catway not found")
	ErrCatwayExists     = errors.New("catway number already exists")
	ErrCatwayReferenced = errors.New("catway has existing reservations")
	ErrInvalidCatwayType = errors.New("catway type must be long or short")
)

// Reservation errors
var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrDatesOutOfOrder     = errors.New("end date must be after start date")
	ErrCatwayUnavailable   = errors.New("catway is already reserved for this period")
)
