package domain

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidPrediction  = errors.New("invalid prediction")
	ErrAlreadyVoted       = errors.New("already voted")
	ErrVoteNotActive      = errors.New("vote is not active")
	ErrVoteNotFound       = errors.New("vote not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrPriceUnavailable   = errors.New("price unavailable")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrLockHeld           = errors.New("lock already held")
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
