package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest = "failed to parse request body"
	MessageInvalidRecipeID   = "Invalid recipe id"

	ErrInvalidRecipeID = errors.New("invalid recipe id")
)
