package roster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a query parameter that fails validation.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrEmptyKeyword indicates a blank keyword where one is required.
	ErrEmptyKeyword = fmt.Errorf("%w: search keyword must not be empty", ErrInvalidParameter)
)
