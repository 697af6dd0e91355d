package repo

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrDuplicatedValueUnique is returned when a unique column already holds the value.
	ErrDuplicatedValueUnique = errors.New("duplicated value on unique field")

	// ErrDuplicateID is returned by the dataset loader when two records share an id.
	ErrDuplicateID = errors.New("duplicate record id")
)
