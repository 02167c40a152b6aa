package item

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
)
