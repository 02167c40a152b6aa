package workrecord

import "errors"

var (
	ErrWorkRecordNotFound = errors.New("work record not found")
)
