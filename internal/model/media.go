package model

import "errors"

// Image attachment errors
var (
	ErrImageTooLarge    = errors.New("image too large")
	ErrInvalidImageType = errors.New("unsupported image type")
)
