package model

import "errors"

var (
	// Validation errors
	ErrBlankContent   = errors.New("comment content must not be blank")
	ErrContentTooLong = errors.New("comment content exceeds maximum length")

	// Business errors
	ErrCommentNotFound = errors.New("comment not found")
)
