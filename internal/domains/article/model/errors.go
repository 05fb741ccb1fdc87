package model

import "errors"

var (
	// Validation errors
	ErrBlankTitle        = errors.New("article title must not be blank")
	ErrBlankContent      = errors.New("article content must not be blank")
	ErrTitleTooLong      = errors.New("article title exceeds maximum length")
	ErrContentTooLong    = errors.New("article content exceeds maximum length")
	ErrInvalidSearchType = errors.New("unrecognized search type")

	// Business errors
	ErrArticleNotFound = errors.New("article not found")
)
