package model

import "errors"

var (
	ErrAuthorNotFound     = errors.New("author not found")
	ErrDuplicateLoginID   = errors.New("author with this login id already exists")
	ErrInvalidCredentials = errors.New("invalid login id or password")
)
