package services

import "errors"

// Errors surfaced to handlers; match them with errors.Is
var (
	ErrNotFound     = errors.New("not found")
	ErrDatabase     = errors.New("database error")
	ErrFileDeletion = errors.New("file deletion failed")
	ErrDataDeletion = errors.New("data deletion failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrAuthDisabled = errors.New("authentication is not configured")
)
