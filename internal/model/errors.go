package model

import "errors"

// Callers match these with errors.Is; the returned errors usually wrap them with more context.
var (
	ErrDuplicateInternship = errors.New("internship already exists")
	ErrInternshipNotFound  = errors.New("internship not found")
	ErrInvalidArgument     = errors.New("invalid argument")
)
