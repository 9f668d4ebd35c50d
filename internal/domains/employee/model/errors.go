package model

import "errors"

// Error codes
const (
	ErrCodeEmployeeNotFound    = "EMP001"
	ErrCodeDuplicateEmployeeID = "EMP002"
	ErrCodeDuplicateEmail      = "EMP003"
)

// Errors
var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrDuplicateEmployeeID = errors.New("employee id already exists")
	ErrDuplicateEmail      = errors.New("email already exists")
)
