package model

import "errors"

// Error codes
const (
	ErrCodeAttendanceNotFound = "ATT001"
)

// Errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
