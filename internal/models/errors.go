package models

import "errors"

var (
	// ErrMissingRequired is returned when roll number or name is empty after trimming.
	ErrMissingRequired = errors.New("roll number and name are required")
	// ErrFieldTooLong is returned when a field exceeds its column length.
	ErrFieldTooLong = errors.New("field is too long")
	// ErrDuplicateRollNo is returned when another student already uses the roll number.
	ErrDuplicateRollNo = errors.New("roll number already exists")
	// ErrStudentNotFound is returned when no student has the requested id.
	ErrStudentNotFound = errors.New("student not found")
)
