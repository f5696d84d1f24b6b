package models

import "time"

// StudentDB represents a student record in the database
type StudentDB struct {
	ID         int64     `json:"id" db:"id"`                 // Primary key
	RollNo     string    `json:"roll_no" db:"roll_no"`       // Unique roll number
	Name       string    `json:"name" db:"name"`             // Full name
	Email      string    `json:"email" db:"email"`           // Optional email
	Department string    `json:"department" db:"department"` // Optional department
	DOB        string    `json:"dob" db:"dob"`               // Optional date of birth, stored verbatim
	CreatedAt  time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// StudentForm holds the raw values submitted by the add and edit forms.
type StudentForm struct {
	RollNo     string
	Name       string
	Email      string
	Department string
	DOB        string
}

// StudentInput is a validated, trimmed StudentForm ready to be persisted.
type StudentInput struct {
	RollNo     string `validate:"required,max=50"`
	Name       string `validate:"required,max=200"`
	Email      string `validate:"max=200"`
	Department string `validate:"max=100"`
	DOB        string `validate:"max=20"`
}

// Form converts a stored student back into form values for the edit page.
func (s *StudentDB) Form() StudentForm {
	return StudentForm{
		RollNo:     s.RollNo,
		Name:       s.Name,
		Email:      s.Email,
		Department: s.Department,
		DOB:        s.DOB,
	}
}

// StudentSummary is the data shown on the home page.
type StudentSummary struct {
	Total  int         // Number of stored students
	Latest []StudentDB // Most recently created students
}

// StudentResponse represents a student returned by the JSON API
// swagger:model StudentResponse
type StudentResponse struct {
	// Student ID
	// example: 1
	ID int64 `json:"id"`

	// Roll number
	// example: R1
	RollNo string `json:"roll_no"`

	// Full name
	// example: Alice
	Name string `json:"name"`

	// Email
	// example: alice@example.com
	Email string `json:"email"`

	// Department
	// example: Physics
	Department string `json:"department"`

	// Date of birth
	// example: 2001-04-12
	DOB string `json:"dob"`
}

// NewStudentResponse builds the API representation of a stored student.
func NewStudentResponse(s *StudentDB) StudentResponse {
	return StudentResponse{
		ID:         s.ID,
		RollNo:     s.RollNo,
		Name:       s.Name,
		Email:      s.Email,
		Department: s.Department,
		DOB:        s.DOB,
	}
}

// StudentErrorResponse represents an error response of the JSON API
// swagger:model StudentErrorResponse
type StudentErrorResponse struct {
	// Error message
	// example: Student not found
	Error string `json:"error"`
}
