package handlers

import (
	"context"

	"github.com/sbilibin2017/student-records/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=handlers

// SummaryGetter returns the home page summary.
type SummaryGetter interface {
	Summary(ctx context.Context) (*models.StudentSummary, error)
}

// StudentSearcher returns the students matching a query; an empty query matches all.
type StudentSearcher interface {
	Search(ctx context.Context, q string) ([]models.StudentDB, error)
}

// StudentCreator validates and stores a new student.
type StudentCreator interface {
	Create(ctx context.Context, form models.StudentForm) (int64, error)
}

// StudentGetter returns a single student.
type StudentGetter interface {
	Get(ctx context.Context, id int64) (*models.StudentDB, error)
}

// StudentUpdater validates and replaces the fields of a student.
type StudentUpdater interface {
	Update(ctx context.Context, id int64, form models.StudentForm) error
}

// StudentDeleter removes a student.
type StudentDeleter interface {
	Delete(ctx context.Context, id int64) error
}
