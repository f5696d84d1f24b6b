package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/student-records/internal/logger"
	"github.com/sbilibin2017/student-records/internal/models"
	"github.com/sbilibin2017/student-records/internal/validation"
)

//go:generate mockgen -source=student.go -destination=mock_student.go -package=services

// LatestCount is the number of recently created students shown on the home page.
const LatestCount = 5

// StudentReader defines read-only operations for students.
type StudentReader interface {
	GetByID(ctx context.Context, id int64) (*models.StudentDB, error)                 // Returns models.ErrStudentNotFound when absent
	List(ctx context.Context) ([]models.StudentDB, error)                             // Returns every student, newest id first
	Search(ctx context.Context, q string) ([]models.StudentDB, error)                 // Case-insensitive substring search
	Count(ctx context.Context) (int, error)                                           // Returns the number of students
	Latest(ctx context.Context, limit int) ([]models.StudentDB, error)                // Returns the most recently created students
	ExistsByRollNo(ctx context.Context, rollNo string, excludeID int64) (bool, error) // Reports a roll number collision
}

// StudentWriter defines write operations for students.
type StudentWriter interface {
	Create(ctx context.Context, in models.StudentInput) (int64, error)  // Inserts a student and returns its id
	Update(ctx context.Context, id int64, in models.StudentInput) error // Replaces the mutable fields of a student
	Delete(ctx context.Context, id int64) error                         // Removes a student
}

// StudentService handles student record management.
type StudentService struct {
	reader StudentReader
	writer StudentWriter
}

// NewStudentService creates a new StudentService instance.
func NewStudentService(reader StudentReader, writer StudentWriter) *StudentService {
	return &StudentService{
		reader: reader,
		writer: writer,
	}
}

// Summary returns the total number of students and the most recently created ones.
func (svc *StudentService) Summary(ctx context.Context) (*models.StudentSummary, error) {
	total, err := svc.reader.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count students", "err", err)
		return nil, err
	}

	latest, err := svc.reader.Latest(ctx, LatestCount)
	if err != nil {
		logger.Log.Errorw("failed to get latest students", "err", err)
		return nil, err
	}

	return &models.StudentSummary{Total: total, Latest: latest}, nil
}

// Search returns the students matching q. An empty or blank q returns every student.
func (svc *StudentService) Search(ctx context.Context, q string) ([]models.StudentDB, error) {
	q = validation.NormalizeQuery(q)

	var (
		students []models.StudentDB
		err      error
	)
	if q == "" {
		students, err = svc.reader.List(ctx)
	} else {
		students, err = svc.reader.Search(ctx, q)
	}
	if err != nil {
		logger.Log.Errorw("failed to search students", "q", q, "err", err)
		return nil, err
	}

	return students, nil
}

// Get returns a single student.
func (svc *StudentService) Get(ctx context.Context, id int64) (*models.StudentDB, error) {
	student, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrStudentNotFound) {
			logger.Log.Errorw("failed to get student", "id", id, "err", err)
		}
		return nil, err
	}
	return student, nil
}

// Create validates the form and stores a new student, returning its id.
func (svc *StudentService) Create(ctx context.Context, form models.StudentForm) (int64, error) {
	in, err := validation.ValidateStudent(form)
	if err != nil {
		logger.Log.Infow("rejected student", "err", err)
		return 0, err
	}

	exists, err := svc.reader.ExistsByRollNo(ctx, in.RollNo, 0)
	if err != nil {
		logger.Log.Errorw("failed to check roll number", "roll_no", in.RollNo, "err", err)
		return 0, err
	}
	if exists {
		logger.Log.Infow("student already exists", "roll_no", in.RollNo)
		return 0, fmt.Errorf("%w: %s", models.ErrDuplicateRollNo, in.RollNo)
	}

	id, err := svc.writer.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to save student", "roll_no", in.RollNo, "err", err)
		return 0, err
	}

	logger.Log.Infow("student created", "id", id, "roll_no", in.RollNo)
	return id, nil
}

// Update validates the form and replaces the mutable fields of the student.
func (svc *StudentService) Update(ctx context.Context, id int64, form models.StudentForm) error {
	if _, err := svc.Get(ctx, id); err != nil {
		return err
	}

	in, err := validation.ValidateStudent(form)
	if err != nil {
		logger.Log.Infow("rejected student update", "id", id, "err", err)
		return err
	}

	exists, err := svc.reader.ExistsByRollNo(ctx, in.RollNo, id)
	if err != nil {
		logger.Log.Errorw("failed to check roll number", "roll_no", in.RollNo, "err", err)
		return err
	}
	if exists {
		logger.Log.Infow("roll number used by another student", "id", id, "roll_no", in.RollNo)
		return fmt.Errorf("%w: %s", models.ErrDuplicateRollNo, in.RollNo)
	}

	if err := svc.writer.Update(ctx, id, in); err != nil {
		logger.Log.Errorw("failed to update student", "id", id, "err", err)
		return err
	}

	logger.Log.Infow("student updated", "id", id)
	return nil
}

// Delete removes the student.
func (svc *StudentService) Delete(ctx context.Context, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		if !errors.Is(err, models.ErrStudentNotFound) {
			logger.Log.Errorw("failed to delete student", "id", id, "err", err)
		}
		return err
	}

	logger.Log.Infow("student deleted", "id", id)
	return nil
}
