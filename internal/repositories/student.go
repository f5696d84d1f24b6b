package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/student-records/internal/logger"
	"github.com/sbilibin2017/student-records/internal/models"
	"github.com/sbilibin2017/student-records/internal/validation"
)

const studentColumns = "id, roll_no, name, email, department, dob, created_at"

// TxGetter returns the transaction bound to the context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the request transaction when one is bound to ctx,
// otherwise the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// withSavepoint runs fn inside a savepoint when ex is a transaction, so a
// failed statement leaves the enclosing transaction usable.
func withSavepoint(ctx context.Context, ex sqlx.ExtContext, name string, fn func() error) error {
	if _, ok := ex.(*sqlx.Tx); !ok {
		return fn()
	}

	if _, err := ex.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return err
	}
	if err := fn(); err != nil {
		if _, rbErr := ex.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			logger.Log.Errorw("failed to roll back to savepoint", "savepoint", name, "error", rbErr)
		}
		return err
	}
	_, err := ex.ExecContext(ctx, "RELEASE SAVEPOINT "+name)
	return err
}

// logQuery logs a query in a single line with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// StudentReadRepository handles student read operations
type StudentReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewStudentReadRepository(db *sqlx.DB, txGetter TxGetter) *StudentReadRepository {
	return &StudentReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the student with the given id or models.ErrStudentNotFound.
func (r *StudentReadRepository) GetByID(ctx context.Context, id int64) (*models.StudentDB, error) {
	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(`SELECT ` + studentColumns + ` FROM students WHERE id = ?`)

	var student models.StudentDB
	err := sqlx.GetContext(ctx, ex, &student, query, id)
	logQuery(query, []any{id}, student.ID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// List returns every student, newest id first.
func (r *StudentReadRepository) List(ctx context.Context) ([]models.StudentDB, error) {
	ex := executor(ctx, r.db, r.txGetter)
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY id DESC`

	students := make([]models.StudentDB, 0)
	err := sqlx.SelectContext(ctx, ex, &students, query)
	logQuery(query, nil, len(students), err)

	if err != nil {
		return nil, err
	}
	return students, nil
}

// Search returns students whose roll number, name, email or department
// contains q, ignoring case, newest id first.
func (r *StudentReadRepository) Search(ctx context.Context, q string) ([]models.StudentDB, error) {
	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(`
		SELECT ` + studentColumns + `
		FROM students
		WHERE LOWER(roll_no) LIKE LOWER(?) ESCAPE '\'
		   OR LOWER(name) LIKE LOWER(?) ESCAPE '\'
		   OR LOWER(email) LIKE LOWER(?) ESCAPE '\'
		   OR LOWER(department) LIKE LOWER(?) ESCAPE '\'
		ORDER BY id DESC
	`)
	pattern := validation.LikePattern(q)
	args := []any{pattern, pattern, pattern, pattern}

	students := make([]models.StudentDB, 0)
	err := sqlx.SelectContext(ctx, ex, &students, query, args...)
	logQuery(query, args, len(students), err)

	if err != nil {
		return nil, err
	}
	return students, nil
}

// Count returns the number of stored students.
func (r *StudentReadRepository) Count(ctx context.Context) (int, error) {
	ex := executor(ctx, r.db, r.txGetter)
	const query = `SELECT COUNT(*) FROM students`

	var count int
	err := sqlx.GetContext(ctx, ex, &count, query)
	logQuery(query, nil, count, err)

	return count, err
}

// Latest returns the limit most recently created students.
func (r *StudentReadRepository) Latest(ctx context.Context, limit int) ([]models.StudentDB, error) {
	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(`SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC, id DESC LIMIT ?`)

	students := make([]models.StudentDB, 0, limit)
	err := sqlx.SelectContext(ctx, ex, &students, query, limit)
	logQuery(query, []any{limit}, len(students), err)

	if err != nil {
		return nil, err
	}
	return students, nil
}

// ExistsByRollNo reports whether a student other than excludeID uses rollNo.
// Pass 0 as excludeID to check against every student.
func (r *StudentReadRepository) ExistsByRollNo(ctx context.Context, rollNo string, excludeID int64) (bool, error) {
	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(`SELECT EXISTS (SELECT 1 FROM students WHERE roll_no = ? AND id <> ?)`)

	var exists bool
	err := sqlx.GetContext(ctx, ex, &exists, query, rollNo, excludeID)
	logQuery(query, []any{rollNo, excludeID}, exists, err)

	return exists, err
}

// StudentWriteRepository handles student write operations
type StudentWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
	now      func() time.Time
}

func NewStudentWriteRepository(db *sqlx.DB, txGetter TxGetter) *StudentWriteRepository {
	return &StudentWriteRepository{
		db:       db,
		txGetter: txGetter,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts a student and returns its generated id.
// A roll number collision returns models.ErrDuplicateRollNo and does not
// abort the request transaction.
func (r *StudentWriteRepository) Create(ctx context.Context, in models.StudentInput) (int64, error) {
	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(`
		INSERT INTO students (roll_no, name, email, department, dob, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (roll_no) DO NOTHING
		RETURNING id
	`)
	args := []any{in.RollNo, in.Name, in.Email, in.Department, in.DOB, r.now()}

	var id int64
	err := sqlx.GetContext(ctx, ex, &id, query, args...)
	logQuery(query, args, id, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", models.ErrDuplicateRollNo, in.RollNo)
		}
		return 0, mapConstraintError(err)
	}
	return id, nil
}

// Update replaces every mutable field of the student with the given id.
// id and created_at are never touched. Inside a transaction the statement
// runs in a savepoint, so a roll number collision leaves the transaction
// usable.
func (r *StudentWriteRepository) Update(ctx context.Context, id int64, in models.StudentInput) error {
	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(`
		UPDATE students
		SET roll_no = ?, name = ?, email = ?, department = ?, dob = ?
		WHERE id = ?
	`)
	args := []any{in.RollNo, in.Name, in.Email, in.Department, in.DOB, id}

	var affected int64
	err := withSavepoint(ctx, ex, "student_update", func() error {
		res, err := ex.ExecContext(ctx, query, args...)
		affected = rowsAffected(res)
		logQuery(query, args, affected, err)
		return err
	})
	if err != nil {
		return mapConstraintError(err)
	}
	if affected == 0 {
		return models.ErrStudentNotFound
	}
	return nil
}

// Delete removes the student with the given id.
func (r *StudentWriteRepository) Delete(ctx context.Context, id int64) error {
	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(`DELETE FROM students WHERE id = ?`)

	res, err := ex.ExecContext(ctx, query, id)
	rowsAffected := rowsAffected(res)
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrStudentNotFound
	}
	return nil
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
