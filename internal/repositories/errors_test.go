package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/sbilibin2017/student-records/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapConstraintError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantDuplicate bool
	}{
		{
			name:          "sqlite unique",
			err:           sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			wantDuplicate: true,
		},
		{
			name: "sqlite not null",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull},
		},
		{
			name:          "postgres unique",
			err:           &pgconn.PgError{Code: "23505", ConstraintName: "students_roll_no_key"},
			wantDuplicate: true,
		},
		{
			name: "postgres check",
			err:  &pgconn.PgError{Code: "23514"},
		},
		{
			name: "other",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapConstraintError(tt.err)
			assert.Equal(t, tt.wantDuplicate, errors.Is(got, models.ErrDuplicateRollNo))
			if !tt.wantDuplicate {
				assert.Equal(t, tt.err, got)
			}
		})
	}
}

func newMockRepos(t *testing.T) (*StudentReadRepository, *StudentWriteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewStudentReadRepository(sqlxDB, nil), NewStudentWriteRepository(sqlxDB, nil), mock
}

func TestStudentWriteRepository_CreateDriverErrors(t *testing.T) {
	in := models.StudentInput{RollNo: "R1", Name: "Alice"}

	t.Run("unique violation", func(t *testing.T) {
		_, writeRepo, mock := newMockRepos(t)
		mock.ExpectQuery("INSERT INTO students").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := writeRepo.Create(context.Background(), in)
		assert.ErrorIs(t, err, models.ErrDuplicateRollNo)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict skips the insert", func(t *testing.T) {
		_, writeRepo, mock := newMockRepos(t)
		mock.ExpectQuery("INSERT INTO students .* ON CONFLICT \\(roll_no\\) DO NOTHING").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := writeRepo.Create(context.Background(), in)
		assert.ErrorIs(t, err, models.ErrDuplicateRollNo)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connection failure", func(t *testing.T) {
		_, writeRepo, mock := newMockRepos(t)
		mock.ExpectQuery("INSERT INTO students").
			WillReturnError(errors.New("connection reset"))

		_, err := writeRepo.Create(context.Background(), in)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrDuplicateRollNo)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStudentWriteRepository_UpdateDriverErrors(t *testing.T) {
	in := models.StudentInput{RollNo: "R1", Name: "Alice"}

	t.Run("unique violation", func(t *testing.T) {
		_, writeRepo, mock := newMockRepos(t)
		mock.ExpectExec("UPDATE students").
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

		err := writeRepo.Update(context.Background(), 1, in)
		assert.ErrorIs(t, err, models.ErrDuplicateRollNo)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows", func(t *testing.T) {
		_, writeRepo, mock := newMockRepos(t)
		mock.ExpectExec("UPDATE students").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := writeRepo.Update(context.Background(), 1, in)
		assert.ErrorIs(t, err, models.ErrStudentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStudentReadRepository_QueryErrors(t *testing.T) {
	readRepo, _, mock := newMockRepos(t)
	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectQuery("FROM students").WillReturnError(errors.New("disk I/O error"))

	_, err := readRepo.Count(context.Background())
	assert.Error(t, err)

	_, err = readRepo.GetByID(context.Background(), 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrStudentNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentWriteRepository_UpdateInTransactionUsesSavepoint(t *testing.T) {
	in := models.StudentInput{RollNo: "R1", Name: "Alice"}

	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "collision rolls back to the savepoint",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^SAVEPOINT student_update$").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("UPDATE students").
					WillReturnError(&pgconn.PgError{Code: "23505"})
				mock.ExpectExec("^ROLLBACK TO SAVEPOINT student_update$").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: models.ErrDuplicateRollNo,
		},
		{
			name: "success releases the savepoint",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^SAVEPOINT student_update$").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("UPDATE students").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("^RELEASE SAVEPOINT student_update$").WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			sqlxDB := sqlx.NewDb(db, "sqlmock")

			mock.ExpectBegin()
			tx, err := sqlxDB.Beginx()
			require.NoError(t, err)

			tt.mockSetup(mock)
			mock.ExpectCommit()

			writeRepo := NewStudentWriteRepository(sqlxDB, func(context.Context) *sqlx.Tx { return tx })
			err = writeRepo.Update(context.Background(), 1, in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			require.NoError(t, tx.Commit())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
