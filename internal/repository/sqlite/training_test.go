package sqlite_test

import (
	"context"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/training"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingRepository_EnrollmentLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewTrainingRepository(db)
	emp := createTestEmployee(t, db, "EMP00000001", "learner@example.com")

	program, err := repo.CreateProgram(ctx, training.Program{
		Name:      "Onboarding",
		StartDate: "2024-09-01",
		EndDate:   "2024-09-02",
		Capacity:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, training.ProgramScheduled, program.Status)

	en, err := repo.CreateEnrollment(ctx, training.Enrollment{
		TrainingProgramID: program.ID,
		EmployeeID:        emp.ID,
		EnrollmentDate:    "2024-08-20",
	})
	require.NoError(t, err)
	assert.Equal(t, training.CompletionEnrolled, en.CompletionStatus)

	_, err = repo.CreateEnrollment(ctx, training.Enrollment{
		TrainingProgramID: program.ID,
		EmployeeID:        emp.ID,
		EnrollmentDate:    "2024-08-21",
	})
	assert.ErrorIs(t, err, training.ErrDuplicateEnrollment)

	count, err := repo.RecountEnrollments(ctx, program.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.DeleteProgram(ctx, program.ID))
	_, err = repo.GetEnrollment(ctx, en.ID)
	assert.ErrorIs(t, err, training.ErrEnrollmentNotFound)
}
