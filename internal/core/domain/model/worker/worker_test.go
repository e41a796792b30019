package worker_test

import (
	"testing"
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/worker"
	"progress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorker(t *testing.T) {
	hired := time.Date(2021, 4, 1, 13, 0, 0, 0, time.UTC)

	t.Run("should hash password", func(t *testing.T) {
		w, err := worker.NewWorker(kernel.NewUUID(), " E-001 ", "Sato", "s3cret-pass", worker.Profile{
			HireDate:   &hired,
			Department: "Assembly",
			IsActive:   true,
		})

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.Equal(t, "E-001", w.EmployeeID())
		assert.Equal(t, "Sato", w.Name())
		assert.Equal(t, "Assembly", w.Department())
		assert.True(t, w.IsActive())
		assert.Equal(t, time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC), *w.HireDate())
		assert.NotEqual(t, "s3cret-pass", string(w.PasswordHash()))
		require.NoError(t, w.CheckPassword("s3cret-pass"))
		require.ErrorIs(t, w.CheckPassword("wrong-pass"), worker.ErrPasswordMismatch)
	})

	t.Run("should reject short password", func(t *testing.T) {
		_, err := worker.NewWorker(kernel.NewUUID(), "E-002", "Suzuki", "short", worker.Profile{})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join field errors", func(t *testing.T) {
		_, err := worker.NewWorker(kernel.NewUUID(), "", "", "long-enough", worker.Profile{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "employee_id")
		assert.Contains(t, err.Error(), "name")
	})
}

func TestRestoreWorker(t *testing.T) {
	t.Run("should reject non bcrypt hash", func(t *testing.T) {
		_, err := worker.RestoreWorker(kernel.NewUUID(), "E-1", "Tanaka", []byte("plain"), worker.Profile{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should keep optional fields empty", func(t *testing.T) {
		src, err := worker.NewWorker(kernel.NewUUID(), "E-1", "Tanaka", "password1", worker.Profile{})
		require.NoError(t, err)

		w, err := worker.RestoreWorker(src.ID(), "E-1", "Tanaka", src.PasswordHash(), worker.Profile{})

		require.NoError(t, err)
		assert.Nil(t, w.HireDate())
		assert.Empty(t, w.Department())
		assert.False(t, w.IsActive())
		require.NoError(t, w.CheckPassword("password1"))
	})
}

func TestWorker_Deactivate(t *testing.T) {
	w, err := worker.NewWorker(kernel.NewUUID(), "E-9", "Ito", "password1", worker.Profile{IsActive: true})
	require.NoError(t, err)

	w.Deactivate()

	assert.False(t, w.IsActive())
}

func TestWorker_Edit(t *testing.T) {
	hired := time.Date(2019, 10, 1, 9, 30, 0, 0, time.UTC)

	t.Run("should replace identity and profile", func(t *testing.T) {
		w, err := worker.NewWorker(kernel.NewUUID(), "E-1", "Ito", "password1", worker.Profile{
			Department: "Paint",
			IsActive:   true,
		})
		require.NoError(t, err)

		err = w.Edit(" E-2 ", "Ito Ken", worker.Profile{HireDate: &hired, Department: "Welding"})

		require.NoError(t, err)
		assert.Equal(t, "E-2", w.EmployeeID())
		assert.Equal(t, "Ito Ken", w.Name())
		assert.Equal(t, "Welding", w.Department())
		assert.False(t, w.IsActive())
		assert.Equal(t, time.Date(2019, 10, 1, 0, 0, 0, 0, time.UTC), *w.HireDate())
		require.NoError(t, w.CheckPassword("password1"))
	})

	t.Run("should leave worker untouched on invalid input", func(t *testing.T) {
		w, err := worker.NewWorker(kernel.NewUUID(), "E-1", "Ito", "password1", worker.Profile{IsActive: true})
		require.NoError(t, err)

		err = w.Edit("E-2", "", worker.Profile{Department: "Welding"})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "E-1", w.EmployeeID())
		assert.Equal(t, "Ito", w.Name())
		assert.Empty(t, w.Department())
		assert.True(t, w.IsActive())
	})
}

func TestWorker_ChangePassword(t *testing.T) {
	w, err := worker.NewWorker(kernel.NewUUID(), "E-1", "Ito", "password1", worker.Profile{})
	require.NoError(t, err)

	require.ErrorIs(t, w.ChangePassword("short"), errs.ErrValueIsOutOfRange)
	require.NoError(t, w.CheckPassword("password1"))

	require.NoError(t, w.ChangePassword("password2"))
	require.NoError(t, w.CheckPassword("password2"))
	require.ErrorIs(t, w.CheckPassword("password1"), worker.ErrPasswordMismatch)
}
