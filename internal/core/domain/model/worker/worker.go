package worker

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	MaxEmployeeIDLength = 20
	MaxNameLength       = 100
	MaxDepartmentLength = 100
	MinPasswordLength   = 8
)

var (
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")
	ErrPasswordMismatch       = errors.New("password does not match")
)

type Worker struct {
	id           kernel.UUID
	employeeID   string
	name         string
	hireDate     *time.Time
	department   string
	isActive     bool
	passwordHash []byte

	isConstructed bool
}

// Profile groups the optional descriptive fields of a worker.
type Profile struct {
	HireDate   *time.Time
	Department string
	IsActive   bool
}

// NewWorker hashes password with bcrypt.DefaultCost.
func NewWorker(id kernel.UUID, employeeID, name, password string, profile Profile) (*Worker, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	return RestoreWorker(id, employeeID, name, hash, profile)
}

func RestoreWorker(id kernel.UUID, employeeID, name string, passwordHash []byte, profile Profile) (*Worker, error) {
	w := &Worker{
		isActive:      profile.IsActive,
		passwordHash:  passwordHash,
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setEmployeeID(employeeID),
		w.setName(name),
		w.setDepartment(profile.Department),
		validateHash(passwordHash),
	); err != nil {
		return nil, err
	}

	w.hireDate = dateOnly(profile.HireDate)
	return w, nil
}

func (w *Worker) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkerIsNotConstructed
	}
	return nil
}

func (w *Worker) ID() kernel.UUID {
	return w.id
}

func (w *Worker) EmployeeID() string {
	return w.employeeID
}

func (w *Worker) Name() string {
	return w.name
}

func (w *Worker) HireDate() *time.Time {
	if w.hireDate == nil {
		return nil
	}
	hd := *w.hireDate
	return &hd
}

func (w *Worker) Department() string {
	return w.department
}

func (w *Worker) IsActive() bool {
	return w.isActive
}

func (w *Worker) PasswordHash() []byte {
	return append([]byte(nil), w.passwordHash...)
}

func (w *Worker) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword(w.passwordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}
	return nil
}

func (w *Worker) Deactivate() {
	w.isActive = false
}

// Edit replaces the identity and profile of the worker. Nothing changes when
// any field is invalid.
//
// Parameters:
//   - employeeID: new employee number, trimmed, 1..MaxEmployeeIDLength runes
//   - name: display name, trimmed, 1..MaxNameLength runes
//   - profile: hire date, department and active flag, replaced as a whole
//
// Returns:
//   - error: errs.ErrValueIsRequired or errs.ErrValueIsOutOfRange, joined
func (w *Worker) Edit(employeeID, name string, profile Profile) error {
	edited := *w
	if err := errors.Join(
		edited.setEmployeeID(employeeID),
		edited.setName(name),
		edited.setDepartment(profile.Department),
	); err != nil {
		return err
	}

	edited.hireDate = dateOnly(profile.HireDate)
	edited.isActive = profile.IsActive
	*w = edited
	return nil
}

// ChangePassword stores a fresh hash of password. The old hash is kept on
// failure.
func (w *Worker) ChangePassword(password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	w.passwordHash = hash
	return nil
}

func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) setEmployeeID(employeeID string) error {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return errs.NewValueIsRequiredError("employee_id")
	}
	if n := utf8.RuneCountInString(employeeID); n > MaxEmployeeIDLength {
		return errs.NewValueIsOutOfRangeError("employee_id length", n, 1, MaxEmployeeIDLength)
	}
	w.employeeID = employeeID
	return nil
}

func (w *Worker) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	w.name = name
	return nil
}

func (w *Worker) setDepartment(department string) error {
	department = strings.TrimSpace(department)
	if n := utf8.RuneCountInString(department); n > MaxDepartmentLength {
		return errs.NewValueIsOutOfRangeError("department length", n, 0, MaxDepartmentLength)
	}
	w.department = department
	return nil
}

func hashPassword(password string) ([]byte, error) {
	if n := utf8.RuneCountInString(password); n < MinPasswordLength {
		return nil, errs.NewValueIsOutOfRangeError("password length", n, MinPasswordLength, 72)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	return hash, nil
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &day
}

func validateHash(hash []byte) error {
	if len(hash) == 0 {
		return errs.NewValueIsRequiredError("password_hash")
	}
	if _, err := bcrypt.Cost(hash); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password_hash", fmt.Errorf("not a bcrypt hash: %w", err))
	}
	return nil
}
