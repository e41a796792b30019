package workerrepo

import (
	"context"
	"errors"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/worker"
	"progress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkerRepository implements WorkerRepository using GORM.
type GormWorkerRepository struct {
	db *gorm.DB
}

func NewGormWorkerRepository(db *gorm.DB) *GormWorkerRepository {
	return &GormWorkerRepository{db: db}
}

func (r *GormWorkerRepository) Add(ctx context.Context, w *worker.Worker) error {
	if err := w.Validate(); err != nil {
		return err
	}

	dto := fromDomain(w)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("employee_id", dto.EmployeeID, err)
		}
		return err
	}
	return nil
}

func (r *GormWorkerRepository) Update(ctx context.Context, w *worker.Worker) error {
	if err := w.Validate(); err != nil {
		return err
	}

	dto := fromDomain(w)
	result := r.db.WithContext(ctx).
		Model(&WorkerDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"employee_id":         dto.EmployeeID,
			"name":                dto.Name,
			"hire_date":           dto.HireDate,
			"department":          dto.Department,
			"is_active":           dto.IsActive,
			"password_credential": dto.PasswordHash,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("employee_id", dto.EmployeeID, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("worker", w.ID().String())
	}
	return nil
}

func (r *GormWorkerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WorkerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("worker", id.String())
	}
	return nil
}

func (r *GormWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "worker", id.String(), "id = ?", id.Bytes())
}

func (r *GormWorkerRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*worker.Worker, error) {
	return r.first(ctx, "worker", employeeID, "employee_id = ?", employeeID)
}

func (r *GormWorkerRepository) first(ctx context.Context, param string, key any, query string, args ...any) (*worker.Worker, error) {
	var dto WorkerDTO
	if err := r.db.WithContext(ctx).Where(query, args...).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}
	return toDomain(dto)
}
