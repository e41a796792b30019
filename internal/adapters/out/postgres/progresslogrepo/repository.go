package progresslogrepo

import (
	"context"
	"errors"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/progress"
	"progress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProgressLogRepository implements ProgressLogRepository using GORM.
type GormProgressLogRepository struct {
	db *gorm.DB
}

func NewGormProgressLogRepository(db *gorm.DB) *GormProgressLogRepository {
	return &GormProgressLogRepository{db: db}
}

// Add inserts an open entry. The open entry index turns a racing second
// start into errs.ErrObjectAlreadyExists.
func (r *GormProgressLogRepository) Add(ctx context.Context, entry *progress.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("open progress entry", entry.ProcessID().String(), err)
		}
		return err
	}
	return nil
}

// Close sets end_time on a row that is still open.
func (r *GormProgressLogRepository) Close(ctx context.Context, entry *progress.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if entry.IsOpen() {
		return errs.NewValueIsRequiredError("end_time")
	}

	result := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("id = ? AND end_time IS NULL", entry.ID().Bytes()).
		Update("end_time", entry.EndTime())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("open progress entry", entry.ID().String())
	}
	return nil
}

func (r *GormProgressLogRepository) FindOpen(ctx context.Context, orderID, processID kernel.UUID) (*progress.Entry, error) {
	return r.first(ctx, "start_time DESC",
		"order_id = ? AND process_id = ? AND end_time IS NULL", orderID.Bytes(), processID.Bytes())
}

func (r *GormProgressLogRepository) FindLatest(ctx context.Context, orderID, processID kernel.UUID) (*progress.Entry, error) {
	return r.first(ctx, "end_time DESC NULLS FIRST, start_time DESC",
		"order_id = ? AND process_id = ?", orderID.Bytes(), processID.Bytes())
}

func (r *GormProgressLogRepository) DetachWorker(ctx context.Context, workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("worker_id = ?", workerID.Bytes()).
		Update("worker_id", nil).Error
}

func (r *GormProgressLogRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*progress.Entry, error) {
	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("start_time ASC, id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*progress.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *GormProgressLogRepository) first(ctx context.Context, order string, query string, args ...any) (*progress.Entry, error) {
	var dto EntryDTO
	err := r.db.WithContext(ctx).Where(query, args...).Order(order).Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomain(dto)
}
