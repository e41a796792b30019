package processrepo

import (
	"context"
	"errors"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/process"
	"progress/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProcessRepository implements ProcessRepository using GORM.
type GormProcessRepository struct {
	db *gorm.DB
}

func NewGormProcessRepository(db *gorm.DB) *GormProcessRepository {
	return &GormProcessRepository{db: db}
}

func (r *GormProcessRepository) Add(ctx context.Context, p *process.Process) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormProcessRepository) Update(ctx context.Context, p *process.Process) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).
		Model(&ProcessDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "order": dto.Order})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("process", p.ID().String())
	}
	return nil
}

func (r *GormProcessRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProcessDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("process", id.String())
	}
	return nil
}

func (r *GormProcessRepository) Get(ctx context.Context, id kernel.UUID) (*process.Process, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProcessDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("process", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Sequence loads every process. Ties on "order" are broken by
// process.NewSequence, not by the database.
func (r *GormProcessRepository) Sequence(ctx context.Context) (process.Sequence, error) {
	var dtos []ProcessDTO
	if err := r.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).Find(&dtos).Error; err != nil {
		return process.Sequence{}, err
	}

	processes := make([]*process.Process, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return process.Sequence{}, err
		}
		processes = append(processes, p)
	}

	return process.NewSequence(processes), nil
}
