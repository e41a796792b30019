// Package processrepo persists the process registry in the processes table.
package processrepo

import (
	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/process"

	"github.com/google/uuid"
)

type ProcessDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"size:100;not null"`
	Order    int       `gorm:"column:order;not null;index;check:chk_processes_order,\"order\" >= 0"`
}

func (ProcessDTO) TableName() string {
	return "processes"
}

func fromDomain(p *process.Process) ProcessDTO {
	return ProcessDTO{
		ID:       p.ID().Bytes(),
		Name:     p.Name(),
		Order:    p.Position(),
	}
}

func toDomain(dto ProcessDTO) (*process.Process, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return process.RestoreProcess(id, dto.Name, dto.Order)
}
