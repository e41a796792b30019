// Package workerrepo persists workers in the workers table.
package workerrepo

import (
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

type WorkerDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID   string     `gorm:"size:20;not null;uniqueIndex"`
	Name         string     `gorm:"size:100;not null"`
	HireDate     *time.Time `gorm:"type:date"`
	Department   string     `gorm:"size:100"`
	IsActive     bool       `gorm:"not null"`
	PasswordHash []byte     `gorm:"column:password_credential;type:bytea;not null"`
}

func (WorkerDTO) TableName() string {
	return "workers"
}

func fromDomain(w *worker.Worker) WorkerDTO {
	return WorkerDTO{
		ID:           w.ID().Bytes(),
		EmployeeID:   w.EmployeeID(),
		Name:         w.Name(),
		HireDate:     w.HireDate(),
		Department:   w.Department(),
		IsActive:     w.IsActive(),
		PasswordHash: w.PasswordHash(),
	}
}

func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return worker.RestoreWorker(id, dto.EmployeeID, dto.Name, dto.PasswordHash, worker.Profile{
		HireDate:   dto.HireDate,
		Department: dto.Department,
		IsActive:   dto.IsActive,
	})
}
