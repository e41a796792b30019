package postgres

import (
	"progress/internal/adapters/out/postgres/orderrepo"
	"progress/internal/adapters/out/postgres/processrepo"
	"progress/internal/adapters/out/postgres/progresslogrepo"
	"progress/internal/adapters/out/postgres/workerrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&processrepo.ProcessDTO{},
		&orderrepo.OrderDTO{},
		&progresslogrepo.EntryDTO{},
		&workerrepo.WorkerDTO{},
	}
}

// Migrate creates or updates the schema, including the partial unique index
// on open progress entries.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
