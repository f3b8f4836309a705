package store

import "github.com/MKhiriev/go-users-api/internal/logger"

// Storages groups the repositories used by the service layer.
type Storages struct {
	UserRepository UserRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}
}
