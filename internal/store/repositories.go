package store

import "github.com/MKhiriev/poem-catalog/internal/logger"

// Repositories bundles every repository backed by the shared database
// handle. It is the single value the service layer is constructed from.
type Repositories struct {
	PoemRepository     PoemRepository
	UserRepository     UserRepository
	FavoriteRepository FavoriteRepository
}

// NewRepositories wires all repositories to the given database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		PoemRepository:     NewPoemRepository(db, logger),
		UserRepository:     NewUserRepository(db, logger),
		FavoriteRepository: NewFavoriteRepository(db, logger),
	}
}
