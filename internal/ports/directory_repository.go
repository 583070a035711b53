package ports

import (
	"context"

	"fuel-custody-service/internal/domain"
)

// Port: the depot/station directory (WSM module).
type DirectoryRepository interface {
	ListDepots(ctx context.Context) ([]*domain.Depot, error)
	ListStations(ctx context.Context) ([]*domain.Station, error)
}

// Port: operator accounts. Login matches an existing user by role
// string or creates one; there is no credential validation.
type UserRepository interface {
	FindOrCreateByRole(ctx context.Context, name, role string) (*domain.User, error)
}
