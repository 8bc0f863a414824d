package globalparam

import (
	"context"
)

// Store defines the interface for global parameter persistence operations.
type Store interface {
	// Create inserts a new global parameter.
	Create(ctx context.Context, param *GlobalParam) error

	// GetByID retrieves a global parameter by its ID.
	GetByID(ctx context.Context, id uint) (*GlobalParam, error)

	// FindAll lists every global parameter of a project.
	FindAll(ctx context.Context, projectID uint) ([]*GlobalParam, error)

	// Update applies setters to the parameter with the given ID.
	Update(ctx context.Context, id uint, setters ...UpdateSetter) error

	// Delete removes a global parameter.
	Delete(ctx context.Context, id uint) error

	// DeleteByProjectID removes every global parameter of a project.
	DeleteByProjectID(ctx context.Context, projectID uint) (int64, error)
}

// UpdateSetter is a function that updates a global parameter field.
type UpdateSetter func(*GlobalParam) error
