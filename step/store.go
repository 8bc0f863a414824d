package step

import (
	"context"
)

// Store defines the interface for step persistence operations.
type Store interface {
	// Create inserts a new step.
	Create(ctx context.Context, s *Step) error

	// GetByID retrieves a step by its ID.
	GetByID(ctx context.Context, id uint) (*Step, error)

	// UpdateByID persists every column of s, keyed by s.ID.
	UpdateByID(ctx context.Context, s *Step) error

	// Update applies setters to the step with the given ID.
	Update(ctx context.Context, id uint, setters ...UpdateSetter) error

	// FindByCaseIDOrderBySort lists the steps of a case in execution order.
	FindByCaseIDOrderBySort(ctx context.Context, caseID uint) ([]*Step, error)

	// ListByIDsOrderBySort lists the given steps in execution order.
	ListByIDsOrderBySort(ctx context.Context, ids []uint) ([]*Step, error)

	// ListByText lists steps whose text equals text.
	ListByText(ctx context.Context, text string) ([]*Step, error)

	// Bind binds an element to an element-driven step.
	Bind(ctx context.Context, stepID, elementID uint) (*StepsElements, error)

	// ListBindings lists the element bindings of a step in insertion order.
	ListBindings(ctx context.Context, stepID uint) ([]*StepsElements, error)

	// ListElementsByStepID lists the elements bound to a step in binding order.
	ListElementsByStepID(ctx context.Context, stepID uint) ([]*Element, error)

	// CreateElement inserts a new element definition.
	CreateElement(ctx context.Context, e *Element) error
}

// UpdateSetter is a function that updates a step field.
type UpdateSetter func(*Step) error
