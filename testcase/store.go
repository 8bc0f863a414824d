package testcase

import (
	"context"
)

// ListOptions filters a paged listing. Zero ProjectID or Platform disables
// that filter; Name is matched as a case-insensitive substring.
type ListOptions struct {
	ProjectID uint
	Platform  Platform
	Name      string
	Limit     int
	Offset    int
}

// Page is one page of test cases along with the total match count.
type Page struct {
	Items  []*TestCase `json:"items"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// Store defines the interface for test case row persistence.
type Store interface {
	// Create inserts a new test case.
	Create(ctx context.Context, tc *TestCase) error

	// GetByID retrieves a test case by its ID.
	GetByID(ctx context.Context, id uint) (*TestCase, error)

	// Exists reports whether a test case with the given ID exists.
	Exists(ctx context.Context, id uint) (bool, error)

	// Update applies setters to a test case and refreshes its edit time.
	Update(ctx context.Context, id uint, setters ...UpdateSetter) error

	// List returns a page of test cases ordered by edit time, newest first.
	List(ctx context.Context, opts ListOptions) (*Page, error)

	// ListByProjectAndPlatform lists all matching test cases, newest first.
	ListByProjectAndPlatform(ctx context.Context, projectID uint, platform Platform) ([]*TestCase, error)

	// FindByIDs retrieves the test cases with the given IDs.
	FindByIDs(ctx context.Context, ids []uint) ([]*TestCase, error)

	// ListIDsByProject lists the IDs of a project's test cases.
	ListIDsByProject(ctx context.Context, projectID uint) ([]uint, error)

	// DeleteByID removes a test case row and reports whether it existed.
	DeleteByID(ctx context.Context, id uint) (bool, error)

	// DeleteByProjectID removes a project's test case rows and reports how many.
	DeleteByProjectID(ctx context.Context, projectID uint) (int64, error)
}

// UpdateSetter is a function that updates a test case field.
type UpdateSetter func(*TestCase) error
