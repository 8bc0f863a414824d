package testsuite

import (
	"context"
)

// Store defines the interface for suite membership persistence operations.
type Store interface {
	// AddCase adds a case to a suite at the given position.
	AddCase(ctx context.Context, suiteID, caseID uint, sort int) (*TestSuitesTestCases, error)

	// ListCaseIDs lists the cases of a suite in suite order.
	ListCaseIDs(ctx context.Context, suiteID uint) ([]uint, error)

	// DeleteByCaseID removes every suite membership of a case.
	DeleteByCaseID(ctx context.Context, caseID uint) (int64, error)

	// DeleteByCaseIDs removes every suite membership of the given cases.
	DeleteByCaseIDs(ctx context.Context, caseIDs []uint) (int64, error)

	// AddPublicStepMember adds a step to a public step at the given position.
	AddPublicStepMember(ctx context.Context, publicStepsID, stepID uint, sort int) (*PublicStepsSteps, error)

	// ListPublicStepMemberIDs lists the member steps of a public step in order.
	ListPublicStepMemberIDs(ctx context.Context, publicStepsID uint) ([]uint, error)
}
