package testcase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hairizuan-noorazman/testcases/database"
	"github.com/hairizuan-noorazman/testcases/globalparam"
	"github.com/hairizuan-noorazman/testcases/logger"
	"github.com/hairizuan-noorazman/testcases/step"
	"github.com/hairizuan-noorazman/testcases/testsuite"
	"gorm.io/gorm"
)

// StepService is the part of the step store the service depends on.
type StepService interface {
	Create(ctx context.Context, s *step.Step) error
	FindByCaseIDOrderBySort(ctx context.Context, caseID uint) ([]*step.Step, error)
	UpdateByID(ctx context.Context, s *step.Step) error
	ListByText(ctx context.Context, text string) ([]*step.Step, error)
	ListBindings(ctx context.Context, stepID uint) ([]*step.StepsElements, error)
	Bind(ctx context.Context, stepID, elementID uint) (*step.StepsElements, error)
}

// GlobalParamService lists a project's global parameters.
type GlobalParamService interface {
	FindAll(ctx context.Context, projectID uint) ([]*globalparam.GlobalParam, error)
}

// SuiteMembership removes suite memberships of cases.
type SuiteMembership interface {
	DeleteByCaseID(ctx context.Context, caseID uint) (int64, error)
	DeleteByCaseIDs(ctx context.Context, caseIDs []uint) (int64, error)
}

// StepExpander turns a stored step into an executable step.
type StepExpander interface {
	GetStep(ctx context.Context, s *step.Step) (*testsuite.ExecutableStep, error)
}

// RunPlan is what an agent needs to execute a case: the platform, the
// expanded steps in order and the resolved global parameters.
type RunPlan struct {
	Platform     Platform                    `json:"pf"`
	Steps        []*testsuite.ExecutableStep `json:"steps"`
	GlobalParams map[string]string           `json:"gp"`
}

// Dependencies wires a Service. Shuffler is optional and defaults to
// globalparam.DefaultShuffler.
type Dependencies struct {
	DB           *gorm.DB
	Cases        Store
	Steps        StepService
	GlobalParams GlobalParamService
	Suites       SuiteMembership
	Expander     StepExpander
	Shuffler     globalparam.Shuffler
}

// Service orchestrates test case operations that span several stores.
// Multi-store operations run in one transaction carried on the context, so
// every collaborator joins it.
type Service struct {
	db       *gorm.DB
	cases    Store
	steps    StepService
	params   GlobalParamService
	suites   SuiteMembership
	expander StepExpander
	shuffler globalparam.Shuffler
	logger   logger.Logger
}

// NewService creates a test case service.
func NewService(deps Dependencies, log logger.Logger) *Service {
	shuffler := deps.Shuffler
	if shuffler == nil {
		shuffler = globalparam.DefaultShuffler
	}
	return &Service{
		db:       deps.DB,
		cases:    deps.Cases,
		steps:    deps.Steps,
		params:   deps.GlobalParams,
		suites:   deps.Suites,
		expander: deps.Expander,
		shuffler: shuffler,
		logger:   log,
	}
}

// Create saves a new test case.
func (s *Service) Create(ctx context.Context, tc *TestCase) error {
	return s.cases.Create(ctx, tc)
}

// GetByID retrieves a test case, or ErrTestCaseNotFound.
func (s *Service) GetByID(ctx context.Context, id uint) (*TestCase, error) {
	return s.cases.GetByID(ctx, id)
}

// Update applies setters to a test case.
func (s *Service) Update(ctx context.Context, id uint, setters ...UpdateSetter) error {
	return s.cases.Update(ctx, id, setters...)
}

// List returns a filtered page of test cases, newest edit first.
func (s *Service) List(ctx context.Context, opts ListOptions) (*Page, error) {
	return s.cases.List(ctx, opts)
}

// ListByProjectAndPlatform lists a project's cases for a platform, newest edit first.
func (s *Service) ListByProjectAndPlatform(ctx context.Context, projectID uint, platform Platform) ([]*TestCase, error) {
	return s.cases.ListByProjectAndPlatform(ctx, projectID, platform)
}

// FindByIDs retrieves the given test cases; an empty list yields an empty result.
func (s *Service) FindByIDs(ctx context.Context, ids []uint) ([]*TestCase, error) {
	return s.cases.FindByIDs(ctx, ids)
}

// ListByPublicStepsID returns the distinct cases owning a step that refers
// to the given public step.
func (s *Service) ListByPublicStepsID(ctx context.Context, publicStepsID uint) ([]*TestCase, error) {
	steps, err := s.steps.ListByText(ctx, strconv.FormatUint(uint64(publicStepsID), 10))
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return []*TestCase{}, nil
	}

	seen := make(map[uint]struct{}, len(steps))
	var caseIDs []uint
	for _, st := range steps {
		if st.CaseID == 0 {
			continue
		}
		if _, ok := seen[st.CaseID]; ok {
			continue
		}
		seen[st.CaseID] = struct{}{}
		caseIDs = append(caseIDs, st.CaseID)
	}

	return s.cases.FindByIDs(ctx, caseIDs)
}

// Delete removes a test case. Its suite memberships are deleted and its
// steps detached (case ID set to 0), all in one transaction. It reports
// false without writing anything when the case does not exist.
func (s *Service) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool

	err := database.Transaction(ctx, s.db, func(ctx context.Context) error {
		exists, err := s.cases.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}

		if _, err := s.suites.DeleteByCaseID(ctx, id); err != nil {
			return fmt.Errorf("failed to delete suite memberships: %w", err)
		}

		if err := s.detachSteps(ctx, id); err != nil {
			return err
		}

		deleted, err = s.cases.DeleteByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete test case row: %w", err)
		}
		return nil
	})

	if err != nil {
		s.logger.Error(ctx, "failed to delete test case", map[string]interface{}{
			"error":        err.Error(),
			"test_case_id": id,
		})
		return false, err
	}

	if deleted {
		s.logger.Info(ctx, "test case deleted", map[string]interface{}{
			"test_case_id": id,
		})
	}

	return deleted, nil
}

// DeleteByProjectID removes every test case of a project with the same
// cascade as Delete, in one transaction. It reports whether any case was removed.
func (s *Service) DeleteByProjectID(ctx context.Context, projectID uint) (bool, error) {
	var removed int64

	err := database.Transaction(ctx, s.db, func(ctx context.Context) error {
		ids, err := s.cases.ListIDsByProject(ctx, projectID)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if _, err := s.suites.DeleteByCaseIDs(ctx, ids); err != nil {
			return fmt.Errorf("failed to delete suite memberships: %w", err)
		}

		for _, id := range ids {
			if err := s.detachSteps(ctx, id); err != nil {
				return err
			}
		}

		removed, err = s.cases.DeleteByProjectID(ctx, projectID)
		if err != nil {
			return fmt.Errorf("failed to delete test case rows: %w", err)
		}
		return nil
	})

	if err != nil {
		s.logger.Error(ctx, "failed to delete test cases by project", map[string]interface{}{
			"error":      err.Error(),
			"project_id": projectID,
		})
		return false, err
	}

	s.logger.Info(ctx, "test cases deleted by project", map[string]interface{}{
		"project_id": projectID,
		"removed":    removed,
	})

	return removed > 0, nil
}

func (s *Service) detachSteps(ctx context.Context, caseID uint) error {
	steps, err := s.steps.FindByCaseIDOrderBySort(ctx, caseID)
	if err != nil {
		return fmt.Errorf("failed to list steps of case %d: %w", caseID, err)
	}

	for _, st := range steps {
		st.CaseID = 0
		if err := s.steps.UpdateByID(ctx, st); err != nil {
			return fmt.Errorf("failed to detach step %d: %w", st.ID, err)
		}
	}
	return nil
}

// FindSteps builds the run plan of a test case, or returns ErrTestCaseNotFound.
// Randomized global parameters are resolved afresh on every call.
func (s *Service) FindSteps(ctx context.Context, id uint) (*RunPlan, error) {
	var plan *RunPlan

	err := database.Transaction(ctx, s.db, func(ctx context.Context) error {
		tc, err := s.cases.GetByID(ctx, id)
		if err != nil {
			return err
		}

		steps, err := s.steps.FindByCaseIDOrderBySort(ctx, id)
		if err != nil {
			return err
		}

		expanded := make([]*testsuite.ExecutableStep, 0, len(steps))
		for _, st := range steps {
			es, err := s.expander.GetStep(ctx, st)
			if err != nil {
				return fmt.Errorf("failed to expand step %d: %w", st.ID, err)
			}
			expanded = append(expanded, es)
		}

		params, err := s.params.FindAll(ctx, tc.ProjectID)
		if err != nil {
			return err
		}

		plan = &RunPlan{
			Platform:     tc.Platform,
			Steps:        expanded,
			GlobalParams: globalparam.Resolve(params, s.shuffler),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return plan, nil
}

// Copy deep-clones a test case: the case row as "<name>_copy", each of its
// steps in sort order, and each element-driven step's element bindings.
// Bindings follow their step through the old step ID, so no ordering of
// re-queried rows is relied on. Everything runs in one transaction.
func (s *Service) Copy(ctx context.Context, id uint) (*TestCase, error) {
	var clone *TestCase
	var copiedSteps, copiedBindings int

	err := database.Transaction(ctx, s.db, func(ctx context.Context) error {
		original, err := s.cases.GetByID(ctx, id)
		if err != nil {
			return err
		}

		steps, err := s.steps.FindByCaseIDOrderBySort(ctx, id)
		if err != nil {
			return err
		}

		clone = original.Clone()
		if err := s.cases.Create(ctx, clone); err != nil {
			return fmt.Errorf("failed to create copied test case: %w", err)
		}

		for _, st := range steps {
			var bindings []*step.StepsElements
			if st.NeedsElement() {
				bindings, err = s.steps.ListBindings(ctx, st.ID)
				if err != nil {
					return err
				}
			}

			copied := st.Clone(clone.ID)
			if err := s.steps.Create(ctx, copied); err != nil {
				return fmt.Errorf("failed to copy step %d: %w", st.ID, err)
			}
			copiedSteps++

			for _, b := range bindings {
				if _, err := s.steps.Bind(ctx, copied.ID, b.ElementsID); err != nil {
					return fmt.Errorf("failed to copy binding of step %d: %w", st.ID, err)
				}
				copiedBindings++
			}
		}
		return nil
	})

	if err != nil {
		s.logger.Error(ctx, "failed to copy test case", map[string]interface{}{
			"error":        err.Error(),
			"test_case_id": id,
		})
		return nil, err
	}

	s.logger.Info(ctx, "test case copied", map[string]interface{}{
		"test_case_id":    id,
		"new_test_case":   clone.ID,
		"steps_copied":    copiedSteps,
		"bindings_copied": copiedBindings,
	})

	return clone, nil
}
