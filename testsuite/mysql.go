package testsuite

import (
	"context"

	"github.com/hairizuan-noorazman/testcases/database"
	"github.com/hairizuan-noorazman/testcases/logger"
	"gorm.io/gorm"
)

// MySQLStore implements the Store interface using GORM and MySQL.
type MySQLStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewMySQLStore creates a new MySQL-backed suite store.
func NewMySQLStore(db *gorm.DB, log logger.Logger) *MySQLStore {
	return &MySQLStore{
		db:     db,
		logger: log,
	}
}

// AddCase adds a case to a suite at the given position.
func (s *MySQLStore) AddCase(ctx context.Context, suiteID, caseID uint, sort int) (*TestSuitesTestCases, error) {
	if suiteID == 0 {
		return nil, ErrInvalidSuiteID
	}
	if caseID == 0 {
		return nil, ErrInvalidCaseID
	}

	membership := &TestSuitesTestCases{TestSuitesID: suiteID, TestCasesID: caseID, Sort: sort}
	if err := database.Conn(ctx, s.db).Create(membership).Error; err != nil {
		s.logger.Error(ctx, "failed to add case to suite", map[string]interface{}{
			"error":         err.Error(),
			"test_suite_id": suiteID,
			"test_case_id":  caseID,
		})
		return nil, err
	}

	return membership, nil
}

// ListCaseIDs lists the cases of a suite in suite order.
func (s *MySQLStore) ListCaseIDs(ctx context.Context, suiteID uint) ([]uint, error) {
	var ids []uint
	err := database.Conn(ctx, s.db).
		Model(&TestSuitesTestCases{}).
		Where("test_suites_id = ?", suiteID).
		Order("sort ASC").
		Order("id ASC").
		Pluck("test_cases_id", &ids).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list suite cases", map[string]interface{}{
			"error":         err.Error(),
			"test_suite_id": suiteID,
		})
		return nil, err
	}

	return ids, nil
}

// DeleteByCaseID removes every suite membership of a case.
func (s *MySQLStore) DeleteByCaseID(ctx context.Context, caseID uint) (int64, error) {
	return s.DeleteByCaseIDs(ctx, []uint{caseID})
}

// DeleteByCaseIDs removes every suite membership of the given cases.
func (s *MySQLStore) DeleteByCaseIDs(ctx context.Context, caseIDs []uint) (int64, error) {
	if len(caseIDs) == 0 {
		return 0, nil
	}

	result := database.Conn(ctx, s.db).
		Where("test_cases_id IN ?", caseIDs).
		Delete(&TestSuitesTestCases{})

	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete suite memberships", map[string]interface{}{
			"error":    result.Error.Error(),
			"case_ids": caseIDs,
		})
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// AddPublicStepMember adds a step to a public step at the given position.
func (s *MySQLStore) AddPublicStepMember(ctx context.Context, publicStepsID, stepID uint, sort int) (*PublicStepsSteps, error) {
	member := &PublicStepsSteps{PublicStepsID: publicStepsID, StepsID: stepID, Sort: sort}
	if err := database.Conn(ctx, s.db).Create(member).Error; err != nil {
		s.logger.Error(ctx, "failed to add public step member", map[string]interface{}{
			"error":          err.Error(),
			"public_step_id": publicStepsID,
			"step_id":        stepID,
		})
		return nil, err
	}

	return member, nil
}

// ListPublicStepMemberIDs lists the member steps of a public step in order.
func (s *MySQLStore) ListPublicStepMemberIDs(ctx context.Context, publicStepsID uint) ([]uint, error) {
	var ids []uint
	err := database.Conn(ctx, s.db).
		Model(&PublicStepsSteps{}).
		Where("public_steps_id = ?", publicStepsID).
		Order("sort ASC").
		Order("id ASC").
		Pluck("steps_id", &ids).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list public step members", map[string]interface{}{
			"error":          err.Error(),
			"public_step_id": publicStepsID,
		})
		return nil, err
	}

	return ids, nil
}
