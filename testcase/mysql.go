package testcase

import (
	"context"
	"errors"
	"strings"

	"github.com/hairizuan-noorazman/testcases/database"
	"github.com/hairizuan-noorazman/testcases/logger"
	"gorm.io/gorm"
)

// MySQLStore implements the Store interface using GORM and MySQL.
// Every call joins the transaction carried by ctx, if any.
type MySQLStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewMySQLStore creates a new MySQL-backed test case store.
func NewMySQLStore(db *gorm.DB, log logger.Logger) *MySQLStore {
	return &MySQLStore{
		db:     db,
		logger: log,
	}
}

// Create inserts a new test case. The edit time is assigned when unset.
func (s *MySQLStore) Create(ctx context.Context, tc *TestCase) error {
	if err := tc.Validate(); err != nil {
		return err
	}

	if err := database.Conn(ctx, s.db).Create(tc).Error; err != nil {
		s.logger.Error(ctx, "failed to create test case", map[string]interface{}{
			"error":      err.Error(),
			"name":       tc.Name,
			"project_id": tc.ProjectID,
		})
		return err
	}

	s.logger.Info(ctx, "test case created", map[string]interface{}{
		"test_case_id": tc.ID,
		"name":         tc.Name,
		"project_id":   tc.ProjectID,
	})

	return nil
}

// GetByID retrieves a test case by its ID.
func (s *MySQLStore) GetByID(ctx context.Context, id uint) (*TestCase, error) {
	var tc TestCase
	err := database.Conn(ctx, s.db).
		Where("id = ?", id).
		First(&tc).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestCaseNotFound
		}
		s.logger.Error(ctx, "failed to get test case by ID", map[string]interface{}{
			"error":        err.Error(),
			"test_case_id": id,
		})
		return nil, err
	}

	return &tc, nil
}

// Exists reports whether a test case with the given ID exists.
func (s *MySQLStore) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := database.Conn(ctx, s.db).
		Model(&TestCase{}).
		Where("id = ?", id).
		Count(&count).Error

	if err != nil {
		s.logger.Error(ctx, "failed to check test case existence", map[string]interface{}{
			"error":        err.Error(),
			"test_case_id": id,
		})
		return false, err
	}

	return count > 0, nil
}

// Update applies setters to a test case and refreshes its edit time.
func (s *MySQLStore) Update(ctx context.Context, id uint, setters ...UpdateSetter) error {
	tc, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, setter := range setters {
		if err := setter(tc); err != nil {
			return err
		}
	}

	if err := database.Conn(ctx, s.db).Save(tc).Error; err != nil {
		s.logger.Error(ctx, "failed to update test case", map[string]interface{}{
			"error":        err.Error(),
			"test_case_id": id,
		})
		return err
	}

	s.logger.Info(ctx, "test case updated", map[string]interface{}{
		"test_case_id": id,
	})

	return nil
}

func (s *MySQLStore) filtered(ctx context.Context, projectID uint, platform Platform, name string) *gorm.DB {
	q := database.Conn(ctx, s.db).Model(&TestCase{})
	if projectID != 0 {
		q = q.Where("project_id = ?", projectID)
	}
	if platform != 0 {
		q = q.Where("platform = ?", platform)
	}
	if name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	return q
}

// List returns a page of test cases ordered by edit time, newest first.
func (s *MySQLStore) List(ctx context.Context, opts ListOptions) (*Page, error) {
	var total int64
	if err := s.filtered(ctx, opts.ProjectID, opts.Platform, opts.Name).Count(&total).Error; err != nil {
		s.logger.Error(ctx, "failed to count test cases", map[string]interface{}{
			"error":      err.Error(),
			"project_id": opts.ProjectID,
			"platform":   int(opts.Platform),
		})
		return nil, err
	}

	var items []*TestCase
	q := s.filtered(ctx, opts.ProjectID, opts.Platform, opts.Name).
		Order("edit_time DESC").
		Order("id DESC")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	if err := q.Find(&items).Error; err != nil {
		s.logger.Error(ctx, "failed to list test cases", map[string]interface{}{
			"error":      err.Error(),
			"project_id": opts.ProjectID,
			"platform":   int(opts.Platform),
			"limit":      opts.Limit,
			"offset":     opts.Offset,
		})
		return nil, err
	}

	return &Page{
		Items:  items,
		Total:  int(total),
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}, nil
}

// ListByProjectAndPlatform lists all matching test cases, newest first.
func (s *MySQLStore) ListByProjectAndPlatform(ctx context.Context, projectID uint, platform Platform) ([]*TestCase, error) {
	var items []*TestCase
	err := s.filtered(ctx, projectID, platform, "").
		Order("edit_time DESC").
		Order("id DESC").
		Find(&items).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list test cases by project", map[string]interface{}{
			"error":      err.Error(),
			"project_id": projectID,
			"platform":   int(platform),
		})
		return nil, err
	}

	return items, nil
}

// FindByIDs retrieves the test cases with the given IDs. No query is issued
// for an empty ID list.
func (s *MySQLStore) FindByIDs(ctx context.Context, ids []uint) ([]*TestCase, error) {
	if len(ids) == 0 {
		return []*TestCase{}, nil
	}

	var items []*TestCase
	err := database.Conn(ctx, s.db).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&items).Error

	if err != nil {
		s.logger.Error(ctx, "failed to find test cases by IDs", map[string]interface{}{
			"error": err.Error(),
			"count": len(ids),
		})
		return nil, err
	}

	return items, nil
}

// ListIDsByProject lists the IDs of a project's test cases.
func (s *MySQLStore) ListIDsByProject(ctx context.Context, projectID uint) ([]uint, error) {
	var ids []uint
	err := database.Conn(ctx, s.db).
		Model(&TestCase{}).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Pluck("id", &ids).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list test case IDs by project", map[string]interface{}{
			"error":      err.Error(),
			"project_id": projectID,
		})
		return nil, err
	}

	return ids, nil
}

// DeleteByID removes a test case row and reports whether it existed.
func (s *MySQLStore) DeleteByID(ctx context.Context, id uint) (bool, error) {
	result := database.Conn(ctx, s.db).
		Where("id = ?", id).
		Delete(&TestCase{})

	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete test case", map[string]interface{}{
			"error":        result.Error.Error(),
			"test_case_id": id,
		})
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// DeleteByProjectID removes a project's test case rows and reports how many.
func (s *MySQLStore) DeleteByProjectID(ctx context.Context, projectID uint) (int64, error) {
	result := database.Conn(ctx, s.db).
		Where("project_id = ?", projectID).
		Delete(&TestCase{})

	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete test cases by project", map[string]interface{}{
			"error":      result.Error.Error(),
			"project_id": projectID,
		})
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
