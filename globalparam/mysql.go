package globalparam

import (
	"context"
	"errors"

	"github.com/hairizuan-noorazman/testcases/database"
	"github.com/hairizuan-noorazman/testcases/logger"
	"gorm.io/gorm"
)

// MySQLStore implements the Store interface using GORM and MySQL.
type MySQLStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewMySQLStore creates a new MySQL-backed global parameter store.
func NewMySQLStore(db *gorm.DB, log logger.Logger) *MySQLStore {
	return &MySQLStore{
		db:     db,
		logger: log,
	}
}

// Create inserts a new global parameter.
func (s *MySQLStore) Create(ctx context.Context, param *GlobalParam) error {
	if err := param.Validate(); err != nil {
		return err
	}

	if err := database.Conn(ctx, s.db).Create(param).Error; err != nil {
		s.logger.Error(ctx, "failed to create global parameter", map[string]interface{}{
			"error":      err.Error(),
			"project_id": param.ProjectID,
			"params_key": param.ParamsKey,
		})
		return err
	}

	s.logger.Info(ctx, "global parameter created", map[string]interface{}{
		"global_param_id": param.ID,
		"project_id":      param.ProjectID,
		"params_key":      param.ParamsKey,
	})

	return nil
}

// GetByID retrieves a global parameter by its ID.
func (s *MySQLStore) GetByID(ctx context.Context, id uint) (*GlobalParam, error) {
	var param GlobalParam
	err := database.Conn(ctx, s.db).
		Where("id = ?", id).
		First(&param).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGlobalParamNotFound
		}
		s.logger.Error(ctx, "failed to get global parameter by ID", map[string]interface{}{
			"error":           err.Error(),
			"global_param_id": id,
		})
		return nil, err
	}

	return &param, nil
}

// FindAll lists every global parameter of a project in insertion order.
func (s *MySQLStore) FindAll(ctx context.Context, projectID uint) ([]*GlobalParam, error) {
	var params []*GlobalParam
	err := database.Conn(ctx, s.db).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&params).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list global parameters", map[string]interface{}{
			"error":      err.Error(),
			"project_id": projectID,
		})
		return nil, err
	}

	return params, nil
}

// Update applies setters to the parameter with the given ID.
func (s *MySQLStore) Update(ctx context.Context, id uint, setters ...UpdateSetter) error {
	param, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, setter := range setters {
		if err := setter(param); err != nil {
			return err
		}
	}

	if err := database.Conn(ctx, s.db).Save(param).Error; err != nil {
		s.logger.Error(ctx, "failed to update global parameter", map[string]interface{}{
			"error":           err.Error(),
			"global_param_id": id,
		})
		return err
	}

	s.logger.Info(ctx, "global parameter updated", map[string]interface{}{
		"global_param_id": id,
	})

	return nil
}

// Delete removes a global parameter.
func (s *MySQLStore) Delete(ctx context.Context, id uint) error {
	result := database.Conn(ctx, s.db).
		Where("id = ?", id).
		Delete(&GlobalParam{})

	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete global parameter", map[string]interface{}{
			"error":           result.Error.Error(),
			"global_param_id": id,
		})
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrGlobalParamNotFound
	}

	s.logger.Info(ctx, "global parameter deleted", map[string]interface{}{
		"global_param_id": id,
	})

	return nil
}

// DeleteByProjectID removes every global parameter of a project and
// reports how many were removed.
func (s *MySQLStore) DeleteByProjectID(ctx context.Context, projectID uint) (int64, error) {
	result := database.Conn(ctx, s.db).
		Where("project_id = ?", projectID).
		Delete(&GlobalParam{})

	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete global parameters by project", map[string]interface{}{
			"error":      result.Error.Error(),
			"project_id": projectID,
		})
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
