package step

import (
	"context"
	"errors"

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

// NewMySQLStore creates a new MySQL-backed step store.
func NewMySQLStore(db *gorm.DB, log logger.Logger) *MySQLStore {
	return &MySQLStore{
		db:     db,
		logger: log,
	}
}

// Create inserts a new step.
func (s *MySQLStore) Create(ctx context.Context, st *Step) error {
	if err := st.Validate(); err != nil {
		return err
	}

	if err := database.Conn(ctx, s.db).Create(st).Error; err != nil {
		s.logger.Error(ctx, "failed to create step", map[string]interface{}{
			"error":   err.Error(),
			"case_id": st.CaseID,
		})
		return err
	}

	s.logger.Debug(ctx, "step created", map[string]interface{}{
		"step_id": st.ID,
		"case_id": st.CaseID,
	})

	return nil
}

// GetByID retrieves a step by its ID.
func (s *MySQLStore) GetByID(ctx context.Context, id uint) (*Step, error) {
	var st Step
	err := database.Conn(ctx, s.db).
		Where("id = ?", id).
		First(&st).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStepNotFound
		}
		s.logger.Error(ctx, "failed to get step by ID", map[string]interface{}{
			"error":   err.Error(),
			"step_id": id,
		})
		return nil, err
	}

	return &st, nil
}

// UpdateByID persists every column of st, keyed by st.ID.
func (s *MySQLStore) UpdateByID(ctx context.Context, st *Step) error {
	if st.ID == 0 {
		return ErrStepNotFound
	}

	result := database.Conn(ctx, s.db).
		Model(&Step{}).
		Where("id = ?", st.ID).
		Select("*").
		Omit("id").
		Updates(st)

	if result.Error != nil {
		s.logger.Error(ctx, "failed to update step", map[string]interface{}{
			"error":   result.Error.Error(),
			"step_id": st.ID,
		})
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrStepNotFound
	}

	return nil
}

// Update applies setters to the step with the given ID.
func (s *MySQLStore) Update(ctx context.Context, id uint, setters ...UpdateSetter) error {
	st, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, setter := range setters {
		if err := setter(st); err != nil {
			return err
		}
	}

	if err := s.UpdateByID(ctx, st); err != nil {
		return err
	}

	s.logger.Info(ctx, "step updated", map[string]interface{}{
		"step_id": id,
	})

	return nil
}

// FindByCaseIDOrderBySort lists the steps of a case in execution order.
func (s *MySQLStore) FindByCaseIDOrderBySort(ctx context.Context, caseID uint) ([]*Step, error) {
	var steps []*Step
	err := database.Conn(ctx, s.db).
		Where("case_id = ?", caseID).
		Order("sort ASC").
		Order("id ASC").
		Find(&steps).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list steps by case", map[string]interface{}{
			"error":   err.Error(),
			"case_id": caseID,
		})
		return nil, err
	}

	return steps, nil
}

// ListByIDsOrderBySort lists the given steps in execution order.
func (s *MySQLStore) ListByIDsOrderBySort(ctx context.Context, ids []uint) ([]*Step, error) {
	if len(ids) == 0 {
		return []*Step{}, nil
	}

	var steps []*Step
	err := database.Conn(ctx, s.db).
		Where("id IN ?", ids).
		Order("sort ASC").
		Order("id ASC").
		Find(&steps).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list steps by IDs", map[string]interface{}{
			"error": err.Error(),
			"count": len(ids),
		})
		return nil, err
	}

	return steps, nil
}

// ListByText lists steps whose text equals text.
func (s *MySQLStore) ListByText(ctx context.Context, text string) ([]*Step, error) {
	var steps []*Step
	err := database.Conn(ctx, s.db).
		Where("text = ?", text).
		Order("id ASC").
		Find(&steps).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list steps by text", map[string]interface{}{
			"error": err.Error(),
			"text":  text,
		})
		return nil, err
	}

	return steps, nil
}

// Bind binds an element to an element-driven step.
func (s *MySQLStore) Bind(ctx context.Context, stepID, elementID uint) (*StepsElements, error) {
	st, err := s.GetByID(ctx, stepID)
	if err != nil {
		return nil, err
	}
	if !st.NeedsElement() {
		return nil, ErrBindingRequiresEmptyContent
	}

	binding := &StepsElements{StepsID: stepID, ElementsID: elementID}
	if err := database.Conn(ctx, s.db).Create(binding).Error; err != nil {
		s.logger.Error(ctx, "failed to bind element to step", map[string]interface{}{
			"error":      err.Error(),
			"step_id":    stepID,
			"element_id": elementID,
		})
		return nil, err
	}

	return binding, nil
}

// ListBindings lists the element bindings of a step in insertion order.
func (s *MySQLStore) ListBindings(ctx context.Context, stepID uint) ([]*StepsElements, error) {
	var bindings []*StepsElements
	err := database.Conn(ctx, s.db).
		Where("steps_id = ?", stepID).
		Order("id ASC").
		Find(&bindings).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list step bindings", map[string]interface{}{
			"error":   err.Error(),
			"step_id": stepID,
		})
		return nil, err
	}

	return bindings, nil
}

// ListElementsByStepID lists the elements bound to a step in binding order.
func (s *MySQLStore) ListElementsByStepID(ctx context.Context, stepID uint) ([]*Element, error) {
	var elements []*Element
	err := database.Conn(ctx, s.db).
		Table("elements").
		Select("elements.*").
		Joins("JOIN steps_elements ON steps_elements.elements_id = elements.id").
		Where("steps_elements.steps_id = ?", stepID).
		Order("steps_elements.id ASC").
		Find(&elements).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list elements by step", map[string]interface{}{
			"error":   err.Error(),
			"step_id": stepID,
		})
		return nil, err
	}

	return elements, nil
}

// CreateElement inserts a new element definition.
func (s *MySQLStore) CreateElement(ctx context.Context, e *Element) error {
	if e.ProjectID == 0 {
		return ErrInvalidProjectID
	}

	if err := database.Conn(ctx, s.db).Create(e).Error; err != nil {
		s.logger.Error(ctx, "failed to create element", map[string]interface{}{
			"error":      err.Error(),
			"project_id": e.ProjectID,
		})
		return err
	}

	return nil
}
