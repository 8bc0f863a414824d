package step

import (
	"testing"

	"github.com/hairizuan-noorazman/testcases/logger"
	"github.com/hairizuan-noorazman/testcases/testutil"
	"gorm.io/gorm"
)

// setupTestStore creates a test database and step store for testing.
func setupTestStore(t *testing.T) (*gorm.DB, *MySQLStore) {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db, &Step{}, &Element{}, &StepsElements{})

	log := logger.NewTestLogger()
	store := NewMySQLStore(db, log)

	return db, store
}

// createTestStep creates a step with default values.
func createTestStep(caseID uint, sort int, content string) *Step {
	return &Step{
		CaseID:    caseID,
		ProjectID: 1,
		Platform:  1,
		StepType:  "click",
		Content:   content,
		Sort:      sort,
		Error:     ErrorShut,
	}
}
