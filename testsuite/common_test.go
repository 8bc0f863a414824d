package testsuite

import (
	"testing"

	"github.com/hairizuan-noorazman/testcases/logger"
	"github.com/hairizuan-noorazman/testcases/step"
	"github.com/hairizuan-noorazman/testcases/testutil"
	"gorm.io/gorm"
)

// setupTestStores creates a test database with suite and step stores.
func setupTestStores(t *testing.T) (*gorm.DB, *MySQLStore, *step.MySQLStore) {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db,
		&TestSuitesTestCases{},
		&PublicStepsSteps{},
		&step.Step{},
		&step.Element{},
		&step.StepsElements{},
	)

	log := logger.NewTestLogger()
	return db, NewMySQLStore(db, log), step.NewMySQLStore(db, log)
}
