package testcase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hairizuan-noorazman/testcases/globalparam"
	"github.com/hairizuan-noorazman/testcases/logger"
	"github.com/hairizuan-noorazman/testcases/step"
	"github.com/hairizuan-noorazman/testcases/testsuite"
	"github.com/hairizuan-noorazman/testcases/testutil"
	"gorm.io/gorm"
)

// testEnv bundles the stores backing a Service under test.
type testEnv struct {
	db      *gorm.DB
	cases   *MySQLStore
	steps   *step.MySQLStore
	params  *globalparam.MySQLStore
	suites  *testsuite.MySQLStore
	log     *logger.TestLogger
	service *Service
}

// setupTestEnv creates a test database with every table the service touches.
func setupTestEnv(t *testing.T, shuffler globalparam.Shuffler) *testEnv {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db,
		&TestCase{},
		&step.Step{},
		&step.Element{},
		&step.StepsElements{},
		&testsuite.TestSuitesTestCases{},
		&testsuite.PublicStepsSteps{},
		&globalparam.GlobalParam{},
	)

	log := logger.NewTestLogger()
	env := &testEnv{
		db:     db,
		cases:  NewMySQLStore(db, log),
		steps:  step.NewMySQLStore(db, log),
		params: globalparam.NewMySQLStore(db, log),
		suites: testsuite.NewMySQLStore(db, log),
		log:    log,
	}
	env.service = env.newService(env.steps, shuffler)
	return env
}

func (e *testEnv) newService(steps StepService, shuffler globalparam.Shuffler) *Service {
	return NewService(Dependencies{
		DB:           e.db,
		Cases:        e.cases,
		Steps:        steps,
		GlobalParams: e.params,
		Suites:       e.suites,
		Expander:     testsuite.NewExpander(e.steps, e.suites),
		Shuffler:     shuffler,
	}, e.log)
}

// createTestCase creates a test case with default values.
func createTestCase(name string, projectID uint, platform Platform) *TestCase {
	return &TestCase{
		Name:      name,
		ProjectID: projectID,
		Platform:  platform,
		Designer:  "qa",
		Des:       "description of " + name,
	}
}

// createCaseAt stores a test case with a fixed edit time.
func createCaseAt(t *testing.T, store *MySQLStore, name string, projectID uint, platform Platform, editTime time.Time) *TestCase {
	t.Helper()
	tc := createTestCase(name, projectID, platform)
	tc.EditTime = editTime
	if err := store.Create(context.Background(), tc); err != nil {
		t.Fatalf("failed to create test case: %v", err)
	}
	return tc
}

// addStep stores a step owned by caseID.
func addStep(t *testing.T, store *step.MySQLStore, caseID uint, sort int, content string) *step.Step {
	t.Helper()
	st := &step.Step{
		CaseID:    caseID,
		ProjectID: 1,
		Platform:  int(PlatformAndroid),
		StepType:  "click",
		Content:   content,
		Sort:      sort,
		Error:     step.ErrorShut,
	}
	if err := store.Create(context.Background(), st); err != nil {
		t.Fatalf("failed to create step: %v", err)
	}
	return st
}

var errInjected = errors.New("injected failure")

// failingSteps wraps a step store and fails UpdateByID after a number of
// successful calls.
type failingSteps struct {
	StepService
	allowed int
	calls   int
}

func (f *failingSteps) UpdateByID(ctx context.Context, s *step.Step) error {
	f.calls++
	if f.calls > f.allowed {
		return errInjected
	}
	return f.StepService.UpdateByID(ctx, s)
}

// failingBinds wraps a step store and fails every Bind.
type failingBinds struct {
	StepService
}

func (f *failingBinds) Bind(ctx context.Context, stepID, elementID uint) (*step.StepsElements, error) {
	return nil, errInjected
}

// firstFirst is a Shuffler that leaves the order untouched.
type firstFirst struct{}

func (firstFirst) Shuffle(n int, swap func(i, j int)) {}
