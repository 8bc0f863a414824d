// Package testsuite owns suite-to-case membership, the members of public
// steps, and the expansion of stored steps into executable steps.
package testsuite

import (
	"errors"

	"github.com/hairizuan-noorazman/testcases/step"
)

var (
	// ErrInvalidSuiteID is returned when a suite ID is not set.
	ErrInvalidSuiteID = errors.New("test_suites_id is required")

	// ErrInvalidCaseID is returned when a case ID is not set.
	ErrInvalidCaseID = errors.New("test_cases_id is required")

	// ErrInvalidPublicStepRef is returned when a public step reference is not a valid ID.
	ErrInvalidPublicStepRef = errors.New("public step reference must be a numeric ID")
)

// TestSuitesTestCases associates a suite with a case.
type TestSuitesTestCases struct {
	ID           uint `json:"id" gorm:"primaryKey"`
	TestSuitesID uint `json:"testSuitesId" gorm:"not null;index:idx_test_suites_test_cases_suite"`
	TestCasesID  uint `json:"testCasesId" gorm:"not null;index:idx_test_suites_test_cases_case"`
	Sort         int  `json:"sort" gorm:"not null;default:0"`
}

// TableName maps TestSuitesTestCases onto the test_suites_test_cases table.
func (TestSuitesTestCases) TableName() string {
	return "test_suites_test_cases"
}

// PublicStepsSteps lists a step as a member of a public step.
type PublicStepsSteps struct {
	ID            uint `json:"id" gorm:"primaryKey"`
	PublicStepsID uint `json:"publicStepsId" gorm:"not null;index:idx_public_steps_steps_public"`
	StepsID       uint `json:"stepsId" gorm:"not null"`
	Sort          int  `json:"sort" gorm:"not null;default:0"`
}

// TableName maps PublicStepsSteps onto the public_steps_steps table.
func (PublicStepsSteps) TableName() string {
	return "public_steps_steps"
}

// ExecutableStep is a step as handed to an agent: the stored step, the
// elements it acts on and, for a public step, its expanded members.
type ExecutableStep struct {
	Step     *step.Step        `json:"step"`
	Elements []*step.Element   `json:"elements"`
	PubSteps []*ExecutableStep `json:"pubSteps,omitempty"`
}
