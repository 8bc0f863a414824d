// Package testcase manages test cases: CRUD, cascading deletes to steps and
// suite memberships, run-plan resolution and deep copies.
package testcase

import (
	"errors"
	"time"
)

var (
	// ErrTestCaseNotFound is returned when a test case is not found.
	ErrTestCaseNotFound = errors.New("test case not found")

	// ErrInvalidName is returned when a test case name is empty.
	ErrInvalidName = errors.New("test case name is required")

	// ErrInvalidProjectID is returned when project_id is not set.
	ErrInvalidProjectID = errors.New("project_id is required")

	// ErrInvalidPlatform is returned when the platform is not a known platform.
	ErrInvalidPlatform = errors.New("platform is invalid")
)

// CopySuffix is appended to the name of a copied test case.
const CopySuffix = "_copy"

// Platform identifies the device family a case runs on.
type Platform int

// Known platforms.
const (
	PlatformAndroid   Platform = 1
	PlatformIOS       Platform = 2
	PlatformWeb       Platform = 3
	PlatformPC        Platform = 4
	PlatformHarmonyOS Platform = 5
)

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	return p >= PlatformAndroid && p <= PlatformHarmonyOS
}

func (p Platform) String() string {
	switch p {
	case PlatformAndroid:
		return "android"
	case PlatformIOS:
		return "ios"
	case PlatformWeb:
		return "web"
	case PlatformPC:
		return "pc"
	case PlatformHarmonyOS:
		return "harmony"
	default:
		return "unknown"
	}
}

// TestCase is a named, ordered sequence of steps scoped to a project and platform.
type TestCase struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProjectID uint      `json:"projectId" gorm:"not null;index:idx_test_cases_project_platform"`
	Platform  Platform  `json:"platform" gorm:"not null;index:idx_test_cases_project_platform"`
	Name      string    `json:"name" gorm:"not null"`
	ModuleID  uint      `json:"moduleId" gorm:"not null;default:0"`
	Version   string    `json:"version"`
	Designer  string    `json:"designer"`
	Des       string    `json:"des" gorm:"type:text"`
	EditTime  time.Time `json:"editTime" gorm:"not null;autoUpdateTime;index:idx_test_cases_edit_time"`
}

// TableName maps TestCase onto the test_cases table.
func (TestCase) TableName() string {
	return "test_cases"
}

// Validate checks if the test case has valid required fields.
func (tc *TestCase) Validate() error {
	if tc.Name == "" {
		return ErrInvalidName
	}
	if tc.ProjectID == 0 {
		return ErrInvalidProjectID
	}
	if !tc.Platform.Valid() {
		return ErrInvalidPlatform
	}
	return nil
}

// Clone returns an unsaved copy named "<name>_copy" with identity and edit
// time cleared so the store assigns fresh ones.
func (tc *TestCase) Clone() *TestCase {
	c := *tc
	c.ID = 0
	c.EditTime = time.Time{}
	c.Name = tc.Name + CopySuffix
	return &c
}
