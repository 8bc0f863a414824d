// Package step owns test steps, UI element definitions and the bindings
// between them.
package step

import (
	"errors"
)

var (
	// ErrStepNotFound is returned when a step is not found.
	ErrStepNotFound = errors.New("step not found")

	// ErrInvalidStepType is returned when a step has no type.
	ErrInvalidStepType = errors.New("step_type is required")

	// ErrInvalidProjectID is returned when project_id is not set.
	ErrInvalidProjectID = errors.New("project_id is required")

	// ErrBindingRequiresEmptyContent is returned when binding an element to a
	// step that carries inline content.
	ErrBindingRequiresEmptyContent = errors.New("only steps with empty content can be bound to elements")
)

// TypePublicStep marks a step that stands for a public step; its Text holds
// the public step ID.
const TypePublicStep = "publicStep"

// Failure policies stored in Step.Error.
const (
	ErrorIgnore = 1
	ErrorWarn   = 2
	ErrorShut   = 3
)

// Step is one action within a test case. A CaseID of 0 means the step is
// detached and may be reused as a public step member.
type Step struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	CaseID        uint   `json:"caseId" gorm:"not null;default:0;index:idx_steps_case_id"`
	ProjectID     uint   `json:"projectId" gorm:"not null;index:idx_steps_project_id"`
	Platform      int    `json:"platform" gorm:"not null"`
	ParentID      uint   `json:"parentId" gorm:"not null;default:0"`
	StepType      string `json:"stepType" gorm:"not null"`
	Content       string `json:"content" gorm:"type:text"`
	Text          string `json:"text" gorm:"type:text"`
	Sort          int    `json:"sort" gorm:"not null;default:0"`
	Error         int    `json:"error" gorm:"not null;default:3"`
	ConditionType int    `json:"conditionType" gorm:"not null;default:0"`
	Disabled      bool   `json:"disabled" gorm:"not null;default:false"`
}

// TableName maps Step onto the steps table.
func (Step) TableName() string {
	return "steps"
}

// NeedsElement reports whether the step is driven by a bound element rather
// than inline content.
func (s *Step) NeedsElement() bool {
	return s.Content == ""
}

// Validate checks if the step has valid required fields.
func (s *Step) Validate() error {
	if s.StepType == "" {
		return ErrInvalidStepType
	}
	if s.ProjectID == 0 {
		return ErrInvalidProjectID
	}
	return nil
}

// Clone returns a copy of the step with the identity cleared, owned by caseID.
func (s *Step) Clone(caseID uint) *Step {
	c := *s
	c.ID = 0
	c.CaseID = caseID
	return &c
}

// Element is a UI element definition that element-driven steps act on.
type Element struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProjectID uint   `json:"projectId" gorm:"not null;index:idx_elements_project_id"`
	EleName   string `json:"eleName" gorm:"not null"`
	EleType   string `json:"eleType" gorm:"not null"`
	EleValue  string `json:"eleValue" gorm:"type:text"`
	ModuleID  uint   `json:"moduleId" gorm:"not null;default:0"`
}

// TableName maps Element onto the elements table.
func (Element) TableName() string {
	return "elements"
}

// StepsElements binds a step to an element definition.
type StepsElements struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	StepsID    uint `json:"stepsId" gorm:"not null;index:idx_steps_elements_steps_id"`
	ElementsID uint `json:"elementsId" gorm:"not null;index:idx_steps_elements_elements_id"`
}

// TableName maps StepsElements onto the steps_elements table.
func (StepsElements) TableName() string {
	return "steps_elements"
}
