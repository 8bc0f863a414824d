package main

import "time"

// PaginatedResponse matches handlers.PaginatedResponse.
type PaginatedResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse matches handlers.ErrorResponse.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteResponse matches handlers.DeleteResponse.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// TestCaseResponse matches testcase.TestCase.
type TestCaseResponse struct {
	ID        uint      `json:"id"`
	ProjectID uint      `json:"projectId"`
	Platform  int       `json:"platform"`
	Name      string    `json:"name"`
	ModuleID  uint      `json:"moduleId"`
	Version   string    `json:"version"`
	Designer  string    `json:"designer"`
	Des       string    `json:"des"`
	EditTime  time.Time `json:"editTime"`
}

// StepResponse carries the step fields shown by "cases steps".
type StepResponse struct {
	ID       uint   `json:"id"`
	StepType string `json:"stepType"`
	Content  string `json:"content"`
	Text     string `json:"text"`
	Sort     int    `json:"sort"`
	Disabled bool   `json:"disabled"`
}

// ElementResponse matches step.Element.
type ElementResponse struct {
	ID       uint   `json:"id"`
	EleName  string `json:"eleName"`
	EleType  string `json:"eleType"`
	EleValue string `json:"eleValue"`
}

// RunPlanResponse matches testcase.RunPlan.
type RunPlanResponse struct {
	Platform     int                       `json:"pf"`
	Steps        []*ExecutableStepResponse `json:"steps"`
	GlobalParams map[string]string         `json:"gp"`
}

// ExecutableStepResponse matches testsuite.ExecutableStep.
type ExecutableStepResponse struct {
	Step     StepResponse              `json:"step"`
	Elements []ElementResponse         `json:"elements"`
	PubSteps []*ExecutableStepResponse `json:"pubSteps,omitempty"`
}
