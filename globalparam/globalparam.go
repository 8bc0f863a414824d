// Package globalparam owns per-project named parameters. A value holding
// several pipe-separated alternatives is resolved to one of them at random
// each time a run plan is built.
package globalparam

import (
	"errors"
	"strings"
)

var (
	// ErrGlobalParamNotFound is returned when a global parameter is not found.
	ErrGlobalParamNotFound = errors.New("global parameter not found")

	// ErrInvalidParamKey is returned when a parameter key is empty.
	ErrInvalidParamKey = errors.New("params_key is required")

	// ErrInvalidProjectID is returned when project_id is not set.
	ErrInvalidProjectID = errors.New("project_id is required")
)

// Separator splits the alternatives of a randomized parameter value.
const Separator = "|"

// GlobalParam is a project-scoped named value.
type GlobalParam struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ProjectID   uint   `json:"projectId" gorm:"not null;index:idx_global_params_project_id"`
	ParamsKey   string `json:"paramsKey" gorm:"not null"`
	ParamsValue string `json:"paramsValue" gorm:"type:text;not null"`
}

// TableName maps GlobalParam onto the global_params table.
func (GlobalParam) TableName() string {
	return "global_params"
}

// Validate checks if the parameter has valid required fields.
func (g *GlobalParam) Validate() error {
	if g.ParamsKey == "" {
		return ErrInvalidParamKey
	}
	if g.ProjectID == 0 {
		return ErrInvalidProjectID
	}
	return nil
}

// IsRandomized reports whether the value lists alternatives.
func (g *GlobalParam) IsRandomized() bool {
	return strings.Contains(g.ParamsValue, Separator)
}

// Alternatives splits a randomized value into its alternatives. Trailing
// empty alternatives are dropped, so "a|b|" yields [a b] and "|" yields none.
func (g *GlobalParam) Alternatives() []string {
	parts := strings.Split(g.ParamsValue, Separator)
	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	return parts[:end]
}
