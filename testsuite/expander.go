package testsuite

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hairizuan-noorazman/testcases/step"
)

// StepReader is the part of the step store the expander reads from.
type StepReader interface {
	ListByIDsOrderBySort(ctx context.Context, ids []uint) ([]*step.Step, error)
	ListElementsByStepID(ctx context.Context, stepID uint) ([]*step.Element, error)
}

// MemberReader is the part of the suite store the expander reads from.
type MemberReader interface {
	ListPublicStepMemberIDs(ctx context.Context, publicStepsID uint) ([]uint, error)
}

// Expander turns stored steps into executable steps.
type Expander struct {
	steps   StepReader
	members MemberReader
}

// NewExpander creates an expander over the given stores.
func NewExpander(steps StepReader, members MemberReader) *Expander {
	return &Expander{
		steps:   steps,
		members: members,
	}
}

// GetStep expands st. A public step expands to its member steps in sort
// order, each with its elements; members are not expanded further. Any
// other step carries its own bound elements.
func (e *Expander) GetStep(ctx context.Context, st *step.Step) (*ExecutableStep, error) {
	if st.StepType != step.TypePublicStep {
		return e.withElements(ctx, st)
	}

	publicStepsID, err := strconv.ParseUint(st.Text, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: step %d has text %q", ErrInvalidPublicStepRef, st.ID, st.Text)
	}

	memberIDs, err := e.members.ListPublicStepMemberIDs(ctx, uint(publicStepsID))
	if err != nil {
		return nil, err
	}

	members, err := e.steps.ListByIDsOrderBySort(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	expanded := &ExecutableStep{
		Step:     st,
		Elements: []*step.Element{},
		PubSteps: make([]*ExecutableStep, 0, len(members)),
	}
	for _, m := range members {
		child, err := e.withElements(ctx, m)
		if err != nil {
			return nil, err
		}
		expanded.PubSteps = append(expanded.PubSteps, child)
	}

	return expanded, nil
}

func (e *Expander) withElements(ctx context.Context, st *step.Step) (*ExecutableStep, error) {
	elements, err := e.steps.ListElementsByStepID(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	if elements == nil {
		elements = []*step.Element{}
	}
	return &ExecutableStep{Step: st, Elements: elements}, nil
}
