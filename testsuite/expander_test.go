package testsuite

import (
	"context"
	"strconv"
	"testing"

	"github.com/hairizuan-noorazman/testcases/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpander_GetStep(t *testing.T) {
	_, suites, steps := setupTestStores(t)
	ctx := context.Background()
	expander := NewExpander(steps, suites)

	button := &step.Element{ProjectID: 1, EleName: "submit", EleType: "id", EleValue: "submit"}
	require.NoError(t, steps.CreateElement(ctx, button))

	t.Run("plain step carries its elements", func(t *testing.T) {
		st := &step.Step{CaseID: 1, ProjectID: 1, StepType: "click", Sort: 1}
		require.NoError(t, steps.Create(ctx, st))
		_, err := steps.Bind(ctx, st.ID, button.ID)
		require.NoError(t, err)

		got, err := expander.GetStep(ctx, st)
		require.NoError(t, err)
		assert.Equal(t, st.ID, got.Step.ID)
		require.Len(t, got.Elements, 1)
		assert.Equal(t, "submit", got.Elements[0].EleName)
		assert.Empty(t, got.PubSteps)
	})

	t.Run("content step has empty element list", func(t *testing.T) {
		st := &step.Step{CaseID: 1, ProjectID: 1, StepType: "openApp", Content: "com.example", Sort: 2}
		require.NoError(t, steps.Create(ctx, st))

		got, err := expander.GetStep(ctx, st)
		require.NoError(t, err)
		assert.NotNil(t, got.Elements)
		assert.Empty(t, got.Elements)
	})

	t.Run("public step expands to ordered members", func(t *testing.T) {
		second := &step.Step{ProjectID: 1, StepType: "click", Sort: 2}
		first := &step.Step{ProjectID: 1, StepType: "sendKeys", Content: "hello", Sort: 1}
		require.NoError(t, steps.Create(ctx, second))
		require.NoError(t, steps.Create(ctx, first))
		_, err := steps.Bind(ctx, second.ID, button.ID)
		require.NoError(t, err)

		_, err = suites.AddPublicStepMember(ctx, 7, second.ID, 1)
		require.NoError(t, err)
		_, err = suites.AddPublicStepMember(ctx, 7, first.ID, 2)
		require.NoError(t, err)

		ref := &step.Step{CaseID: 1, ProjectID: 1, StepType: step.TypePublicStep, Text: strconv.Itoa(7), Content: "login flow", Sort: 3}
		require.NoError(t, steps.Create(ctx, ref))

		got, err := expander.GetStep(ctx, ref)
		require.NoError(t, err)
		require.Len(t, got.PubSteps, 2)
		assert.Equal(t, first.ID, got.PubSteps[0].Step.ID)
		assert.Equal(t, second.ID, got.PubSteps[1].Step.ID)
		require.Len(t, got.PubSteps[1].Elements, 1)
	})

	t.Run("public step with non-numeric reference fails", func(t *testing.T) {
		ref := &step.Step{ID: 99, StepType: step.TypePublicStep, Text: "login"}
		_, err := expander.GetStep(ctx, ref)
		assert.ErrorIs(t, err, ErrInvalidPublicStepRef)
	})
}
