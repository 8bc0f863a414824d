package testsuite

import (
	"context"
	"testing"

	"github.com/hairizuan-noorazman/testcases/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLStore_Membership(t *testing.T) {
	db, store, _ := setupTestStores(t)
	ctx := context.Background()

	t.Run("list cases in suite order", func(t *testing.T) {
		_, err := store.AddCase(ctx, 1, 30, 2)
		require.NoError(t, err)
		_, err = store.AddCase(ctx, 1, 10, 1)
		require.NoError(t, err)
		_, err = store.AddCase(ctx, 2, 10, 1)
		require.NoError(t, err)

		ids, err := store.ListCaseIDs(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []uint{10, 30}, ids)
	})

	t.Run("invalid membership rejected", func(t *testing.T) {
		_, err := store.AddCase(ctx, 0, 10, 1)
		assert.ErrorIs(t, err, ErrInvalidSuiteID)
		_, err = store.AddCase(ctx, 1, 0, 1)
		assert.ErrorIs(t, err, ErrInvalidCaseID)
	})

	t.Run("delete memberships of a case across suites", func(t *testing.T) {
		removed, err := store.DeleteByCaseID(ctx, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 2, removed)
		assert.Zero(t, testutil.CountRows(t, db, &TestSuitesTestCases{}, "test_cases_id = ?", 10))
		assert.EqualValues(t, 1, testutil.CountRows(t, db, &TestSuitesTestCases{}, ""))
	})

	t.Run("deleting no cases is a no-op", func(t *testing.T) {
		removed, err := store.DeleteByCaseIDs(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}

func TestMySQLStore_PublicStepMembers(t *testing.T) {
	_, store, _ := setupTestStores(t)
	ctx := context.Background()

	_, err := store.AddPublicStepMember(ctx, 4, 100, 2)
	require.NoError(t, err)
	_, err = store.AddPublicStepMember(ctx, 4, 200, 1)
	require.NoError(t, err)

	ids, err := store.ListPublicStepMemberIDs(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, []uint{200, 100}, ids)
}
