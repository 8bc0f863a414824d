package globalparam

import (
	"context"
	"testing"

	"github.com/hairizuan-noorazman/testcases/logger"
	"github.com/hairizuan-noorazman/testcases/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *MySQLStore {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db, &GlobalParam{})
	return NewMySQLStore(db, logger.NewTestLogger())
}

func TestMySQLStore_FindAll(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &GlobalParam{ProjectID: 1, ParamsKey: "a", ParamsValue: "1"}))
	require.NoError(t, store.Create(ctx, &GlobalParam{ProjectID: 1, ParamsKey: "b", ParamsValue: "x|y"}))
	require.NoError(t, store.Create(ctx, &GlobalParam{ProjectID: 2, ParamsKey: "c", ParamsValue: "3"}))

	params, err := store.FindAll(ctx, 1)
	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, "a", params[0].ParamsKey)
	assert.Equal(t, "b", params[1].ParamsKey)

	none, err := store.FindAll(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMySQLStore_CreateInvalid(t *testing.T) {
	store := setupTestStore(t)
	err := store.Create(context.Background(), &GlobalParam{ProjectID: 1})
	assert.ErrorIs(t, err, ErrInvalidParamKey)
}

func TestMySQLStore_UpdateAndDelete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	param := &GlobalParam{ProjectID: 1, ParamsKey: "device", ParamsValue: "pixel"}
	require.NoError(t, store.Create(ctx, param))

	require.NoError(t, store.Update(ctx, param.ID, SetValue("pixel|galaxy")))
	got, err := store.GetByID(ctx, param.ID)
	require.NoError(t, err)
	assert.Equal(t, "pixel|galaxy", got.ParamsValue)

	assert.ErrorIs(t, store.Update(ctx, param.ID, SetKey("")), ErrInvalidParamKey)

	require.NoError(t, store.Delete(ctx, param.ID))
	_, err = store.GetByID(ctx, param.ID)
	assert.ErrorIs(t, err, ErrGlobalParamNotFound)
	assert.ErrorIs(t, store.Delete(ctx, param.ID), ErrGlobalParamNotFound)
}

func TestMySQLStore_DeleteByProjectID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &GlobalParam{ProjectID: 3, ParamsKey: "a", ParamsValue: "1"}))
	require.NoError(t, store.Create(ctx, &GlobalParam{ProjectID: 3, ParamsKey: "b", ParamsValue: "2"}))

	removed, err := store.DeleteByProjectID(ctx, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	removed, err = store.DeleteByProjectID(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
