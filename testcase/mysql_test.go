package testcase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

func TestMySQLStore_Create(t *testing.T) {
	env := setupTestEnv(t, nil)
	ctx := context.Background()

	t.Run("successfully create test case", func(t *testing.T) {
		tc := createTestCase("Login", 1, PlatformAndroid)
		require.NoError(t, env.cases.Create(ctx, tc))
		assert.NotZero(t, tc.ID)
		assert.False(t, tc.EditTime.IsZero())
	})

	t.Run("explicit edit time is kept", func(t *testing.T) {
		tc := createCaseAt(t, env.cases, "Fixed", 1, PlatformAndroid, baseTime)
		got, err := env.cases.GetByID(ctx, tc.ID)
		require.NoError(t, err)
		assert.True(t, baseTime.Equal(got.EditTime))
	})

	t.Run("invalid test case returns error", func(t *testing.T) {
		err := env.cases.Create(ctx, &TestCase{ProjectID: 1, Platform: PlatformAndroid})
		assert.ErrorIs(t, err, ErrInvalidName)
	})
}

func TestMySQLStore_GetByID(t *testing.T) {
	env := setupTestEnv(t, nil)
	ctx := context.Background()

	tc := createCaseAt(t, env.cases, "Search", 3, PlatformIOS, baseTime)

	t.Run("retrieve existing test case", func(t *testing.T) {
		got, err := env.cases.GetByID(ctx, tc.ID)
		require.NoError(t, err)
		assert.Equal(t, "Search", got.Name)
		assert.Equal(t, uint(3), got.ProjectID)
		assert.Equal(t, PlatformIOS, got.Platform)
	})

	t.Run("non-existent test case returns not found", func(t *testing.T) {
		_, err := env.cases.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, ErrTestCaseNotFound)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := env.cases.Exists(ctx, tc.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = env.cases.Exists(ctx, 9999)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMySQLStore_Update(t *testing.T) {
	env := setupTestEnv(t, nil)
	ctx := context.Background()

	tc := createCaseAt(t, env.cases, "Original", 1, PlatformWeb, baseTime)

	t.Run("update fields and refresh edit time", func(t *testing.T) {
		err := env.cases.Update(ctx, tc.ID, SetName("Renamed"), SetDes("new des"), SetDesigner("lead"), SetModuleID(4), SetVersion("v2"))
		require.NoError(t, err)

		got, err := env.cases.GetByID(ctx, tc.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, "new des", got.Des)
		assert.Equal(t, "lead", got.Designer)
		assert.Equal(t, uint(4), got.ModuleID)
		assert.Equal(t, "v2", got.Version)
		assert.True(t, got.EditTime.After(baseTime))
	})

	t.Run("empty name rejected", func(t *testing.T) {
		err := env.cases.Update(ctx, tc.ID, SetName(""))
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("update non-existent returns not found", func(t *testing.T) {
		err := env.cases.Update(ctx, 9999, SetName("x"))
		assert.ErrorIs(t, err, ErrTestCaseNotFound)
	})
}

func TestMySQLStore_List(t *testing.T) {
	env := setupTestEnv(t, nil)
	ctx := context.Background()

	oldest := createCaseAt(t, env.cases, "Login flow", 1, PlatformAndroid, baseTime)
	middle := createCaseAt(t, env.cases, "Checkout", 1, PlatformIOS, baseTime.Add(time.Hour))
	newest := createCaseAt(t, env.cases, "LOGIN with SSO", 1, PlatformAndroid, baseTime.Add(2*time.Hour))
	other := createCaseAt(t, env.cases, "login elsewhere", 2, PlatformAndroid, baseTime.Add(3*time.Hour))

	ids := func(items []*TestCase) []uint {
		out := make([]uint, 0, len(items))
		for _, tc := range items {
			out = append(out, tc.ID)
		}
		return out
	}

	tests := []struct {
		name      string
		opts      ListOptions
		wantIDs   []uint
		wantTotal int
	}{
		{
			name:      "no filters returns all newest first",
			opts:      ListOptions{},
			wantIDs:   []uint{other.ID, newest.ID, middle.ID, oldest.ID},
			wantTotal: 4,
		},
		{
			name:      "project filter",
			opts:      ListOptions{ProjectID: 1},
			wantIDs:   []uint{newest.ID, middle.ID, oldest.ID},
			wantTotal: 3,
		},
		{
			name:      "project and platform filter",
			opts:      ListOptions{ProjectID: 1, Platform: PlatformAndroid},
			wantIDs:   []uint{newest.ID, oldest.ID},
			wantTotal: 2,
		},
		{
			name:      "platform only",
			opts:      ListOptions{Platform: PlatformIOS},
			wantIDs:   []uint{middle.ID},
			wantTotal: 1,
		},
		{
			name:      "case-insensitive name substring",
			opts:      ListOptions{Name: "login"},
			wantIDs:   []uint{other.ID, newest.ID, oldest.ID},
			wantTotal: 3,
		},
		{
			name:      "pagination keeps total",
			opts:      ListOptions{Limit: 2, Offset: 1},
			wantIDs:   []uint{newest.ID, middle.ID},
			wantTotal: 4,
		},
		{
			name:      "no match",
			opts:      ListOptions{Name: "does-not-exist"},
			wantIDs:   []uint{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := env.cases.List(ctx, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(page.Items))
			assert.Equal(t, tt.wantTotal, page.Total)
			assert.Equal(t, tt.opts.Limit, page.Limit)
			assert.Equal(t, tt.opts.Offset, page.Offset)
		})
	}

	t.Run("unpaged by project and platform", func(t *testing.T) {
		items, err := env.cases.ListByProjectAndPlatform(ctx, 1, PlatformAndroid)
		require.NoError(t, err)
		assert.Equal(t, []uint{newest.ID, oldest.ID}, ids(items))
	})
}

func TestMySQLStore_FindByIDs(t *testing.T) {
	env := setupTestEnv(t, nil)
	ctx := context.Background()

	a := createCaseAt(t, env.cases, "A", 1, PlatformAndroid, baseTime)
	b := createCaseAt(t, env.cases, "B", 1, PlatformAndroid, baseTime)

	t.Run("returns requested cases", func(t *testing.T) {
		items, err := env.cases.FindByIDs(ctx, []uint{b.ID, a.ID, 9999})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, a.ID, items[0].ID)
		assert.Equal(t, b.ID, items[1].ID)
	})

	t.Run("empty list returns empty result", func(t *testing.T) {
		items, err := env.cases.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestMySQLStore_Delete(t *testing.T) {
	env := setupTestEnv(t, nil)
	ctx := context.Background()

	a := createCaseAt(t, env.cases, "A", 7, PlatformAndroid, baseTime)
	createCaseAt(t, env.cases, "B", 7, PlatformIOS, baseTime)
	keep := createCaseAt(t, env.cases, "C", 8, PlatformIOS, baseTime)

	t.Run("delete row by ID", func(t *testing.T) {
		ok, err := env.cases.DeleteByID(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = env.cases.DeleteByID(ctx, a.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete rows by project", func(t *testing.T) {
		ids, err := env.cases.ListIDsByProject(ctx, 7)
		require.NoError(t, err)
		assert.Len(t, ids, 1)

		removed, err := env.cases.DeleteByProjectID(ctx, 7)
		require.NoError(t, err)
		assert.EqualValues(t, 1, removed)

		_, err = env.cases.GetByID(ctx, keep.ID)
		assert.NoError(t, err)
	})
}
