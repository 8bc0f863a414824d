package testcase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTestCase_Validate(t *testing.T) {
	tests := []struct {
		name     string
		testCase TestCase
		wantErr  error
	}{
		{
			name:     "valid test case",
			testCase: TestCase{Name: "login", ProjectID: 1, Platform: PlatformAndroid},
			wantErr:  nil,
		},
		{
			name:     "missing name",
			testCase: TestCase{ProjectID: 1, Platform: PlatformAndroid},
			wantErr:  ErrInvalidName,
		},
		{
			name:     "missing project",
			testCase: TestCase{Name: "login", Platform: PlatformIOS},
			wantErr:  ErrInvalidProjectID,
		},
		{
			name:     "missing platform",
			testCase: TestCase{Name: "login", ProjectID: 1},
			wantErr:  ErrInvalidPlatform,
		},
		{
			name:     "unknown platform",
			testCase: TestCase{Name: "login", ProjectID: 1, Platform: 42},
			wantErr:  ErrInvalidPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.testCase.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTestCase_Clone(t *testing.T) {
	original := &TestCase{
		ID:        5,
		ProjectID: 2,
		Platform:  PlatformWeb,
		Name:      "checkout",
		Designer:  "qa",
		EditTime:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	clone := original.Clone()

	assert.Zero(t, clone.ID)
	assert.True(t, clone.EditTime.IsZero())
	assert.Equal(t, "checkout_copy", clone.Name)
	assert.Equal(t, PlatformWeb, clone.Platform)
	assert.Equal(t, "qa", clone.Designer)
	assert.Equal(t, "checkout", original.Name)
	assert.Equal(t, uint(5), original.ID)
}

func TestPlatform_String(t *testing.T) {
	assert.Equal(t, "android", PlatformAndroid.String())
	assert.Equal(t, "ios", PlatformIOS.String())
	assert.Equal(t, "web", PlatformWeb.String())
	assert.Equal(t, "unknown", Platform(0).String())
}
