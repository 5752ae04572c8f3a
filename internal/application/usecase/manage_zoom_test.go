package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatshell/internal/application/usecase"
	"github.com/bnema/chatshell/internal/domain/entity"
)

func TestManageZoomUseCase_SetClampsToRange(t *testing.T) {
	ctx := testContext()
	accounts, _ := newAccounts(t)
	addAccount(t, accounts, "work")
	uc := usecase.NewManageZoomUseCase(accounts)

	tests := []struct {
		name  string
		level float64
		want  float64
	}{
		{name: "in range", level: 1.5, want: 1.5},
		{name: "too small", level: 0.01, want: entity.ZoomMin},
		{name: "too large", level: 9, want: entity.ZoomMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Set(ctx, "work", tt.level)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)

			stored, err := uc.Get(ctx, "work")
			require.NoError(t, err)
			assert.InDelta(t, tt.want, stored, 1e-9)
		})
	}
}

func TestManageZoomUseCase_FloorRaisesLowerAccounts(t *testing.T) {
	ctx := testContext()
	accounts, _ := newAccounts(t)
	addAccount(t, accounts, "a")
	addAccount(t, accounts, "b")
	uc := usecase.NewManageZoomUseCase(accounts)

	_, err := uc.Set(ctx, "a", 0.8)
	require.NoError(t, err)
	_, err = uc.Set(ctx, "b", 1.5)
	require.NoError(t, err)

	raised, err := uc.ApplyFloor(ctx, 1.2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, raised)

	a, err := uc.Get(ctx, "a")
	require.NoError(t, err)
	assert.InDelta(t, 1.2, a, 1e-9)
	b, err := uc.Get(ctx, "b")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, b, 1e-9)

	// While enforced, Set never goes below the floor.
	got, err := uc.Set(ctx, "b", 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.2, got, 1e-9)

	// Disabling keeps the stored levels.
	uc.DisableFloor()
	a, err = uc.Get(ctx, "a")
	require.NoError(t, err)
	assert.InDelta(t, 1.2, a, 1e-9)

	got, err = uc.Set(ctx, "a", 0.9)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, got, 1e-9)
}

func TestManageZoomUseCase_ConfigureFloor(t *testing.T) {
	ctx := testContext()
	accounts, _ := newAccounts(t)
	addAccount(t, accounts, "a")
	uc := usecase.NewManageZoomUseCase(accounts)

	raised, err := uc.ConfigureFloor(ctx, true, 1.3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, raised)
	floor, enabled := uc.Floor()
	assert.True(t, enabled)
	assert.InDelta(t, 1.3, floor, 1e-9)

	raised, err = uc.ConfigureFloor(ctx, true, 1.3)
	require.NoError(t, err)
	assert.Empty(t, raised)

	raised, err = uc.ConfigureFloor(ctx, true, 1.6)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, raised)

	_, err = uc.ConfigureFloor(ctx, false, 0)
	require.NoError(t, err)
	_, enabled = uc.Floor()
	assert.False(t, enabled)
}

func TestManageZoomUseCase_StepAndReset(t *testing.T) {
	ctx := testContext()
	accounts, _ := newAccounts(t)
	addAccount(t, accounts, "a")
	uc := usecase.NewManageZoomUseCase(accounts)

	got, err := uc.ZoomIn(ctx, "a")
	require.NoError(t, err)
	assert.InDelta(t, 1.1, got, 1e-9)

	got, err = uc.ZoomOut(ctx, "a")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-9)

	_, err = uc.Set(ctx, "a", 2.0)
	require.NoError(t, err)
	got, err = uc.Reset(ctx, "a")
	require.NoError(t, err)
	assert.InDelta(t, entity.ZoomDefault, got, 1e-9)

	_, err = uc.ZoomIn(ctx, "ghost")
	assert.ErrorIs(t, err, entity.ErrAccountNotFound)
}
