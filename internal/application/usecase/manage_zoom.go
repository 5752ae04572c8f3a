package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

// ManageZoomUseCase handles per-account zoom levels and the optional global
// accessibility floor.
//
// Floor state machine:
//
//	disabled --enable--> enabled        raise every account below the floor
//	enabled  --disable--> disabled      stored levels are left as they are
//	enabled  --new value--> enabled     raise again to the new floor
type ManageZoomUseCase struct {
	accounts     *ManageAccountsUseCase
	floorEnabled bool
	floor        float64
}

// NewManageZoomUseCase creates a zoom policy with the floor disabled.
func NewManageZoomUseCase(accounts *ManageAccountsUseCase) *ManageZoomUseCase {
	return &ManageZoomUseCase{accounts: accounts}
}

// Floor returns the floor value and whether it is enforced.
func (uc *ManageZoomUseCase) Floor() (float64, bool) {
	return uc.floor, uc.floorEnabled
}

func (uc *ManageZoomUseCase) activeFloor() float64 {
	if !uc.floorEnabled {
		return 0
	}
	return uc.floor
}

// Get returns the effective zoom level of an account.
func (uc *ManageZoomUseCase) Get(ctx context.Context, accountID string) (float64, error) {
	account, err := uc.accounts.Get(ctx, accountID)
	if err != nil {
		return entity.ZoomDefault, err
	}
	return entity.ClampZoom(account.ZoomLevel, uc.activeFloor()), nil
}

// Set stores a zoom level, clamped to the floor while it is enforced, and
// returns the stored value.
func (uc *ManageZoomUseCase) Set(ctx context.Context, accountID string, level float64) (float64, error) {
	effective := entity.ClampZoom(level, uc.activeFloor())
	if err := uc.accounts.SetZoom(ctx, accountID, effective); err != nil {
		return entity.ZoomDefault, fmt.Errorf("failed to set zoom: %w", err)
	}
	logging.FromContext(ctx).Debug().
		Str("account_id", accountID).
		Float64("requested", level).
		Float64("zoom", effective).
		Msg("zoom level set")
	return effective, nil
}

// ApplyFloor enables the floor and raises every account below it.
// It returns the ids whose level changed.
func (uc *ManageZoomUseCase) ApplyFloor(ctx context.Context, floor float64) ([]string, error) {
	floor = entity.ClampZoom(floor, 0)
	uc.floorEnabled = true
	uc.floor = floor

	raised, err := uc.accounts.RaiseZoomFloor(ctx, floor)
	if err != nil {
		return nil, fmt.Errorf("failed to apply zoom floor: %w", err)
	}
	logging.FromContext(ctx).Info().
		Float64("floor", floor).
		Strs("raised", raised).
		Msg("zoom floor applied")
	return raised, nil
}

// DisableFloor stops enforcing the floor. Stored levels are not lowered.
func (uc *ManageZoomUseCase) DisableFloor() {
	uc.floorEnabled = false
}

// ConfigureFloor drives the floor state machine from a settings snapshot.
func (uc *ManageZoomUseCase) ConfigureFloor(ctx context.Context, enabled bool, floor float64) ([]string, error) {
	switch {
	case !enabled:
		uc.DisableFloor()
		return nil, nil
	case !uc.floorEnabled || entity.ClampZoom(floor, 0) != uc.floor:
		return uc.ApplyFloor(ctx, floor)
	default:
		return nil, nil
	}
}

// ZoomIn raises the level by one step.
func (uc *ManageZoomUseCase) ZoomIn(ctx context.Context, accountID string) (float64, error) {
	return uc.step(ctx, accountID, entity.ZoomStep)
}

// ZoomOut lowers the level by one step.
func (uc *ManageZoomUseCase) ZoomOut(ctx context.Context, accountID string) (float64, error) {
	return uc.step(ctx, accountID, -entity.ZoomStep)
}

// Reset restores the default level, or the floor when that is higher.
func (uc *ManageZoomUseCase) Reset(ctx context.Context, accountID string) (float64, error) {
	return uc.Set(ctx, accountID, entity.ZoomDefault)
}

func (uc *ManageZoomUseCase) step(ctx context.Context, accountID string, delta float64) (float64, error) {
	current, err := uc.Get(ctx, accountID)
	if err != nil {
		return current, err
	}
	return uc.Set(ctx, accountID, current+delta)
}
