package usecase

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

// PermissionCallback provides allow/deny functions for the permission request.
type PermissionCallback struct {
	Allow func()
	Deny  func()
}

// HandlePermissionUseCase is the per-account permission ledger.
// Decisions live on the Account record, so a resolved kind is answered from
// the registry on every later request, across restarts, without a dialog.
type HandlePermissionUseCase struct {
	accounts *ManageAccountsUseCase
	dialog   port.PermissionDialogPresenter
	camera   port.CameraAccessRequester
	runner   port.BackgroundRunner

	// pending groups requests that arrive while the same question is on screen.
	pending map[string][]PermissionCallback
}

// NewHandlePermissionUseCase creates the ledger.
func NewHandlePermissionUseCase(
	accounts *ManageAccountsUseCase,
	dialog port.PermissionDialogPresenter,
) *HandlePermissionUseCase {
	return &HandlePermissionUseCase{
		accounts: accounts,
		dialog:   dialog,
		pending:  make(map[string][]PermissionCallback),
	}
}

// SetDialogPresenter sets the dialog presenter once the window exists.
func (uc *HandlePermissionUseCase) SetDialogPresenter(dialog port.PermissionDialogPresenter) {
	uc.dialog = dialog
}

// SetCameraGate makes granted camera requests wait for the OS-level camera
// grant, which runs on runner.
func (uc *HandlePermissionUseCase) SetCameraGate(camera port.CameraAccessRequester, runner port.BackgroundRunner) {
	uc.camera = camera
	uc.runner = runner
}

// Check returns the ledger state of one kind.
func (uc *HandlePermissionUseCase) Check(ctx context.Context, accountID string, kind entity.PermissionKind) (entity.PermissionState, error) {
	account, err := uc.accounts.Get(ctx, accountID)
	if err != nil {
		return entity.PermissionUnknown, err
	}
	return account.Permission(kind).State(), nil
}

// Resolve records a decision permanently.
func (uc *HandlePermissionUseCase) Resolve(ctx context.Context, accountID string, kind entity.PermissionKind, granted bool) error {
	return uc.ResolveAll(ctx, accountID, []entity.PermissionKind{kind}, granted)
}

// ResolveAll records the same decision for every kind of a joint request.
func (uc *HandlePermissionUseCase) ResolveAll(ctx context.Context, accountID string, kinds []entity.PermissionKind, granted bool) error {
	if err := uc.accounts.SetPermissions(ctx, accountID, kinds, true, granted); err != nil {
		return fmt.Errorf("failed to record permission decision: %w", err)
	}
	logging.FromContext(ctx).Info().
		Str("account_id", accountID).
		Strs("kinds", entity.PermissionKindsToStrings(kinds)).
		Bool("granted", granted).
		Msg("permission decision recorded")
	return nil
}

// HandlePermissionRequest answers an engine permission request. A stored
// decision is applied immediately. Otherwise the dialog is shown and its
// outcome recorded before the request is answered; dismissal counts as deny.
// A joint camera and microphone request is decided by the camera record, and
// allowing it also grants the microphone.
func (uc *HandlePermissionUseCase) HandlePermissionRequest(
	ctx context.Context,
	accountID string,
	req port.PermissionRequest,
	callback PermissionCallback,
) {
	ctx = logging.WithAccountID(logging.WithComponent(ctx, "permission"), accountID)
	log := logging.FromContext(ctx).With().
		Strs("kinds", entity.PermissionKindsToStrings(req.Kinds)).
		Logger()

	if len(req.Kinds) == 0 {
		log.Warn().Msg("permission request with no kinds, denying")
		callback.Deny()
		return
	}

	account, err := uc.accounts.Get(ctx, accountID)
	if err != nil {
		log.Warn().Err(err).Msg("permission request for unavailable account, denying")
		callback.Deny()
		return
	}

	keyed := decisionKinds(req.Kinds)
	switch decisionFor(account, keyed) {
	case entity.PermissionGranted:
		log.Debug().Msg("using stored permission: granted")
		uc.grant(ctx, req.Kinds, callback)
		return
	case entity.PermissionDenied:
		log.Debug().Msg("using stored permission: denied")
		callback.Deny()
		return
	}

	dialog := uc.dialog
	if dialog == nil {
		log.Warn().Msg("no dialog presenter available, denying without recording")
		callback.Deny()
		return
	}

	key := pendingKey(accountID, req.Kinds)
	if waiting, ok := uc.pending[key]; ok {
		log.Debug().Msg("same question already on screen, queueing request")
		uc.pending[key] = append(waiting, callback)
		return
	}
	uc.pending[key] = []PermissionCallback{callback}

	kinds := slices.Clone(req.Kinds)
	dialog.ShowPermissionDialog(ctx, *account, kinds, func(result port.PermissionDialogResult) {
		callbacks := uc.pending[key]
		delete(uc.pending, key)

		allowed := result.Allowed && !result.Dismissed
		recorded := keyed
		if allowed {
			recorded = kinds
		}
		if err := uc.ResolveAll(ctx, accountID, recorded, allowed); err != nil {
			log.Error().Err(err).Msg("failed to persist permission decision")
		}
		for _, cb := range callbacks {
			if allowed {
				uc.grant(ctx, kinds, cb)
			} else {
				cb.Deny()
			}
		}
	})
}

// grant allows the request, first passing camera requests through the
// OS-level gate when one is configured.
func (uc *HandlePermissionUseCase) grant(ctx context.Context, kinds []entity.PermissionKind, callback PermissionCallback) {
	if uc.camera == nil || uc.runner == nil || !slices.Contains(kinds, entity.PermissionCamera) {
		callback.Allow()
		return
	}

	camera := uc.camera
	uc.runner.Go(ctx, func(ctx context.Context) func() {
		ok, err := camera.RequestCameraAccess(ctx)
		return func() {
			if err != nil {
				logging.FromContext(ctx).Warn().Err(err).Msg("camera access request failed, denying")
				callback.Deny()
				return
			}
			if !ok {
				logging.FromContext(ctx).Info().Msg("camera access refused by the system")
				callback.Deny()
				return
			}
			callback.Allow()
		}
	})
}

// decisionKinds returns the kinds a request is decided and recorded under. A
// camera request that also wants the microphone is keyed on the camera alone.
func decisionKinds(kinds []entity.PermissionKind) []entity.PermissionKind {
	if !slices.Contains(kinds, entity.PermissionCamera) || !slices.Contains(kinds, entity.PermissionMicrophone) {
		return kinds
	}
	return slices.DeleteFunc(slices.Clone(kinds), func(k entity.PermissionKind) bool {
		return k == entity.PermissionMicrophone
	})
}

// decisionFor folds the per-kind states of a joint request: any denial
// denies, all grants grant, anything else must be asked.
func decisionFor(account *entity.Account, kinds []entity.PermissionKind) entity.PermissionState {
	granted := 0
	for _, kind := range kinds {
		switch account.Permission(kind).State() {
		case entity.PermissionDenied:
			return entity.PermissionDenied
		case entity.PermissionGranted:
			granted++
		}
	}
	if granted == len(kinds) {
		return entity.PermissionGranted
	}
	return entity.PermissionUnknown
}

func pendingKey(accountID string, kinds []entity.PermissionKind) string {
	names := entity.PermissionKindsToStrings(kinds)
	sort.Strings(names)
	return accountID + "|" + strings.Join(names, ",")
}
