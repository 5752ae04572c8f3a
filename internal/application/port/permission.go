package port

import (
	"context"

	"github.com/bnema/chatshell/internal/domain/entity"
)

// PermissionDialogResult represents the user's response from a permission dialog.
type PermissionDialogResult struct {
	// Allowed is true if the user clicked "Allow".
	Allowed bool

	// Dismissed is true if the dialog was closed without a choice.
	// A dismissed dialog is recorded as a denial.
	Dismissed bool
}

// PermissionDialogPresenter defines the interface for showing permission dialogs.
// This is implemented by the UI layer.
type PermissionDialogPresenter interface {
	// ShowPermissionDialog displays a yes/no decision surface for an account.
	// The callback is invoked on the control thread with the user's decision.
	ShowPermissionDialog(
		ctx context.Context,
		account entity.Account,
		kinds []entity.PermissionKind,
		callback func(result PermissionDialogResult),
	)
}

// CameraAccessRequester asks the operating system for camera access.
// It may block and is only called from the task runner.
type CameraAccessRequester interface {
	// RequestCameraAccess returns true when the OS granted access, or when no
	// OS-level gate exists.
	RequestCameraAccess(ctx context.Context) (bool, error)
}
