package repository

import (
	"context"

	"github.com/bnema/chatshell/internal/domain/entity"
)

// AccountRepository persists the account registry as a whole.
// Every mutation is a full read-modify-write; implementations must make Save
// atomic so a failed write leaves the previous registry authoritative.
type AccountRepository interface {
	// Load returns every stored account, or an empty slice when nothing has
	// been persisted yet. Fields omitted by older files carry their defaults.
	Load(ctx context.Context) ([]entity.Account, error)

	// Save replaces the stored registry with accounts.
	Save(ctx context.Context, accounts []entity.Account) error
}
