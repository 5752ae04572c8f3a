// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/domain/repository"
	"github.com/bnema/chatshell/internal/logging"
)

// Directory names below the accounts directory.
const (
	sessionsDirName = "sessions"
	dataDirName     = "data"
	cacheDirName    = "cache"
)

// LegacyDirs locates the single-account session directories written before
// multi-account support.
type LegacyDirs struct {
	Data  string
	Cache string
}

// ManageAccountsUseCase is the account registry. Every mutation is a full
// read-modify-write of the repository and leaves exactly one active account
// whenever at least one account exists.
type ManageAccountsUseCase struct {
	repo        repository.AccountRepository
	fs          port.FileSystem
	accountsDir string
	legacy      LegacyDirs
	now         func() time.Time
}

// NewManageAccountsUseCase creates the registry rooted at accountsDir.
func NewManageAccountsUseCase(
	repo repository.AccountRepository,
	fs port.FileSystem,
	accountsDir string,
) *ManageAccountsUseCase {
	return &ManageAccountsUseCase{
		repo:        repo,
		fs:          fs,
		accountsDir: accountsDir,
		now:         time.Now,
	}
}

// SetLegacyDirs configures where EnsureDefaultAccount looks for data to migrate.
func (uc *ManageAccountsUseCase) SetLegacyDirs(dirs LegacyDirs) {
	uc.legacy = dirs
}

// SetClock overrides the time source used for created_at.
func (uc *ManageAccountsUseCase) SetClock(now func() time.Time) {
	if now != nil {
		uc.now = now
	}
}

// SessionDir returns the per-account session subtree.
func (uc *ManageAccountsUseCase) SessionDir(id string) string {
	return filepath.Join(uc.accountsDir, sessionsDirName, id)
}

// DataDir returns the browsing storage directory of an account.
func (uc *ManageAccountsUseCase) DataDir(id string) string {
	return filepath.Join(uc.SessionDir(id), dataDirName)
}

// CacheDir returns the cache directory of an account.
func (uc *ManageAccountsUseCase) CacheDir(id string) string {
	return filepath.Join(uc.SessionDir(id), cacheDirName)
}

// StorageDirs returns both directories of an account.
func (uc *ManageAccountsUseCase) StorageDirs(id string) entity.StorageDirs {
	return entity.StorageDirs{Data: uc.DataDir(id), Cache: uc.CacheDir(id)}
}

// List returns all accounts in stored order, or an empty slice.
func (uc *ManageAccountsUseCase) List(ctx context.Context) ([]entity.Account, error) {
	accounts, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	return accounts, nil
}

// ListSorted returns all accounts in display order, default first.
func (uc *ManageAccountsUseCase) ListSorted(ctx context.Context) ([]entity.Account, error) {
	accounts, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	entity.SortAccounts(accounts)
	return accounts, nil
}

// Active returns the active account, the first account in display order when
// none is marked, or nil when the registry is empty.
func (uc *ManageAccountsUseCase) Active(ctx context.Context) (*entity.Account, error) {
	accounts, err := uc.ListSorted(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, nil
	}
	for i := range accounts {
		if accounts[i].IsActive {
			return &accounts[i], nil
		}
	}
	return &accounts[0], nil
}

// Get returns one account.
func (uc *ManageAccountsUseCase) Get(ctx context.Context, id string) (*entity.Account, error) {
	accounts, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf(accounts, id); i >= 0 {
		return &accounts[i], nil
	}
	return nil, fmt.Errorf("%w: %s", entity.ErrAccountNotFound, id)
}

// Summary returns the (id, name, emoji, has_unread) view in display order.
func (uc *ManageAccountsUseCase) Summary(ctx context.Context) ([]entity.AccountSummary, error) {
	accounts, err := uc.ListSorted(ctx)
	if err != nil {
		return nil, err
	}
	summary := make([]entity.AccountSummary, len(accounts))
	for i, a := range accounts {
		summary[i] = entity.AccountSummary{ID: a.ID, Name: a.Name, Emoji: a.Emoji, HasUnread: a.HasUnread}
	}
	return summary, nil
}

// Add registers a new account. The first account ever added becomes active;
// later ones are appended after the highest order.
func (uc *ManageAccountsUseCase) Add(ctx context.Context, account entity.Account) error {
	log := logging.FromContext(ctx)

	if err := entity.ValidateAccountID(account.ID); err != nil {
		return err
	}
	account.ApplyDefaults()
	if err := entity.ValidateColor(account.Color); err != nil {
		return err
	}
	if account.CreatedAt == 0 {
		account.CreatedAt = uc.now().Unix()
	}
	account.ZoomLevel = entity.ClampZoom(account.ZoomLevel, 0)

	accounts, err := uc.List(ctx)
	if err != nil {
		return err
	}
	if indexOf(accounts, account.ID) >= 0 {
		return fmt.Errorf("%w: %s", entity.ErrDuplicateID, account.ID)
	}

	if len(accounts) == 0 {
		account.Order = 0
		account.IsActive = true
	} else {
		account.Order = maxOrder(accounts) + 1
		account.IsActive = false
	}
	accounts = append(accounts, account)
	enforceSingleActive(accounts)

	if err := uc.repo.Save(ctx, accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}

	log.Info().Str("account_id", account.ID).Int("order", account.Order).Bool("active", account.IsActive).Msg("account added")
	return nil
}

// Draft builds an account ready for Add. An empty name becomes "Account N"
// and an empty color takes the next palette entry.
func (uc *ManageAccountsUseCase) Draft(ctx context.Context, id, name, color, emoji string) (entity.Account, error) {
	existing, err := uc.List(ctx)
	if err != nil {
		return entity.Account{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Account %d", len(existing)+1)
	}
	if color == "" {
		color = entity.AccountColors[len(existing)%len(entity.AccountColors)]
	}
	return entity.NewAccount(id, name, color, emoji, 0), nil
}

// Remove deletes an account and its session subtree. When the removed
// account was active, its successor in display order becomes active.
func (uc *ManageAccountsUseCase) Remove(ctx context.Context, id string) error {
	log := logging.FromContext(ctx)

	if id == entity.DefaultAccountID {
		return entity.ErrProtectedAccount
	}

	accounts, err := uc.ListSorted(ctx)
	if err != nil {
		return err
	}
	pos := indexOf(accounts, id)
	if pos < 0 {
		return fmt.Errorf("%w: %s", entity.ErrAccountNotFound, id)
	}

	wasActive := accounts[pos].IsActive
	accounts = append(accounts[:pos], accounts[pos+1:]...)

	if wasActive && len(accounts) > 0 {
		next := pos
		if next >= len(accounts) {
			next = len(accounts) - 1
		}
		activate(accounts, accounts[next].ID)
	}
	enforceSingleActive(accounts)

	if err := uc.repo.Save(ctx, accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	log.Info().Str("account_id", id).Bool("was_active", wasActive).Msg("account removed")

	if err := uc.fs.RemoveAll(ctx, uc.SessionDir(id)); err != nil {
		return fmt.Errorf("%w: failed to remove session directory for %s: %w", entity.ErrStorage, id, err)
	}
	return nil
}

// SetActive marks id as the only active account. Unknown ids are ignored,
// since they usually mean the account was removed concurrently.
func (uc *ManageAccountsUseCase) SetActive(ctx context.Context, id string) error {
	accounts, err := uc.List(ctx)
	if err != nil {
		return err
	}
	i := indexOf(accounts, id)
	if i < 0 {
		logging.FromContext(ctx).Debug().Str("account_id", id).Msg("set active ignored for unknown account")
		return nil
	}
	if accounts[i].IsActive && countActive(accounts) == 1 {
		return nil
	}

	activate(accounts, id)
	if err := uc.repo.Save(ctx, accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

// UpdateIdentity changes the display identity. An empty name keeps the
// current one and an empty emoji falls back to the default.
func (uc *ManageAccountsUseCase) UpdateIdentity(ctx context.Context, id, name, emoji, color string) error {
	if err := entity.ValidateColor(color); err != nil {
		return err
	}
	return uc.update(ctx, id, func(a *entity.Account) error {
		if name != "" {
			a.Name = name
		}
		a.Emoji = emoji
		a.Color = color
		a.ApplyDefaults()
		return nil
	})
}

// SetPermission records the asked/granted pair of one kind.
func (uc *ManageAccountsUseCase) SetPermission(ctx context.Context, id string, kind entity.PermissionKind, asked, granted bool) error {
	return uc.SetPermissions(ctx, id, []entity.PermissionKind{kind}, asked, granted)
}

// SetPermissions records the same decision for several kinds in one write,
// so a joint camera and microphone grant also resolves the microphone.
func (uc *ManageAccountsUseCase) SetPermissions(ctx context.Context, id string, kinds []entity.PermissionKind, asked, granted bool) error {
	return uc.update(ctx, id, func(a *entity.Account) error {
		for _, kind := range kinds {
			if err := a.SetPermission(kind, entity.PermissionRecord{Asked: asked, Granted: granted}); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetZoom stores a zoom level clamped to the supported range.
func (uc *ManageAccountsUseCase) SetZoom(ctx context.Context, id string, level float64) error {
	return uc.update(ctx, id, func(a *entity.Account) error {
		a.ZoomLevel = entity.ClampZoom(level, 0)
		return nil
	})
}

// RaiseZoomFloor lifts every account below floor up to floor in one write
// and returns the ids that changed.
func (uc *ManageAccountsUseCase) RaiseZoomFloor(ctx context.Context, floor float64) ([]string, error) {
	accounts, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}

	var raised []string
	for i := range accounts {
		if accounts[i].ZoomLevel < floor {
			accounts[i].ZoomLevel = entity.ClampZoom(accounts[i].ZoomLevel, floor)
			raised = append(raised, accounts[i].ID)
		}
	}
	if len(raised) == 0 {
		return nil, nil
	}
	if err := uc.repo.Save(ctx, accounts); err != nil {
		return nil, fmt.Errorf("failed to save accounts: %w", err)
	}
	return raised, nil
}

// SetUnread updates the unread flag and reports whether it changed.
// Unknown ids are ignored.
func (uc *ManageAccountsUseCase) SetUnread(ctx context.Context, id string, unread bool) (bool, error) {
	accounts, err := uc.List(ctx)
	if err != nil {
		return false, err
	}
	i := indexOf(accounts, id)
	if i < 0 || accounts[i].HasUnread == unread {
		return false, nil
	}
	accounts[i].HasUnread = unread
	if err := uc.repo.Save(ctx, accounts); err != nil {
		return false, fmt.Errorf("failed to save accounts: %w", err)
	}
	return true, nil
}

// Reorder moves an account one step up or down among the non-default
// accounts. Boundaries are a no-op; the default account is pinned.
func (uc *ManageAccountsUseCase) Reorder(ctx context.Context, id string, dir entity.Direction) error {
	if id == entity.DefaultAccountID {
		return entity.ErrProtectedAccount
	}

	accounts, err := uc.ListSorted(ctx)
	if err != nil {
		return err
	}
	pos := indexOf(accounts, id)
	if pos < 0 {
		return fmt.Errorf("%w: %s", entity.ErrAccountNotFound, id)
	}

	target := pos - 1
	if dir == entity.DirectionDown {
		target = pos + 1
	}
	if target < 0 || target >= len(accounts) || accounts[target].IsDefault() {
		return nil
	}

	// Renumber first so files with duplicate order values still move.
	for i := range accounts {
		accounts[i].Order = i
	}
	accounts[pos].Order, accounts[target].Order = accounts[target].Order, accounts[pos].Order

	if err := uc.repo.Save(ctx, accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("account_id", id).Stringer("direction", dir).Msg("account reordered")
	return nil
}

// RefreshSessionState recomputes has_session from the account's data
// directory. Unknown ids are ignored.
func (uc *ManageAccountsUseCase) RefreshSessionState(ctx context.Context, id string) error {
	has, err := uc.fs.HasSessionData(ctx, uc.DataDir(id))
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrStorage, err)
	}

	accounts, err := uc.List(ctx)
	if err != nil {
		return err
	}
	i := indexOf(accounts, id)
	if i < 0 || accounts[i].HasSession == has {
		return nil
	}
	accounts[i].HasSession = has
	if err := uc.repo.Save(ctx, accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

func (uc *ManageAccountsUseCase) update(ctx context.Context, id string, fn func(*entity.Account) error) error {
	accounts, err := uc.List(ctx)
	if err != nil {
		return err
	}
	i := indexOf(accounts, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", entity.ErrAccountNotFound, id)
	}
	if err := fn(&accounts[i]); err != nil {
		return err
	}
	if err := uc.repo.Save(ctx, accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

func indexOf(accounts []entity.Account, id string) int {
	for i := range accounts {
		if accounts[i].ID == id {
			return i
		}
	}
	return -1
}

func maxOrder(accounts []entity.Account) int {
	highest := accounts[0].Order
	for _, a := range accounts[1:] {
		if a.Order > highest {
			highest = a.Order
		}
	}
	return highest
}

func countActive(accounts []entity.Account) int {
	n := 0
	for _, a := range accounts {
		if a.IsActive {
			n++
		}
	}
	return n
}

func activate(accounts []entity.Account, id string) {
	for i := range accounts {
		accounts[i].IsActive = accounts[i].ID == id
	}
}

// enforceSingleActive repairs registries with zero or several active
// accounts, keeping the first one in display order.
func enforceSingleActive(accounts []entity.Account) {
	if len(accounts) == 0 || countActive(accounts) == 1 {
		return
	}
	sorted := make([]entity.Account, len(accounts))
	copy(sorted, accounts)
	entity.SortAccounts(sorted)

	keep := sorted[0].ID
	for _, a := range sorted {
		if a.IsActive {
			keep = a.ID
			break
		}
	}
	activate(accounts, keep)
}
