// Package jsonfile stores the account registry as a single JSON array.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/domain/repository"
	"github.com/bnema/chatshell/internal/logging"
)

const (
	// AccountsFileName is the registry file inside the accounts directory.
	AccountsFileName = "accounts.json"

	accountsFileMode = 0o600
	accountsDirMode  = 0o700
	tempFilePattern  = ".accounts-*.json.tmp"
)

type accountRepo struct {
	path string
	mu   sync.Mutex
}

var _ repository.AccountRepository = (*accountRepo)(nil)

// NewAccountRepository creates a repository backed by dir/accounts.json.
func NewAccountRepository(dir string) repository.AccountRepository {
	return &accountRepo{path: filepath.Join(dir, AccountsFileName)}
}

// Path returns the registry file location of repositories built by this package.
func Path(dir string) string {
	return filepath.Join(dir, AccountsFileName)
}

func (r *accountRepo) Load(ctx context.Context) ([]entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []entity.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read accounts file: %w", entity.ErrStorage, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []entity.Account{}, nil
	}

	var accounts []entity.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode accounts file %s: %w", r.path, err)
	}
	if accounts == nil {
		accounts = []entity.Account{}
	}
	for i := range accounts {
		accounts[i].ApplyDefaults()
	}

	logging.FromContext(ctx).Trace().Int("count", len(accounts)).Str("path", r.path).Msg("loaded accounts")
	return accounts, nil
}

func (r *accountRepo) Save(ctx context.Context, accounts []entity.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if accounts == nil {
		accounts = []entity.Account{}
	}
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode accounts file: %w", err)
	}

	if err := writeAtomic(r.path, data); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrStorage, err)
	}

	logging.FromContext(ctx).Debug().Int("count", len(accounts)).Str("path", r.path).Msg("saved accounts")
	return nil
}

// writeAtomic replaces path so that readers see either the old or the new
// content, never a partial write.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, accountsDirMode); err != nil {
		return fmt.Errorf("create accounts directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp accounts file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp accounts file: %w", err)
	}
	if err := tmp.Chmod(accountsFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp accounts file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp accounts file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp accounts file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace accounts file: %w", err)
	}
	cleanup = false
	return nil
}
