package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

// EnsureDefaultAccount bootstraps an empty registry with the default account.
// Legacy single-account session data, when present, is moved into the
// default account's directories first. When accounts already exist it
// returns the active one and changes nothing.
func (uc *ManageAccountsUseCase) EnsureDefaultAccount(ctx context.Context) (*entity.Account, error) {
	log := logging.FromContext(ctx)

	active, err := uc.Active(ctx)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return active, nil
	}

	account := entity.NewDefaultAccount(uc.now().Unix())

	migrated, err := uc.migrateLegacySession(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if migrated {
		has, err := uc.fs.HasSessionData(ctx, uc.DataDir(account.ID))
		if err != nil {
			log.Warn().Err(err).Msg("failed to inspect migrated session data")
		}
		account.HasSession = has
	}

	if err := uc.repo.Save(ctx, []entity.Account{account}); err != nil {
		return nil, fmt.Errorf("failed to save default account: %w", err)
	}

	log.Info().
		Bool("migrated", migrated).
		Bool("has_session", account.HasSession).
		Msg("created default account")
	return &account, nil
}

// migrateLegacySession moves legacy data and cache into the account's
// session tree. Data failures abort the bootstrap; cache failures are logged
// as a partial migration and ignored.
func (uc *ManageAccountsUseCase) migrateLegacySession(ctx context.Context, id string) (bool, error) {
	log := logging.FromContext(ctx)

	if uc.legacy.Data == "" {
		return false, nil
	}
	has, err := uc.fs.HasSessionData(ctx, uc.legacy.Data)
	if err != nil {
		log.Warn().Err(err).Str("path", uc.legacy.Data).Msg("failed to inspect legacy session, skipping migration")
		return false, nil
	}
	if !has {
		return false, nil
	}

	log.Info().Str("from", uc.legacy.Data).Str("to", uc.SessionDir(id)).Msg("migrating legacy session")

	if err := uc.fs.MkdirAll(ctx, uc.SessionDir(id)); err != nil {
		return false, fmt.Errorf("%w: failed to create session directory: %w", entity.ErrStorage, err)
	}
	if err := uc.fs.Move(ctx, uc.legacy.Data, uc.DataDir(id)); err != nil {
		return false, fmt.Errorf("%w: failed to migrate legacy session data: %w", entity.ErrStorage, err)
	}

	if uc.legacy.Cache == "" {
		return true, nil
	}
	exists, err := uc.fs.Exists(ctx, uc.legacy.Cache)
	if err != nil || !exists {
		return true, nil
	}
	if err := uc.fs.Move(ctx, uc.legacy.Cache, uc.CacheDir(id)); err != nil {
		log.Warn().
			Err(fmt.Errorf("%w: %w", entity.ErrMigrationPartialFailure, err)).
			Str("path", uc.legacy.Cache).
			Msg("legacy cache not migrated, continuing with data only")
	}
	return true, nil
}
