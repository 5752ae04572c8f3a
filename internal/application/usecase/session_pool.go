package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

// ErrPoolClosed is returned by SessionPool after Close.
var ErrPoolClosed = errors.New("session pool is closed")

const poolComponent = "session-pool"

// SessionPoolConfig configures what every new session loads.
type SessionPoolConfig struct {
	URI       string
	UserAgent string
}

type pooledSession struct {
	session entity.Session
	view    port.EngineSession
}

// SessionPool owns the live session of every materialized account.
// Background sessions stay alive after a switch-away so they keep receiving
// notifications; only Evict and Close destroy them.
type SessionPool struct {
	engine     port.RenderingEngine
	fs         port.FileSystem
	config     SessionPoolConfig
	sessions   map[string]*pooledSession
	foreground string
	closed     bool
}

// NewSessionPool creates an empty pool.
func NewSessionPool(engine port.RenderingEngine, fs port.FileSystem, cfg SessionPoolConfig) *SessionPool {
	return &SessionPool{
		engine:   engine,
		fs:       fs,
		config:   cfg,
		sessions: make(map[string]*pooledSession),
	}
}

// SetConfig changes what sessions created from now on load.
func (p *SessionPool) SetConfig(cfg SessionPoolConfig) {
	p.config = cfg
}

// GetOrCreate returns the account's session, creating it when absent.
// With foreground set the session is shown and the previous foreground
// session is hidden, not destroyed.
func (p *SessionPool) GetOrCreate(
	ctx context.Context,
	accountID string,
	dirs entity.StorageDirs,
	foreground bool,
) (*entity.Session, error) {
	ctx = logging.WithAccountID(logging.WithComponent(ctx, poolComponent), accountID)
	log := logging.FromContext(ctx)

	if p.closed {
		return nil, ErrPoolClosed
	}

	if ps, ok := p.sessions[accountID]; ok {
		if foreground && p.foreground != accountID {
			p.promote(ctx, accountID)
		}
		s := ps.session
		return &s, nil
	}

	candidate := entity.Session{AccountID: accountID, Dirs: dirs, Visibility: entity.SessionBackground}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	for _, dir := range []string{dirs.Data, dirs.Cache} {
		if err := p.fs.MkdirAll(ctx, dir); err != nil {
			return nil, fmt.Errorf("%w: failed to create session directory %s: %w", entity.ErrStorage, dir, err)
		}
	}

	view, err := p.engine.CreateSession(ctx, port.SessionSpec{
		AccountID: accountID,
		Dirs:      dirs,
		URI:       p.config.URI,
		UserAgent: p.config.UserAgent,
		Visible:   false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if err := view.Load(ctx, p.config.URI); err != nil {
		view.Destroy()
		return nil, fmt.Errorf("failed to load %s: %w", p.config.URI, err)
	}

	p.sessions[accountID] = &pooledSession{session: candidate, view: view}
	log.Info().Bool("foreground", foreground).Int("pool_size", len(p.sessions)).Msg("session created")

	if foreground {
		p.promote(ctx, accountID)
	}
	s := p.sessions[accountID].session
	return &s, nil
}

// Switch makes the account's session the foreground one, creating it if
// needed. Switching to the current foreground session is a no-op.
func (p *SessionPool) Switch(ctx context.Context, accountID string, dirs entity.StorageDirs) (*entity.Session, error) {
	return p.GetOrCreate(ctx, accountID, dirs, true)
}

// Evict destroys the account's session. It is only used when the account is
// removed. Unknown ids are a no-op.
func (p *SessionPool) Evict(ctx context.Context, accountID string) {
	ps, ok := p.sessions[accountID]
	if !ok {
		return
	}
	delete(p.sessions, accountID)
	if p.foreground == accountID {
		p.foreground = ""
	}
	ps.view.Destroy()
	ctx = logging.WithAccountID(logging.WithComponent(ctx, poolComponent), accountID)
	logging.FromContext(ctx).Info().
		Int("pool_size", len(p.sessions)).
		Msg("session evicted")
}

// Foreground returns the id of the visible session, or "".
func (p *SessionPool) Foreground() string {
	return p.foreground
}

// Get returns a snapshot of the account's session.
func (p *SessionPool) Get(accountID string) (*entity.Session, bool) {
	ps, ok := p.sessions[accountID]
	if !ok {
		return nil, false
	}
	s := ps.session
	return &s, true
}

// View returns the engine handle of the account's session.
func (p *SessionPool) View(accountID string) (port.EngineSession, bool) {
	ps, ok := p.sessions[accountID]
	if !ok {
		return nil, false
	}
	return ps.view, true
}

// Len returns the number of live sessions.
func (p *SessionPool) Len() int {
	return len(p.sessions)
}

// IDs returns the account ids with a live session, sorted.
func (p *SessionPool) IDs() []string {
	ids := make([]string, 0, len(p.sessions))
	for id := range p.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Close destroys every session. The pool rejects creation afterwards.
func (p *SessionPool) Close(ctx context.Context) {
	if p.closed {
		return
	}
	p.closed = true
	for _, id := range p.IDs() {
		p.sessions[id].view.Destroy()
		delete(p.sessions, id)
	}
	p.foreground = ""
	logging.FromContext(logging.WithComponent(ctx, poolComponent)).Debug().Msg("session pool closed")
}

func (p *SessionPool) promote(ctx context.Context, accountID string) {
	if prev, ok := p.sessions[p.foreground]; ok && p.foreground != accountID {
		prev.session.Visibility = entity.SessionBackground
		prev.view.SetVisible(false)
	}
	next := p.sessions[accountID]
	next.session.Visibility = entity.SessionForeground
	next.view.SetVisible(true)

	logging.FromContext(logging.WithComponent(ctx, poolComponent)).Debug().
		Str("from", p.foreground).
		Str("to", accountID).
		Msg("foreground session changed")
	p.foreground = accountID
}
