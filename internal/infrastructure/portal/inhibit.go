package portal

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/logging"
)

const (
	inhibitPortalIface = "org.freedesktop.portal.Inhibit"

	// Inhibit flags of org.freedesktop.portal.Inhibit.
	inhibitSuspend = 4
	inhibitIdle    = 8
)

var _ port.IdleInhibitor = (*IdleInhibitor)(nil)

// IdleInhibitor keeps the screen awake through org.freedesktop.portal.Inhibit.
// Without a portal it only keeps the refcount.
type IdleInhibitor struct {
	bus *Bus

	mu       sync.Mutex
	refcount int
	handle   dbus.ObjectPath
	// answered is closed when the portal ended the request on its own with a
	// Response signal, after which the request object no longer exists.
	answered chan struct{}
	stop     chan struct{}
}

// NewIdleInhibitor creates an inhibitor on bus.
func NewIdleInhibitor(bus *Bus) *IdleInhibitor {
	return &IdleInhibitor{bus: bus}
}

// Inhibit implements port.IdleInhibitor.
func (p *IdleInhibitor) Inhibit(ctx context.Context, reason string) error {
	log := logging.FromContext(logging.WithComponent(ctx, "idle-inhibitor"))

	p.mu.Lock()
	defer p.mu.Unlock()

	p.refcount++
	log.Debug().Int("refcount", p.refcount).Msg("inhibit")
	if p.refcount > 1 {
		return nil
	}

	conn, err := p.bus.Conn(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("no session bus, idle not inhibited")
		return nil
	}
	obj := conn.Object(portalDest, portalPath)
	if _, err := portalVersion(ctx, obj, inhibitPortalIface); err != nil {
		log.Debug().Err(err).Msg("inhibit portal not available")
		return nil
	}

	names := conn.Names()
	if len(names) == 0 {
		p.refcount--
		return fmt.Errorf("session bus connection has no unique name")
	}
	token := fmt.Sprintf("chatshell_inhibit_%d", p.bus.nextToken())
	expected := requestPath(names[0], token)

	match := []dbus.MatchOption{
		dbus.WithMatchObjectPath(expected),
		dbus.WithMatchInterface(requestIface),
		dbus.WithMatchMember("Response"),
	}
	if err := conn.AddMatchSignal(match...); err != nil {
		log.Debug().Err(err).Msg("failed to watch inhibit request")
	}
	signals := make(chan *dbus.Signal, 2)
	conn.Signal(signals)

	options := map[string]dbus.Variant{
		"reason":       dbus.MakeVariant(reason),
		"handle_token": dbus.MakeVariant(token),
	}
	var handle dbus.ObjectPath
	// Inhibit(s window, u flags, a{sv} options) -> o handle
	err = obj.CallWithContext(ctx, inhibitPortalIface+".Inhibit", 0,
		"", uint32(inhibitIdle|inhibitSuspend), options,
	).Store(&handle)
	if err != nil {
		conn.RemoveSignal(signals)
		_ = conn.RemoveMatchSignal(match...)
		p.refcount--
		return fmt.Errorf("failed to inhibit idle: %w", err)
	}

	p.handle = handle
	p.answered = make(chan struct{})
	p.stop = make(chan struct{})
	go watchResponse(conn, handle, signals, match, p.answered, p.stop)

	log.Info().Str("handle", string(handle)).Str("reason", reason).Msg("idle inhibited")
	return nil
}

// watchResponse closes answered when the request gets its Response signal.
func watchResponse(
	conn *dbus.Conn,
	handle dbus.ObjectPath,
	signals chan *dbus.Signal,
	match []dbus.MatchOption,
	answered, stop chan struct{},
) {
	defer func() {
		conn.RemoveSignal(signals)
		_ = conn.RemoveMatchSignal(match...)
	}()
	for {
		select {
		case <-stop:
			return
		case sig, ok := <-signals:
			if !ok {
				return
			}
			if sig.Path != handle {
				continue
			}
			if _, ok := responseCode(sig); ok {
				close(answered)
				return
			}
		}
	}
}

// Uninhibit implements port.IdleInhibitor.
func (p *IdleInhibitor) Uninhibit(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.refcount == 0 {
		return nil
	}
	p.refcount--
	logging.FromContext(ctx).Debug().Int("refcount", p.refcount).Msg("uninhibit")
	if p.refcount > 0 {
		return nil
	}
	return p.releaseLocked(ctx)
}

// IsInhibited implements port.IdleInhibitor.
func (p *IdleInhibitor) IsInhibited() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refcount > 0
}

// Close releases an active inhibition. The bus stays open.
func (p *IdleInhibitor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.refcount = 0
	return p.releaseLocked(context.Background())
}

func (p *IdleInhibitor) releaseLocked(ctx context.Context) error {
	if p.handle == "" {
		return nil
	}
	handle := p.handle
	answered := p.answered
	close(p.stop)
	p.handle, p.answered, p.stop = "", nil, nil

	select {
	case <-answered:
		logging.FromContext(ctx).Info().Msg("idle inhibition already ended by portal")
		return nil
	default:
	}

	conn, err := p.bus.Conn(ctx)
	if err != nil {
		return nil
	}
	if call := conn.Object(portalDest, handle).CallWithContext(ctx, requestIface+".Close", 0); call.Err != nil {
		return fmt.Errorf("failed to release idle inhibition: %w", call.Err)
	}
	logging.FromContext(ctx).Info().Msg("idle inhibition released")
	return nil
}
