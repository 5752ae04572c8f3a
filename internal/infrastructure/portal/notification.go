package portal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/logging"
)

const (
	notificationPortalIface = "org.freedesktop.portal.Notification"

	fdoNotificationsDest  = "org.freedesktop.Notifications"
	fdoNotificationsPath  = dbus.ObjectPath("/org/freedesktop/Notifications")
	fdoNotificationsIface = "org.freedesktop.Notifications"

	defaultAction = "default"
	appName       = "chatshell"

	// fdoTrackCap bounds the id map of the fallback service.
	fdoTrackCap = 256
)

type backend int

const (
	backendNone backend = iota
	backendPortal
	backendFreedesktop
)

func (b backend) String() string {
	switch b {
	case backendPortal:
		return "portal"
	case backendFreedesktop:
		return "freedesktop"
	default:
		return "none"
	}
}

// ErrNoNotificationService is returned when neither the notification portal
// nor a freedesktop notification daemon is reachable.
var ErrNoNotificationService = errors.New("no notification service available")

// NotificationTransport delivers notifications through the notification
// portal, falling back to org.freedesktop.Notifications outside a portal
// session. Portal notifications are keyed by routing id; the fallback service
// assigns numeric ids which are mapped back to routing ids on activation.
type NotificationTransport struct {
	bus    *Bus
	group  singleflight.Group
	logger zerolog.Logger

	mu          sync.Mutex
	resolved    bool
	kind        backend
	obj         dbus.BusObject
	onActivated func(routingID string)
	signals     chan *dbus.Signal
	done        chan struct{}

	// Fallback service ids, oldest first.
	fdoRouting map[uint32]string
	fdoOrder   []uint32

	// resolve is swapped in tests.
	resolve func(ctx context.Context) (dbus.BusObject, backend, error)
}

var _ port.NotificationTransport = (*NotificationTransport)(nil)

// NewNotificationTransport creates a transport on bus that logs to the logger
// of ctx. Nothing is sent on the bus until the first notification or
// activation subscription.
func NewNotificationTransport(ctx context.Context, bus *Bus) *NotificationTransport {
	t := &NotificationTransport{
		bus:        bus,
		logger:     *logging.FromContext(logging.WithComponent(ctx, "notification-transport")),
		fdoRouting: make(map[uint32]string),
	}
	t.resolve = t.resolveBackend
	return t
}

// Deliver implements port.NotificationTransport.
func (t *NotificationTransport) Deliver(
	ctx context.Context,
	routingID, title, body, icon string,
) (port.PlatformNotificationID, error) {
	obj, kind, err := t.backend(ctx)
	if err != nil {
		return "", err
	}

	switch kind {
	case backendPortal:
		call := obj.CallWithContext(ctx, notificationPortalIface+".AddNotification", 0,
			routingID, portalNotification(title, body, icon))
		if call.Err != nil {
			return "", fmt.Errorf("failed to add portal notification: %w", call.Err)
		}
		return port.PlatformNotificationID(routingID), nil

	case backendFreedesktop:
		var id uint32
		err := obj.CallWithContext(ctx, fdoNotificationsIface+".Notify", 0,
			appName, uint32(0), icon, title, body,
			[]string{defaultAction, "Open"},
			map[string]dbus.Variant{"desktop-entry": dbus.MakeVariant(appName)},
			int32(-1),
		).Store(&id)
		if err != nil {
			return "", fmt.Errorf("failed to send notification: %w", err)
		}
		t.trackFallback(id, routingID)
		return port.PlatformNotificationID(strconv.FormatUint(uint64(id), 10)), nil
	}
	return "", ErrNoNotificationService
}

// Withdraw implements port.NotificationTransport.
func (t *NotificationTransport) Withdraw(ctx context.Context, id port.PlatformNotificationID) error {
	if id == "" {
		return nil
	}
	obj, kind, err := t.backend(ctx)
	if err != nil {
		return err
	}

	switch kind {
	case backendPortal:
		if call := obj.CallWithContext(ctx, notificationPortalIface+".RemoveNotification", 0, string(id)); call.Err != nil {
			return fmt.Errorf("failed to remove portal notification: %w", call.Err)
		}
	case backendFreedesktop:
		n, err := strconv.ParseUint(string(id), 10, 32)
		if err != nil {
			return nil
		}
		t.forgetFallback(uint32(n))
		if call := obj.CallWithContext(ctx, fdoNotificationsIface+".CloseNotification", 0, uint32(n)); call.Err != nil {
			return fmt.Errorf("failed to close notification: %w", call.Err)
		}
	}
	return nil
}

// OnActivated implements port.NotificationTransport. The callback runs on the
// signal goroutine.
func (t *NotificationTransport) OnActivated(fn func(routingID string)) {
	t.mu.Lock()
	t.onActivated = fn
	t.mu.Unlock()

	// Subscribe now so clicks on notifications from a previous run still route.
	ctx := t.logger.WithContext(context.Background())
	if _, _, err := t.backend(ctx); err != nil {
		t.logger.Debug().Err(err).Msg("notification activation unavailable")
	}
}

// Close stops listening for activations. The bus stays open.
func (t *NotificationTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done == nil {
		return nil
	}
	close(t.done)
	t.done = nil

	if t.bus == nil {
		return nil
	}
	conn, err := t.bus.Conn(context.Background())
	if err != nil {
		return nil
	}
	conn.RemoveSignal(t.signals)
	return conn.RemoveMatchSignal(activationMatch(t.kind)...)
}

// backend resolves the notification service once and starts the activation
// listener.
func (t *NotificationTransport) backend(ctx context.Context) (dbus.BusObject, backend, error) {
	t.mu.Lock()
	if t.resolved {
		obj, kind := t.obj, t.kind
		t.mu.Unlock()
		if kind == backendNone {
			return nil, kind, ErrNoNotificationService
		}
		return obj, kind, nil
	}
	t.mu.Unlock()

	_, err, _ := t.group.Do("resolve", func() (any, error) {
		t.mu.Lock()
		resolved := t.resolved
		t.mu.Unlock()
		if resolved {
			return nil, nil
		}

		obj, kind, err := t.resolve(ctx)
		if err != nil {
			return nil, err
		}

		t.mu.Lock()
		t.resolved = true
		t.obj = obj
		t.kind = kind
		t.mu.Unlock()
		logging.FromContext(ctx).Debug().Stringer("backend", kind).Msg("notification service resolved")
		return nil, nil
	})
	if err != nil {
		return nil, backendNone, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.kind == backendNone {
		return nil, t.kind, ErrNoNotificationService
	}
	return t.obj, t.kind, nil
}

func (t *NotificationTransport) resolveBackend(ctx context.Context) (dbus.BusObject, backend, error) {
	conn, err := t.bus.Conn(ctx)
	if err != nil {
		return nil, backendNone, err
	}

	kind := backendNone
	obj := conn.Object(portalDest, portalPath)
	if _, err := portalVersion(ctx, obj, notificationPortalIface); err == nil {
		kind = backendPortal
	} else {
		obj = conn.Object(fdoNotificationsDest, fdoNotificationsPath)
		var name, vendor, version, spec string
		if err := obj.CallWithContext(ctx, fdoNotificationsIface+".GetServerInformation", 0).
			Store(&name, &vendor, &version, &spec); err == nil {
			kind = backendFreedesktop
		}
	}
	if kind == backendNone {
		return nil, kind, nil
	}

	if err := conn.AddMatchSignal(activationMatch(kind)...); err != nil {
		return nil, backendNone, fmt.Errorf("failed to subscribe to notification activations: %w", err)
	}
	signals := make(chan *dbus.Signal, 16)
	done := make(chan struct{})
	conn.Signal(signals)

	t.mu.Lock()
	t.signals = signals
	t.done = done
	t.mu.Unlock()

	go t.listen(kind, signals, done)
	return obj, kind, nil
}

func (t *NotificationTransport) listen(kind backend, signals <-chan *dbus.Signal, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case sig, ok := <-signals:
			if !ok {
				return
			}
			routingID, ok := t.routingFor(kind, sig)
			if !ok {
				continue
			}
			t.mu.Lock()
			fn := t.onActivated
			t.mu.Unlock()
			if fn != nil {
				fn(routingID)
			}
		}
	}
}

// routingFor maps an ActionInvoked signal to the routing id it carries.
func (t *NotificationTransport) routingFor(kind backend, sig *dbus.Signal) (string, bool) {
	switch kind {
	case backendPortal:
		return parsePortalActivation(sig)
	case backendFreedesktop:
		id, ok := parseFallbackActivation(sig)
		if !ok {
			return "", false
		}
		t.mu.Lock()
		defer t.mu.Unlock()
		routingID, ok := t.fdoRouting[id]
		return routingID, ok
	}
	return "", false
}

func (t *NotificationTransport) trackFallback(id uint32, routingID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.fdoRouting[id]; !ok {
		t.fdoOrder = append(t.fdoOrder, id)
	}
	t.fdoRouting[id] = routingID
	for len(t.fdoOrder) > fdoTrackCap {
		delete(t.fdoRouting, t.fdoOrder[0])
		t.fdoOrder = t.fdoOrder[1:]
	}
}

func (t *NotificationTransport) forgetFallback(id uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.fdoRouting[id]; !ok {
		return
	}
	delete(t.fdoRouting, id)
	for i, v := range t.fdoOrder {
		if v == id {
			t.fdoOrder = append(t.fdoOrder[:i], t.fdoOrder[i+1:]...)
			break
		}
	}
}

func portalNotification(title, body, icon string) map[string]dbus.Variant {
	n := map[string]dbus.Variant{
		"title":          dbus.MakeVariant(title),
		"body":           dbus.MakeVariant(body),
		"default-action": dbus.MakeVariant(defaultAction),
	}
	if icon != "" {
		n["icon"] = dbus.MakeVariant(themedIcon{Kind: "themed", Names: dbus.MakeVariant([]string{icon})})
	}
	return n
}

// themedIcon is the serialized GIcon form, (sv), the portal accepts.
type themedIcon struct {
	Kind  string
	Names dbus.Variant
}

func activationMatch(kind backend) []dbus.MatchOption {
	iface := notificationPortalIface
	if kind == backendFreedesktop {
		iface = fdoNotificationsIface
	}
	return []dbus.MatchOption{
		dbus.WithMatchInterface(iface),
		dbus.WithMatchMember("ActionInvoked"),
	}
}

// parsePortalActivation reads ActionInvoked(s app_id, s id, s action, av parameter).
func parsePortalActivation(sig *dbus.Signal) (string, bool) {
	if sig == nil || sig.Name != notificationPortalIface+".ActionInvoked" || len(sig.Body) < 3 {
		return "", false
	}
	id, ok := sig.Body[1].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// parseFallbackActivation reads ActionInvoked(u id, s action_key).
func parseFallbackActivation(sig *dbus.Signal) (uint32, bool) {
	if sig == nil || sig.Name != fdoNotificationsIface+".ActionInvoked" || len(sig.Body) < 2 {
		return 0, false
	}
	id, ok := sig.Body[0].(uint32)
	return id, ok
}
