// Package portal talks to the XDG desktop portal and the freedesktop
// notification service over the D-Bus session bus.
package portal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/godbus/dbus/v5"
	"golang.org/x/sync/singleflight"
)

const (
	portalDest    = "org.freedesktop.portal.Desktop"
	portalPath    = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	requestIface  = "org.freedesktop.portal.Request"
	propertiesGet = "org.freedesktop.DBus.Properties.Get"
)

// ErrBusClosed is returned after Close.
var ErrBusClosed = errors.New("session bus closed")

// Bus is a session bus connection shared by the portal adapters. It connects
// on first use; concurrent first uses share one dial and a failed dial is
// remembered so callers degrade without retrying on every notification.
type Bus struct {
	dial   func() (*dbus.Conn, error)
	group  singleflight.Group
	tokens atomic.Uint64

	mu      sync.Mutex
	conn    *dbus.Conn
	dialErr error
	closed  bool
}

// NewSessionBus returns a Bus on the user's session bus.
func NewSessionBus() *Bus {
	return NewBus(func() (*dbus.Conn, error) { return dbus.ConnectSessionBus() })
}

// NewBus returns a Bus that connects with dial.
func NewBus(dial func() (*dbus.Conn, error)) *Bus {
	return &Bus{dial: dial}
}

// Conn returns the shared connection, dialing it on first use.
func (b *Bus) Conn(ctx context.Context) (*dbus.Conn, error) {
	b.mu.Lock()
	switch {
	case b.closed:
		b.mu.Unlock()
		return nil, ErrBusClosed
	case b.conn != nil:
		conn := b.conn
		b.mu.Unlock()
		return conn, nil
	case b.dialErr != nil:
		err := b.dialErr
		b.mu.Unlock()
		return nil, err
	}
	b.mu.Unlock()

	result := b.group.DoChan("dial", func() (any, error) {
		conn, err := b.dial()

		b.mu.Lock()
		defer b.mu.Unlock()
		if err != nil {
			b.dialErr = fmt.Errorf("failed to connect to session bus: %w", err)
			return nil, b.dialErr
		}
		if b.closed {
			_ = conn.Close()
			return nil, ErrBusClosed
		}
		b.conn = conn
		return conn, nil
	})

	select {
	case r := <-result:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*dbus.Conn), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close closes the connection. The Bus cannot be used afterwards.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	if b.conn == nil {
		return nil
	}
	err := b.conn.Close()
	b.conn = nil
	return err
}

// nextToken returns a handle_token suffix unique on this connection.
func (b *Bus) nextToken() uint64 {
	return b.tokens.Add(1)
}

// portalVersion reads the version property of a portal interface. An error
// means the interface is not implemented by the running portal.
func portalVersion(ctx context.Context, obj dbus.BusObject, iface string) (uint32, error) {
	var version uint32
	if err := obj.CallWithContext(ctx, propertiesGet, 0, iface, "version").Store(&version); err != nil {
		return 0, err
	}
	return version, nil
}

// requestPath predicts the object path of a portal request so the Response
// signal can be subscribed to before the call is made.
func requestPath(uniqueName, token string) dbus.ObjectPath {
	sender := strings.ReplaceAll(strings.TrimPrefix(uniqueName, ":"), ".", "_")
	return dbus.ObjectPath(string(portalPath) + "/request/" + sender + "/" + token)
}

// responseCode extracts the response of an org.freedesktop.portal.Request
// Response signal: 0 success, 1 cancelled by the user, 2 other.
func responseCode(sig *dbus.Signal) (uint32, bool) {
	if sig == nil || sig.Name != requestIface+".Response" || len(sig.Body) == 0 {
		return 0, false
	}
	code, ok := sig.Body[0].(uint32)
	return code, ok
}
