package portal

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
	"golang.org/x/sync/singleflight"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/logging"
)

const cameraPortalIface = "org.freedesktop.portal.Camera"

// CameraPortal gates camera access through org.freedesktop.portal.Camera.
// Concurrent requests share one portal dialog.
type CameraPortal struct {
	bus   *Bus
	group singleflight.Group
}

var _ port.CameraAccessRequester = (*CameraPortal)(nil)

// NewCameraPortal creates a camera requester on bus.
func NewCameraPortal(bus *Bus) *CameraPortal {
	return &CameraPortal{bus: bus}
}

// RequestCameraAccess implements port.CameraAccessRequester. Without a
// session bus or camera portal there is no OS gate and access is granted.
func (c *CameraPortal) RequestCameraAccess(ctx context.Context) (bool, error) {
	result := c.group.DoChan("access", func() (any, error) {
		return c.access(ctx)
	})
	select {
	case r := <-result:
		if r.Err != nil {
			return false, r.Err
		}
		return r.Val.(bool), nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (c *CameraPortal) access(ctx context.Context) (bool, error) {
	log := logging.FromContext(logging.WithComponent(ctx, "camera-portal"))

	conn, err := c.bus.Conn(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("no session bus, camera not gated")
		return true, nil
	}
	obj := conn.Object(portalDest, portalPath)

	if _, err := portalVersion(ctx, obj, cameraPortalIface); err != nil {
		log.Debug().Err(err).Msg("camera portal not available, camera not gated")
		return true, nil
	}

	var present bool
	if err := obj.CallWithContext(ctx, propertiesGet, 0, cameraPortalIface, "IsCameraPresent").Store(&present); err == nil && !present {
		log.Info().Msg("no camera present")
		return false, nil
	}

	names := conn.Names()
	if len(names) == 0 {
		return false, fmt.Errorf("session bus connection has no unique name")
	}
	token := fmt.Sprintf("chatshell_camera_%d", c.bus.nextToken())
	expected := requestPath(names[0], token)

	// Subscribe before calling so a fast Response is not missed.
	match := []dbus.MatchOption{
		dbus.WithMatchObjectPath(expected),
		dbus.WithMatchInterface(requestIface),
		dbus.WithMatchMember("Response"),
	}
	if err := conn.AddMatchSignal(match...); err != nil {
		return false, fmt.Errorf("failed to subscribe to camera request: %w", err)
	}
	defer func() { _ = conn.RemoveMatchSignal(match...) }()

	signals := make(chan *dbus.Signal, 4)
	conn.Signal(signals)
	defer conn.RemoveSignal(signals)

	var handle dbus.ObjectPath
	options := map[string]dbus.Variant{"handle_token": dbus.MakeVariant(token)}
	if err := obj.CallWithContext(ctx, cameraPortalIface+".AccessCamera", 0, options).Store(&handle); err != nil {
		return false, fmt.Errorf("failed to request camera access: %w", err)
	}

	for {
		select {
		case sig := <-signals:
			if sig.Path != handle && sig.Path != expected {
				continue
			}
			code, ok := responseCode(sig)
			if !ok {
				continue
			}
			log.Debug().Uint32("response", code).Msg("camera access answered")
			return code == 0, nil
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
