package usecase

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

// DefaultNotificationCap bounds both the tracked platform ids and the
// remembered click handles.
const DefaultNotificationCap = 50

// Fallback notification content.
const (
	DefaultNotificationTitle = "WhatsApp"
	DefaultNotificationIcon  = "dialog-information-symbolic"
	emptyBodyText            = "New message"
	hiddenPreviewText        = "New message received"
	truncationSuffix         = "..."
)

// NotificationPolicy decides which notifications are shown and how much of
// the message they reveal.
type NotificationPolicy struct {
	Enabled             bool
	Messages            bool
	Preview             bool
	PreviewLimitEnabled bool
	PreviewLength       int
	DefaultTitle        string
	Icon                string
}

// DefaultNotificationPolicy shows every message with a 50 character preview limit available.
func DefaultNotificationPolicy() NotificationPolicy {
	return NotificationPolicy{
		Enabled:       true,
		Messages:      true,
		Preview:       true,
		PreviewLength: 50,
		DefaultTitle:  DefaultNotificationTitle,
		Icon:          DefaultNotificationIcon,
	}
}

type issuedNotification struct {
	routingID string
	id        port.PlatformNotificationID
}

// RouteNotificationsUseCase carries account identity through the
// notification round-trip. The account id is encoded inside the routing id,
// so clicks route correctly without any persisted side table.
type RouteNotificationsUseCase struct {
	policy NotificationPolicy
	cap    int

	issued []issuedNotification

	handles     map[string]port.NotificationHandle
	handleOrder []string

	lastStamp int64
	now       func() time.Time
}

// NewRouteNotificationsUseCase creates a router with the given bound.
func NewRouteNotificationsUseCase(policy NotificationPolicy, capacity int) *RouteNotificationsUseCase {
	if capacity <= 0 {
		capacity = DefaultNotificationCap
	}
	return &RouteNotificationsUseCase{
		policy:  policy,
		cap:     capacity,
		handles: make(map[string]port.NotificationHandle),
		now:     time.Now,
	}
}

// SetPolicy replaces the content policy.
func (uc *RouteNotificationsUseCase) SetPolicy(policy NotificationPolicy) {
	uc.policy = policy
}

// Policy returns the current content policy.
func (uc *RouteNotificationsUseCase) Policy() NotificationPolicy {
	return uc.policy
}

// SetClock overrides the time source of generated tags.
func (uc *RouteNotificationsUseCase) SetClock(now func() time.Time) {
	if now != nil {
		uc.now = now
	}
}

// MakeRoutingID returns "{account}:{tag}", generating a tag when the source
// notification carried none.
func (uc *RouteNotificationsUseCase) MakeRoutingID(accountID, tag string) string {
	if tag == "" {
		tag = uc.nextTag()
	}
	return entity.MakeRoutingID(accountID, tag)
}

// nextTag returns msg-<unix millis>, bumped so two calls never collide.
func (uc *RouteNotificationsUseCase) nextTag() string {
	stamp := uc.now().UnixMilli()
	if stamp <= uc.lastStamp {
		stamp = uc.lastStamp + 1
	}
	uc.lastStamp = stamp
	return fmt.Sprintf("msg-%d", stamp)
}

// Decode splits a routing id back into account and tag.
func (uc *RouteNotificationsUseCase) Decode(routingID string) (accountID, tag string) {
	return entity.DecodeRoutingID(routingID)
}

// Prepare applies the content policy to a raised notification. It returns
// false when the policy suppresses it.
func (uc *RouteNotificationsUseCase) Prepare(accountID string, raised port.RaisedNotification) (entity.Notification, bool) {
	p := uc.policy
	if !p.Enabled || !p.Messages {
		return entity.Notification{}, false
	}

	title := raised.Title
	if title == "" {
		title = p.DefaultTitle
	}
	if title == "" {
		title = DefaultNotificationTitle
	}

	body := raised.Body
	switch {
	case !p.Preview:
		body = hiddenPreviewText
	case body == "":
		body = emptyBodyText
	case p.PreviewLimitEnabled && p.PreviewLength > 0 && utf8.RuneCountInString(body) > p.PreviewLength:
		body = string([]rune(body)[:p.PreviewLength]) + truncationSuffix
	}

	icon := raised.Icon
	if icon == "" {
		icon = p.Icon
	}

	routingID := uc.MakeRoutingID(accountID, raised.Tag)
	_, tag := entity.DecodeRoutingID(routingID)
	return entity.Notification{
		RoutingID: routingID,
		AccountID: accountID,
		Tag:       tag,
		Title:     title,
		Body:      body,
		Icon:      icon,
	}, true
}

// TrackIssued records a delivered platform id for the next withdrawal sweep.
// A routing id delivered again replaces its earlier entry.
func (uc *RouteNotificationsUseCase) TrackIssued(routingID string, id port.PlatformNotificationID) {
	uc.dropIssued(routingID)
	uc.issued = append(uc.issued, issuedNotification{routingID: routingID, id: id})
	if over := len(uc.issued) - uc.cap; over > 0 {
		uc.issued = append(uc.issued[:0], uc.issued[over:]...)
	}
}

// IssuedFor returns the platform id currently shown for a routing id.
func (uc *RouteNotificationsUseCase) IssuedFor(routingID string) (port.PlatformNotificationID, bool) {
	for i := len(uc.issued) - 1; i >= 0; i-- {
		if uc.issued[i].routingID == routingID {
			return uc.issued[i].id, true
		}
	}
	return "", false
}

// WithdrawAll drains the tracked ids. The caller performs the transport-level
// withdrawal.
func (uc *RouteNotificationsUseCase) WithdrawAll() []port.PlatformNotificationID {
	if len(uc.issued) == 0 {
		return nil
	}
	drained := make([]port.PlatformNotificationID, len(uc.issued))
	for i, n := range uc.issued {
		drained[i] = n.id
	}
	uc.issued = nil
	return drained
}

// Remember keeps the click handle of a routing id. A repeated routing id
// replaces the earlier handle.
func (uc *RouteNotificationsUseCase) Remember(ctx context.Context, routingID string, handle port.NotificationHandle) {
	if handle == nil {
		return
	}
	if _, exists := uc.handles[routingID]; exists {
		logging.FromContext(ctx).Debug().Str("routing_id", routingID).Msg("notification replaced")
		uc.dropOrder(routingID)
	}
	uc.handles[routingID] = handle
	uc.handleOrder = append(uc.handleOrder, routingID)

	for len(uc.handleOrder) > uc.cap {
		oldest := uc.handleOrder[0]
		uc.handleOrder = uc.handleOrder[1:]
		delete(uc.handles, oldest)
	}
}

// OnClick decodes the target of a clicked notification and hands back the
// handle to replay, if it is still remembered. The handle is consumed.
func (uc *RouteNotificationsUseCase) OnClick(routingID string) (accountID, tag string, handle port.NotificationHandle) {
	accountID, tag = entity.DecodeRoutingID(routingID)
	if h, ok := uc.handles[routingID]; ok {
		handle = h
		delete(uc.handles, routingID)
		uc.dropOrder(routingID)
	}
	return accountID, tag, handle
}

// Forget drops every remembered handle of an account.
func (uc *RouteNotificationsUseCase) Forget(accountID string) {
	kept := uc.handleOrder[:0]
	for _, id := range uc.handleOrder {
		if owner, _ := entity.DecodeRoutingID(id); owner == accountID {
			delete(uc.handles, id)
			continue
		}
		kept = append(kept, id)
	}
	uc.handleOrder = kept
}

// Pending returns how many platform ids await withdrawal.
func (uc *RouteNotificationsUseCase) Pending() int {
	return len(uc.issued)
}

func (uc *RouteNotificationsUseCase) dropIssued(routingID string) {
	kept := uc.issued[:0]
	for _, n := range uc.issued {
		if n.routingID != routingID {
			kept = append(kept, n)
		}
	}
	uc.issued = kept
}

func (uc *RouteNotificationsUseCase) dropOrder(routingID string) {
	for i, id := range uc.handleOrder {
		if id == routingID {
			uc.handleOrder = append(uc.handleOrder[:i], uc.handleOrder[i+1:]...)
			return
		}
	}
}
