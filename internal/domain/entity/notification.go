package entity

import "strings"

// RoutingSeparator splits the account id from the tag inside a routing id.
// Account ids never contain it.
const RoutingSeparator = ":"

// MakeRoutingID encodes the owning account into a notification id.
func MakeRoutingID(accountID, tag string) string {
	return accountID + RoutingSeparator + tag
}

// DecodeRoutingID splits on the first separator. Ids without one are
// legacy or malformed and are attributed to the default account.
func DecodeRoutingID(routingID string) (accountID, tag string) {
	accountID, tag, found := strings.Cut(routingID, RoutingSeparator)
	if !found {
		return DefaultAccountID, routingID
	}
	return accountID, tag
}

// Notification is the content and routing identity of one outgoing notification.
type Notification struct {
	RoutingID string
	AccountID string
	Tag       string
	Title     string
	Body      string
	Icon      string
}
