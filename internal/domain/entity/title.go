package entity

import (
	"strconv"
	"strings"
)

// ParseUnreadCount reads the "(N) ..." prefix the service puts in the page
// title. Any other format means no unread messages.
func ParseUnreadCount(title string) int {
	title = strings.TrimSpace(title)
	if !strings.HasPrefix(title, "(") {
		return 0
	}
	end := strings.IndexByte(title, ')')
	if end < 2 {
		return 0
	}
	n, err := strconv.Atoi(title[1:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
