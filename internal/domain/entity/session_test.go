package entity_test

import (
	"testing"

	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestSession_Validate(t *testing.T) {
	dirs := entity.StorageDirs{Data: "/tmp/data", Cache: "/tmp/cache"}

	assert.NoError(t, (&entity.Session{AccountID: "work", Dirs: dirs}).Validate())
	assert.ErrorIs(t, (&entity.Session{Dirs: dirs}).Validate(), entity.ErrInvalidSession)
	assert.ErrorIs(t, (&entity.Session{AccountID: "work"}).Validate(), entity.ErrInvalidStorageDirs)

	var nilSession *entity.Session
	assert.ErrorIs(t, nilSession.Validate(), entity.ErrInvalidSession)
	assert.False(t, nilSession.IsForeground())
}

func TestRoutingID_RoundTrip(t *testing.T) {
	tests := []struct {
		account string
		tag     string
	}{
		{"work", "msg-1730000000000"},
		{"default", "chat:123@c.us"},
		{"a", ""},
	}

	for _, tt := range tests {
		t.Run(tt.account+"/"+tt.tag, func(t *testing.T) {
			id := entity.MakeRoutingID(tt.account, tt.tag)
			account, tag := entity.DecodeRoutingID(id)
			assert.Equal(t, tt.account, account)
			assert.Equal(t, tt.tag, tag)
		})
	}
}

func TestDecodeRoutingID_LegacyFallsBackToDefault(t *testing.T) {
	account, tag := entity.DecodeRoutingID("msg-42")
	assert.Equal(t, entity.DefaultAccountID, account)
	assert.Equal(t, "msg-42", tag)
}

func TestParseUnreadCount(t *testing.T) {
	tests := []struct {
		title    string
		expected int
	}{
		{"(3) WhatsApp", 3},
		{"  (12) WhatsApp", 12},
		{"WhatsApp", 0},
		{"() WhatsApp", 0},
		{"(x) WhatsApp", 0},
		{"WhatsApp (3)", 0},
		{"(0) WhatsApp", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, entity.ParseUnreadCount(tt.title))
		})
	}
}

func TestClampZoom(t *testing.T) {
	assert.Equal(t, entity.ZoomMin, entity.ClampZoom(0.1, 0))
	assert.Equal(t, entity.ZoomMax, entity.ClampZoom(9, 0))
	assert.Equal(t, 1.5, entity.ClampZoom(1.5, 0))
	assert.Equal(t, 1.2, entity.ClampZoom(0.9, 1.2))
	assert.Equal(t, 1.3, entity.ClampZoom(1.3, 1.2))
	assert.Equal(t, 1.2, entity.ClampZoom(1.1+0.1, 0))
	assert.Equal(t, 150, entity.ZoomPercentage(1.5))
}
