package entity_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultAccount(t *testing.T) {
	acc := entity.NewDefaultAccount(1700000000)

	assert.Equal(t, entity.DefaultAccountID, acc.ID)
	assert.Equal(t, entity.DefaultAccountName, acc.Name)
	assert.Equal(t, entity.DefaultColor, acc.Color)
	assert.Equal(t, entity.DefaultEmoji, acc.Emoji)
	assert.Equal(t, entity.ZoomDefault, acc.ZoomLevel)
	assert.True(t, acc.IsActive)
	assert.True(t, acc.IsDefault())
}

func TestAccount_UnmarshalOlderRecordFillsDefaults(t *testing.T) {
	// Written before color, emoji, order and zoom existed.
	raw := `[{"id":"default","name":"","profile_picture":null,"created_at":1700000000,"is_active":true,"has_session":true},
	         {"id":"work","name":"Work","profile_picture":null,"created_at":1700000100}]`

	var accounts []entity.Account
	require.NoError(t, json.Unmarshal([]byte(raw), &accounts))
	for i := range accounts {
		accounts[i].ApplyDefaults()
	}

	require.Len(t, accounts, 2)
	assert.Equal(t, entity.DefaultAccountName, accounts[0].Name)
	assert.Equal(t, entity.DefaultColor, accounts[1].Color)
	assert.Equal(t, entity.DefaultEmoji, accounts[1].Emoji)
	assert.Equal(t, entity.ZoomDefault, accounts[1].ZoomLevel)
	assert.Equal(t, 0, accounts[1].Order)
	assert.True(t, accounts[0].HasSession)
}

func TestAccount_Permission(t *testing.T) {
	acc := entity.NewAccount("work", "Work", entity.DefaultColor, entity.DefaultEmoji, 1)

	for _, kind := range entity.AllPermissionKinds {
		assert.Equal(t, entity.PermissionUnknown, acc.Permission(kind).State(), kind)
	}

	require.NoError(t, acc.SetPermission(entity.PermissionCamera, entity.PermissionRecord{Asked: true, Granted: true}))
	require.NoError(t, acc.SetPermission(entity.PermissionNotification, entity.PermissionRecord{Asked: true}))

	assert.True(t, acc.CameraPermissionAsked)
	assert.True(t, acc.CameraPermissionGranted)
	assert.Equal(t, entity.PermissionGranted, acc.Permission(entity.PermissionCamera).State())
	assert.Equal(t, entity.PermissionDenied, acc.Permission(entity.PermissionNotification).State())
	assert.Equal(t, entity.PermissionUnknown, acc.Permission(entity.PermissionMicrophone).State())

	assert.Error(t, acc.SetPermission("geolocation", entity.PermissionRecord{Asked: true}))
}

func TestValidateAccountID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"default", true},
		{"3f1c2a7e-0b7d-4a55-9b1e-5a2c9f1d8e00", true},
		{"work", true},
		{"", false},
		{"   ", false},
		{".", false},
		{"..", false},
		{"a:b", false},
		{"a/b", false},
		{`a\b`, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := entity.ValidateAccountID(tt.id)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, entity.ErrInvalidAccountID))
		})
	}
}

func TestValidateColor(t *testing.T) {
	assert.NoError(t, entity.ValidateColor("#3584e4"))
	assert.NoError(t, entity.ValidateColor("#A51D2D"))
	assert.ErrorIs(t, entity.ValidateColor("3584e4"), entity.ErrInvalidColor)
	assert.ErrorIs(t, entity.ValidateColor("#35e4"), entity.ErrInvalidColor)
	assert.ErrorIs(t, entity.ValidateColor("#zzzzzz"), entity.ErrInvalidColor)
}

func TestSortAccounts_DefaultPinnedFirst(t *testing.T) {
	accounts := []entity.Account{
		{ID: "b", Order: 2},
		{ID: entity.DefaultAccountID, Order: 99},
		{ID: "a", Order: 1},
		{ID: "c", Order: 1, CreatedAt: 5},
	}

	entity.SortAccounts(accounts)

	ids := make([]string, len(accounts))
	for i, a := range accounts {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{entity.DefaultAccountID, "a", "c", "b"}, ids)
}

func TestParseDirection(t *testing.T) {
	d, err := entity.ParseDirection("UP")
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionUp, d)

	d, err = entity.ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionDown, d)
	assert.Equal(t, "down", d.String())

	_, err = entity.ParseDirection("left")
	assert.Error(t, err)
}
