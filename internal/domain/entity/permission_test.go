package entity_test

import (
	"testing"

	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionKind_Constants(t *testing.T) {
	tests := []struct {
		kind     entity.PermissionKind
		expected string
	}{
		{entity.PermissionNotification, "notification"},
		{entity.PermissionMicrophone, "microphone"},
		{entity.PermissionCamera, "camera"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.kind))
			parsed, err := entity.ParsePermissionKind(tt.expected)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, parsed)
		})
	}

	_, err := entity.ParsePermissionKind("geolocation")
	assert.Error(t, err)
}

func TestPermissionRecord_State(t *testing.T) {
	tests := []struct {
		name     string
		record   entity.PermissionRecord
		expected entity.PermissionState
	}{
		{"never asked", entity.PermissionRecord{}, entity.PermissionUnknown},
		{"granted flag without asked stays unknown", entity.PermissionRecord{Granted: true}, entity.PermissionUnknown},
		{"granted", entity.PermissionRecord{Asked: true, Granted: true}, entity.PermissionGranted},
		{"denied", entity.PermissionRecord{Asked: true}, entity.PermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.State())
		})
	}
}

func TestPermissionState_String(t *testing.T) {
	assert.Equal(t, "unknown", entity.PermissionUnknown.String())
	assert.Equal(t, "granted", entity.PermissionGranted.String())
	assert.Equal(t, "denied", entity.PermissionDenied.String())
}

func TestPermissionKindsToStrings(t *testing.T) {
	kinds := []entity.PermissionKind{entity.PermissionCamera, entity.PermissionMicrophone}
	assert.Equal(t, []string{"camera", "microphone"}, entity.PermissionKindsToStrings(kinds))
}
