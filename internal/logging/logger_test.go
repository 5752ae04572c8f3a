package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/chatshell/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, logging.ParseLevel(tt.in))
		})
	}
}

func TestContextHelpers_AddFields(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	ctx := logging.WithContext(context.Background(), logging.New(cfg))
	ctx = logging.WithComponent(ctx, "session-pool")
	ctx = logging.WithAccountID(ctx, "work")

	logging.FromContext(ctx).Info().Msg("created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "session-pool", line["component"])
	assert.Equal(t, "work", line["account_id"])
	assert.Equal(t, "created", line["message"])
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	logger := logging.FromContext(context.Background())
	require.NotNil(t, logger)
	logger.Info().Msg("dropped")
}

func TestNewWithFile_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Output = &console

	logger, closer, err := logging.NewWithFile(cfg, logging.FileConfig{Dir: dir, MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)

	logger.Info().Str("account_id", "default").Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, logging.LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"account_id":"default"`)
	assert.True(t, strings.Contains(console.String(), "hello"))
}

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := logging.NewLogRotator(logging.RotatorConfig{Dir: dir, MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)
	defer r.Close()

	chunk := bytes.Repeat([]byte("x"), 700*1024)
	for i := 0; i < 4; i++ {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var archives int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), logging.LogFileName+".") {
			archives++
		}
	}
	assert.Equal(t, 1, archives)
}
