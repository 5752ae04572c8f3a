package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatshell/internal/domain/build"
	"github.com/bnema/chatshell/internal/domain/entity"
)

func isolateXDG(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
}

// execute runs the root command with fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	accountsJSON, accountsYes, accountActivate = false, false, false
	accountName, accountColor, accountEmoji = "", "", ""
	configSchemaOut = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func listAccounts(t *testing.T) []entity.Account {
	t.Helper()
	out, err := execute(t, "accounts", "list", "--json")
	require.NoError(t, err)
	var accounts []entity.Account
	require.NoError(t, json.Unmarshal([]byte(out), &accounts))
	return accounts
}

func TestAccounts_ListCreatesDefault(t *testing.T) {
	isolateXDG(t)

	accounts := listAccounts(t)
	require.Len(t, accounts, 1)
	assert.Equal(t, entity.DefaultAccountID, accounts[0].ID)
	assert.True(t, accounts[0].IsActive)
}

func TestAccounts_AddRenameReorderRemove(t *testing.T) {
	isolateXDG(t)

	_, err := execute(t, "accounts", "add", "--name", "Work", "--color", "#112233")
	require.NoError(t, err)
	_, err = execute(t, "accounts", "add", "--activate")
	require.NoError(t, err)

	accounts := listAccounts(t)
	require.Len(t, accounts, 3)
	work, second := accounts[1], accounts[2]
	assert.Equal(t, "Work", work.Name)
	assert.Equal(t, "#112233", work.Color)
	assert.Equal(t, "Account 3", second.Name)
	assert.True(t, second.IsActive)

	_, err = execute(t, "accounts", "rename", work.ID, "Office", "--emoji", "💼")
	require.NoError(t, err)
	_, err = execute(t, "accounts", "reorder", second.ID, "up")
	require.NoError(t, err)

	accounts = listAccounts(t)
	assert.Equal(t, second.ID, accounts[1].ID)
	assert.Equal(t, "Office", accounts[2].Name)
	assert.Equal(t, "💼", accounts[2].Emoji)

	_, err = execute(t, "accounts", "remove", work.ID, "-y")
	require.NoError(t, err)
	assert.Len(t, listAccounts(t), 2)
}

func TestAccounts_DefaultIsProtected(t *testing.T) {
	isolateXDG(t)

	_, err := execute(t, "accounts", "remove", entity.DefaultAccountID, "-y")
	require.ErrorIs(t, err, entity.ErrProtectedAccount)

	_, err = execute(t, "accounts", "reorder", entity.DefaultAccountID, "down")
	require.ErrorIs(t, err, entity.ErrProtectedAccount)
	assert.Len(t, listAccounts(t), 1)
}

func TestAccounts_RejectsBadInput(t *testing.T) {
	isolateXDG(t)

	_, err := execute(t, "accounts", "add", "--color", "blue")
	require.ErrorIs(t, err, entity.ErrInvalidColor)

	_, err = execute(t, "accounts", "reorder", entity.DefaultAccountID, "sideways")
	require.Error(t, err)

	_, err = execute(t, "accounts", "activate", "missing")
	require.ErrorIs(t, err, entity.ErrAccountNotFound)
}

func TestConfig_SchemaAndShow(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "accessibility")

	out, err = execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[service]")

	out, err = execute(t, "accounts", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "zoom_level")
}

func TestVersion(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.2.3", GoVersion: "go1.25.3"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "chatshell 1.2.3 (go1.25.3)")
}
