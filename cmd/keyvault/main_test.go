package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-vault/internal/app"
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/models"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	c := newCLI(models.NewAppBuildInfo("1.2.0", "2026-10-19", "abc123"))

	var out, errOut bytes.Buffer
	c.root.SetOut(&out)
	c.root.SetErr(&errOut)
	c.root.SetIn(strings.NewReader(stdin))
	c.root.SetArgs(args)

	err := c.execute(context.Background())
	return out.String(), err
}

func fileVault(t *testing.T) []string {
	t.Helper()
	return []string{"--backend", "file", "--file", filepath.Join(t.TempDir(), "vault.json")}
}

func withArgs(base []string, args ...string) []string {
	return append(append([]string{}, base...), args...)
}

// rows splits tabular output into whitespace separated fields per line.
func rows(out string) [][]string {
	var result [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		result = append(result, strings.Fields(line))
	}
	return result
}

func TestVersion_DoesNotOpenVault(t *testing.T) {
	out, err := execute(t, "", "--backend", "s3", "version")
	require.NoError(t, err)

	assert.Contains(t, out, "Build version: 1.2.0")
	assert.Contains(t, out, "Build date: 2026-10-19")
	assert.Contains(t, out, "Build commit: abc123")
}

func TestInvalidConfig(t *testing.T) {
	_, err := execute(t, "", "--backend", "s3", "accounts")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidStorageConfigs)
}

func TestSaveAndList(t *testing.T) {
	vault := fileVault(t)

	out, err := execute(t, "cat\ndog\n", withArgs(vault, "save", "github")...)
	require.NoError(t, err)
	assert.Equal(t, app.MsgSaved+"\n", out)

	out, err = execute(t, "dog\n", withArgs(vault, "list")...)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "github", "cat"}}, rows(out))
}

func TestSave_PasswordArgument(t *testing.T) {
	vault := fileVault(t)

	_, err := execute(t, "dog\n", withArgs(vault, "save", "mail", "Secret")...)
	require.NoError(t, err)

	out, err := execute(t, "dog\n", withArgs(vault, "list")...)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "mail", "secret"}}, rows(out))
}

func TestSave_Generated(t *testing.T) {
	vault := fileVault(t)

	out, err := execute(t, "dog\n", withArgs(vault, "--password-length", "16", "save", "bank", "--generate")...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	password := strings.TrimPrefix(lines[0], "password: ")
	assert.Equal(t, 16, utf8.RuneCountInString(password))
	assert.Equal(t, app.MsgSaved, lines[1])

	out, err = execute(t, "dog\n", withArgs(vault, "list")...)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "bank", password}}, rows(out))
}

func TestSave_InvalidInput(t *testing.T) {
	vault := fileVault(t)

	_, err := execute(t, "dog\n", withArgs(vault, "save", "github", "")...)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.True(t, strings.HasPrefix(err.Error(), app.MsgInvalidInput))

	out, err := execute(t, "", withArgs(vault, "accounts")...)
	require.NoError(t, err)
	assert.Equal(t, app.MsgEmptyVault+"\n", out)
}

func TestSave_NoInput(t *testing.T) {
	_, err := execute(t, "", withArgs(fileVault(t), "save", "github")...)
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestList_WrongKeyYieldsOtherText(t *testing.T) {
	vault := fileVault(t)

	_, err := execute(t, "dog\n", withArgs(vault, "save", "github", "cat")...)
	require.NoError(t, err)

	out, err := execute(t, "cow\n", withArgs(vault, "list")...)
	require.NoError(t, err)

	got := rows(out)
	require.Len(t, got, 1)
	assert.Equal(t, "github", got[0][1])
	assert.NotEqual(t, "cat", got[0][2])
}

func TestList_Empty(t *testing.T) {
	out, err := execute(t, "dog\n", withArgs(fileVault(t), "list")...)
	require.NoError(t, err)
	assert.Equal(t, app.MsgEmptyVault+"\n", out)
}

func TestAccountsAndDelete(t *testing.T) {
	vault := fileVault(t)

	for _, account := range []string{"a", "b", "c"} {
		_, err := execute(t, "dog\n", withArgs(vault, "save", account, "x")...)
		require.NoError(t, err)
	}

	out, err := execute(t, "", withArgs(vault, "delete", "1")...)
	require.NoError(t, err)
	assert.Equal(t, app.MsgDeleted+"\n", out)

	out, err = execute(t, "", withArgs(vault, "accounts")...)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "a"}, {"1", "c"}}, rows(out))
}

func TestDelete_Errors(t *testing.T) {
	vault := fileVault(t)

	_, err := execute(t, "", withArgs(vault, "delete", "5")...)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrOutOfRange)
	assert.True(t, strings.HasPrefix(err.Error(), app.MsgOutOfRange))

	_, err = execute(t, "", withArgs(vault, "delete", "first")...)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "", withArgs(fileVault(t), "generate", "--length", "20")...)
	require.NoError(t, err)

	password := strings.TrimSuffix(out, "\n")
	assert.Equal(t, 20, utf8.RuneCountInString(password))
	assert.NotContains(t, password, "\u3164")
}

func TestGenerate_InvalidLength(t *testing.T) {
	_, err := execute(t, "", withArgs(fileVault(t), "generate", "--length", "100000")...)
	assert.ErrorIs(t, err, service.ErrInvalidPasswordLength)
}

func TestGenerate_Copy(t *testing.T) {
	original := writeClipboard
	t.Cleanup(func() { writeClipboard = original })

	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	out, err := execute(t, "", withArgs(fileVault(t), "generate", "--copy")...)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, config.DefaultPasswordLength, utf8.RuneCountInString(copied))

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	_, err = execute(t, "", withArgs(fileVault(t), "generate", "--copy")...)
	assert.ErrorContains(t, err, "no clipboard")
}

func TestWipe(t *testing.T) {
	vault := fileVault(t)

	_, err := execute(t, "dog\n", withArgs(vault, "save", "github", "cat")...)
	require.NoError(t, err)

	out, err := execute(t, "n\n", withArgs(vault, "wipe")...)
	require.NoError(t, err)
	assert.Equal(t, app.MsgWipeAborted+"\n", out)

	out, err = execute(t, "", withArgs(vault, "accounts")...)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "github"}}, rows(out))

	out, err = execute(t, "yes\n", withArgs(vault, "wipe")...)
	require.NoError(t, err)
	assert.Equal(t, app.MsgWiped+"\n", out)

	out, err = execute(t, "", withArgs(vault, "accounts")...)
	require.NoError(t, err)
	assert.Equal(t, app.MsgEmptyVault+"\n", out)
}

func TestWipe_Yes(t *testing.T) {
	vault := fileVault(t)

	_, err := execute(t, "dog\n", withArgs(vault, "save", "github", "cat")...)
	require.NoError(t, err)

	out, err := execute(t, "", withArgs(vault, "wipe", "-y")...)
	require.NoError(t, err)
	assert.Equal(t, app.MsgWiped+"\n", out)
}

func TestImportLegacy(t *testing.T) {
	vault := fileVault(t)

	legacy := filepath.Join(t.TempDir(), "legacy.json")
	require.NoError(t, os.WriteFile(legacy, []byte("{\"github\":\"gp\u3164\"}"), 0o600))

	out, err := execute(t, "", withArgs(vault, "import-legacy", legacy)...)
	require.NoError(t, err)
	assert.Equal(t, app.MsgImported+": 1\n", out)

	out, err = execute(t, "{\"bank\":\"gpa\"}", withArgs(vault, "import-legacy", "-")...)
	require.NoError(t, err)
	assert.Equal(t, app.MsgImported+": 1\n", out)

	out, err = execute(t, "dog\n", withArgs(vault, "list")...)
	require.NoError(t, err)

	got := rows(out)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"0", "github", "cat"}, got[0])
	assert.Equal(t, "bank", got[1][1])
}

func TestImportLegacy_Errors(t *testing.T) {
	vault := fileVault(t)

	_, err := execute(t, "", withArgs(vault, "import-legacy", filepath.Join(t.TempDir(), "missing.json"))...)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "[1, 2]", withArgs(vault, "import-legacy", "-")...)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrCorruptVault)
	assert.True(t, strings.HasPrefix(err.Error(), app.MsgCorruptVault))
}

func TestCorruptVault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, os.WriteFile(path, []byte("not a vault"), 0o600))

	_, err := execute(t, "", "--backend", "file", "--file", path, "accounts")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrCorruptVault)
	assert.True(t, strings.HasPrefix(err.Error(), app.MsgCorruptVault))
}

func TestLegacyVaultFileIsLeftUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	legacy := []byte(`{"mail": "gpa"}`)
	require.NoError(t, os.WriteFile(path, legacy, 0o600))

	_, err := execute(t, "dog\n", "--backend", "file", "--file", path, "save", "github", "cat")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotVault)
	assert.True(t, strings.HasPrefix(err.Error(), app.MsgNotVault))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, legacy, got)
}

func TestMigrate(t *testing.T) {
	vault := fileVault(t)
	dir := t.TempDir()

	_, err := execute(t, "dog\n", withArgs(vault, "save", "github", "cat")...)
	require.NoError(t, err)

	out, err := execute(t, "", withArgs(vault, "migrate", "--to-backend", "leveldb", "--to-leveldb-dir", dir)...)
	require.NoError(t, err)
	assert.Equal(t, app.MsgMigrated+"\n", out)

	out, err = execute(t, "dog\n", "--backend", "leveldb", "--leveldb-dir", dir, "list")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "github", "cat"}}, rows(out))
}

func TestMigrate_InvalidTarget(t *testing.T) {
	_, err := execute(t, "", withArgs(fileVault(t), "migrate", "--to-backend", "sqlite")...)
	assert.ErrorIs(t, err, config.ErrInvalidStorageConfigs)
}

func TestMigrationTarget(t *testing.T) {
	src := config.Storage{
		Backend: config.BackendFile,
		Slot:    "vault",
		Files:   config.Files{Path: "/tmp/vault.json"},
	}

	dst, err := migrationTarget(src, config.Storage{
		Backend: config.BackendSQLite,
		DB:      config.DB{DSN: "/tmp/vault.db"},
	})
	require.NoError(t, err)

	assert.Equal(t, config.BackendSQLite, dst.Backend)
	assert.Equal(t, "vault", dst.Slot)
	assert.Equal(t, "/tmp/vault.db", dst.DB.DSN)
	assert.Equal(t, "/tmp/vault.json", dst.Files.Path)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		prefix string
	}{
		{name: "invalid input", err: service.ErrInvalidInput, prefix: app.MsgInvalidInput},
		{name: "out of range", err: store.ErrOutOfRange, prefix: app.MsgOutOfRange},
		{name: "alphabet", err: store.ErrAlphabetMismatch, prefix: app.MsgAlphabetMismatch},
		{name: "corrupt", err: store.ErrCorruptVault, prefix: app.MsgCorruptVault},
		{name: "version", err: store.ErrUnsupportedVersion, prefix: app.MsgCorruptVault},
		{name: "not a vault", err: store.ErrNotVault, prefix: app.MsgNotVault},
		{name: "fallback", err: store.ErrFallbackMismatch, prefix: app.MsgFallbackMismatch},
		{name: "storage", err: store.ErrStorageUnavailable, prefix: app.MsgStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := describe(tt.err)
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, strings.HasPrefix(err.Error(), tt.prefix+": "), err.Error())
		})
	}

	plain := errors.New("boom")
	assert.Same(t, plain, describe(plain))
	assert.NoError(t, describe(nil))
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.0 (abc123, 2026-10-19)\n", out)
}
