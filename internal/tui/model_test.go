package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-vault/internal/mock"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/internal/validators"
	"github.com/MKhiriev/go-key-vault/models"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEscape}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
	ctrlG    = tea.KeyMsg{Type: tea.KeyCtrlG}
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m vaultModel, msg tea.Msg) (vaultModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	vm, ok := next.(vaultModel)
	require.True(t, ok)
	return vm, cmd
}

var testEntries = []models.VaultEntry{
	{Index: 0, Account: "mail", Password: "hunter"},
	{Index: 1, Account: "bank", Password: service.UndecryptableMarker, Undecryptable: true},
	{Index: 2, Account: "forum", Password: "letmein"},
}

// unlocked returns a model that has accepted key "dog" and loaded testEntries.
func unlocked(t *testing.T, svc *mock.MockVaultService) vaultModel {
	t.Helper()

	m := newVaultModel(context.Background(), svc, models.NewAppBuildInfo("1.0.0", "", ""))
	m.keyInput.SetValue("dog")

	m, cmd := update(t, m, enterKey)
	require.Equal(t, stageList, m.stage)
	require.True(t, m.loading)
	require.NotNil(t, cmd)

	svc.EXPECT().ListDecrypted(gomock.Any(), "dog").Return(testEntries, nil)
	m, _ = update(t, m, cmd())
	require.False(t, m.loading)
	require.Len(t, m.entries, 3)
	return m
}

func TestVaultModel_Unlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := unlocked(t, mock.NewMockVaultService(ctrl))
	assert.Equal(t, "dog", m.key)
	assert.Empty(t, m.keyInput.Value())

	view := m.View()
	assert.Contains(t, view, "mail")
	assert.Contains(t, view, passwordMask)
	assert.NotContains(t, view, "hunter")
	assert.Contains(t, view, service.UndecryptableMarker)
}

func TestVaultModel_EmptyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newVaultModel(context.Background(), mock.NewMockVaultService(ctrl), models.AppBuildInfo{})
	m, cmd := update(t, m, enterKey)

	assert.Nil(t, cmd)
	assert.Equal(t, stageKey, m.stage)
	assert.NotEmpty(t, m.keyErr)
}

func TestVaultModel_RejectedKeyReturnsToPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockVaultService(ctrl)
	m := newVaultModel(context.Background(), svc, models.AppBuildInfo{})
	m.keyInput.SetValue("123")

	m, cmd := update(t, m, enterKey)
	svc.EXPECT().ListDecrypted(gomock.Any(), "123").
		Return(nil, fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrNothingToEncrypt))
	m, _ = update(t, m, cmd())

	assert.Equal(t, stageKey, m.stage)
	assert.Empty(t, m.key)
	assert.Equal(t, humanizeError(validators.ErrNothingToEncrypt), m.keyErr)
}

func TestVaultModel_LoadFailureShowsOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newVaultModel(context.Background(), mock.NewMockVaultService(ctrl), models.AppBuildInfo{})
	m.stage = stageList
	m.key = "dog"

	m, _ = update(t, m, listLoadedMsg{err: fmt.Errorf("load: %w", store.ErrStorageUnavailable)})
	assert.Equal(t, "Хранилище недоступно", m.errMsg)
	assert.Contains(t, m.View(), "Хранилище недоступно")

	// any key but enter/esc is swallowed by the overlay
	m, _ = update(t, m, runeKey("a"))
	assert.Equal(t, stageList, m.stage)
	m, _ = update(t, m, escKey)
	assert.Empty(t, m.errMsg)
}

func TestVaultModel_RevealAndNavigate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := unlocked(t, mock.NewMockVaultService(ctrl))

	m, _ = update(t, m, spaceKey)
	assert.True(t, m.revealed[0])
	assert.Contains(t, m.View(), "hunter")

	m, _ = update(t, m, runeKey("j"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.idx)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.idx)

	m, _ = update(t, m, enterKey)
	assert.Contains(t, m.View(), "letmein")

	m, _ = update(t, m, runeKey("k"))
	assert.Equal(t, 1, m.idx)
}

func TestVaultModel_Copy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var copied string
	original := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = original })

	m := unlocked(t, mock.NewMockVaultService(ctrl))

	m, cmd := update(t, m, runeKey("c"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, "hunter", copied)
	assert.Equal(t, "Скопировано", m.status)

	m.idx = 1
	m, cmd = update(t, m, runeKey("c"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Запись не расшифрована этим ключом", m.status)

	m, _ = update(t, m, copiedMsg{err: errors.New("no clipboard")})
	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestVaultModel_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockVaultService(ctrl)
	m := unlocked(t, svc)
	m.idx = 2

	m, _ = update(t, m, runeKey("d"))
	require.Equal(t, stageConfirmDelete, m.stage)
	assert.Contains(t, m.View(), "forum")

	m, cmd := update(t, m, runeKey("n"))
	assert.Nil(t, cmd)
	assert.Equal(t, stageList, m.stage)

	m, _ = update(t, m, runeKey("d"))
	m, cmd = update(t, m, runeKey("y"))
	require.NotNil(t, cmd)

	svc.EXPECT().Delete(gomock.Any(), 2).Return(nil)
	m, cmd = update(t, m, cmd())
	assert.Equal(t, stageList, m.stage)
	assert.True(t, m.loading)
	require.NotNil(t, cmd)

	svc.EXPECT().ListDecrypted(gomock.Any(), "dog").Return(testEntries[:2], nil)
	m, _ = update(t, m, cmd())
	assert.Len(t, m.entries, 2)
	assert.Equal(t, 1, m.idx)
}

func TestVaultModel_DeleteIgnoresKeysWhilePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockVaultService(ctrl)
	m := unlocked(t, svc)

	m, _ = update(t, m, runeKey("d"))
	m, cmd := update(t, m, runeKey("y"))
	require.NotNil(t, cmd)
	require.True(t, m.deleting)

	for _, k := range []tea.KeyMsg{runeKey("y"), runeKey("n"), escKey} {
		var again tea.Cmd
		m, again = update(t, m, k)
		assert.Nil(t, again)
		assert.Equal(t, stageConfirmDelete, m.stage)
	}

	svc.EXPECT().Delete(gomock.Any(), 0).Return(nil).Times(1)
	m, cmd = update(t, m, cmd())
	assert.False(t, m.deleting)
	assert.Equal(t, stageList, m.stage)
	require.NotNil(t, cmd)

	svc.EXPECT().ListDecrypted(gomock.Any(), "dog").Return(testEntries[1:], nil)
	m, _ = update(t, m, cmd())
	assert.Len(t, m.entries, 2)
}

func TestVaultModel_DeleteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := unlocked(t, mock.NewMockVaultService(ctrl))
	m.stage = stageConfirmDelete
	m.deleting = true

	m, cmd := update(t, m, deletedMsg{account: "mail", err: service.ErrOutOfRange})
	assert.Nil(t, cmd)
	assert.Equal(t, stageList, m.stage)
	assert.False(t, m.deleting)
	assert.Equal(t, "Запись не найдена", m.errMsg)
}

func TestVaultModel_AddFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockVaultService(ctrl)
	m := unlocked(t, svc)

	m, _ = update(t, m, runeKey("a"))
	require.Equal(t, stageAdd, m.stage)

	// both fields are required
	m, cmd := update(t, m, enterKey)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.addErr)

	m.addInputs[0].SetValue(" shop ")
	m, _ = update(t, m, tabKey)
	assert.Equal(t, 1, m.addFocus)

	m, cmd = update(t, m, ctrlG)
	require.NotNil(t, cmd)
	svc.EXPECT().GeneratePassword(0).Return("qwertyuiopas", nil)
	m, _ = update(t, m, cmd())
	assert.Equal(t, "qwertyuiopas", m.addInputs[1].Value())

	m, cmd = update(t, m, enterKey)
	require.NotNil(t, cmd)
	assert.True(t, m.addSaving)

	svc.EXPECT().Save(gomock.Any(), "shop", "qwertyuiopas", "dog").Return(nil)
	m, cmd = update(t, m, cmd())
	assert.Equal(t, stageList, m.stage)
	assert.Contains(t, m.status, "shop")
	require.NotNil(t, cmd)

	svc.EXPECT().ListDecrypted(gomock.Any(), "dog").Return(testEntries, nil)
	m, _ = update(t, m, cmd())
	assert.False(t, m.loading)
}

func TestVaultModel_AddRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := unlocked(t, mock.NewMockVaultService(ctrl))
	m, _ = update(t, m, runeKey("a"))
	m.addSaving = true

	err := fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrNothingToEncrypt)
	m, _ = update(t, m, savedMsg{account: "x", err: err})
	assert.Equal(t, stageAdd, m.stage)
	assert.False(t, m.addSaving)
	assert.Equal(t, humanizeError(validators.ErrNothingToEncrypt), m.addErr)

	m, _ = update(t, m, escKey)
	assert.Equal(t, stageList, m.stage)
	assert.Nil(t, m.addInputs)
}

func TestVaultModel_LockForgetsKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := unlocked(t, mock.NewMockVaultService(ctrl))
	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, runeKey("l"))

	assert.Equal(t, stageKey, m.stage)
	assert.Empty(t, m.key)
	assert.Nil(t, m.entries)
	assert.Empty(t, m.revealed)
}

func TestVaultModel_Quit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := unlocked(t, mock.NewMockVaultService(ctrl))

	next, cmd := update(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.False(t, next.quitByUser)

	next, cmd = update(t, m, ctrlC)
	require.NotNil(t, cmd)
	assert.True(t, next.quitByUser)
}

func TestVaultModel_BuildInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newVaultModel(context.Background(), mock.NewMockVaultService(ctrl), models.NewAppBuildInfo("2.1.0", "", "abc123"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlV})
	require.True(t, m.showBuildInfo)
	view := m.View()
	assert.Contains(t, view, "2.1.0")
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, "N/A")

	m, _ = update(t, m, escKey)
	assert.False(t, m.showBuildInfo)
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrEmptyAccount), "Нужно указать аккаунт"},
		{validators.ErrEmptyPassword, "Нужно указать пароль"},
		{validators.ErrEmptyKey, "Нужно указать ключ"},
		{fmt.Errorf("decode: %w", store.ErrAlphabetMismatch), "Хранилище создано с другим алфавитом"},
		{store.ErrCorruptVault, "Хранилище повреждено или создано более новой версией"},
		{store.ErrNotVault, "Это не хранилище, старый формат добавляется командой import-legacy"},
		{fmt.Errorf("load: %w", store.ErrFallbackMismatch), "Хранилище создано с другой политикой для неизвестных символов"},
		{errors.New("something else"), "something else"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeError(tt.err))
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "при...", fitText("привет мир", 6))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "ab  ", padRight("ab", 4))
}

func TestNew(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, nil)
	assert.Error(t, err)
}
