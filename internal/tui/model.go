package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/models"
)

type stage int

const (
	stageKey stage = iota
	stageList
	stageAdd
	stageConfirmDelete
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// vaultModel is the single Bubble Tea model of the vault UI. The key typed on
// the first screen lives only in this model and is passed to every service
// call.
type vaultModel struct {
	ctx       context.Context
	vault     service.VaultService
	buildInfo models.AppBuildInfo

	stage stage
	key   string

	keyInput textinput.Model
	keyErr   string

	entries  []models.VaultEntry
	idx      int
	revealed map[int]bool
	loading  bool
	status   string

	// deleting is set while a confirmed delete is in flight.
	deleting bool

	addInputs []textinput.Model
	addFocus  int
	addErr    string
	addSaving bool

	errMsg        string
	showBuildInfo bool
	quitByUser    bool
}

func newVaultModel(ctx context.Context, vault service.VaultService, buildInfo models.AppBuildInfo) vaultModel {
	return vaultModel{
		ctx:       ctx,
		vault:     vault,
		buildInfo: buildInfo,
		stage:     stageKey,
		keyInput:  newKeyInput(),
		revealed:  make(map[int]bool),
	}
}

func (m vaultModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m vaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.errMsg != "" {
			if key.Matches(msg, keys.enter, keys.esc) {
				m.errMsg = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if key.Matches(msg, keys.info) && (m.stage == stageKey || m.stage == stageList) {
			m.showBuildInfo = true
			return m, nil
		}

	case listLoadedMsg:
		return m.onListLoaded(msg), nil

	case savedMsg:
		m.addSaving = false
		if msg.err != nil {
			m.addErr = humanizeError(msg.err)
			return m, nil
		}
		m.resetAdd()
		m.stage = stageList
		m.status = fmt.Sprintf("Запись %q сохранена", msg.account)
		m.loading = true
		return m, m.cmdLoad()

	case deletedMsg:
		m.stage = stageList
		m.deleting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Запись %q удалена", msg.account)
		m.loading = true
		return m, m.cmdLoad()

	case generatedMsg:
		if msg.err != nil {
			m.addErr = humanizeError(msg.err)
			return m, nil
		}
		if len(m.addInputs) == 2 {
			m.addInputs[1].SetValue(msg.password)
			m.addErr = ""
			m.status = "Пароль сгенерирован"
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.status = "Скопировано"
		return m, nil
	}

	switch m.stage {
	case stageKey:
		return m.updateKey(msg)
	case stageList:
		return m.updateList(msg)
	case stageAdd:
		return m.updateAdd(msg)
	case stageConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m, nil
}

func (m vaultModel) View() string {
	if m.errMsg != "" {
		return renderErrorOverlay(m.errMsg)
	}
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.stage {
	case stageList:
		return m.viewList()
	case stageAdd:
		return m.viewAdd()
	case stageConfirmDelete:
		entry, _ := m.current()
		return renderDeleteConfirm(entry.Index+1, entry.Account)
	default:
		return m.viewKey()
	}
}

func (m vaultModel) onListLoaded(msg listLoadedMsg) vaultModel {
	m.loading = false
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrInvalidInput) {
			m.lock()
			m.keyErr = humanizeError(msg.err)
			return m
		}
		m.errMsg = humanizeError(msg.err)
		return m
	}

	m.entries = msg.entries
	m.revealed = make(map[int]bool)
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m vaultModel) current() (models.VaultEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.VaultEntry{}, false
	}
	return m.entries[m.idx], true
}

// lock forgets the key and every decrypted password.
func (m *vaultModel) lock() {
	m.key = ""
	m.entries = nil
	m.revealed = make(map[int]bool)
	m.idx = 0
	m.status = ""
	m.stage = stageKey
	m.keyInput = newKeyInput()
}

func (m vaultModel) cmdLoad() tea.Cmd {
	ctx, vault, k := m.ctx, m.vault, m.key

	return func() tea.Msg {
		entries, err := vault.ListDecrypted(ctx, k)
		return listLoadedMsg{entries: entries, err: err}
	}
}

func (m vaultModel) cmdSave(account, password string) tea.Cmd {
	ctx, vault, k := m.ctx, m.vault, m.key

	return func() tea.Msg {
		err := vault.Save(ctx, account, password, k)
		return savedMsg{account: account, err: err}
	}
}

func (m vaultModel) cmdDelete(index int, account string) tea.Cmd {
	ctx, vault := m.ctx, m.vault

	return func() tea.Msg {
		err := vault.Delete(ctx, index)
		return deletedMsg{account: account, err: err}
	}
}

func (m vaultModel) cmdGenerate() tea.Cmd {
	vault := m.vault

	return func() tea.Msg {
		password, err := vault.GeneratePassword(0)
		return generatedMsg{password: password, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}
