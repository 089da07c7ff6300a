package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/imoya/tuidialog/dialog"
	"github.com/imoya/tuidialog/logging"
)

// Request codes for the demo screens. Stable across restarts so restored
// dialogs find their listeners again.
const (
	reqSingleButton = 1 + iota
	reqSingleButtonAndCheck
	reqTwoButton
	reqOkCancel
	reqStringArray
	reqSingleChoice
	reqMultiChoice
	reqMultiChoiceAndButton
	reqTextInput
	reqNumberInput
	reqSeekBar
	reqSeekBarAndButton
	reqTimeInput
)

// configReloadedMsg carries a freshly parsed config after an external
// edit.
type configReloadedMsg struct{ cfg *Config }

// demoEntry is one row of the variant menu.
type demoEntry struct {
	title string
	show  func(m *homeModel)
}

type homeModel struct {
	dialogs *dialog.Manager
	store   *dialog.StateStore
	watcher *ConfigWatcher
	cfg     *Config

	entries    []demoEntry
	cursor     int
	width      int
	height     int
	lastResult string
	quitting   bool
}

func newHome(cfg *Config, store *dialog.StateStore, watcher *ConfigWatcher) *homeModel {
	m := &homeModel{
		dialogs: dialog.NewManager(),
		store:   store,
		watcher: watcher,
		cfg:     cfg,
	}
	m.entries = m.buildEntries()
	m.registerListeners()
	return m
}

func (m *homeModel) buildEntries() []demoEntry {
	return []demoEntry{
		{"Single button", func(m *homeModel) {
			dialog.NewSingleButtonBuilder(m.dialogs, reqSingleButton).
				SetTitle("Notice").
				SetMessage("Your changes were saved.").
				Show()
		}},
		{"Single button with checkbox", func(m *homeModel) {
			dialog.NewSingleButtonAndCheckBuilder(m.dialogs, reqSingleButtonAndCheck).
				SetTitle("Update available").
				SetMessage("Version 2.0 is ready to install.").
				SetCheckBoxText("Do not ask again").
				Show()
		}},
		{"Two buttons", func(m *homeModel) {
			dialog.NewTwoButtonBuilder(m.dialogs, reqTwoButton).
				SetTitle("File exists").
				SetMessage("Overwrite the existing file or keep both?").
				SetPositiveButtonTitle("Overwrite").
				SetNegativeButtonTitle("Keep both").
				Show()
		}},
		{"OK / Cancel", func(m *homeModel) {
			dialog.NewOkCancelBuilder(m.dialogs, reqOkCancel).
				SetTitle("Delete item").
				SetMessage("This cannot be undone.").
				Show()
		}},
		{"Item list", func(m *homeModel) {
			dialog.NewStringArrayBuilder(m.dialogs, reqStringArray).
				SetTitle("Open with").
				SetItems([]string{"Editor", "Viewer", "Terminal", "Browser"}).
				Show()
		}},
		{"Single choice", func(m *homeModel) {
			dialog.NewSingleChoiceBuilder(m.dialogs, reqSingleChoice).
				SetTitle("Theme").
				SetItems([]string{"Light", "Dark", "System"}).
				SetSelectedPosition(2).
				Show()
		}},
		{"Multi choice", func(m *homeModel) {
			dialog.NewMultiChoiceBuilder(m.dialogs, reqMultiChoice).
				SetTitle("Notifications").
				SetItems([]string{"Mentions", "Replies", "Digests"}).
				SetCheckedList([]bool{true, true, false}).
				Show()
		}},
		{"Multi choice with extra button", func(m *homeModel) {
			dialog.NewMultiChoiceAndButtonBuilder(m.dialogs, reqMultiChoiceAndButton).
				SetTitle("Export columns").
				SetItems([]string{"Name", "Size", "Modified", "Owner"}).
				SetExtraButtonTitle("Preview").
				Show()
		}},
		{"Text input", func(m *homeModel) {
			dialog.NewTextInputBuilder(m.dialogs, reqTextInput).
				SetTitle("Rename").
				SetMessage("New name:").
				SetHint("e.g. report-final").
				SetMaxLength(64).
				Show()
		}},
		{"Number input", func(m *homeModel) {
			dialog.NewNumberInputBuilder(m.dialogs, reqNumberInput).
				SetTitle("Timeout").
				SetMessage("Seconds before giving up:").
				SetInputValue(30).
				SetUnit("s").
				Show()
		}},
		{"Seek bar", func(m *homeModel) {
			dialog.NewSeekBarInputBuilder(m.dialogs, reqSeekBar).
				SetTitle("Volume").
				SetMin(0).
				SetMax(100).
				SetValue(65).
				Show()
		}},
		{"Seek bar with extra button", func(m *homeModel) {
			dialog.NewSeekBarAndButtonBuilder(m.dialogs, reqSeekBarAndButton).
				SetTitle("Brightness").
				SetMin(0).
				SetMax(100).
				SetValue(50).
				SetExtraButtonTitle("Apply").
				Show()
		}},
		{"Time input", func(m *homeModel) {
			dialog.NewTimeInputBuilder(m.dialogs, reqTimeInput).
				SetTitle("Reminder").
				SetHour(9).
				SetMinute(0).
				Show()
		}},
	}
}

// registerListeners binds one listener per request code. Registration
// happens at construction so dialogs restored from the state file find
// their listener before any result can arrive.
func (m *homeModel) registerListeners() {
	codes := map[int]string{
		reqSingleButton:         "single button",
		reqSingleButtonAndCheck: "single button with checkbox",
		reqTwoButton:            "two buttons",
		reqOkCancel:             "ok/cancel",
		reqStringArray:          "item list",
		reqSingleChoice:         "single choice",
		reqMultiChoice:          "multi choice",
		reqMultiChoiceAndButton: "multi choice with extra button",
		reqTextInput:            "text input",
		reqNumberInput:          "number input",
		reqSeekBar:              "seek bar",
		reqSeekBarAndButton:     "seek bar with extra button",
		reqTimeInput:            "time input",
	}
	for code, name := range codes {
		name := name
		m.dialogs.RegisterFunc(code, func(_ int, result dialog.ResultCode, payload *dialog.Args) {
			m.lastResult = formatResult(name, result, payload)
		})
	}
}

func formatResult(name string, result dialog.ResultCode, payload *dialog.Args) string {
	if payload == nil {
		return fmt.Sprintf("%s: %s", name, result)
	}
	var parts []string
	if payload.Has(dialog.KeyWhich) {
		parts = append(parts, fmt.Sprintf("which=%d", payload.Int(dialog.KeyWhich, -1)))
	}
	if payload.Has(dialog.KeyInputValue) {
		switch {
		case payload.String(dialog.KeyInputValue, "") != "":
			parts = append(parts, fmt.Sprintf("input=%q", payload.String(dialog.KeyInputValue, "")))
		default:
			parts = append(parts, fmt.Sprintf("value=%d", payload.Int(dialog.KeyInputValue, 0)))
		}
	}
	if payload.Has(dialog.KeyChecked) {
		parts = append(parts, fmt.Sprintf("checked=%v", payload.Bool(dialog.KeyChecked, false)))
	}
	if checked := payload.Bools(dialog.KeyCheckedList); checked != nil {
		parts = append(parts, fmt.Sprintf("checkedList=%v", checked))
	}
	if payload.Has(dialog.KeyHour) {
		parts = append(parts, fmt.Sprintf("%02d:%02d",
			payload.Int(dialog.KeyHour, 0), payload.Int(dialog.KeyMinute, 0)))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s: %s", name, result)
	}
	return fmt.Sprintf("%s: %s (%s)", name, result, strings.Join(parts, ", "))
}

// watchReloads blocks on the config watcher and surfaces the next edit
// as a message. Re-issued after each delivery.
func (m *homeModel) watchReloads() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.watcher.Reloads(); !ok {
			return nil
		}
		cfg, err := ReloadConfig()
		if err != nil {
			logging.ForComponent(logging.CompConfig).Warn("config reload failed", "error", err)
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

func (m *homeModel) Init() tea.Cmd {
	return m.watchReloads()
}

func (m *homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if reload, ok := msg.(configReloadedMsg); ok {
		m.cfg = reload.cfg
		applyUISettings(reload.cfg)
		return m, m.watchReloads()
	}

	// Dialogs get first refusal on every message.
	cmd, consumed := m.dialogs.Update(msg)
	if consumed {
		m.persistDialogState(false)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, cmd

	case dialog.ExtraButtonMsg:
		m.lastResult = fmt.Sprintf("extra button (request %d): %v", msg.RequestCode, msg.Payload)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.persistDialogState(true)
			if m.watcher != nil {
				m.watcher.Close()
			}
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			m.entries[m.cursor].show(m)
			m.persistDialogState(false)
		}
	}
	return m, cmd
}

// persistDialogState mirrors the open-dialog stack into the state file,
// throttled unless final.
func (m *homeModel) persistDialogState(final bool) {
	if m.store == nil || !m.cfg.State.Enabled {
		return
	}
	snaps := m.dialogs.SaveState()
	var err error
	if final {
		err = m.store.SaveNow(snaps)
	} else {
		err = m.store.Save(snaps)
	}
	if err != nil {
		logging.ForComponent(logging.CompStore).Warn("dialog state save failed", "error", err)
	}
}

// restoreDialogs reopens dialogs persisted by a previous run.
func (m *homeModel) restoreDialogs() {
	if m.store == nil || !m.cfg.State.Enabled {
		return
	}
	snaps, err := m.store.Load()
	if err != nil {
		logging.ForComponent(logging.CompStore).Warn("dialog state load failed", "error", err)
		return
	}
	if len(snaps) == 0 {
		return
	}
	if err := m.dialogs.RestoreState(snaps); err != nil {
		logging.ForComponent(logging.CompStore).Warn("dialog restore failed", "error", err)
	}
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true)
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m *homeModel) View() string {
	if m.quitting {
		return ""
	}
	if m.dialogs.DialogShowing() {
		return m.dialogs.View()
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("tuidialog demo"))
	b.WriteString("\n\n")
	for i, entry := range m.entries {
		cursor := "  "
		line := entry.title
		if i == m.cursor {
			cursor = "> "
			line = menuCursorStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n")
	if m.lastResult != "" {
		b.WriteString("last result: " + m.lastResult + "\n\n")
	}
	b.WriteString(menuDimStyle.Render("↑/↓ move • enter open • q quit"))
	return b.String()
}
