package dialog

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/imoya/tuidialog/logging"
)

// State tracks a dialog's lifecycle.
type State int

const (
	// StateCreated means the engine exists and the argument bag is attached.
	StateCreated State = iota
	// StateShowing means the modal surface is on screen.
	StateShowing
	// StateTerminalOK and StateTerminalCanceled are final; exactly one
	// result tuple has been emitted.
	StateTerminalOK
	StateTerminalCanceled
)

// Action is what a Content reports back from Update.
type Action int

const (
	// ActionPass means the content did not consume the message; the engine
	// applies its generic handling (focus movement, cancel, buttons).
	ActionPass Action = iota
	// ActionHandled means the content consumed the message.
	ActionHandled
	// ActionFinish means the content reached a terminal event of its own,
	// e.g. an item click in a list dialog. The engine finishes with OK.
	ActionFinish
)

// Content is the per-variant strategy plugged into the Engine: it wires
// the variant's widgets and extracts its payload, while the engine owns
// the shared state machine, frame, buttons, and result emission.
type Content interface {
	// Kind identifies the variant for state snapshots.
	Kind() string

	// Attach reads configuration from args and restores transient UI state
	// from saved (nil on first show). A missing required argument is a
	// fatal precondition failure: Attach panics.
	Attach(args, saved *Args)

	// Update processes a message while the content has focus.
	Update(msg tea.Msg) (Action, tea.Cmd)

	// View renders the content area at the given inner width.
	View(width int) string

	// Payload fills the OK result payload from current transient state.
	Payload(out *Args)

	// SaveState writes transient UI state for recreation.
	SaveState(out *Args)
}

// focusable is implemented by content that takes keystrokes.
type focusable interface {
	Focus()
	Blur()
}

// buttonMapper lets a content override the default button-to-result
// mapping (positive=OK with payload, negative=Canceled without).
type buttonMapper interface {
	// MapButton receives the button role index (0 positive, 1 negative)
	// and the payload already filled by Payload. It returns the result
	// code and whether the payload is delivered.
	MapButton(which int, payload *Args) (ResultCode, bool)
}

// ExtraButtonMsg reports a click of the extra action button on the
// "...and button" dialog variants. It is not a terminal event: the
// dialog stays open, and the payload carries the variant's current
// transient state (checked list, slider value) at click time.
type ExtraButtonMsg struct {
	RequestCode int
	Tag         string
	Payload     *Args
}

type buttonRole int

const (
	rolePositive buttonRole = iota
	roleNegative
	roleExtra
)

type engineButton struct {
	label string
	role  buttonRole
}

// Engine drives one modal dialog: Created -> Showing -> Terminal(OK) or
// Terminal(Canceled). Exactly one result tuple is emitted per lifecycle,
// as a ResultMsg command on the terminal transition.
type Engine struct {
	content Content
	args    *Args

	requestCode   int
	tag           string
	cancelable    bool
	outsideCancel bool

	buttons      []engineButton
	hasContent   bool // content is focusable
	focus        int  // 0 = content (when focusable), then buttons
	state        State
	done         bool
	width        int
	height       int
	boxX, boxY   int
	boxW, boxH   int
	log          *slog.Logger
}

func newEngine(c Content, args, saved *Args) *Engine {
	e := &Engine{
		content:       c,
		args:          args.Clone(),
		requestCode:   args.Int(KeyRequestCode, 0),
		tag:           args.String(KeyTag, ""),
		cancelable:    args.Bool(KeyCancelable, true),
		outsideCancel: args.Bool(KeyCanceledOnTouchOutside, true),
		state:         StateCreated,
		log:           logging.ForComponent(logging.CompDialog),
	}
	e.buttons = buttonsFromArgs(e.args)
	c.Attach(e.args, saved)
	_, e.hasContent = c.(focusable)
	return e
}

func buttonsFromArgs(args *Args) []engineButton {
	var buttons []engineButton
	if label := args.String(KeyExtraButtonTitle, ""); label != "" {
		buttons = append(buttons, engineButton{label: label, role: roleExtra})
	}
	if label := args.String(KeyButtonTitle, ""); label != "" {
		return append(buttons, engineButton{label: label, role: rolePositive})
	}
	if label := args.String(KeyPositiveButtonTitle, ""); label != "" {
		buttons = append(buttons, engineButton{label: label, role: rolePositive})
	}
	if label := args.String(KeyNegativeButtonTitle, ""); label != "" {
		buttons = append(buttons, engineButton{label: label, role: roleNegative})
	}
	return buttons
}

// show transitions Created -> Showing. Called by the surface on attach.
func (e *Engine) show() {
	if e.state != StateCreated {
		return
	}
	e.state = StateShowing
	e.focus = 0
	e.syncFocus()
	e.log.Debug("dialog showing",
		"kind", e.content.Kind(), "requestCode", e.requestCode, "tag", e.tag)
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// RequestCode returns the correlation key the result will carry.
func (e *Engine) RequestCode() int { return e.requestCode }

// Tag returns the builder-supplied instance tag.
func (e *Engine) Tag() string { return e.tag }

// Args returns the frozen argument bag.
func (e *Engine) Args() *Args { return e.args }

// SetSize informs the engine of the terminal dimensions.
func (e *Engine) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// focusSlots is the number of focus stops: content (if focusable) plus
// one per button.
func (e *Engine) focusSlots() int {
	n := len(e.buttons)
	if e.hasContent {
		n++
	}
	return n
}

func (e *Engine) contentFocused() bool {
	return e.hasContent && e.focus == 0
}

func (e *Engine) syncFocus() {
	if f, ok := e.content.(focusable); ok {
		if e.contentFocused() {
			f.Focus()
		} else {
			f.Blur()
		}
	}
}

func (e *Engine) moveFocus(delta int) {
	slots := e.focusSlots()
	if slots == 0 {
		return
	}
	e.focus = ((e.focus+delta)%slots + slots) % slots
	e.syncFocus()
}

// Update processes a message. The second return value reports whether
// the message was consumed.
func (e *Engine) Update(msg tea.Msg) (tea.Cmd, bool) {
	if e.state != StateShowing {
		return nil, false
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.SetSize(msg.Width, msg.Height)
		return nil, false

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return nil, true
		}
		if e.outsideClick(msg.X, msg.Y) {
			return e.Cancel(), true
		}
		return nil, true

	case tea.KeyMsg:
		return e.handleKey(msg), true
	}

	// Everything else (ticks, blink messages) goes to the content.
	_, cmd := e.content.Update(msg)
	return cmd, false
}

func (e *Engine) handleKey(msg tea.KeyMsg) tea.Cmd {
	if e.contentFocused() {
		action, cmd := e.content.Update(msg)
		switch action {
		case ActionFinish:
			return tea.Batch(cmd, e.finishOK())
		case ActionHandled:
			return cmd
		}
	}

	switch msg.String() {
	case "esc":
		if e.cancelable {
			return e.Cancel()
		}
		return nil

	case "tab", "down":
		e.moveFocus(1)
		return nil

	case "shift+tab", "up":
		e.moveFocus(-1)
		return nil

	case "left":
		if !e.contentFocused() {
			e.moveFocus(-1)
		}
		return nil

	case "right":
		if !e.contentFocused() {
			e.moveFocus(1)
		}
		return nil

	case "enter":
		return e.activateFocused()
	}
	return nil
}

func (e *Engine) activateFocused() tea.Cmd {
	idx := e.focus
	if e.hasContent {
		idx--
	}
	if idx < 0 || idx >= len(e.buttons) {
		// Content focused with no terminal meaning for enter: treat it as
		// the positive action when there is exactly one positive button.
		if pi := e.positiveIndex(); pi >= 0 {
			return e.activateButton(pi)
		}
		return nil
	}
	return e.activateButton(idx)
}

func (e *Engine) positiveIndex() int {
	for i, b := range e.buttons {
		if b.role == rolePositive {
			return i
		}
	}
	return -1
}

func (e *Engine) activateButton(i int) tea.Cmd {
	b := e.buttons[i]
	if b.role == roleExtra {
		payload := NewArgs()
		e.content.Payload(payload)
		msg := ExtraButtonMsg{RequestCode: e.requestCode, Tag: e.tag, Payload: payload}
		return func() tea.Msg { return msg }
	}

	payload := NewArgs()
	if e.tag != "" {
		payload.Set(KeyTag, e.tag)
	}
	e.content.Payload(payload)

	which := 0
	if b.role == roleNegative {
		which = 1
	}
	code := ResultOK
	withPayload := true
	if m, ok := e.content.(buttonMapper); ok {
		code, withPayload = m.MapButton(which, payload)
	} else if b.role == roleNegative {
		code, withPayload = ResultCanceled, false
	}
	if !withPayload {
		payload = nil
	}
	return e.finish(code, payload)
}

// finishOK ends the dialog with an OK result built from current state.
func (e *Engine) finishOK() tea.Cmd {
	payload := NewArgs()
	if e.tag != "" {
		payload.Set(KeyTag, e.tag)
	}
	e.content.Payload(payload)
	return e.finish(ResultOK, payload)
}

// Cancel ends the dialog with a Canceled result and no payload. The
// surface also uses this for system dismissals, which must still deliver
// a result rather than silently skip it.
func (e *Engine) Cancel() tea.Cmd {
	return e.finish(ResultCanceled, nil)
}

func (e *Engine) finish(code ResultCode, payload *Args) tea.Cmd {
	if e.done {
		return nil
	}
	e.done = true
	if code == ResultOK {
		e.state = StateTerminalOK
	} else {
		e.state = StateTerminalCanceled
	}
	msg := ResultMsg{
		RequestCode: e.requestCode,
		Code:        code,
		Payload:     payload,
		Tag:         e.tag,
	}
	e.log.Debug("dialog finished",
		"kind", e.content.Kind(), "requestCode", e.requestCode, "code", code.String())
	return func() tea.Msg { return msg }
}

// SaveState snapshots transient UI state so a recreated engine resumes
// in the same place instead of resetting to argument defaults.
func (e *Engine) SaveState() *Args {
	out := NewArgs()
	e.content.SaveState(out)
	return out
}

// outsideClick reports whether (x, y) lies outside the rendered box and
// the dialog is configured to cancel on an outside click.
func (e *Engine) outsideClick(x, y int) bool {
	if !e.outsideCancel || !e.cancelable || e.boxW == 0 {
		return false
	}
	inside := x >= e.boxX && x < e.boxX+e.boxW && y >= e.boxY && y < e.boxY+e.boxH
	return !inside
}

const defaultDialogWidth = 52

func (e *Engine) dialogWidth() int {
	w := defaultDialogWidth
	if e.width > 0 && e.width < w+10 {
		w = e.width - 10
		if w < 30 {
			w = 30
		}
	}
	return w
}

// View renders the dialog centered on the terminal.
func (e *Engine) View() string {
	if e.state != StateShowing {
		return ""
	}

	dialogWidth := e.dialogWidth()
	innerWidth := dialogWidth - 4 // box padding

	var b strings.Builder
	if title := e.args.String(KeyTitle, ""); title != "" {
		b.WriteString(titleStyle().Render(truncate(title, innerWidth)))
		b.WriteString("\n\n")
	}
	if content := e.content.View(innerWidth); content != "" {
		b.WriteString(content)
		b.WriteString("\n")
	}
	if row := e.buttonRow(); row != "" {
		b.WriteString("\n")
		b.WriteString(row)
	}
	b.WriteString("\n")
	b.WriteString(dimStyle().Render(e.hint()))

	box := boxStyle(dialogWidth).Render(b.String())
	e.boxW = lipgloss.Width(box)
	e.boxH = lipgloss.Height(box)
	if e.width <= 0 || e.height <= 0 {
		return box
	}
	e.boxX = (e.width - e.boxW) / 2
	e.boxY = (e.height - e.boxH) / 2
	if e.boxX < 0 {
		e.boxX = 0
	}
	if e.boxY < 0 {
		e.boxY = 0
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Center, box)
}

func (e *Engine) buttonRow() string {
	if len(e.buttons) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.buttons))
	base := 0
	if e.hasContent {
		base = 1
	}
	for i, b := range e.buttons {
		parts = append(parts, buttonStyle(e.focus == base+i).Render(b.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (e *Engine) hint() string {
	switch {
	case len(e.buttons) == 0:
		return "enter select • esc cancel"
	case e.cancelable:
		return "tab focus • enter confirm • esc cancel"
	default:
		return "tab focus • enter confirm"
	}
}

// truncate shortens s to the given display width, runewidth-aware.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
