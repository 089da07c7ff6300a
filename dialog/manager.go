package dialog

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imoya/tuidialog/logging"
)

// contentFactories maps a snapshot kind back to a fresh Content so a
// saved dialog can be reconstructed. Each variant registers itself in an
// init function.
var contentFactories = map[string]func() Content{}

func registerContent(kind string, factory func() Content) {
	if _, dup := contentFactories[kind]; dup {
		panic("dialog: duplicate content kind " + kind)
	}
	contentFactories[kind] = factory
}

// Snapshot is the serializable form of an open dialog: its variant kind,
// frozen argument bag, and transient UI state. It round-trips through
// JSON, so a host can persist open dialogs across a process restart and
// reopen them exactly where the user left off.
type Snapshot struct {
	Kind  string `json:"kind"`
	Args  *Args  `json:"args"`
	State *Args  `json:"state,omitempty"`
}

// Manager is the stock Parent implementation: it owns the result
// registry and hosts dialog overlays for one screen. Embed one in the
// host model, forward messages through Update, and overlay View's output
// when DialogShowing reports true.
//
// Dialogs stack: showing a dialog while another is open suspends the
// lower one until the upper finishes.
type Manager struct {
	registry *Registry
	stack    []*Engine
	width    int
	height   int
	log      *slog.Logger
}

// NewManager returns a Manager with an empty registry.
func NewManager() *Manager {
	return &Manager{
		registry: NewRegistry(),
		log:      logging.ForComponent(logging.CompDialog),
	}
}

// Registry implements Parent.
func (m *Manager) Registry() *Registry { return m.registry }

// Surface implements Parent.
func (m *Manager) Surface() Surface { return m }

// Register binds a listener for requestCode on the manager's registry.
func (m *Manager) Register(requestCode int, l Listener) {
	m.registry.Register(requestCode, l)
}

// RegisterFunc is Register for a bare function.
func (m *Manager) RegisterFunc(requestCode int, f ListenerFunc) {
	m.registry.RegisterFunc(requestCode, f)
}

// Unregister removes the binding for requestCode.
func (m *Manager) Unregister(requestCode int) {
	m.registry.Unregister(requestCode)
}

// Close cancels any open dialogs without delivery and drops all listener
// bindings. Call it when the host screen goes away for good.
func (m *Manager) Close() {
	m.stack = nil
	m.registry.Close()
}

// Attach implements Surface: displays a dialog on top of the stack.
func (m *Manager) Attach(e *Engine) {
	e.SetSize(m.width, m.height)
	e.show()
	m.stack = append(m.stack, e)
}

// Detach implements Surface: dismisses the topmost dialog with the given
// tag without delivering a result. An empty tag matches any dialog.
func (m *Manager) Detach(tag string) {
	for i := len(m.stack) - 1; i >= 0; i-- {
		if tag == "" || m.stack[i].Tag() == tag {
			m.stack = append(m.stack[:i], m.stack[i+1:]...)
			return
		}
	}
}

// Size implements Surface.
func (m *Manager) Size() (int, int) { return m.width, m.height }

// SetSize records terminal dimensions and propagates them to open dialogs.
func (m *Manager) SetSize(width, height int) {
	m.width = width
	m.height = height
	for _, e := range m.stack {
		e.SetSize(width, height)
	}
}

// DialogShowing reports whether a dialog is open.
func (m *Manager) DialogShowing() bool { return len(m.stack) > 0 }

// Active returns the topmost open dialog, or nil.
func (m *Manager) Active() *Engine {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Update routes a message. Call it first in the host's Update; when the
// second return value is true the message was consumed by a dialog and
// the host should not process it further.
//
// ResultMsg values emitted by finishing dialogs pass through here: the
// finished dialog is detached and the result is dispatched to the
// listener registered for its request code.
func (m *Manager) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return nil, false

	case ResultMsg:
		m.removeFinished()
		m.registry.Dispatch(msg)
		return nil, true
	}

	active := m.Active()
	if active == nil {
		return nil, false
	}
	cmd, consumed := active.Update(msg)
	return cmd, consumed
}

// removeFinished drops terminal engines from the top of the stack.
func (m *Manager) removeFinished() {
	for len(m.stack) > 0 {
		top := m.stack[len(m.stack)-1]
		if top.State() != StateTerminalOK && top.State() != StateTerminalCanceled {
			return
		}
		m.stack = m.stack[:len(m.stack)-1]
	}
}

// CancelActive dismisses the topmost dialog the way the system would:
// the listener still receives a Canceled result with a nil payload.
func (m *Manager) CancelActive() tea.Cmd {
	active := m.Active()
	if active == nil {
		return nil
	}
	return active.Cancel()
}

// View renders the topmost dialog overlay, or "" when none is open.
func (m *Manager) View() string {
	active := m.Active()
	if active == nil {
		return ""
	}
	return active.View()
}

// SaveState snapshots all open dialogs, bottom of the stack first.
func (m *Manager) SaveState() []*Snapshot {
	if len(m.stack) == 0 {
		return nil
	}
	out := make([]*Snapshot, 0, len(m.stack))
	for _, e := range m.stack {
		out = append(out, &Snapshot{
			Kind:  e.content.Kind(),
			Args:  e.Args().Clone(),
			State: e.SaveState(),
		})
	}
	return out
}

// RestoreState reopens dialogs from snapshots produced by SaveState. The
// restored dialogs resume in their saved transient state. Listeners are
// not restored; the host re-registers them before calling this.
func (m *Manager) RestoreState(snaps []*Snapshot) error {
	for _, snap := range snaps {
		factory, ok := contentFactories[snap.Kind]
		if !ok {
			return fmt.Errorf("restore dialog: unknown kind %q", snap.Kind)
		}
		e := newEngine(factory(), snap.Args, snap.State)
		m.Attach(e)
	}
	return nil
}
