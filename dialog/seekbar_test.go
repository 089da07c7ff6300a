package dialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSeekBar_ArrowsMoveValue(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(80, c)

	NewSeekBarInputBuilder(m, 80).
		SetTitle("Volume").
		SetMin(0).
		SetMax(10).
		SetValue(5).
		Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := c.payload.Int(KeyInputValue, -1); got != 6 {
		t.Errorf("inputValue = %d, want 6", got)
	}
}

func TestSeekBar_ValueClampsAtBounds(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(81, c)
	NewSeekBarInputBuilder(m, 81).SetMin(0).SetMax(3).SetValue(3).Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := c.payload.Int(KeyInputValue, -1); got != 3 {
		t.Errorf("inputValue = %d, want clamped 3", got)
	}
}

func TestSeekBar_TypedOverflowRewritesToMax(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(82, c)
	NewSeekBarInputBuilder(m, 82).SetMin(0).SetMax(10).Show()

	// Clear the mirror, then type past the range: "1" then "5" makes 15,
	// which the field rewrites to 10 as soon as it is typed.
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	typeString(t, m, "15")

	if !strings.Contains(m.View(), "10") {
		t.Error("field should rewrite to the clamped value")
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := c.payload.Int(KeyInputValue, -1); got != 10 {
		t.Errorf("inputValue = %d, want 10", got)
	}
}

func TestSeekBar_EmptyFieldReadsAsMin(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(83, c)
	NewSeekBarInputBuilder(m, 83).SetMin(2).SetMax(9).SetValue(5).Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := c.payload.Int(KeyInputValue, -1); got != 2 {
		t.Errorf("inputValue = %d, want min 2", got)
	}
}

func TestSeekBar_LoneMinusReadsAsZeroWhenRangeAllows(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(84, c)
	NewSeekBarInputBuilder(m, 84).SetMin(-5).SetMax(5).SetValue(3).Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	typeString(t, m, "-")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := c.payload.Int(KeyInputValue, -99); got != 0 {
		t.Errorf("inputValue = %d, want 0", got)
	}
}

func TestSeekBar_HomeEndJumpToBounds(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(85, c)
	NewSeekBarInputBuilder(m, 85).SetMin(1).SetMax(7).SetValue(4).Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := c.payload.Int(KeyInputValue, -1); got != 7 {
		t.Errorf("inputValue = %d, want 7", got)
	}
}

func TestSeekBar_DefaultsToMinWithoutValue(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(86, c)
	NewSeekBarInputBuilder(m, 86).SetMin(10).SetMax(20).Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := c.payload.Int(KeyInputValue, -1); got != 10 {
		t.Errorf("inputValue = %d, want min 10", got)
	}
}

func TestSeekBar_MinAboveMaxPanics(t *testing.T) {
	m := NewManager()
	defer func() {
		if recover() == nil {
			t.Error("min > max should panic at Show")
		}
	}()
	NewSeekBarInputBuilder(m, 87).SetMin(5).SetMax(1).Show()
}

func TestSeekBarAndButton_ExtraButtonReportsCurrentValue(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(88, c)

	NewSeekBarAndButtonBuilder(m, 88).
		SetMin(0).
		SetMax(100).
		SetValue(40).
		SetExtraButtonTitle("Preview").
		Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	// Focus order: slider, extra button, OK, Cancel.
	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	cmd, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	var extra *ExtraButtonMsg
	for _, msg := range drain(cmd) {
		if e, ok := msg.(ExtraButtonMsg); ok {
			extra = &e
		}
	}
	if extra == nil {
		t.Fatal("extra button should emit an ExtraButtonMsg")
	}
	if got := extra.Payload.Int(KeyInputValue, -1); got != 41 {
		t.Errorf("payload inputValue = %d, want 41", got)
	}
	if !m.DialogShowing() {
		t.Error("extra button must not close the dialog")
	}
}

func TestSeekBarAndButton_MissingTitlePanics(t *testing.T) {
	m := NewManager()
	defer func() {
		if recover() == nil {
			t.Error("Show without SetExtraButtonTitle should panic")
		}
	}()
	NewSeekBarAndButtonBuilder(m, 89).Show()
}
