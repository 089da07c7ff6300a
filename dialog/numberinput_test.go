package dialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNumberInput_ValidValueInPayload(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(70, c)

	NewNumberInputBuilder(m, 70).
		SetTitle("Timeout").
		SetUnit("seconds").
		Show()

	typeString(t, m, "30")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if c.calls != 1 || c.code != ResultOK {
		t.Fatalf("got (%d calls, %v), want (1, ResultOK)", c.calls, c.code)
	}
	if !c.payload.Has(KeyInputValue) {
		t.Fatal("payload should carry inputValue for a valid number")
	}
	if got := c.payload.Int(KeyInputValue, -1); got != 30 {
		t.Errorf("inputValue = %d, want 30", got)
	}
}

func TestNumberInput_EmptyFieldOmitsValue(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(71, c)
	NewNumberInputBuilder(m, 71).Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if c.code != ResultOK {
		t.Fatalf("code = %v, want ResultOK", c.code)
	}
	if c.payload.Has(KeyInputValue) {
		t.Error("payload should omit inputValue when the field is empty")
	}
}

func TestNumberInput_LoneMinusOmitsValue(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(72, c)
	NewNumberInputBuilder(m, 72).Show()

	typeString(t, m, "-")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if c.payload.Has(KeyInputValue) {
		t.Error("a lone minus sign is not a committed number")
	}
}

func TestNumberInput_InitialValueShown(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(73, c)
	NewNumberInputBuilder(m, 73).SetInputValue(42).Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := c.payload.Int(KeyInputValue, -1); got != 42 {
		t.Errorf("inputValue = %d, want 42", got)
	}
}

func TestNumberInput_UnitRenders(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	NewNumberInputBuilder(m, 74).SetUnit("MB").Show()

	if !strings.Contains(m.View(), "MB") {
		t.Error("view should render the unit label")
	}
}

func TestIsValidNumber(t *testing.T) {
	valid := []string{"0", "7", "42", "007"}
	for _, s := range valid {
		if !isValidNumber(s) {
			t.Errorf("isValidNumber(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "-", "-5", "1.5", " 3", "３", "abc"}
	for _, s := range invalid {
		if isValidNumber(s) {
			t.Errorf("isValidNumber(%q) = true, want false", s)
		}
	}
}

func TestNumberInput_SaveRestoreKeepsRawText(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	NewNumberInputBuilder(m, 75).Show()
	typeString(t, m, "9")

	snaps := restoreThroughJSON(t, m.SaveState())
	m2 := NewManager()
	m2.SetSize(80, 24)
	c := &capture{}
	m2.Register(75, c)
	if err := m2.RestoreState(snaps); err != nil {
		t.Fatalf("RestoreState: %v", err)
	}

	typeString(t, m2, "1")
	press(t, m2, tea.KeyMsg{Type: tea.KeyEnter})
	if got := c.payload.Int(KeyInputValue, -1); got != 91 {
		t.Errorf("inputValue = %d, want 91", got)
	}
}
