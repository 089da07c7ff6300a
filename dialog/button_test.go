package dialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSingleButton_ClickReportsOK(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(30, c)

	NewSingleButtonBuilder(m, 30).
		SetTitle("Notice").
		SetMessage("Saved.").
		Show()

	view := m.View()
	if !strings.Contains(view, "Saved.") || !strings.Contains(view, "OK") {
		t.Error("view should show the message and the default OK label")
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if c.calls != 1 || c.code != ResultOK {
		t.Errorf("got (%d calls, %v), want (1, ResultOK)", c.calls, c.code)
	}
}

func TestSingleButton_CustomLabel(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	NewSingleButtonBuilder(m, 31).SetMessage("m").SetButtonTitle("Got it").Show()

	if !strings.Contains(m.View(), "Got it") {
		t.Error("view should show the custom button label")
	}
}

func TestTwoButton_EitherButtonReportsOKWithIndex(t *testing.T) {
	cases := []struct {
		name  string
		tabs  int
		which int
	}{
		{"positive", 0, 0},
		{"negative", 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewManager()
			m.SetSize(80, 24)
			c := &capture{}
			m.Register(32, c)
			NewTwoButtonBuilder(m, 32).
				SetMessage("Overwrite or keep both?").
				SetPositiveButtonTitle("Overwrite").
				SetNegativeButtonTitle("Keep both").
				Show()

			for i := 0; i < tc.tabs; i++ {
				press(t, m, tea.KeyMsg{Type: tea.KeyTab})
			}
			press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			if c.code != ResultOK {
				t.Errorf("code = %v, want ResultOK for either button", c.code)
			}
			if got := c.payload.Int(KeyWhich, -1); got != tc.which {
				t.Errorf("which = %d, want %d", got, tc.which)
			}
		})
	}
}

func TestTwoButton_EscStillCancels(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(33, c)
	NewTwoButtonBuilder(m, 33).SetMessage("m").Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if c.code != ResultCanceled {
		t.Errorf("code = %v, want ResultCanceled", c.code)
	}
	if c.payload != nil {
		t.Error("canceled result should carry no payload")
	}
}

func TestOkCancel_DefaultLabels(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	NewOkCancelBuilder(m, 34).SetMessage("m").Show()

	view := m.View()
	if !strings.Contains(view, "OK") || !strings.Contains(view, "Cancel") {
		t.Error("view should show the default OK and Cancel labels")
	}
}

func TestSingleButtonAndCheck_PayloadReportsCheckbox(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(35, c)
	NewSingleButtonAndCheckBuilder(m, 35).
		SetMessage("Update available.").
		SetCheckBoxText("Do not ask again").
		Show()

	if !strings.Contains(m.View(), "[ ] Do not ask again") {
		t.Error("checkbox should start unchecked")
	}

	press(t, m, keyRune(' '))
	if !strings.Contains(m.View(), "[x] Do not ask again") {
		t.Error("space should toggle the checkbox")
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if c.calls != 1 {
		t.Fatalf("calls = %d, want 1", c.calls)
	}
	if !c.payload.Bool(KeyChecked, false) {
		t.Error("payload checked should be true after toggle")
	}
}

func TestSingleButtonAndCheck_InitialChecked(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	NewSingleButtonAndCheckBuilder(m, 36).
		SetCheckBoxText("remember").
		SetChecked(true).
		Show()

	if !strings.Contains(m.View(), "[x] remember") {
		t.Error("checkbox should honor the initial checked state")
	}
}

func TestBuilder_NilParentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("builder with nil parent should panic")
		}
	}()
	NewSingleButtonBuilder(nil, 1)
}
