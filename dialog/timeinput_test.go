package dialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTimeInput_ConfirmReportsHourMinute(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(90, c)

	NewTimeInputBuilder(m, 90).
		SetTitle("Reminder").
		SetHour(9).
		SetMinute(30).
		SetIs24HourView(true).
		Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if c.calls != 1 || c.code != ResultOK {
		t.Fatalf("got (%d calls, %v), want (1, ResultOK)", c.calls, c.code)
	}
	if got := c.payload.Int(KeyHour, -1); got != 9 {
		t.Errorf("hour = %d, want 9", got)
	}
	if got := c.payload.Int(KeyMinute, -1); got != 30 {
		t.Errorf("minute = %d, want 30", got)
	}
}

func TestTimeInput_HourWrapsIn24HourView(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(91, c)
	NewTimeInputBuilder(m, 91).SetHour(23).SetIs24HourView(true).Show()

	press(t, m, keyRune('k')) // hour up
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := c.payload.Int(KeyHour, -1); got != 0 {
		t.Errorf("hour = %d, want wrapped 0", got)
	}
}

func TestTimeInput_MinuteWraps(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(92, c)
	NewTimeInputBuilder(m, 92).SetMinute(0).SetIs24HourView(true).Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyRight}) // to minute segment
	press(t, m, keyRune('j'))                   // minute down
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := c.payload.Int(KeyMinute, -1); got != 59 {
		t.Errorf("minute = %d, want wrapped 59", got)
	}
}

func TestTimeInput_TwelveHourViewShowsMeridiem(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	NewTimeInputBuilder(m, 93).SetHour(15).SetMinute(5).Show()

	view := m.View()
	if !strings.Contains(view, "03") || !strings.Contains(view, "PM") {
		t.Errorf("12-hour view should render 03:05 PM, got %q", view)
	}
}

func TestTimeInput_MeridiemToggleKeeps24HourPayload(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(94, c)
	NewTimeInputBuilder(m, 94).SetHour(15).Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyRight}) // minute
	press(t, m, tea.KeyMsg{Type: tea.KeyRight}) // meridiem
	press(t, m, keyRune('k'))                   // PM -> AM
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := c.payload.Int(KeyHour, -1); got != 3 {
		t.Errorf("hour = %d, want 3 after PM->AM toggle", got)
	}
}

func TestTimeInput_MidnightRendersAsTwelveAM(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	NewTimeInputBuilder(m, 95).SetHour(0).Show()

	view := m.View()
	if !strings.Contains(view, "12") || !strings.Contains(view, "AM") {
		t.Error("midnight should render as 12 AM")
	}
}

func TestTimeInput_SaveRestoreKeepsAdjustedTime(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	NewTimeInputBuilder(m, 96).SetHour(8).SetMinute(0).SetIs24HourView(true).Show()
	press(t, m, keyRune('k')) // hour 8 -> 9

	snaps := restoreThroughJSON(t, m.SaveState())
	m2 := NewManager()
	m2.SetSize(80, 24)
	c := &capture{}
	m2.Register(96, c)
	if err := m2.RestoreState(snaps); err != nil {
		t.Fatalf("RestoreState: %v", err)
	}

	press(t, m2, tea.KeyMsg{Type: tea.KeyEnter})
	if got := c.payload.Int(KeyHour, -1); got != 9 {
		t.Errorf("hour = %d, want 9", got)
	}
}
