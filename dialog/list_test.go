package dialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStringArray_ClickReportsIndex(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(40, c)

	NewStringArrayBuilder(m, 40).
		SetTitle("Open with").
		SetItems([]string{"editor", "viewer", "terminal"}).
		Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if c.calls != 1 || c.code != ResultOK {
		t.Fatalf("got (%d calls, %v), want (1, ResultOK)", c.calls, c.code)
	}
	if got := c.payload.Int(KeyWhich, -1); got != 2 {
		t.Errorf("which = %d, want 2", got)
	}
}

func TestStringArray_EscCancelsWithoutSelection(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(41, c)
	NewStringArrayBuilder(m, 41).SetItems([]string{"a", "b"}).Show()

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if c.code != ResultCanceled || c.payload != nil {
		t.Errorf("got (%v, %v), want (ResultCanceled, nil payload)", c.code, c.payload)
	}
}

func TestStringArray_FilterNarrowsItems(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	c := &capture{}
	m.Register(42, c)
	NewStringArrayBuilder(m, 42).
		SetItems([]string{"apple", "banana", "cherry"}).
		Show()

	press(t, m, keyRune('/'))
	press(t, m, keyRune('c'))
	press(t, m, keyRune('h'))

	view := m.View()
	if !strings.Contains(view, "cherry") {
		t.Error("filtered view should keep the match")
	}
	if strings.Contains(view, "banana") {
		t.Error("filtered view should hide non-matches")
	}

	// Exit filter mode, click the remaining item: the index refers to the
	// original list.
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := c.payload.Int(KeyWhich, -1); got != 2 {
		t.Errorf("which = %d, want original index 2", got)
	}
}

func TestStringArray_FilterNoMatches(t *testing.T) {
	m := NewManager()
	m.SetSize(80, 24)
	NewStringArrayBuilder(m, 43).SetItems([]string{"apple"}).Show()

	press(t, m, keyRune('/'))
	press(t, m, keyRune('z'))
	if !strings.Contains(m.View(), "(no matches)") {
		t.Error("view should say so when the filter matches nothing")
	}
}

func TestStringArray_LongListScrolls(t *testing.T) {
	items := make([]string, 12)
	for i := range items {
		items[i] = "item-" + string(rune('a'+i))
	}
	m := NewManager()
	m.SetSize(80, 24)
	NewStringArrayBuilder(m, 44).SetItems(items).Show()

	if !strings.Contains(m.View(), "and 4 more") {
		t.Error("view should summarize rows beyond the window")
	}
}

func TestStringArray_MissingItemsPanics(t *testing.T) {
	m := NewManager()
	defer func() {
		if recover() == nil {
			t.Error("Show without SetItems should panic")
		}
	}()
	NewStringArrayBuilder(m, 45).SetTitle("oops").Show()
}

func TestStringArray_SetMessagePanics(t *testing.T) {
	m := NewManager()
	defer func() {
		if recover() == nil {
			t.Error("SetMessage on a list builder should panic")
		}
	}()
	NewStringArrayBuilder(m, 46).SetMessage("not allowed")
}
