package dialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// drain executes a command tree and returns every message it produces.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// resultFrom picks the ResultMsg out of a command's output, if any.
func resultFrom(t *testing.T, cmd tea.Cmd) (ResultMsg, bool) {
	t.Helper()
	for _, msg := range drain(cmd) {
		if res, ok := msg.(ResultMsg); ok {
			return res, true
		}
	}
	return ResultMsg{}, false
}

func newOkCancelEngine(requestCode int) *Engine {
	args := NewArgs()
	args.Set(KeyRequestCode, requestCode)
	args.Set(KeyTitle, "Confirm")
	args.Set(KeyMessage, "Proceed?")
	args.Set(KeyPositiveButtonTitle, "OK")
	args.Set(KeyNegativeButtonTitle, "Cancel")
	args.Set(KeyCancelable, true)
	args.Set(KeyCanceledOnTouchOutside, true)
	e := newEngine(&okCancelContent{}, args, nil)
	e.show()
	return e
}

func TestEngine_EnterConfirms(t *testing.T) {
	e := newOkCancelEngine(10)
	if e.State() != StateShowing {
		t.Fatalf("state = %v, want StateShowing", e.State())
	}

	cmd, consumed := e.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !consumed {
		t.Error("key should be consumed while showing")
	}
	res, ok := resultFrom(t, cmd)
	if !ok {
		t.Fatal("enter on OK should emit a result")
	}
	if res.RequestCode != 10 {
		t.Errorf("requestCode = %d, want 10", res.RequestCode)
	}
	if res.Code != ResultOK {
		t.Errorf("code = %v, want ResultOK", res.Code)
	}
	if e.State() != StateTerminalOK {
		t.Errorf("state = %v, want StateTerminalOK", e.State())
	}
}

func TestEngine_TabMovesToNegativeButton(t *testing.T) {
	e := newOkCancelEngine(11)
	e.Update(tea.KeyMsg{Type: tea.KeyTab})
	cmd, _ := e.Update(tea.KeyMsg{Type: tea.KeyEnter})

	res, ok := resultFrom(t, cmd)
	if !ok {
		t.Fatal("enter on Cancel should emit a result")
	}
	if res.Code != ResultCanceled {
		t.Errorf("code = %v, want ResultCanceled", res.Code)
	}
	if res.Payload != nil {
		t.Errorf("canceled result should carry no payload, got %v", res.Payload)
	}
}

func TestEngine_EscCancels(t *testing.T) {
	e := newOkCancelEngine(12)
	cmd, _ := e.Update(tea.KeyMsg{Type: tea.KeyEsc})

	res, ok := resultFrom(t, cmd)
	if !ok {
		t.Fatal("esc should emit a result")
	}
	if res.Code != ResultCanceled {
		t.Errorf("code = %v, want ResultCanceled", res.Code)
	}
	if e.State() != StateTerminalCanceled {
		t.Errorf("state = %v, want StateTerminalCanceled", e.State())
	}
}

func TestEngine_EscIgnoredWhenNotCancelable(t *testing.T) {
	args := NewArgs()
	args.Set(KeyRequestCode, 13)
	args.Set(KeyPositiveButtonTitle, "OK")
	args.Set(KeyCancelable, false)
	e := newEngine(&okCancelContent{}, args, nil)
	e.show()

	cmd, _ := e.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := resultFrom(t, cmd); ok {
		t.Error("esc should not finish a non-cancelable dialog")
	}
	if e.State() != StateShowing {
		t.Errorf("state = %v, want StateShowing", e.State())
	}
}

func TestEngine_ExactlyOneResult(t *testing.T) {
	e := newOkCancelEngine(14)
	if cmd := e.Cancel(); cmd == nil {
		t.Fatal("first Cancel should emit a result")
	}
	if cmd := e.Cancel(); cmd != nil {
		t.Error("second Cancel should be a no-op")
	}
	if cmd, _ := e.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("terminal dialog should ignore further input")
	}
}

func TestEngine_OutsideClickCancels(t *testing.T) {
	e := newOkCancelEngine(15)
	e.SetSize(80, 24)
	e.View() // records the box bounds

	cmd, consumed := e.Update(tea.MouseMsg{Action: tea.MouseActionPress, X: 0, Y: 0})
	if !consumed {
		t.Error("mouse press should be consumed by the modal")
	}
	res, ok := resultFrom(t, cmd)
	if !ok {
		t.Fatal("outside click should cancel")
	}
	if res.Code != ResultCanceled {
		t.Errorf("code = %v, want ResultCanceled", res.Code)
	}
}

func TestEngine_InsideClickDoesNotCancel(t *testing.T) {
	e := newOkCancelEngine(16)
	e.SetSize(80, 24)
	e.View()

	cmd, _ := e.Update(tea.MouseMsg{Action: tea.MouseActionPress, X: 40, Y: 12})
	if _, ok := resultFrom(t, cmd); ok {
		t.Error("click inside the box should not cancel")
	}
}

func TestEngine_OutsideClickRespectsFlag(t *testing.T) {
	args := NewArgs()
	args.Set(KeyRequestCode, 17)
	args.Set(KeyPositiveButtonTitle, "OK")
	args.Set(KeyCanceledOnTouchOutside, false)
	e := newEngine(&okCancelContent{}, args, nil)
	e.show()
	e.SetSize(80, 24)
	e.View()

	cmd, _ := e.Update(tea.MouseMsg{Action: tea.MouseActionPress, X: 0, Y: 0})
	if _, ok := resultFrom(t, cmd); ok {
		t.Error("outside click should be ignored when the flag is off")
	}
}

func TestEngine_ViewShowsTitleMessageButtons(t *testing.T) {
	e := newOkCancelEngine(18)
	view := e.View()
	for _, want := range []string{"Confirm", "Proceed?", "OK", "Cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestEngine_ViewEmptyAfterFinish(t *testing.T) {
	e := newOkCancelEngine(19)
	e.Cancel()
	if e.View() != "" {
		t.Error("terminal dialog should render nothing")
	}
}

func TestEngine_TagTravelsWithResult(t *testing.T) {
	args := NewArgs()
	args.Set(KeyRequestCode, 20)
	args.Set(KeyTag, "confirm-delete")
	args.Set(KeyPositiveButtonTitle, "OK")
	e := newEngine(&okCancelContent{}, args, nil)
	e.show()

	cmd, _ := e.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res, ok := resultFrom(t, cmd)
	if !ok {
		t.Fatal("want result")
	}
	if res.Tag != "confirm-delete" {
		t.Errorf("tag = %q, want confirm-delete", res.Tag)
	}
	if got := res.Payload.String(KeyTag, ""); got != "confirm-delete" {
		t.Errorf("payload tag = %q, want confirm-delete", got)
	}
}
