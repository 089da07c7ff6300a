package dialog

import "strconv"

// ResultCode is the terminal disposition of a dialog.
type ResultCode int

const (
	// ResultOK reports the positive action, or an item click for list and
	// single-button flows.
	ResultOK ResultCode = iota

	// ResultCanceled reports the negative action, an outside click, or a
	// system dismissal.
	ResultCanceled
)

func (c ResultCode) String() string {
	switch c {
	case ResultOK:
		return "ok"
	case ResultCanceled:
		return "canceled"
	}
	return "unknown(" + strconv.Itoa(int(c)) + ")"
}

// UnselectedPosition is the sentinel selection index for choice dialogs.
const UnselectedPosition = -1

// requestKeyPrefix namespaces result-delivery keys. It must stay stable:
// a registration made before a process restart has to match a delivery
// made after it.
const requestKeyPrefix = "tuidialog:"

// RequestKey derives the result-delivery channel key for a request code.
func RequestKey(requestCode int) string {
	return requestKeyPrefix + strconv.Itoa(requestCode)
}

// ResultMsg is the normalized result tuple a finished dialog emits as a
// bubbletea message. Route it through Manager.Update (or directly into
// Registry.Dispatch) to reach the listener registered for RequestCode.
type ResultMsg struct {
	// RequestCode is the caller-chosen correlation key.
	RequestCode int

	// Code is OK or Canceled.
	Code ResultCode

	// Payload carries dialog-specific output. Nil on cancellation.
	Payload *Args

	// Tag is the builder-supplied instance tag, empty if none was set.
	Tag string
}

// Listener receives dialog outcomes. Implementations are invoked exactly
// once per dialog lifecycle and must not panic; a panic is caught at the
// dispatch site and logged as a host-screen bug.
type Listener interface {
	OnDialogResult(requestCode int, code ResultCode, payload *Args)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(requestCode int, code ResultCode, payload *Args)

// OnDialogResult calls f.
func (f ListenerFunc) OnDialogResult(requestCode int, code ResultCode, payload *Args) {
	f(requestCode, code, payload)
}
