package dialog

import (
	"log/slog"

	"github.com/imoya/tuidialog/logging"
)

// Registry maps request codes to result listeners. It is the single
// delivery path between a finishing dialog and the host screen: the
// dialog never holds a listener reference, it only emits a ResultMsg
// carrying its request code, and whichever listener is registered under
// the derived key at delivery time receives the result. That indirection
// is what lets the host rebuild itself (and re-register) between showing
// a dialog and receiving its outcome.
//
// All methods must be called from the update loop; the registry does no
// locking of its own.
type Registry struct {
	bindings map[string]Listener
	log      *slog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[string]Listener),
		log:      logging.ForComponent(logging.CompRegistry),
	}
}

// Register binds requestCode to l. Re-registering the same code replaces
// the prior binding. Call this before showing any dialog that uses the
// code, typically when the host screen is constructed.
func (r *Registry) Register(requestCode int, l Listener) {
	if l == nil {
		panic("dialog: Register called with nil listener")
	}
	key := RequestKey(requestCode)
	if _, exists := r.bindings[key]; exists {
		r.log.Debug("replacing listener binding", "requestCode", requestCode)
	}
	r.bindings[key] = l
}

// RegisterFunc is Register for a bare function.
func (r *Registry) RegisterFunc(requestCode int, f ListenerFunc) {
	r.Register(requestCode, f)
}

// Unregister removes the binding for requestCode, if any.
func (r *Registry) Unregister(requestCode int) {
	delete(r.bindings, RequestKey(requestCode))
}

// Close drops every binding. Call it when the host screen's lifecycle
// ends; results delivered afterwards are dropped.
func (r *Registry) Close() {
	r.bindings = make(map[string]Listener)
}

// Registered reports whether a listener is bound for requestCode.
func (r *Registry) Registered(requestCode int) bool {
	_, ok := r.bindings[RequestKey(requestCode)]
	return ok
}

// Dispatch delivers a result tuple to the listener registered for its
// request code. Returns false when no listener is bound, in which case
// the result is silently dropped. A panic inside the listener is
// recovered and logged so it can never corrupt dialog teardown.
func (r *Registry) Dispatch(msg ResultMsg) (delivered bool) {
	l, ok := r.bindings[RequestKey(msg.RequestCode)]
	if !ok {
		r.log.Debug("no listener registered, dropping result",
			"requestCode", msg.RequestCode, "code", msg.Code.String())
		return false
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("listener panicked handling dialog result",
				"requestCode", msg.RequestCode,
				"code", msg.Code.String(),
				"panic", rec)
		}
	}()
	delivered = true
	l.OnDialogResult(msg.RequestCode, msg.Code, msg.Payload)
	return delivered
}
