package dialog

import (
	"testing"
)

type capture struct {
	calls       int
	requestCode int
	code        ResultCode
	payload     *Args
}

func (c *capture) OnDialogResult(requestCode int, code ResultCode, payload *Args) {
	c.calls++
	c.requestCode = requestCode
	c.code = code
	c.payload = payload
}

func TestRequestKey(t *testing.T) {
	if got := RequestKey(42); got != "tuidialog:42" {
		t.Errorf("RequestKey(42) = %q, want tuidialog:42", got)
	}
	if got := RequestKey(-1); got != "tuidialog:-1" {
		t.Errorf("RequestKey(-1) = %q, want tuidialog:-1", got)
	}
}

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry()
	c := &capture{}
	r.Register(7, c)

	payload := NewArgs()
	payload.Set(KeyWhich, 2)
	ok := r.Dispatch(ResultMsg{RequestCode: 7, Code: ResultOK, Payload: payload})
	if !ok {
		t.Fatal("Dispatch should find the listener")
	}
	if c.calls != 1 {
		t.Fatalf("calls = %d, want 1", c.calls)
	}
	if c.requestCode != 7 || c.code != ResultOK {
		t.Errorf("delivered (%d, %v), want (7, ResultOK)", c.requestCode, c.code)
	}
	if c.payload.Int(KeyWhich, -1) != 2 {
		t.Errorf("payload which = %d, want 2", c.payload.Int(KeyWhich, -1))
	}
}

func TestRegistry_MissingListenerDropsResult(t *testing.T) {
	r := NewRegistry()
	if r.Dispatch(ResultMsg{RequestCode: 99, Code: ResultOK}) {
		t.Error("Dispatch without a binding should report false")
	}
}

func TestRegistry_ReplaceBinding(t *testing.T) {
	r := NewRegistry()
	first := &capture{}
	second := &capture{}
	r.Register(5, first)
	r.Register(5, second)

	r.Dispatch(ResultMsg{RequestCode: 5, Code: ResultCanceled})
	if first.calls != 0 {
		t.Error("replaced listener should not be called")
	}
	if second.calls != 1 {
		t.Error("current listener should be called once")
	}
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()
	c := &capture{}
	r.Register(3, c)
	r.Unregister(3)

	if r.Registered(3) {
		t.Error("Registered should report false after Unregister")
	}
	if r.Dispatch(ResultMsg{RequestCode: 3, Code: ResultOK}) {
		t.Error("Dispatch after Unregister should drop the result")
	}
}

func TestRegistry_Close(t *testing.T) {
	r := NewRegistry()
	r.Register(1, &capture{})
	r.Register(2, &capture{})
	r.Close()

	if r.Registered(1) || r.Registered(2) {
		t.Error("Close should drop all bindings")
	}
}

func TestRegistry_NilListenerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register(nil) should panic")
		}
	}()
	NewRegistry().Register(1, nil)
}

func TestRegistry_ListenerPanicRecovered(t *testing.T) {
	r := NewRegistry()
	r.RegisterFunc(8, func(int, ResultCode, *Args) {
		panic("listener bug")
	})
	// Must not propagate; teardown continues.
	if !r.Dispatch(ResultMsg{RequestCode: 8, Code: ResultOK}) {
		t.Error("Dispatch should report true even when the listener panics")
	}
}

func TestListenerFunc(t *testing.T) {
	var got ResultCode
	f := ListenerFunc(func(_ int, code ResultCode, _ *Args) { got = code })
	f.OnDialogResult(1, ResultCanceled, nil)
	if got != ResultCanceled {
		t.Errorf("got %v, want ResultCanceled", got)
	}
}
