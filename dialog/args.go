package dialog

import (
	"encoding/json"
	"maps"
)

// Argument and payload keys. These names are the serialized key space:
// they must round-trip exactly across a save/restore cycle, so treat them
// as a stable format.
const (
	KeyTitle                  = "title"
	KeyMessage                = "message"
	KeyTag                    = "tag"
	KeyRequestCode            = "requestCode"
	KeyCancelable             = "cancelable"
	KeyCanceledOnTouchOutside = "canceledOnTouchOutside"
	KeyPositiveButtonTitle    = "positiveButtonTitle"
	KeyNegativeButtonTitle    = "negativeButtonTitle"
	KeyButtonTitle            = "buttonTitle"
	KeyExtraButtonTitle       = "extraButtonTitle"
	KeyItems                  = "items"
	KeyWhich                  = "which"
	KeyCheckedList            = "checkedList"
	KeyInputValue             = "inputValue"
	KeyHint                   = "hint"
	KeyInputType              = "inputType"
	KeyMaxLength              = "maxLength"
	KeyUnit                   = "unit"
	KeyMin                    = "min"
	KeyMax                    = "max"
	KeyHour                   = "hour"
	KeyMinute                 = "minute"
	KeyIs24HourView           = "is24HourView"
	KeyChecked                = "checked"
	KeyCheckBoxText           = "checkBoxText"
)

// Args is the serializable key/value bag passed from a builder into a
// dialog, and from a dialog back to the host as a result payload.
//
// A dialog's argument bag is frozen once display begins: the dialog reads
// it and never writes to it. Transient UI state lives in a separate Args
// produced by SaveState.
type Args struct {
	m map[string]any
}

// NewArgs returns an empty bag.
func NewArgs() *Args {
	return &Args{m: make(map[string]any)}
}

// Set stores a value under key. Supported value types are the ones the
// getters understand: string, int, bool, []string, []bool.
func (a *Args) Set(key string, value any) {
	a.m[key] = value
}

// Delete removes a key.
func (a *Args) Delete(key string) {
	delete(a.m, key)
}

// Has reports whether key is present. Result payloads use key absence to
// signal "no value" (e.g. non-numeric number input), so hosts should
// check Has before reading optional keys.
func (a *Args) Has(key string) bool {
	if a == nil {
		return false
	}
	_, ok := a.m[key]
	return ok
}

// Len returns the number of keys.
func (a *Args) Len() int {
	if a == nil {
		return 0
	}
	return len(a.m)
}

// String returns the string under key, or def when absent or not a string.
func (a *Args) String(key, def string) string {
	if a == nil {
		return def
	}
	if s, ok := a.m[key].(string); ok {
		return s
	}
	return def
}

// Int returns the integer under key, or def. Values decoded from JSON
// arrive as float64 and are converted.
func (a *Args) Int(key string, def int) int {
	if a == nil {
		return def
	}
	switch v := a.m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// Bool returns the boolean under key, or def.
func (a *Args) Bool(key string, def bool) bool {
	if a == nil {
		return def
	}
	if b, ok := a.m[key].(bool); ok {
		return b
	}
	return def
}

// Strings returns the string slice under key, or nil. The returned slice
// is a copy; mutating it does not affect the bag.
func (a *Args) Strings(key string) []string {
	if a == nil {
		return nil
	}
	switch v := a.m[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	}
	return nil
}

// Bools returns the bool slice under key, or nil, copying like Strings.
func (a *Args) Bools(key string) []bool {
	if a == nil {
		return nil
	}
	switch v := a.m[key].(type) {
	case []bool:
		out := make([]bool, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]bool, 0, len(v))
		for _, e := range v {
			b, ok := e.(bool)
			if !ok {
				return nil
			}
			out = append(out, b)
		}
		return out
	}
	return nil
}

// Clone returns a shallow copy of the bag. Slice values are copied so the
// clone cannot alias the original's backing arrays.
func (a *Args) Clone() *Args {
	out := NewArgs()
	if a == nil {
		return out
	}
	maps.Copy(out.m, a.m)
	for k, v := range out.m {
		switch s := v.(type) {
		case []string:
			c := make([]string, len(s))
			copy(c, s)
			out.m[k] = c
		case []bool:
			c := make([]bool, len(s))
			copy(c, s)
			out.m[k] = c
		}
	}
	return out
}

// MarshalJSON serializes the bag as a plain JSON object.
func (a *Args) MarshalJSON() ([]byte, error) {
	if a == nil || a.m == nil {
		return []byte("null"), nil
	}
	return json.Marshal(a.m)
}

// UnmarshalJSON restores a bag serialized by MarshalJSON.
func (a *Args) UnmarshalJSON(data []byte) error {
	m := make(map[string]any)
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	a.m = m
	return nil
}
