package dialog

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func init() {
	registerContent(kindNumberInput, func() Content { return &numberInputContent{} })
}

const kindNumberInput = "numberInput"

// isValidNumber reports whether s is a non-empty run of ASCII digits.
// Anything else (empty, signs, spaces, wide digits) does not count as a
// committed number.
func isValidNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// numberInputContent: message, numeric field, optional unit label,
// OK/Cancel. The OK payload carries the value under "inputValue" as an
// integer, and omits the key entirely when the field does not hold a
// valid number. Hosts must check Has before reading it.
type numberInputContent struct {
	message string
	unit    string
	field   textinput.Model
}

func (*numberInputContent) Kind() string { return kindNumberInput }

func (c *numberInputContent) Attach(args, saved *Args) {
	c.message = args.String(KeyMessage, "")
	c.unit = args.String(KeyUnit, "")

	numberArgs := args.Clone()
	numberArgs.Set(KeyInputType, InputTypeNumber)
	c.field = newField(numberArgs)

	value := ""
	if args.Has(KeyInputValue) {
		value = strconv.Itoa(args.Int(KeyInputValue, 0))
	}
	if saved != nil {
		value = saved.String(KeyInputValue, value)
	}
	c.field.SetValue(value)
	c.field.CursorEnd()
}

// Value returns the committed number. ok is false when the field does
// not hold a valid number.
func (c *numberInputContent) Value() (int, bool) {
	raw := c.field.Value()
	if !isValidNumber(raw) {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *numberInputContent) Focus() { c.field.Focus() }
func (c *numberInputContent) Blur()  { c.field.Blur() }

func (c *numberInputContent) Update(msg tea.Msg) (Action, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		c.field, cmd = c.field.Update(msg)
		return ActionPass, cmd
	}
	switch key.String() {
	case "esc", "enter", "tab", "shift+tab", "up", "down":
		return ActionPass, nil
	}
	var cmd tea.Cmd
	c.field, cmd = c.field.Update(key)
	return ActionHandled, cmd
}

func (c *numberInputContent) View(width int) string {
	field := c.field.View()
	if c.unit != "" {
		field = lipgloss.JoinHorizontal(lipgloss.Center, field, " "+dimStyle().Render(c.unit))
	}
	if c.message == "" {
		return field
	}
	msg := textStyle().Width(width).Render(c.message)
	return lipgloss.JoinVertical(lipgloss.Left, msg, "", field)
}

func (c *numberInputContent) Payload(out *Args) {
	if n, ok := c.Value(); ok {
		out.Set(KeyInputValue, n)
	}
}

func (c *numberInputContent) SaveState(out *Args) {
	// Save the raw text, not the parsed value, so an in-progress entry
	// survives recreation unchanged.
	out.Set(KeyInputValue, c.field.Value())
}

// NumberInputBuilder configures the integer input dialog.
type NumberInputBuilder struct {
	inputBuilder
	unit     string
	hasValue bool
	value    int
}

// NewNumberInputBuilder starts a number input dialog.
func NewNumberInputBuilder(parent Parent, requestCode int) *NumberInputBuilder {
	return &NumberInputBuilder{
		inputBuilder: inputBuilder{builderBase: newBuilderBase(parent, requestCode)},
	}
}

func (b *NumberInputBuilder) SetTitle(title string) *NumberInputBuilder {
	b.setTitle(title)
	return b
}

func (b *NumberInputBuilder) SetMessage(message string) *NumberInputBuilder {
	b.setMessage(message)
	return b
}

func (b *NumberInputBuilder) SetTag(tag string) *NumberInputBuilder {
	b.setTag(tag)
	return b
}

func (b *NumberInputBuilder) SetCancelable(v bool) *NumberInputBuilder {
	b.setCancelable(v)
	return b
}

func (b *NumberInputBuilder) SetCanceledOnTouchOutside(v bool) *NumberInputBuilder {
	b.setCanceledOnTouchOutside(v)
	return b
}

func (b *NumberInputBuilder) SetPositiveButtonTitle(title string) *NumberInputBuilder {
	b.positiveTitle = title
	return b
}

func (b *NumberInputBuilder) SetNegativeButtonTitle(title string) *NumberInputBuilder {
	b.negativeTitle = title
	return b
}

// SetInputValue sets the field's initial number.
func (b *NumberInputBuilder) SetInputValue(value int) *NumberInputBuilder {
	b.hasValue = true
	b.value = value
	return b
}

// SetHint sets the placeholder shown while the field is empty.
func (b *NumberInputBuilder) SetHint(hint string) *NumberInputBuilder {
	b.hint = hint
	return b
}

// SetMaxLength caps the number of digits the field accepts.
func (b *NumberInputBuilder) SetMaxLength(max int) *NumberInputBuilder {
	b.maxLength = max
	return b
}

// SetUnit sets a unit label rendered after the field, e.g. "px".
func (b *NumberInputBuilder) SetUnit(unit string) *NumberInputBuilder {
	b.unit = unit
	return b
}

func (b *NumberInputBuilder) makeArguments() *Args {
	args := b.inputBuilder.makeArguments()
	if b.hasValue {
		args.Set(KeyInputValue, b.value)
	}
	if b.unit != "" {
		args.Set(KeyUnit, b.unit)
	}
	return args
}

// Show displays the dialog.
func (b *NumberInputBuilder) Show() {
	b.show(&numberInputContent{}, b.makeArguments())
}
