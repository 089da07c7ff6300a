package dialog

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func init() {
	registerContent(kindTextInput, func() Content { return &textInputContent{} })
}

const kindTextInput = "textInput"

// Input types accepted by SetInputType.
const (
	// InputTypeText is the default free-form input.
	InputTypeText = "text"
	// InputTypeNumber restricts typing to ASCII digits (and a leading
	// minus sign).
	InputTypeNumber = "number"
	// InputTypePassword masks the typed characters.
	InputTypePassword = "password"
)

// newField builds a text field configured from the argument bag: hint as
// placeholder, maxLength as the character limit, inputType as echo mode
// and character filter.
func newField(args *Args) textinput.Model {
	field := textinput.New()
	field.Placeholder = args.String(KeyHint, "")
	field.Width = 32
	if max := args.Int(KeyMaxLength, 0); max > 0 {
		field.CharLimit = max
	}
	switch args.String(KeyInputType, InputTypeText) {
	case InputTypePassword:
		field.EchoMode = textinput.EchoPassword
		field.EchoCharacter = '*'
	case InputTypeNumber:
		field.Validate = func(s string) error {
			for i, r := range s {
				if r >= '0' && r <= '9' {
					continue
				}
				if r == '-' && i == 0 {
					continue
				}
				return errNotNumeric
			}
			return nil
		}
	}
	return field
}

type numericError struct{}

func (numericError) Error() string { return "digits only" }

var errNotNumeric = numericError{}

// textInputContent: message, one text field, OK/Cancel. The OK payload
// carries the field's text under "inputValue"; it is present even when
// empty.
type textInputContent struct {
	message string
	field   textinput.Model
}

func (*textInputContent) Kind() string { return kindTextInput }

func (c *textInputContent) Attach(args, saved *Args) {
	c.message = args.String(KeyMessage, "")
	c.field = newField(args)

	value := args.String(KeyInputValue, "")
	if saved != nil {
		value = saved.String(KeyInputValue, value)
	}
	c.field.SetValue(value)
	c.field.CursorEnd()
}

// Value returns the field's current text.
func (c *textInputContent) Value() string { return c.field.Value() }

func (c *textInputContent) Focus() { c.field.Focus() }
func (c *textInputContent) Blur()  { c.field.Blur() }

func (c *textInputContent) Update(msg tea.Msg) (Action, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		c.field, cmd = c.field.Update(msg)
		return ActionPass, cmd
	}
	switch key.String() {
	case "esc", "enter", "tab", "shift+tab", "up", "down":
		// Navigation and terminal keys belong to the frame.
		return ActionPass, nil
	}
	var cmd tea.Cmd
	c.field, cmd = c.field.Update(key)
	return ActionHandled, cmd
}

func (c *textInputContent) View(width int) string {
	field := c.field.View()
	if c.message == "" {
		return field
	}
	msg := textStyle().Width(width).Render(c.message)
	return lipgloss.JoinVertical(lipgloss.Left, msg, "", field)
}

func (c *textInputContent) Payload(out *Args) {
	out.Set(KeyInputValue, c.field.Value())
}

func (c *textInputContent) SaveState(out *Args) {
	out.Set(KeyInputValue, c.field.Value())
}

// inputBuilder carries the options shared by the input dialog builders.
type inputBuilder struct {
	builderBase
	positiveTitle string
	negativeTitle string
	inputValue    string
	hint          string
	maxLength     int
}

func (b *inputBuilder) makeArguments() *Args {
	args := b.builderBase.makeArguments()
	defaultButtonArgs(args, b.positiveTitle, b.negativeTitle, true)
	if b.inputValue != "" {
		args.Set(KeyInputValue, b.inputValue)
	}
	if b.hint != "" {
		args.Set(KeyHint, b.hint)
	}
	if b.maxLength > 0 {
		args.Set(KeyMaxLength, b.maxLength)
	}
	return args
}

// TextInputBuilder configures the free-form text input dialog.
type TextInputBuilder struct {
	inputBuilder
	inputType string
}

// NewTextInputBuilder starts a text input dialog.
func NewTextInputBuilder(parent Parent, requestCode int) *TextInputBuilder {
	return &TextInputBuilder{
		inputBuilder: inputBuilder{builderBase: newBuilderBase(parent, requestCode)},
	}
}

func (b *TextInputBuilder) SetTitle(title string) *TextInputBuilder {
	b.setTitle(title)
	return b
}

func (b *TextInputBuilder) SetMessage(message string) *TextInputBuilder {
	b.setMessage(message)
	return b
}

func (b *TextInputBuilder) SetTag(tag string) *TextInputBuilder {
	b.setTag(tag)
	return b
}

func (b *TextInputBuilder) SetCancelable(v bool) *TextInputBuilder {
	b.setCancelable(v)
	return b
}

func (b *TextInputBuilder) SetCanceledOnTouchOutside(v bool) *TextInputBuilder {
	b.setCanceledOnTouchOutside(v)
	return b
}

func (b *TextInputBuilder) SetPositiveButtonTitle(title string) *TextInputBuilder {
	b.positiveTitle = title
	return b
}

func (b *TextInputBuilder) SetNegativeButtonTitle(title string) *TextInputBuilder {
	b.negativeTitle = title
	return b
}

// SetInputValue sets the field's initial text.
func (b *TextInputBuilder) SetInputValue(value string) *TextInputBuilder {
	b.inputValue = value
	return b
}

// SetHint sets the placeholder shown while the field is empty.
func (b *TextInputBuilder) SetHint(hint string) *TextInputBuilder {
	b.hint = hint
	return b
}

// SetInputType selects the field behavior: InputTypeText (default),
// InputTypeNumber, or InputTypePassword.
func (b *TextInputBuilder) SetInputType(inputType string) *TextInputBuilder {
	b.inputType = inputType
	return b
}

// SetMaxLength caps the number of characters the field accepts.
func (b *TextInputBuilder) SetMaxLength(max int) *TextInputBuilder {
	b.maxLength = max
	return b
}

func (b *TextInputBuilder) makeArguments() *Args {
	args := b.inputBuilder.makeArguments()
	if b.inputType != "" {
		args.Set(KeyInputType, b.inputType)
	}
	return args
}

// Show displays the dialog.
func (b *TextInputBuilder) Show() {
	b.show(&textInputContent{}, b.makeArguments())
}
