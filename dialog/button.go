package dialog

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func init() {
	registerContent(kindSingleButton, func() Content { return &singleButtonContent{} })
	registerContent(kindTwoButton, func() Content { return &twoButtonContent{} })
	registerContent(kindOkCancel, func() Content { return &okCancelContent{} })
	registerContent(kindSingleButtonAndCheck, func() Content { return &checkContent{} })
}

const (
	kindSingleButton         = "singleButton"
	kindTwoButton            = "twoButton"
	kindOkCancel             = "okCancel"
	kindSingleButtonAndCheck = "singleButtonAndCheck"
)

// messageBody renders the message line shared by the plain button
// dialogs. It has no transient state and takes no input.
type messageBody struct {
	message string
}

func (b *messageBody) Attach(args, _ *Args) {
	b.message = args.String(KeyMessage, "")
}

func (b *messageBody) Update(tea.Msg) (Action, tea.Cmd) { return ActionPass, nil }

func (b *messageBody) View(width int) string {
	if b.message == "" {
		return ""
	}
	return textStyle().Width(width).Render(b.message)
}

func (b *messageBody) Payload(*Args)   {}
func (b *messageBody) SaveState(*Args) {}

// singleButtonContent: title, message, one button. The click itself is
// the signal; the OK payload carries nothing beyond the tag.
type singleButtonContent struct{ messageBody }

func (*singleButtonContent) Kind() string { return kindSingleButton }

// twoButtonContent: title, message, two buttons. Either button ends the
// dialog with OK; the payload's "which" field identifies the button
// (0 positive, 1 negative). Cancellation still reports Canceled.
type twoButtonContent struct{ messageBody }

func (*twoButtonContent) Kind() string { return kindTwoButton }

func (*twoButtonContent) MapButton(which int, payload *Args) (ResultCode, bool) {
	payload.Set(KeyWhich, which)
	return ResultOK, true
}

// okCancelContent: positive maps to OK, negative to Canceled.
type okCancelContent struct{ messageBody }

func (*okCancelContent) Kind() string { return kindOkCancel }

// checkContent: message, one checkbox, one button. OK payload reports
// the checkbox state under "checked".
type checkContent struct {
	messageBody
	label   string
	checked bool
	focused bool
}

func (*checkContent) Kind() string { return kindSingleButtonAndCheck }

func (c *checkContent) Attach(args, saved *Args) {
	c.messageBody.Attach(args, saved)
	c.label = args.String(KeyCheckBoxText, "")
	c.checked = args.Bool(KeyChecked, false)
	if saved != nil {
		c.checked = saved.Bool(KeyChecked, c.checked)
	}
}

func (c *checkContent) Focus() { c.focused = true }
func (c *checkContent) Blur()  { c.focused = false }

func (c *checkContent) Update(msg tea.Msg) (Action, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return ActionPass, nil
	}
	if key.String() == " " {
		c.checked = !c.checked
		return ActionHandled, nil
	}
	return ActionPass, nil
}

func (c *checkContent) View(width int) string {
	mark := "[ ]"
	if c.checked {
		mark = "[x]"
	}
	line := mark + " " + truncate(c.label, width-4)
	style := textStyle()
	if c.focused {
		style = accentStyle()
	}
	msg := c.messageBody.View(width)
	if msg == "" {
		return style.Render(line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, msg, "", style.Render(line))
}

func (c *checkContent) Payload(out *Args) {
	out.Set(KeyChecked, c.checked)
}

func (c *checkContent) SaveState(out *Args) {
	out.Set(KeyChecked, c.checked)
}

// SingleButtonBuilder configures a dialog with a title, a message, and
// one button.
type SingleButtonBuilder struct {
	builderBase
	buttonTitle string
}

// NewSingleButtonBuilder starts a single-button dialog for the parent
// screen. The request code correlates the eventual result.
func NewSingleButtonBuilder(parent Parent, requestCode int) *SingleButtonBuilder {
	return &SingleButtonBuilder{builderBase: newBuilderBase(parent, requestCode)}
}

func (b *SingleButtonBuilder) SetTitle(title string) *SingleButtonBuilder {
	b.setTitle(title)
	return b
}

func (b *SingleButtonBuilder) SetMessage(message string) *SingleButtonBuilder {
	b.setMessage(message)
	return b
}

func (b *SingleButtonBuilder) SetTag(tag string) *SingleButtonBuilder {
	b.setTag(tag)
	return b
}

func (b *SingleButtonBuilder) SetCancelable(v bool) *SingleButtonBuilder {
	b.setCancelable(v)
	return b
}

func (b *SingleButtonBuilder) SetCanceledOnTouchOutside(v bool) *SingleButtonBuilder {
	b.setCanceledOnTouchOutside(v)
	return b
}

// SetButtonTitle sets the button label. Defaults to the package-wide
// positive label.
func (b *SingleButtonBuilder) SetButtonTitle(title string) *SingleButtonBuilder {
	b.buttonTitle = title
	return b
}

func (b *SingleButtonBuilder) makeArguments() *Args {
	args := b.builderBase.makeArguments()
	label := b.buttonTitle
	if label == "" {
		label = DefaultPositiveLabel
	}
	args.Set(KeyButtonTitle, label)
	return args
}

// Show displays the dialog.
func (b *SingleButtonBuilder) Show() {
	b.show(&singleButtonContent{}, b.makeArguments())
}

// TwoButtonBuilder configures a dialog with positive and negative
// buttons where either click reports OK with the button index.
type TwoButtonBuilder struct {
	builderBase
	positiveTitle string
	negativeTitle string
}

// NewTwoButtonBuilder starts a two-button dialog.
func NewTwoButtonBuilder(parent Parent, requestCode int) *TwoButtonBuilder {
	return &TwoButtonBuilder{builderBase: newBuilderBase(parent, requestCode)}
}

func (b *TwoButtonBuilder) SetTitle(title string) *TwoButtonBuilder {
	b.setTitle(title)
	return b
}

func (b *TwoButtonBuilder) SetMessage(message string) *TwoButtonBuilder {
	b.setMessage(message)
	return b
}

func (b *TwoButtonBuilder) SetTag(tag string) *TwoButtonBuilder {
	b.setTag(tag)
	return b
}

func (b *TwoButtonBuilder) SetCancelable(v bool) *TwoButtonBuilder {
	b.setCancelable(v)
	return b
}

func (b *TwoButtonBuilder) SetCanceledOnTouchOutside(v bool) *TwoButtonBuilder {
	b.setCanceledOnTouchOutside(v)
	return b
}

func (b *TwoButtonBuilder) SetPositiveButtonTitle(title string) *TwoButtonBuilder {
	b.positiveTitle = title
	return b
}

func (b *TwoButtonBuilder) SetNegativeButtonTitle(title string) *TwoButtonBuilder {
	b.negativeTitle = title
	return b
}

func (b *TwoButtonBuilder) makeArguments() *Args {
	args := b.builderBase.makeArguments()
	defaultButtonArgs(args, b.positiveTitle, b.negativeTitle, true)
	return args
}

// Show displays the dialog.
func (b *TwoButtonBuilder) Show() {
	b.show(&twoButtonContent{}, b.makeArguments())
}

// OkCancelBuilder configures the plain confirmation dialog: OK reports
// ResultOK, Cancel (or dismissal) reports ResultCanceled.
type OkCancelBuilder struct {
	builderBase
	positiveTitle string
	negativeTitle string
}

// NewOkCancelBuilder starts an OK/Cancel dialog.
func NewOkCancelBuilder(parent Parent, requestCode int) *OkCancelBuilder {
	return &OkCancelBuilder{builderBase: newBuilderBase(parent, requestCode)}
}

func (b *OkCancelBuilder) SetTitle(title string) *OkCancelBuilder {
	b.setTitle(title)
	return b
}

func (b *OkCancelBuilder) SetMessage(message string) *OkCancelBuilder {
	b.setMessage(message)
	return b
}

func (b *OkCancelBuilder) SetTag(tag string) *OkCancelBuilder {
	b.setTag(tag)
	return b
}

func (b *OkCancelBuilder) SetCancelable(v bool) *OkCancelBuilder {
	b.setCancelable(v)
	return b
}

func (b *OkCancelBuilder) SetCanceledOnTouchOutside(v bool) *OkCancelBuilder {
	b.setCanceledOnTouchOutside(v)
	return b
}

func (b *OkCancelBuilder) SetPositiveButtonTitle(title string) *OkCancelBuilder {
	b.positiveTitle = title
	return b
}

func (b *OkCancelBuilder) SetNegativeButtonTitle(title string) *OkCancelBuilder {
	b.negativeTitle = title
	return b
}

func (b *OkCancelBuilder) makeArguments() *Args {
	args := b.builderBase.makeArguments()
	defaultButtonArgs(args, b.positiveTitle, b.negativeTitle, true)
	return args
}

// Show displays the dialog.
func (b *OkCancelBuilder) Show() {
	b.show(&okCancelContent{}, b.makeArguments())
}

// SingleButtonAndCheckBuilder adds a checkbox to the single-button
// dialog; the OK payload reports its state under "checked".
type SingleButtonAndCheckBuilder struct {
	builderBase
	buttonTitle  string
	checkBoxText string
	checked      bool
}

// NewSingleButtonAndCheckBuilder starts a single-button dialog with a
// checkbox.
func NewSingleButtonAndCheckBuilder(parent Parent, requestCode int) *SingleButtonAndCheckBuilder {
	return &SingleButtonAndCheckBuilder{builderBase: newBuilderBase(parent, requestCode)}
}

func (b *SingleButtonAndCheckBuilder) SetTitle(title string) *SingleButtonAndCheckBuilder {
	b.setTitle(title)
	return b
}

func (b *SingleButtonAndCheckBuilder) SetMessage(message string) *SingleButtonAndCheckBuilder {
	b.setMessage(message)
	return b
}

func (b *SingleButtonAndCheckBuilder) SetTag(tag string) *SingleButtonAndCheckBuilder {
	b.setTag(tag)
	return b
}

func (b *SingleButtonAndCheckBuilder) SetCancelable(v bool) *SingleButtonAndCheckBuilder {
	b.setCancelable(v)
	return b
}

func (b *SingleButtonAndCheckBuilder) SetCanceledOnTouchOutside(v bool) *SingleButtonAndCheckBuilder {
	b.setCanceledOnTouchOutside(v)
	return b
}

func (b *SingleButtonAndCheckBuilder) SetButtonTitle(title string) *SingleButtonAndCheckBuilder {
	b.buttonTitle = title
	return b
}

// SetCheckBoxText sets the checkbox label.
func (b *SingleButtonAndCheckBuilder) SetCheckBoxText(text string) *SingleButtonAndCheckBuilder {
	b.checkBoxText = text
	return b
}

// SetChecked sets the checkbox initial state.
func (b *SingleButtonAndCheckBuilder) SetChecked(checked bool) *SingleButtonAndCheckBuilder {
	b.checked = checked
	return b
}

func (b *SingleButtonAndCheckBuilder) makeArguments() *Args {
	args := b.builderBase.makeArguments()
	label := b.buttonTitle
	if label == "" {
		label = DefaultPositiveLabel
	}
	args.Set(KeyButtonTitle, label)
	if b.checkBoxText != "" {
		args.Set(KeyCheckBoxText, b.checkBoxText)
	}
	args.Set(KeyChecked, b.checked)
	return args
}

// Show displays the dialog.
func (b *SingleButtonAndCheckBuilder) Show() {
	b.show(&checkContent{}, b.makeArguments())
}
