package dialog

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imoya/tuidialog/logging"
)

func init() {
	registerContent(kindSingleChoice, func() Content { return &singleChoiceContent{} })
	registerContent(kindMultiChoice, func() Content { return &multiChoiceContent{} })
	registerContent(kindMultiChoiceAndButton, func() Content {
		return &multiChoiceAndButtonContent{}
	})
}

const (
	kindSingleChoice         = "singleChoice"
	kindMultiChoice          = "multiChoice"
	kindMultiChoiceAndButton = "multiChoiceAndButton"
)

// singleChoiceContent: radio list with OK/Cancel. Space selects the row
// under the cursor; OK reports the selection index under "which", or -1
// when nothing is selected.
type singleChoiceContent struct {
	list     itemList
	selected int
}

func (*singleChoiceContent) Kind() string { return kindSingleChoice }

func (c *singleChoiceContent) Attach(args, saved *Args) {
	items := requireItems(args)
	c.list = newItemList(items)

	c.selected = args.Int(KeyWhich, UnselectedPosition)
	if saved != nil {
		c.selected = saved.Int(KeyWhich, UnselectedPosition)
	}
	// Out-of-range positions recovered from arguments or saved state are
	// normalized to unselected, never propagated.
	if c.selected < UnselectedPosition || c.selected >= len(items) {
		logging.ForComponent(logging.CompDialog).Warn(
			"illegal selection position, resetting to unselected",
			"position", c.selected, "items", len(items))
		c.selected = UnselectedPosition
	}
	if c.selected >= 0 {
		c.list.cursorTo(c.selected)
	}
}

// SelectedPosition returns the current selection, or -1 when unselected.
func (c *singleChoiceContent) SelectedPosition() int { return c.selected }

func (c *singleChoiceContent) Focus() { c.list.focused = true }
func (c *singleChoiceContent) Blur()  { c.list.focused = false }

func (c *singleChoiceContent) Update(msg tea.Msg) (Action, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return ActionPass, nil
	}
	if cmd, handled := c.list.update(key); handled {
		return ActionHandled, cmd
	}
	if key.String() == " " {
		if i := c.list.currentIndex(); i >= 0 {
			c.selected = i
		}
		return ActionHandled, nil
	}
	return ActionPass, nil
}

func (c *singleChoiceContent) View(width int) string {
	return c.list.view(width, func(orig int) string {
		if orig == c.selected {
			return "(•) "
		}
		return "( ) "
	})
}

func (c *singleChoiceContent) Payload(out *Args) {
	out.Set(KeyWhich, c.selected)
}

func (c *singleChoiceContent) SaveState(out *Args) {
	out.Set(KeyWhich, c.selected)
}

// multiChoiceContent: checkbox list with OK/Cancel. Space toggles; OK
// reports the full checked list.
type multiChoiceContent struct {
	list    itemList
	checked []bool
}

func (*multiChoiceContent) Kind() string { return kindMultiChoice }

func (c *multiChoiceContent) Attach(args, saved *Args) {
	items := requireItems(args)
	c.list = newItemList(items)

	checked := args.Bools(KeyCheckedList)
	if saved != nil {
		checked = saved.Bools(KeyCheckedList)
	}
	// A restored list whose length does not match the item count cannot
	// be trusted; replace it with a fresh all-unchecked list.
	if checked != nil && len(checked) != len(items) {
		logging.ForComponent(logging.CompDialog).Warn(
			"illegal checked list length, resetting",
			"items", len(items), "checked", len(checked))
		checked = nil
	}
	if checked == nil {
		checked = make([]bool, len(items))
	}
	c.checked = checked
}

// CheckedList returns the current checked state of every item.
func (c *multiChoiceContent) CheckedList() []bool {
	out := make([]bool, len(c.checked))
	copy(out, c.checked)
	return out
}

func (c *multiChoiceContent) Focus() { c.list.focused = true }
func (c *multiChoiceContent) Blur()  { c.list.focused = false }

func (c *multiChoiceContent) Update(msg tea.Msg) (Action, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return ActionPass, nil
	}
	if cmd, handled := c.list.update(key); handled {
		return ActionHandled, cmd
	}
	if key.String() == " " {
		if i := c.list.currentIndex(); i >= 0 {
			c.checked[i] = !c.checked[i]
		}
		return ActionHandled, nil
	}
	return ActionPass, nil
}

func (c *multiChoiceContent) View(width int) string {
	return c.list.view(width, func(orig int) string {
		if c.checked[orig] {
			return "[x] "
		}
		return "[ ] "
	})
}

func (c *multiChoiceContent) Payload(out *Args) {
	out.Set(KeyCheckedList, c.CheckedList())
}

func (c *multiChoiceContent) SaveState(out *Args) {
	out.Set(KeyCheckedList, c.CheckedList())
}

// multiChoiceAndButtonContent adds the extra action button; its click
// surfaces as an ExtraButtonMsg carrying the current checked list.
type multiChoiceAndButtonContent struct {
	multiChoiceContent
}

func (*multiChoiceAndButtonContent) Kind() string { return kindMultiChoiceAndButton }

// choiceBuilder carries the options shared by the choice dialog
// builders. Like all list dialogs they are title-only: SetMessage
// panics.
type choiceBuilder struct {
	builderBase
	positiveTitle string
	negativeTitle string
	items         []string
}

func (b *choiceBuilder) makeArguments() *Args {
	args := b.builderBase.makeArguments()
	defaultButtonArgs(args, b.positiveTitle, b.negativeTitle, true)
	if b.items != nil {
		args.Set(KeyItems, b.items)
	}
	return args
}

// SingleChoiceBuilder configures the radio-list dialog.
type SingleChoiceBuilder struct {
	choiceBuilder
	selectedPosition int
}

// NewSingleChoiceBuilder starts a single-choice dialog.
func NewSingleChoiceBuilder(parent Parent, requestCode int) *SingleChoiceBuilder {
	return &SingleChoiceBuilder{
		choiceBuilder:    choiceBuilder{builderBase: newBuilderBase(parent, requestCode)},
		selectedPosition: UnselectedPosition,
	}
}

func (b *SingleChoiceBuilder) SetTitle(title string) *SingleChoiceBuilder {
	b.setTitle(title)
	return b
}

// SetMessage is not supported on choice dialogs; use SetTitle instead.
// Calling it panics immediately.
func (b *SingleChoiceBuilder) SetMessage(string) *SingleChoiceBuilder {
	panic("dialog: SetMessage is not supported on choice dialogs; use SetTitle instead")
}

func (b *SingleChoiceBuilder) SetTag(tag string) *SingleChoiceBuilder {
	b.setTag(tag)
	return b
}

func (b *SingleChoiceBuilder) SetCancelable(v bool) *SingleChoiceBuilder {
	b.setCancelable(v)
	return b
}

func (b *SingleChoiceBuilder) SetCanceledOnTouchOutside(v bool) *SingleChoiceBuilder {
	b.setCanceledOnTouchOutside(v)
	return b
}

func (b *SingleChoiceBuilder) SetPositiveButtonTitle(title string) *SingleChoiceBuilder {
	b.positiveTitle = title
	return b
}

func (b *SingleChoiceBuilder) SetNegativeButtonTitle(title string) *SingleChoiceBuilder {
	b.negativeTitle = title
	return b
}

// SetItems sets the choice items. Required.
func (b *SingleChoiceBuilder) SetItems(items []string) *SingleChoiceBuilder {
	b.items = items
	return b
}

// SetSelectedPosition sets the initial selection, or -1 for unselected.
func (b *SingleChoiceBuilder) SetSelectedPosition(pos int) *SingleChoiceBuilder {
	b.selectedPosition = pos
	return b
}

func (b *SingleChoiceBuilder) makeArguments() *Args {
	args := b.choiceBuilder.makeArguments()
	args.Set(KeyWhich, b.selectedPosition)
	return args
}

// Show displays the dialog. Panics if SetItems was never called.
func (b *SingleChoiceBuilder) Show() {
	b.show(&singleChoiceContent{}, b.makeArguments())
}

// MultiChoiceBuilder configures the checkbox-list dialog.
type MultiChoiceBuilder struct {
	choiceBuilder
	checkedList []bool
}

// NewMultiChoiceBuilder starts a multi-choice dialog.
func NewMultiChoiceBuilder(parent Parent, requestCode int) *MultiChoiceBuilder {
	return &MultiChoiceBuilder{
		choiceBuilder: choiceBuilder{builderBase: newBuilderBase(parent, requestCode)},
	}
}

func (b *MultiChoiceBuilder) SetTitle(title string) *MultiChoiceBuilder {
	b.setTitle(title)
	return b
}

// SetMessage is not supported on choice dialogs; use SetTitle instead.
// Calling it panics immediately.
func (b *MultiChoiceBuilder) SetMessage(string) *MultiChoiceBuilder {
	panic("dialog: SetMessage is not supported on choice dialogs; use SetTitle instead")
}

func (b *MultiChoiceBuilder) SetTag(tag string) *MultiChoiceBuilder {
	b.setTag(tag)
	return b
}

func (b *MultiChoiceBuilder) SetCancelable(v bool) *MultiChoiceBuilder {
	b.setCancelable(v)
	return b
}

func (b *MultiChoiceBuilder) SetCanceledOnTouchOutside(v bool) *MultiChoiceBuilder {
	b.setCanceledOnTouchOutside(v)
	return b
}

func (b *MultiChoiceBuilder) SetPositiveButtonTitle(title string) *MultiChoiceBuilder {
	b.positiveTitle = title
	return b
}

func (b *MultiChoiceBuilder) SetNegativeButtonTitle(title string) *MultiChoiceBuilder {
	b.negativeTitle = title
	return b
}

// SetItems sets the choice items. Required.
func (b *MultiChoiceBuilder) SetItems(items []string) *MultiChoiceBuilder {
	b.items = items
	return b
}

// SetCheckedList sets the initial checked state. When set it must have
// the same length as the items; a nil list means all unchecked.
func (b *MultiChoiceBuilder) SetCheckedList(checked []bool) *MultiChoiceBuilder {
	b.checkedList = checked
	return b
}

func (b *MultiChoiceBuilder) makeArguments() *Args {
	if b.checkedList != nil && b.items != nil && len(b.checkedList) != len(b.items) {
		panic("dialog: checked list length must match items length")
	}
	args := b.choiceBuilder.makeArguments()
	if b.checkedList != nil {
		args.Set(KeyCheckedList, b.checkedList)
	}
	return args
}

// Show displays the dialog. Panics if SetItems was never called.
func (b *MultiChoiceBuilder) Show() {
	b.show(&multiChoiceContent{}, b.makeArguments())
}

// MultiChoiceAndButtonBuilder adds an extra action button to the
// multi-choice dialog. Clicking it emits an ExtraButtonMsg with the
// current checked list; the dialog stays open.
type MultiChoiceAndButtonBuilder struct {
	MultiChoiceBuilder
	extraButtonTitle string
}

// NewMultiChoiceAndButtonBuilder starts a multi-choice dialog with an
// extra action button.
func NewMultiChoiceAndButtonBuilder(parent Parent, requestCode int) *MultiChoiceAndButtonBuilder {
	return &MultiChoiceAndButtonBuilder{
		MultiChoiceBuilder: *NewMultiChoiceBuilder(parent, requestCode),
	}
}

func (b *MultiChoiceAndButtonBuilder) SetTitle(title string) *MultiChoiceAndButtonBuilder {
	b.MultiChoiceBuilder.SetTitle(title)
	return b
}

func (b *MultiChoiceAndButtonBuilder) SetItems(items []string) *MultiChoiceAndButtonBuilder {
	b.MultiChoiceBuilder.SetItems(items)
	return b
}

// SetExtraButtonTitle sets the extra action button's label. Required.
func (b *MultiChoiceAndButtonBuilder) SetExtraButtonTitle(title string) *MultiChoiceAndButtonBuilder {
	b.extraButtonTitle = title
	return b
}

// Show displays the dialog. Panics if SetItems or SetExtraButtonTitle
// was never called.
func (b *MultiChoiceAndButtonBuilder) Show() {
	if b.extraButtonTitle == "" {
		panic("dialog: extra button title is required; call SetExtraButtonTitle before Show")
	}
	args := b.MultiChoiceBuilder.makeArguments()
	args.Set(KeyExtraButtonTitle, b.extraButtonTitle)
	b.show(&multiChoiceAndButtonContent{}, args)
}
