package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

func init() {
	registerContent(kindStringArray, func() Content { return &stringArrayContent{} })
}

const kindStringArray = "stringArray"

// maxVisibleItems caps how many rows a list renders before scrolling.
const maxVisibleItems = 8

// itemList is the scrollable, fuzzy-filterable item widget shared by the
// list and choice dialogs. "/" enters filter mode; typing narrows the
// visible set with fuzzy matching, esc clears the filter, enter keeps it
// and returns focus to the list. The cursor always addresses a visible
// row; currentIndex translates it back to the original item index.
type itemList struct {
	items   []string
	visible []int // original indices currently shown
	cursor  int   // index into visible

	filter    textinput.Model
	filtering bool
	focused   bool
}

func newItemList(items []string) itemList {
	filter := textinput.New()
	filter.Placeholder = "filter..."
	filter.CharLimit = 64
	filter.Width = 24
	l := itemList{items: items, filter: filter}
	l.resetVisible()
	return l
}

func (l *itemList) resetVisible() {
	l.visible = make([]int, len(l.items))
	for i := range l.items {
		l.visible[i] = i
	}
	l.clampCursor()
}

func (l *itemList) applyFilter() {
	pattern := strings.TrimSpace(l.filter.Value())
	if pattern == "" {
		l.resetVisible()
		return
	}
	matches := fuzzy.Find(pattern, l.items)
	l.visible = make([]int, 0, len(matches))
	for _, m := range matches {
		l.visible = append(l.visible, m.Index)
	}
	l.clampCursor()
}

func (l *itemList) clampCursor() {
	if l.cursor >= len(l.visible) {
		l.cursor = len(l.visible) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// currentIndex returns the original index under the cursor, or -1 when
// the visible set is empty.
func (l *itemList) currentIndex() int {
	if len(l.visible) == 0 || l.cursor >= len(l.visible) {
		return -1
	}
	return l.visible[l.cursor]
}

// cursorTo moves the cursor to the visible row showing original index i,
// if it is visible.
func (l *itemList) cursorTo(i int) {
	for vi, orig := range l.visible {
		if orig == i {
			l.cursor = vi
			return
		}
	}
}

// update handles a key while the list is focused. Returns true when the
// key was consumed.
func (l *itemList) update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if l.filtering {
		switch msg.String() {
		case "esc":
			l.filtering = false
			l.filter.SetValue("")
			l.filter.Blur()
			l.resetVisible()
			return nil, true
		case "enter":
			l.filtering = false
			l.filter.Blur()
			return nil, true
		default:
			var cmd tea.Cmd
			l.filter, cmd = l.filter.Update(msg)
			l.applyFilter()
			return cmd, true
		}
	}

	switch msg.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
		return nil, true
	case "down", "j":
		if l.cursor < len(l.visible)-1 {
			l.cursor++
		}
		return nil, true
	case "home":
		l.cursor = 0
		return nil, true
	case "end":
		l.cursor = len(l.visible) - 1
		l.clampCursor()
		return nil, true
	case "/":
		l.filtering = true
		l.filter.Focus()
		return textinput.Blink, true
	}
	return nil, false
}

// view renders the visible window. marker decorates each row given its
// original index (radio dot, checkbox, or nothing).
func (l *itemList) view(width int, marker func(orig int) string) string {
	var b strings.Builder

	if l.filtering || l.filter.Value() != "" {
		b.WriteString(dimStyle().Render("/ "))
		b.WriteString(l.filter.View())
		b.WriteString("\n")
	}

	if len(l.visible) == 0 {
		b.WriteString(dimStyle().Render("(no matches)"))
		return b.String()
	}

	start := 0
	if l.cursor >= maxVisibleItems {
		start = l.cursor - maxVisibleItems + 1
	}
	end := start + maxVisibleItems
	if end > len(l.visible) {
		end = len(l.visible)
	}

	for vi := start; vi < end; vi++ {
		orig := l.visible[vi]
		prefix := "  "
		style := textStyle()
		if vi == l.cursor && l.focused {
			prefix = "> "
			style = accentStyle()
		}
		line := prefix + marker(orig) + truncate(l.items[orig], width-len(prefix)-len(marker(orig)))
		b.WriteString(style.Render(line))
		if vi < end-1 {
			b.WriteString("\n")
		}
	}
	if rest := len(l.visible) - end; rest > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle().Render(fmt.Sprintf("  … and %d more", rest)))
	}
	return b.String()
}

// requireItems pulls the item list out of the argument bag; the list is
// a hard precondition for every list-based dialog.
func requireItems(args *Args) []string {
	items := args.Strings(KeyItems)
	if items == nil {
		panic("dialog: items are required; call SetItems before Show")
	}
	return items
}

// stringArrayContent: title plus clickable items, no buttons. Clicking
// an item finishes the dialog with OK and the item's index as "which".
type stringArrayContent struct {
	list itemList
}

func (*stringArrayContent) Kind() string { return kindStringArray }

func (c *stringArrayContent) Attach(args, saved *Args) {
	c.list = newItemList(requireItems(args))
	if saved != nil {
		if pos := saved.Int(KeyWhich, 0); pos > 0 && pos < len(c.list.items) {
			c.list.cursorTo(pos)
		}
	}
}

func (c *stringArrayContent) Focus() { c.list.focused = true }
func (c *stringArrayContent) Blur()  { c.list.focused = false }

func (c *stringArrayContent) Update(msg tea.Msg) (Action, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return ActionPass, nil
	}
	if cmd, handled := c.list.update(key); handled {
		return ActionHandled, cmd
	}
	if key.String() == "enter" && c.list.currentIndex() >= 0 {
		return ActionFinish, nil
	}
	return ActionPass, nil
}

func (c *stringArrayContent) View(width int) string {
	return c.list.view(width, func(int) string { return "" })
}

func (c *stringArrayContent) Payload(out *Args) {
	out.Set(KeyWhich, c.list.currentIndex())
}

func (c *stringArrayContent) SaveState(out *Args) {
	out.Set(KeyWhich, c.list.currentIndex())
}

// StringArrayBuilder configures the clickable item-list dialog. List
// dialogs show a title and items only; SetMessage is not supported.
type StringArrayBuilder struct {
	builderBase
	items []string
}

// NewStringArrayBuilder starts an item-list dialog.
func NewStringArrayBuilder(parent Parent, requestCode int) *StringArrayBuilder {
	return &StringArrayBuilder{builderBase: newBuilderBase(parent, requestCode)}
}

func (b *StringArrayBuilder) SetTitle(title string) *StringArrayBuilder {
	b.setTitle(title)
	return b
}

// SetMessage is not supported on list dialogs; use SetTitle instead.
// Calling it panics immediately.
func (b *StringArrayBuilder) SetMessage(string) *StringArrayBuilder {
	panic("dialog: SetMessage is not supported on list dialogs; use SetTitle instead")
}

func (b *StringArrayBuilder) SetTag(tag string) *StringArrayBuilder {
	b.setTag(tag)
	return b
}

func (b *StringArrayBuilder) SetCancelable(v bool) *StringArrayBuilder {
	b.setCancelable(v)
	return b
}

func (b *StringArrayBuilder) SetCanceledOnTouchOutside(v bool) *StringArrayBuilder {
	b.setCanceledOnTouchOutside(v)
	return b
}

// SetItems sets the clickable items. Required.
func (b *StringArrayBuilder) SetItems(items []string) *StringArrayBuilder {
	b.items = items
	return b
}

func (b *StringArrayBuilder) makeArguments() *Args {
	args := b.builderBase.makeArguments()
	if b.items != nil {
		args.Set(KeyItems, b.items)
	}
	return args
}

// Show displays the dialog. Panics if SetItems was never called.
func (b *StringArrayBuilder) Show() {
	b.show(&stringArrayContent{}, b.makeArguments())
}
