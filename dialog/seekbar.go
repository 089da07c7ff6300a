package dialog

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func init() {
	registerContent(kindSeekBar, func() Content { return &seekBarContent{} })
	registerContent(kindSeekBarAndButton, func() Content { return &seekBarAndButtonContent{} })
}

const (
	kindSeekBar          = "seekBar"
	kindSeekBarAndButton = "seekBarAndButton"
)

// seekBarInput couples a slider with a text mirror of its value. Moving
// the slider rewrites the text; editing the text moves the slider. Both
// directions go through sync functions guarded against re-entry, since
// each side's update triggers the other's.
type seekBarInput struct {
	min, max int
	value    int

	field     textinput.Model
	inCorrect bool
	focused   bool
}

func newSeekBarInput(min, max, value int) seekBarInput {
	field := textinput.New()
	field.Width = 8
	field.CharLimit = 11
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
	s := seekBarInput{min: min, max: max, value: value, field: field}
	s.setValue(value)
	return s
}

// setValue clamps v into range and rewrites the text mirror.
func (s *seekBarInput) setValue(v int) {
	if s.inCorrect {
		return
	}
	s.inCorrect = true
	defer func() { s.inCorrect = false }()

	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	s.value = v
	s.field.SetValue(strconv.Itoa(v))
	s.field.CursorEnd()
}

// syncFromText interprets the current text as a value. An empty field
// reads as the minimum, a lone minus sign as zero when the range allows
// negatives. Out-of-range entries are clamped and the text rewritten to
// the clamped value.
func (s *seekBarInput) syncFromText() {
	if s.inCorrect {
		return
	}
	s.inCorrect = true
	defer func() { s.inCorrect = false }()

	raw := s.field.Value()
	var v int
	switch {
	case raw == "":
		v = s.min
	case raw == "-" && s.min < 0:
		v = 0
	default:
		n, err := strconv.Atoi(raw)
		if err != nil {
			n = 0
		}
		v = n
	}
	if v < s.min {
		v = s.min
		s.field.SetValue(strconv.Itoa(v))
		s.field.CursorEnd()
	}
	if v > s.max {
		v = s.max
		s.field.SetValue(strconv.Itoa(v))
		s.field.CursorEnd()
	}
	s.value = v
}

// update handles a key while the widget is focused.
func (s *seekBarInput) update(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "left", "h":
		s.setValue(s.value - 1)
		return nil, true
	case "right", "l":
		s.setValue(s.value + 1)
		return nil, true
	case "home":
		s.setValue(s.min)
		return nil, true
	case "end":
		s.setValue(s.max)
		return nil, true
	case "esc", "enter", "tab", "shift+tab", "up", "down":
		return nil, false
	}
	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)
	s.syncFromText()
	return cmd, true
}

// view renders the track with a handle at the value's position, the
// text mirror alongside.
func (s *seekBarInput) view(width int) string {
	trackWidth := width - 14
	if trackWidth < 10 {
		trackWidth = 10
	}
	pos := 0
	if s.max > s.min {
		pos = (s.value - s.min) * (trackWidth - 1) / (s.max - s.min)
	}
	var track strings.Builder
	for i := 0; i < trackWidth; i++ {
		if i == pos {
			track.WriteString("●")
		} else {
			track.WriteString("─")
		}
	}
	style := dimStyle()
	if s.focused {
		style = accentStyle()
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		style.Render(track.String()), " ", s.field.View())
}

// seekBarContent: message, slider with a numeric mirror, OK/Cancel. The
// OK payload carries the slider value under "inputValue".
type seekBarContent struct {
	message string
	bar     seekBarInput
}

func (*seekBarContent) Kind() string { return kindSeekBar }

func (c *seekBarContent) Attach(args, saved *Args) {
	c.message = args.String(KeyMessage, "")
	min := args.Int(KeyMin, 0)
	max := args.Int(KeyMax, 100)
	value := args.Int(KeyInputValue, min)
	if saved != nil {
		value = saved.Int(KeyInputValue, value)
	}
	c.bar = newSeekBarInput(min, max, value)
}

// Value returns the slider's current value.
func (c *seekBarContent) Value() int { return c.bar.value }

func (c *seekBarContent) Focus() {
	c.bar.focused = true
	c.bar.field.Focus()
}

func (c *seekBarContent) Blur() {
	c.bar.focused = false
	c.bar.field.Blur()
}

func (c *seekBarContent) Update(msg tea.Msg) (Action, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return ActionPass, nil
	}
	if cmd, handled := c.bar.update(key); handled {
		return ActionHandled, cmd
	}
	return ActionPass, nil
}

func (c *seekBarContent) View(width int) string {
	bar := c.bar.view(width)
	if c.message == "" {
		return bar
	}
	msg := textStyle().Width(width).Render(c.message)
	return lipgloss.JoinVertical(lipgloss.Left, msg, "", bar)
}

func (c *seekBarContent) Payload(out *Args) {
	out.Set(KeyInputValue, c.bar.value)
}

func (c *seekBarContent) SaveState(out *Args) {
	out.Set(KeyInputValue, c.bar.value)
}

// seekBarAndButtonContent adds the extra action button; its click
// surfaces as an ExtraButtonMsg carrying the current value.
type seekBarAndButtonContent struct {
	seekBarContent
}

func (*seekBarAndButtonContent) Kind() string { return kindSeekBarAndButton }

// SeekBarInputBuilder configures the slider input dialog.
type SeekBarInputBuilder struct {
	builderBase
	positiveTitle string
	negativeTitle string
	min, max      int
	hasMax        bool
	hasValue      bool
	value         int
}

// NewSeekBarInputBuilder starts a slider input dialog. The range
// defaults to 0..100.
func NewSeekBarInputBuilder(parent Parent, requestCode int) *SeekBarInputBuilder {
	return &SeekBarInputBuilder{builderBase: newBuilderBase(parent, requestCode)}
}

func (b *SeekBarInputBuilder) SetTitle(title string) *SeekBarInputBuilder {
	b.setTitle(title)
	return b
}

func (b *SeekBarInputBuilder) SetMessage(message string) *SeekBarInputBuilder {
	b.setMessage(message)
	return b
}

func (b *SeekBarInputBuilder) SetTag(tag string) *SeekBarInputBuilder {
	b.setTag(tag)
	return b
}

func (b *SeekBarInputBuilder) SetCancelable(v bool) *SeekBarInputBuilder {
	b.setCancelable(v)
	return b
}

func (b *SeekBarInputBuilder) SetCanceledOnTouchOutside(v bool) *SeekBarInputBuilder {
	b.setCanceledOnTouchOutside(v)
	return b
}

func (b *SeekBarInputBuilder) SetPositiveButtonTitle(title string) *SeekBarInputBuilder {
	b.positiveTitle = title
	return b
}

func (b *SeekBarInputBuilder) SetNegativeButtonTitle(title string) *SeekBarInputBuilder {
	b.negativeTitle = title
	return b
}

// SetMin sets the range minimum. Defaults to 0.
func (b *SeekBarInputBuilder) SetMin(min int) *SeekBarInputBuilder {
	b.min = min
	return b
}

// SetMax sets the range maximum. Defaults to 100.
func (b *SeekBarInputBuilder) SetMax(max int) *SeekBarInputBuilder {
	b.max = max
	b.hasMax = true
	return b
}

// SetValue sets the initial value. Defaults to the range minimum.
func (b *SeekBarInputBuilder) SetValue(value int) *SeekBarInputBuilder {
	b.hasValue = true
	b.value = value
	return b
}

func (b *SeekBarInputBuilder) makeArguments() *Args {
	max := b.max
	if !b.hasMax {
		max = 100
	}
	if b.min > max {
		panic("dialog: seek bar min must not exceed max")
	}
	args := b.builderBase.makeArguments()
	defaultButtonArgs(args, b.positiveTitle, b.negativeTitle, true)
	args.Set(KeyMin, b.min)
	args.Set(KeyMax, max)
	if b.hasValue {
		args.Set(KeyInputValue, b.value)
	}
	return args
}

// Show displays the dialog. Panics if the configured min exceeds max.
func (b *SeekBarInputBuilder) Show() {
	b.show(&seekBarContent{}, b.makeArguments())
}

// SeekBarAndButtonBuilder adds an extra action button to the slider
// dialog. Clicking it emits an ExtraButtonMsg with the current value;
// the dialog stays open.
type SeekBarAndButtonBuilder struct {
	SeekBarInputBuilder
	extraButtonTitle string
}

// NewSeekBarAndButtonBuilder starts a slider dialog with an extra
// action button.
func NewSeekBarAndButtonBuilder(parent Parent, requestCode int) *SeekBarAndButtonBuilder {
	return &SeekBarAndButtonBuilder{
		SeekBarInputBuilder: *NewSeekBarInputBuilder(parent, requestCode),
	}
}

func (b *SeekBarAndButtonBuilder) SetTitle(title string) *SeekBarAndButtonBuilder {
	b.SeekBarInputBuilder.SetTitle(title)
	return b
}

func (b *SeekBarAndButtonBuilder) SetMin(min int) *SeekBarAndButtonBuilder {
	b.SeekBarInputBuilder.SetMin(min)
	return b
}

func (b *SeekBarAndButtonBuilder) SetMax(max int) *SeekBarAndButtonBuilder {
	b.SeekBarInputBuilder.SetMax(max)
	return b
}

func (b *SeekBarAndButtonBuilder) SetValue(value int) *SeekBarAndButtonBuilder {
	b.SeekBarInputBuilder.SetValue(value)
	return b
}

// SetExtraButtonTitle sets the extra action button's label. Required.
func (b *SeekBarAndButtonBuilder) SetExtraButtonTitle(title string) *SeekBarAndButtonBuilder {
	b.extraButtonTitle = title
	return b
}

// Show displays the dialog. Panics if SetExtraButtonTitle was never
// called or min exceeds max.
func (b *SeekBarAndButtonBuilder) Show() {
	if b.extraButtonTitle == "" {
		panic("dialog: extra button title is required; call SetExtraButtonTitle before Show")
	}
	args := b.SeekBarInputBuilder.makeArguments()
	args.Set(KeyExtraButtonTitle, b.extraButtonTitle)
	b.show(&seekBarAndButtonContent{}, args)
}
