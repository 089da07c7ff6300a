package dialog

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func init() {
	registerContent(kindTimeInput, func() Content { return &timeInputContent{} })
}

const kindTimeInput = "timeInput"

// Segment order inside the time widget: hour, minute, then the meridiem
// toggle in 12-hour view.
const (
	segHour = iota
	segMinute
	segMeridiem
)

// timeInputContent: hour and minute spinners with OK/Cancel. Up/down
// changes the focused segment with wraparound, left/right moves between
// segments. The OK payload carries "hour" (always 0..23) and "minute".
type timeInputContent struct {
	hour    int // 0..23 regardless of view mode
	minute  int
	view24  bool
	segment int
	focused bool
}

func (*timeInputContent) Kind() string { return kindTimeInput }

func (c *timeInputContent) Attach(args, saved *Args) {
	c.view24 = args.Bool(KeyIs24HourView, false)
	c.hour = args.Int(KeyHour, 0)
	c.minute = args.Int(KeyMinute, 0)
	if saved != nil {
		c.hour = saved.Int(KeyHour, c.hour)
		c.minute = saved.Int(KeyMinute, c.minute)
	}
	c.hour = ((c.hour % 24) + 24) % 24
	c.minute = ((c.minute % 60) + 60) % 60
}

// Hour returns the current hour in 24-hour form.
func (c *timeInputContent) Hour() int { return c.hour }

// Minute returns the current minute.
func (c *timeInputContent) Minute() int { return c.minute }

func (c *timeInputContent) Focus() { c.focused = true }
func (c *timeInputContent) Blur()  { c.focused = false }

func (c *timeInputContent) segments() int {
	if c.view24 {
		return 2
	}
	return 3
}

func (c *timeInputContent) adjust(delta int) {
	switch c.segment {
	case segHour:
		if c.view24 {
			c.hour = ((c.hour+delta)%24 + 24) % 24
			return
		}
		// 12-hour view: cycle within the current meridiem.
		h12 := c.hour % 12
		h12 = ((h12+delta)%12 + 12) % 12
		c.hour = c.hour/12*12 + h12
	case segMinute:
		c.minute = ((c.minute+delta)%60 + 60) % 60
	case segMeridiem:
		c.hour = (c.hour + 12) % 24
	}
}

func (c *timeInputContent) Update(msg tea.Msg) (Action, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return ActionPass, nil
	}
	switch key.String() {
	case "up", "k":
		c.adjust(1)
		return ActionHandled, nil
	case "down", "j":
		c.adjust(-1)
		return ActionHandled, nil
	case "left", "h":
		if c.segment > 0 {
			c.segment--
		}
		return ActionHandled, nil
	case "right", "l":
		if c.segment < c.segments()-1 {
			c.segment++
		}
		return ActionHandled, nil
	case " ":
		if c.segment == segMeridiem {
			c.hour = (c.hour + 12) % 24
			return ActionHandled, nil
		}
	}
	return ActionPass, nil
}

func (c *timeInputContent) segmentView(i int, text string) string {
	if c.focused && c.segment == i {
		return accentStyle().Render(text)
	}
	return textStyle().Render(text)
}

func (c *timeInputContent) View(int) string {
	hour := c.hour
	meridiem := "AM"
	if !c.view24 {
		if hour >= 12 {
			meridiem = "PM"
		}
		hour = hour % 12
		if hour == 0 {
			hour = 12
		}
	}
	parts := []string{
		c.segmentView(segHour, fmt.Sprintf("%02d", hour)),
		textStyle().Render(":"),
		c.segmentView(segMinute, fmt.Sprintf("%02d", c.minute)),
	}
	if !c.view24 {
		parts = append(parts, " ", c.segmentView(segMeridiem, meridiem))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (c *timeInputContent) Payload(out *Args) {
	out.Set(KeyHour, c.hour)
	out.Set(KeyMinute, c.minute)
}

func (c *timeInputContent) SaveState(out *Args) {
	out.Set(KeyHour, c.hour)
	out.Set(KeyMinute, c.minute)
}

// TimeInputBuilder configures the time-of-day picker dialog.
type TimeInputBuilder struct {
	builderBase
	positiveTitle string
	negativeTitle string
	hour          int
	minute        int
	is24HourView  bool
}

// NewTimeInputBuilder starts a time picker dialog.
func NewTimeInputBuilder(parent Parent, requestCode int) *TimeInputBuilder {
	return &TimeInputBuilder{builderBase: newBuilderBase(parent, requestCode)}
}

func (b *TimeInputBuilder) SetTitle(title string) *TimeInputBuilder {
	b.setTitle(title)
	return b
}

func (b *TimeInputBuilder) SetTag(tag string) *TimeInputBuilder {
	b.setTag(tag)
	return b
}

func (b *TimeInputBuilder) SetCancelable(v bool) *TimeInputBuilder {
	b.setCancelable(v)
	return b
}

func (b *TimeInputBuilder) SetCanceledOnTouchOutside(v bool) *TimeInputBuilder {
	b.setCanceledOnTouchOutside(v)
	return b
}

func (b *TimeInputBuilder) SetPositiveButtonTitle(title string) *TimeInputBuilder {
	b.positiveTitle = title
	return b
}

func (b *TimeInputBuilder) SetNegativeButtonTitle(title string) *TimeInputBuilder {
	b.negativeTitle = title
	return b
}

// SetHour sets the initial hour, 0..23.
func (b *TimeInputBuilder) SetHour(hour int) *TimeInputBuilder {
	b.hour = hour
	return b
}

// SetMinute sets the initial minute, 0..59.
func (b *TimeInputBuilder) SetMinute(minute int) *TimeInputBuilder {
	b.minute = minute
	return b
}

// SetIs24HourView selects 24-hour rendering instead of AM/PM.
func (b *TimeInputBuilder) SetIs24HourView(v bool) *TimeInputBuilder {
	b.is24HourView = v
	return b
}

func (b *TimeInputBuilder) makeArguments() *Args {
	args := b.builderBase.makeArguments()
	defaultButtonArgs(args, b.positiveTitle, b.negativeTitle, true)
	args.Set(KeyHour, b.hour)
	args.Set(KeyMinute, b.minute)
	args.Set(KeyIs24HourView, b.is24HourView)
	return args
}

// Show displays the dialog.
func (b *TimeInputBuilder) Show() {
	b.show(&timeInputContent{}, b.makeArguments())
}
