package dialog

// Surface hosts dialog overlays for a screen. Manager is the stock
// implementation; a custom host embeds dialogs into its own model by
// implementing this directly.
type Surface interface {
	// Attach displays a dialog. With a modal already showing, the new one
	// stacks on top of it.
	Attach(e *Engine)

	// Detach dismisses the topmost dialog whose tag matches.
	Detach(tag string)

	// Size returns the current terminal dimensions.
	Size() (width, height int)
}

// Parent is what a builder needs from the host screen: the registry its
// result will be routed through and the surface the dialog attaches to.
// It is passed explicitly at construction, never discovered.
type Parent interface {
	Registry() *Registry
	Surface() Surface
}
