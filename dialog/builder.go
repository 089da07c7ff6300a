package dialog

// builderBase carries the options every dialog builder shares. Variant
// builders embed it and re-expose the setters with their own fluent
// return type, the same options in every variant:
//
//	dialog.NewOkCancelBuilder(mgr, reqDelete).
//		SetTitle("Delete session").
//		SetMessage("This cannot be undone.").
//		Show()
//
// Show materializes an immutable argument bag, instantiates the variant's
// content, and attaches the dialog to the parent's surface. Usage errors
// (forbidden setter, missing required option, min > max) panic at the
// call site rather than surfacing at display time.
type builderBase struct {
	parent      Parent
	requestCode int

	title   string
	message string
	tag     string

	cancelable             bool
	canceledOnTouchOutside bool
}

func newBuilderBase(parent Parent, requestCode int) builderBase {
	if parent == nil {
		panic("dialog: builder requires a non-nil parent")
	}
	return builderBase{
		parent:                 parent,
		requestCode:            requestCode,
		cancelable:             true,
		canceledOnTouchOutside: true,
	}
}

func (b *builderBase) setTitle(title string)     { b.title = title }
func (b *builderBase) setMessage(message string) { b.message = message }
func (b *builderBase) setTag(tag string)         { b.tag = tag }
func (b *builderBase) setCancelable(v bool)      { b.cancelable = v }
func (b *builderBase) setCanceledOnTouchOutside(v bool) {
	b.canceledOnTouchOutside = v
}

// makeArguments serializes the shared builder state. Variant builders
// append their own fields to the returned bag.
func (b *builderBase) makeArguments() *Args {
	args := NewArgs()
	args.Set(KeyRequestCode, b.requestCode)
	if b.title != "" {
		args.Set(KeyTitle, b.title)
	}
	if b.message != "" {
		args.Set(KeyMessage, b.message)
	}
	if b.tag != "" {
		args.Set(KeyTag, b.tag)
	}
	args.Set(KeyCancelable, b.cancelable)
	args.Set(KeyCanceledOnTouchOutside, b.canceledOnTouchOutside)
	return args
}

// show instantiates the content, attaches args, and hands the dialog to
// the parent's surface.
func (b *builderBase) show(c Content, args *Args) {
	e := newEngine(c, args, nil)
	b.parent.Surface().Attach(e)
}

// defaultButtonArgs applies the package-wide OK/Cancel labels when the
// builder set none.
func defaultButtonArgs(args *Args, positive, negative string, wantNegative bool) {
	if positive == "" {
		positive = DefaultPositiveLabel
	}
	args.Set(KeyPositiveButtonTitle, positive)
	if !wantNegative {
		return
	}
	if negative == "" {
		negative = DefaultNegativeLabel
	}
	args.Set(KeyNegativeButtonTitle, negative)
}
