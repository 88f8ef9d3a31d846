package style

// StyleSource is anything that can act as the start of a style chain: a
// Color, an Attr, or a Style itself. Each converts to its canonical Style;
// the shared modifier methods all go through that conversion, so a chain
// like Red.Bold().Paint(x) reads left to right and every step produces a
// fresh value.
type StyleSource interface {
	ToStyle() Style
}

// Paint binds obj to src's style on the default painter. The returned
// Painted prints exactly like obj; the style only changes terminal state
// around the write.
func Paint(src StyleSource, obj any) Painted {
	return Default().Paint(src, obj)
}

// With runs fn with src applied on the default painter and restores the
// previously active style afterwards.
func With(src StyleSource, fn func()) {
	Default().With(src, fn)
}
