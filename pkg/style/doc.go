// Package style composes terminal text styles and applies them around
// arbitrary printable values.
//
// Building a style starts from a Color, an Attr or an existing Style and
// chains modifiers; every step returns a new value:
//
//	fmt.Printf("%s or %s or %s\n",
//		style.Red.Paint("red"),
//		style.Bold.Paint("bold"),
//		style.Red.Bold().Paint("both"))
//
// Paint wraps a value so that printing it styles the terminal for exactly
// the duration of the write. With does the same around a whole block, and
// nested With scopes restore the enclosing style when they end:
//
//	style.Red.With(func() {
//		fmt.Print("red ")
//		style.Bold.With(func() { fmt.Print("bold red ") })
//		fmt.Println("red again")
//	})
//
// Styling is best effort. When stdout is not a terminal, NO_COLOR is set, or
// a control sequence fails to write, output appears unstyled and the wrapped
// values still print normally.
package style
