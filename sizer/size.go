package sizer

import "fmt"

// Dim is a single-axis measurement. The zero value is undefined: no
// measurement exists for the axis, either because it is disabled or because
// nothing has been measured yet.
type Dim struct {
	Value   int
	Defined bool
}

// Fixed returns a defined Dim.
func Fixed(v int) Dim {
	return Dim{Value: v, Defined: true}
}

// String renders the Dim for status lines and debug output.
func (d Dim) String() string {
	if !d.Defined {
		return "-"
	}
	return fmt.Sprintf("%d", d.Value)
}

// Size is the content area handed to a child render function. A disabled
// axis is always undefined here, regardless of the real container size.
type Size struct {
	Width  Dim
	Height Dim
}

// String renders the size as "WxH" with "-" for undefined axes.
func (s Size) String() string {
	return s.Width.String() + "x" + s.Height.String()
}
