package entity

import "math"

// Bounds is the rectangle, in host window pixels, the active surface occupies.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// BoundsFromRect rounds a layout rectangle to whole pixels.
func BoundsFromRect(x, y, width, height float64) Bounds {
	return Bounds{
		X:      int(math.Round(x)),
		Y:      int(math.Round(y)),
		Width:  int(math.Round(width)),
		Height: int(math.Round(height)),
	}.Clamp()
}

// Clamp returns b with negative width and height raised to zero.
func (b Bounds) Clamp() Bounds {
	b.Width = max(b.Width, 0)
	b.Height = max(b.Height, 0)
	return b
}

// IsEmpty reports whether b covers no pixels.
func (b Bounds) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}
