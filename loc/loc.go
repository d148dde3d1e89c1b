package loc

import "fmt"

// Loc is an ordered pair of integer-or-half-integer coordinates. Internally
// both components are stored doubled (X2 == 2*realX) so that half-integer
// arithmetic stays exact; use New for integer coordinates and FromDoubled
// when the doubled value is already in hand (e.g. the ±0.5 chunk deltas).
type Loc struct {
	X2, Y2 int
}

// New builds an integral location (x, y).
func New(x, y int) Loc {
	return Loc{X2: 2 * x, Y2: 2 * y}
}

// FromDoubled builds a location directly from its doubled components, i.e.
// the real coordinates are (x2/2, y2/2).
func FromDoubled(x2, y2 int) Loc {
	return Loc{X2: x2, Y2: y2}
}

// Doubled returns the raw doubled components.
func (l Loc) Doubled() (x2, y2 int) {
	return l.X2, l.Y2
}

// IsIntegral reports whether both coordinates are whole numbers.
func (l Loc) IsIntegral() bool {
	return l.X2%2 == 0 && l.Y2%2 == 0
}

// Int returns the integer coordinates and whether the location is integral.
func (l Loc) Int() (x, y int, ok bool) {
	if !l.IsIntegral() {
		return 0, 0, false
	}
	return l.X2 / 2, l.Y2 / 2, true
}

// Add returns l + other.
func (l Loc) Add(other Loc) Loc {
	return Loc{X2: l.X2 + other.X2, Y2: l.Y2 + other.Y2}
}

// Sub returns l - other.
func (l Loc) Sub(other Loc) Loc {
	return Loc{X2: l.X2 - other.X2, Y2: l.Y2 - other.Y2}
}

// Neg returns -l.
func (l Loc) Neg() Loc {
	return Loc{X2: -l.X2, Y2: -l.Y2}
}

// MulInt returns l scaled by the integer n.
func (l Loc) MulInt(n int) Loc {
	return Loc{X2: l.X2 * n, Y2: l.Y2 * n}
}

// DivInt returns l scaled by 1/n, reporting false if n is zero or the
// division is not exact in doubled coordinates.
func (l Loc) DivInt(n int) (Loc, bool) {
	if n == 0 || l.X2%n != 0 || l.Y2%n != 0 {
		return Loc{}, false
	}
	return Loc{X2: l.X2 / n, Y2: l.Y2 / n}, true
}

// String renders the real-valued coordinates, e.g. "(1, 0.5)".
func (l Loc) String() string {
	xs := formatHalf(l.X2)
	ys := formatHalf(l.Y2)
	return fmt.Sprintf("(%s, %s)", xs, ys)
}

func formatHalf(doubled int) string {
	if doubled%2 == 0 {
		return fmt.Sprintf("%d", doubled/2)
	}
	neg := doubled < 0
	abs := doubled
	if neg {
		abs = -abs
	}
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.5", sign, abs/2)
}
