package views

import "math"

const MaxStars = 5

// Stars is the five-unit rating strip.
type Stars struct {
	Full  int
	Half  bool
	Empty int
	Rate  float64
}

// StarsFor clamps rate into [0, 5]: floor(rate) full stars, one half star when rate
// has a fractional part, and 5 - ceil(rate) empty stars.
func StarsFor(rate float64) Stars {
	if math.IsNaN(rate) || rate < 0 {
		rate = 0
	}
	if rate > MaxStars {
		rate = MaxStars
	}
	full := int(math.Floor(rate))
	return Stars{
		Full:  full,
		Half:  rate != math.Floor(rate),
		Empty: MaxStars - int(math.Ceil(rate)),
		Rate:  rate,
	}
}

// Icons lists the Font Awesome classes of each star in display order.
func (s Stars) Icons() []string {
	icons := make([]string, 0, MaxStars)
	for i := 0; i < s.Full; i++ {
		icons = append(icons, "fas fa-star")
	}
	if s.Half {
		icons = append(icons, "fas fa-star-half-alt")
	}
	for i := 0; i < s.Empty; i++ {
		icons = append(icons, "far fa-star")
	}
	return icons
}
