package ecotrack

import "fmt"

// Percent is a whole percentage, as displayed next to a shop listing.
type Percent int

func (p Percent) String() string {
	return fmt.Sprintf("%d%%", int(p))
}

func (p Percent) SignedString() string {
	if p == 0 {
		return "-"
	}
	return fmt.Sprintf("%+d%%", int(p))
}
