// Package linetype holds the catalog of linetypes a drawing can reference.
package linetype

import (
	"sort"
	"strings"
)

// Names of the built-in linetypes.
const (
	Continuous = "CONTINUOUS"
	Dashed     = "DASHED"
	Hidden     = "HIDDEN"
	Center     = "CENTER"
	DashDot    = "DASHDOT"
	Dot        = "DOT"
	Phantom    = "PHANTOM"
	Border     = "BORDER"

	// ByLayer and ByBlock are entity-level references, never table entries.
	ByLayer = "BYLAYER"
	ByBlock = "BYBLOCK"
)

// Linetype describes a dash pattern. Positive elements are dashes, negative are gaps, zero is a dot.
type Linetype struct {
	Name        string
	Description string
	Pattern     []float64
}

// Length is the total pattern length.
func (l Linetype) Length() float64 {
	var total float64
	for _, e := range l.Pattern {
		if e < 0 {
			total -= e
		} else {
			total += e
		}
	}
	return total
}

var catalog = map[string]Linetype{
	Continuous: {Name: Continuous, Description: "Solid line"},
	Dashed:     {Name: Dashed, Description: "Dashed __ __ __ __ __ __", Pattern: []float64{12.7, -6.35}},
	Hidden:     {Name: Hidden, Description: "Hidden __ __ __ __ __ __", Pattern: []float64{6.35, -3.175}},
	Center:     {Name: Center, Description: "Center ____ _ ____ _ ____", Pattern: []float64{31.75, -6.35, 6.35, -6.35}},
	DashDot:    {Name: DashDot, Description: "Dash dot __ . __ . __ .", Pattern: []float64{12.7, -6.35, 0, -6.35}},
	Dot:        {Name: Dot, Description: "Dot . . . . . . . . . .", Pattern: []float64{0, -6.35}},
	Phantom:    {Name: Phantom, Description: "Phantom ______  __  __  ______", Pattern: []float64{31.75, -6.35, 6.35, -6.35, 6.35, -6.35}},
	Border:     {Name: Border, Description: "Border __ __ . __ __ .", Pattern: []float64{12.7, -6.35, 12.7, -6.35, 0, -6.35}},
}

// Lookup finds a catalog linetype by case-insensitive name.
func Lookup(name string) (Linetype, bool) {
	lt, ok := catalog[strings.ToUpper(strings.TrimSpace(name))]
	return lt, ok
}

// Normalize returns the canonical upper-case name and whether it refers to a known linetype
// or to one of the BYLAYER/BYBLOCK references.
func Normalize(name string) (string, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if n == ByLayer || n == ByBlock {
		return n, true
	}
	_, ok := catalog[n]
	return n, ok
}

// Names lists the catalog in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
