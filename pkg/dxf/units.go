package dxf

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnits is returned by ParseUnits for names it does not recognize.
var ErrUnknownUnits = errors.New("unknown drawing units")

// Units is the $INSUNITS code of a drawing.
type Units int

// Supported $INSUNITS codes.
const (
	Inches      Units = 1
	Feet        Units = 2
	Millimeters Units = 4
	Centimeters Units = 5
	Meters      Units = 6
	Yards       Units = 10
)

var unitNames = map[string]Units{
	"mm": Millimeters,
	"cm": Centimeters,
	"m":  Meters,
	"in": Inches,
	"ft": Feet,
	"yd": Yards,
}

// ParseUnits maps a short unit name (mm, cm, m, in, ft, yd) to its code.
func ParseUnits(s string) (Units, error) {
	u, ok := unitNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q (want mm, cm, m, in, ft or yd)", ErrUnknownUnits, s)
	}
	return u, nil
}

// String returns the short unit name.
func (u Units) String() string {
	for name, code := range unitNames {
		if code == u {
			return name
		}
	}
	return fmt.Sprintf("units(%d)", int(u))
}

// Metric reports whether the unit belongs to the metric system, which drives $MEASUREMENT.
func (u Units) Metric() bool {
	switch u {
	case Millimeters, Centimeters, Meters:
		return true
	default:
		return false
	}
}

func (u Units) valid() bool {
	for _, code := range unitNames {
		if code == u {
			return true
		}
	}
	return false
}
