package box

import (
	"fmt"
	"strconv"
	"strings"
)

// This file defines unit-safe types and helpers for lengths used by the
// box model. All box metrics are kept in PostScript points; every unit
// below resolves to that base.

// Unit represents the original unit of a length value as specified in DSL.
type Unit int

const (
	UnitEm    Unit = iota // width of "M" in the current font
	UnitEx                // x-height of the current font
	UnitPixel             // device pixel at the current resolution
	UnitPoint             // PostScript point, the base unit
	UnitPica              // 12 points
	UnitMu                // math unit, 1/18 em
	UnitCm                // centimeters
	UnitMm                // millimeters
	UnitIn                // inches
	UnitSp                // scaled point, 1/65536 pt (TeX)
	UnitPt                // printer's point (TeX pt, slightly smaller than bp)
	UnitDd                // didot point
	UnitCc                // cicero, 12 didot
	UnitX8                // default rule thickness of the current font
)

// Conversion factors to PostScript points for the absolute units.
const (
	PicaToPoint = 12.0
	CmToPoint   = 28.346456693
	MmToPoint   = 2.8346456693
	InToPoint   = 72.0
	SpToPoint   = 65536.0
	PtToPoint   = 0.9962640099
	DdToPoint   = 1.0660349422
	CcToPoint   = 12.7924193070
)

// Resolver supplies the font- and device-dependent quantities needed to
// resolve relative units. Implementations typically close over a font
// provider plus the current font and size.
type Resolver interface {
	// Em returns the em width in points.
	Em() float64
	// Ex returns the x-height in points.
	Ex() float64
	// PixelsPerPoint returns the device resolution.
	PixelsPerPoint() float64
	// RuleThickness returns the default fraction-rule thickness in points.
	RuleThickness() float64
}

// Factor returns the multiplier that converts one unit of u into points
// under the given resolver.
func (u Unit) Factor(r Resolver) float64 {
	switch u {
	case UnitEm:
		return r.Em()
	case UnitEx:
		return r.Ex()
	case UnitPixel:
		return 1 / r.PixelsPerPoint()
	case UnitPoint:
		return 1
	case UnitPica:
		return PicaToPoint
	case UnitMu:
		return r.Em() / 18
	case UnitCm:
		return CmToPoint
	case UnitMm:
		return MmToPoint
	case UnitIn:
		return InToPoint
	case UnitSp:
		return SpToPoint
	case UnitPt:
		return PtToPoint
	case UnitDd:
		return DdToPoint
	case UnitCc:
		return CcToPoint
	case UnitX8:
		return r.RuleThickness()
	default:
		return 1
	}
}

// UnitToString returns the suffix spelling for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitEm:
		return "em"
	case UnitEx:
		return "ex"
	case UnitPixel:
		return "px"
	case UnitPoint:
		return "point"
	case UnitPica:
		return "pica"
	case UnitMu:
		return "mu"
	case UnitCm:
		return "cm"
	case UnitMm:
		return "mm"
	case UnitIn:
		return "in"
	case UnitSp:
		return "sp"
	case UnitPt:
		return "pt"
	case UnitDd:
		return "dd"
	case UnitCc:
		return "cc"
	case UnitX8:
		return "x8"
	default:
		return ""
	}
}

// UnitFromString parses a unit suffix.
func UnitFromString(s string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "em":
		return UnitEm, true
	case "ex":
		return UnitEx, true
	case "px", "pixel":
		return UnitPixel, true
	case "point", "bp", "":
		return UnitPoint, true
	case "pica":
		return UnitPica, true
	case "mu":
		return UnitMu, true
	case "cm":
		return UnitCm, true
	case "mm":
		return UnitMm, true
	case "in":
		return UnitIn, true
	case "sp":
		return UnitSp, true
	case "pt":
		return UnitPt, true
	case "dd":
		return UnitDd, true
	case "cc":
		return UnitCc, true
	case "x8":
		return UnitX8, true
	default:
		return UnitPoint, false
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (l Length) IsZero() bool { return l.Value == 0 }

// Resolve converts this length to points under the given resolver.
func (l Length) Resolve(r Resolver) float64 {
	return l.Value * l.Unit.Factor(r)
}

// lengthSuffixes is ordered longest-first so that "point" and "pica" win
// over "pt" and "px" prefixes.
var lengthSuffixes = []struct {
	s string
	u Unit
}{
	{"point", UnitPoint}, {"pica", UnitPica},
	{"px", UnitPixel}, {"em", UnitEm}, {"ex", UnitEx}, {"mu", UnitMu},
	{"cm", UnitCm}, {"mm", UnitMm}, {"in", UnitIn}, {"sp", UnitSp},
	{"pt", UnitPt}, {"dd", UnitDd}, {"cc", UnitCc}, {"x8", UnitX8},
}

// ParseLength parses a DSL length string preserving its unit. A bare
// number is taken to be in PostScript points.
func ParseLength(value string) (Length, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return Length{}, fmt.Errorf("box: 空的长度字面量")
	}
	lower := strings.ToLower(v)
	unit := UnitPoint
	num := lower
	for _, suf := range lengthSuffixes {
		if strings.HasSuffix(lower, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(lower, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("box: 无法解析长度 %q: %w", value, err)
	}
	return Length{Value: f, Unit: unit}, nil
}
