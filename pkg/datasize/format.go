package datasize

import (
	"fmt"
	"strconv"
	"strings"
)

// UnitFormat selects how verbose the rendered unit is.
type UnitFormat int

const (
	// UnitLetter renders single-letter symbols: "b", "k", "M".
	UnitLetter UnitFormat = iota
	// UnitShort renders short symbols: "B", "kB", "MiB".
	UnitShort
	// UnitWord renders full words, pluralised as needed: "bytes", "kilobytes".
	UnitWord
)

// AutoPrecision asks Format to take the fraction-digit count from the
// magnitude's table default: 0 for bytes and the first magnitude, 1 for the
// second and 2 above that.
const AutoPrecision = -1

// Options controls Format. The zero value is not the default configuration;
// start from DefaultOptions and override fields as needed.
type Options struct {
	// System chooses the unit progression. Metric unless set.
	System System

	// Unit forces a display unit by any accepted spelling ("k", "MiB",
	// "megabytes"). Empty selects the largest unit not exceeding the value.
	Unit string

	// UnitFormat sets the verbosity of the rendered unit.
	UnitFormat UnitFormat

	// Precision is the number of fraction digits. Negative means the
	// per-magnitude default.
	Precision int

	// Separator goes between the number and the unit.
	Separator string

	// Thousands groups the integer digits of the number with commas.
	Thousands bool
}

// DefaultOptions returns the settings used by Size.String: metric system,
// automatic unit and precision, single-letter units, space separator.
func DefaultOptions() *Options {
	return &Options{
		System:    Metric,
		Precision: AutoPrecision,
		Separator: " ",
	}
}

// Format renders the size according to o; nil means DefaultOptions.
// Rendering is deterministic for a given (size, options) pair; the number
// is rounded to the chosen precision by strconv.FormatFloat, which rounds
// half to even. Format fails only when o.Unit names no known unit.
func (s Size) Format(o *Options) (string, error) {
	if o == nil {
		o = DefaultOptions()
	}
	sys := o.System
	var mag int
	if o.Unit != "" {
		var ok bool
		mag, ok = resolveUnit(sys, strings.ToLower(strings.TrimSpace(o.Unit)))
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownUnit, o.Unit)
		}
	} else {
		mag = autoMagnitude(s, sys)
	}
	prec := o.Precision
	if prec < 0 {
		prec = unitTables[sys][mag].precision
	}
	scaled := float64(s) / magnitudeScale(sys, mag)
	number := strconv.FormatFloat(scaled, 'f', prec, 64)
	if o.Thousands {
		number = groupThousands(number)
	}
	return number + o.Separator + unitName(sys, mag, o.UnitFormat, scaled), nil
}

// autoMagnitude picks the largest magnitude whose scale does not exceed the
// value, so 999 stays in bytes and 1000 moves to the first prefix. Values
// below one base unit, including zero, stay at magnitude 0.
func autoMagnitude(s Size, sys System) int {
	v := float64(s)
	if v < 0 {
		v = -v
	}
	base := float64(sys.Base())
	mag, scale := 0, base
	for mag < maxMagnitude && v >= scale {
		mag++
		scale *= base
	}
	return mag
}

// unitName renders the magnitude's unit. Word units pluralise whenever the
// scaled value is not exactly 1.
func unitName(sys System, mag int, uf UnitFormat, scaled float64) string {
	d := unitTables[sys][mag]
	switch uf {
	case UnitShort:
		return d.short
	case UnitWord:
		if scaled != 1.0 {
			return d.word + "s"
		}
		return d.word
	default:
		return d.letter
	}
}

// groupThousands inserts commas into the integer part of a plain decimal
// number: "1765432.1" becomes "1,765,432.1".
func groupThousands(num string) string {
	intPart, rest := num, ""
	if i := strings.IndexByte(num, '.'); i >= 0 {
		intPart, rest = num[:i], num[i:]
	}
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	return sign + intPart + rest
}
