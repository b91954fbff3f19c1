package datasize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// literalRE splits a trimmed, lowercased literal into its numeric part and
// an optional unit token. The numeric part may carry comma group separators
// and one decimal point; the dotted/comma'd shape is verified by ParseFloat
// after the commas are stripped.
var literalRE = regexp.MustCompile(`^([0-9][0-9.,]*)\s*([a-z]*)$`)

// Parse interprets text as a data size literal and returns the byte count.
// Magnitudes resolve in the metric system unless the literal itself is
// explicitly binary, by an "ib" marker ("KiB", "23.3gib") or a kibi/mebi/...
// word ("1.45 mebibytes"); such literals use base 1024 regardless.
func Parse(text string) (Size, error) {
	sys := Metric
	if strings.Contains(strings.ToLower(text), "ib") {
		sys = Binary
	}
	return ParseIn(text, sys)
}

// ParseIn interprets text as a data size literal in the given unit system.
// Unlike Parse it performs no binary autodetection: the caller's system
// supplies the base even for spelled-out units, so ParseIn("1 MB", Binary)
// is 1048576 bytes.
//
// The grammar is case-insensitive with surrounding whitespace ignored:
// a number (comma group separators allowed, at most one decimal point)
// optionally followed by a unit spelling from the system's table — a single
// letter ("k"), a symbol ("kB", "KiB"), or a word ("kilobytes"). Fractional
// byte results round half away from zero. Anything else, including values
// beyond the int64 range, fails with ErrInvalidLiteral.
func ParseIn(text string, sys System) (Size, error) {
	lit := strings.ToLower(strings.TrimSpace(text))
	m := literalRE.FindStringSubmatch(lit)
	if m == nil {
		return 0, invalidLiteral(text)
	}
	number, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, invalidLiteral(text)
	}
	mag := 0
	if token := m[2]; token != "" {
		var ok bool
		mag, ok = resolveUnit(sys, token)
		if !ok {
			return 0, invalidLiteral(text)
		}
	}
	v := math.Round(number * magnitudeScale(sys, mag))
	if v >= float64(math.MaxInt64) {
		return 0, invalidLiteral(text)
	}
	return Size(v), nil
}

func invalidLiteral(text string) error {
	return fmt.Errorf("%w: %q", ErrInvalidLiteral, text)
}
