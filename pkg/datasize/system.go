package datasize

import (
	"fmt"
	"math"
	"strings"
)

// System selects the unit progression used to resolve magnitudes.
type System int

const (
	// Metric uses powers of 1000 between magnitudes (k, M, G, ...),
	// the SI prefixes. This is the default system.
	Metric System = iota

	// Binary uses powers of 1024 between magnitudes (Ki, Mi, Gi, ...).
	Binary
)

// Base returns the multiplier between adjacent magnitudes.
func (s System) Base() int64 {
	if s == Binary {
		return 1024
	}
	return 1000
}

func (s System) String() string {
	if s == Binary {
		return "binary"
	}
	return "metric"
}

// maxMagnitude is the largest table index (yotta/yobi).
const maxMagnitude = 8

// unitDef is one row of a unit table: the spellings of a magnitude and the
// fraction digits shown by default when that magnitude is auto-selected.
type unitDef struct {
	letter    string // single-letter symbol: "k", "M"
	short     string // short symbol: "kB", "MiB"
	word      string // full word, singular: "kilobyte"
	precision int
}

// unitTables is the single source of truth for both parsing and formatting.
// Magnitude n means base^n bytes.
var unitTables = map[System][]unitDef{
	Metric: {
		{"b", "B", "byte", 0},
		{"k", "kB", "kilobyte", 0},
		{"M", "MB", "megabyte", 1},
		{"G", "GB", "gigabyte", 2},
		{"T", "TB", "terabyte", 2},
		{"P", "PB", "petabyte", 2},
		{"E", "EB", "exabyte", 2},
		{"Z", "ZB", "zettabyte", 2},
		{"Y", "YB", "yottabyte", 2},
	},
	Binary: {
		{"b", "B", "byte", 0},
		{"K", "KiB", "kibibyte", 0},
		{"M", "MiB", "mebibyte", 1},
		{"G", "GiB", "gibibyte", 2},
		{"T", "TiB", "tebibyte", 2},
		{"P", "PiB", "pebibyte", 2},
		{"E", "EiB", "exbibyte", 2},
		{"Z", "ZiB", "zebibyte", 2},
		{"Y", "YiB", "yobibyte", 2},
	},
}

// unitLookup maps every accepted lowercase spelling of a unit to its
// magnitude, one map per system. Built once at init from unitTables.
var unitLookup map[System]map[string]int

func init() {
	unitLookup = make(map[System]map[string]int, len(unitTables))
	for sys, defs := range unitTables {
		validateTable(sys, defs)
		unitLookup[sys] = buildLookup(defs)
	}
}

// validateTable rejects malformed tables at startup. A bad table is a
// programming error, not a runtime condition.
func validateTable(sys System, defs []unitDef) {
	if len(defs) != maxMagnitude+1 {
		panic(fmt.Sprintf("datasize: %s unit table has %d entries, want %d", sys, len(defs), maxMagnitude+1))
	}
	seen := make(map[string]bool, len(defs))
	for mag, d := range defs {
		if d.letter == "" || d.short == "" || d.word == "" {
			panic(fmt.Sprintf("datasize: %s unit table has a gap at magnitude %d", sys, mag))
		}
		l := strings.ToLower(d.letter)
		if seen[l] {
			panic(fmt.Sprintf("datasize: %s unit table repeats symbol %q", sys, d.letter))
		}
		seen[l] = true
	}
}

func buildLookup(defs []unitDef) map[string]int {
	m := make(map[string]int)
	add := func(spelling string, mag int) {
		spelling = strings.ToLower(spelling)
		if prev, ok := m[spelling]; ok && prev != mag {
			panic(fmt.Sprintf("datasize: unit spelling %q maps to magnitudes %d and %d", spelling, prev, mag))
		}
		m[spelling] = mag
	}
	for mag, d := range defs {
		add(d.letter, mag)
		add(d.short, mag)
		add(d.word, mag)
		add(d.word+"s", mag)
		if mag > 0 {
			// generic symbol forms: "k" also parses as "kb" and "kib"
			add(strings.ToLower(d.letter)+"b", mag)
			add(strings.ToLower(d.letter)+"ib", mag)
		}
	}
	return m
}

// resolveUnit returns the magnitude for an already-lowercased unit token.
// A spelling from the other system still names a magnitude — the caller's
// system only supplies the base — so "mebibyte" resolves under Metric just
// as "MB" resolves under Binary.
func resolveUnit(sys System, token string) (int, bool) {
	if mag, ok := unitLookup[sys][token]; ok {
		return mag, true
	}
	other := Metric
	if sys == Metric {
		other = Binary
	}
	mag, ok := unitLookup[other][token]
	return mag, ok
}

// magnitudeScale returns base^mag as a float64.
func magnitudeScale(sys System, mag int) float64 {
	return math.Pow(float64(sys.Base()), float64(mag))
}
