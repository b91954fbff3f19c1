package datasize

import "strconv"

// Size is a count of bytes. It is a defined integer type, so ordinary
// arithmetic, comparison and conversion apply; only printing and parsing
// are special. Negative values are never produced by Parse but may arise
// from subtraction and format with a leading minus.
type Size int64

// Typed constants for building sizes in code, e.g. 3 * datasize.GB.
const (
	B Size = 1

	KB Size = 1000 * B
	MB Size = 1000 * KB
	GB Size = 1000 * MB
	TB Size = 1000 * GB
	PB Size = 1000 * TB
	EB Size = 1000 * PB

	KiB Size = 1024 * B
	MiB Size = 1024 * KiB
	GiB Size = 1024 * MiB
	TiB Size = 1024 * GiB
	PiB Size = 1024 * TiB
	EiB Size = 1024 * PiB
)

// Int64 returns the underlying byte count.
func (s Size) Int64() int64 { return int64(s) }

// KB returns the size in kilobytes (base 1000).
func (s Size) KB() float64 { return float64(s) / float64(KB) }

// MB returns the size in megabytes (base 1000).
func (s Size) MB() float64 { return float64(s) / float64(MB) }

// GB returns the size in gigabytes (base 1000).
func (s Size) GB() float64 { return float64(s) / float64(GB) }

// TB returns the size in terabytes (base 1000).
func (s Size) TB() float64 { return float64(s) / float64(TB) }

// KiB returns the size in kibibytes (base 1024).
func (s Size) KiB() float64 { return float64(s) / float64(KiB) }

// MiB returns the size in mebibytes (base 1024).
func (s Size) MiB() float64 { return float64(s) / float64(MiB) }

// GiB returns the size in gibibytes (base 1024).
func (s Size) GiB() float64 { return float64(s) / float64(GiB) }

// TiB returns the size in tebibytes (base 1024).
func (s Size) TiB() float64 { return float64(s) / float64(TiB) }

// String renders the size with DefaultOptions: automatic metric unit,
// per-magnitude precision, single-letter symbol.
func (s Size) String() string {
	out, _ := s.Format(nil)
	return out
}

// Set parses a literal into s. Together with String and Type this satisfies
// pflag.Value, so a Size can back a command line flag directly.
func (s *Size) Set(text string) error {
	v, err := Parse(text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Type reports the flag value type for pflag.
func (s Size) Type() string { return "datasize" }

// MarshalText writes the exact byte count in bytes, so marshalled values
// survive a round trip without rendering loss.
func (s Size) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(s), 10), nil
}

// UnmarshalText accepts any literal Parse accepts.
func (s *Size) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}
