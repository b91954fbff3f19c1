// Package datasize converts between integer byte counts and human-readable
// size strings, in both directions and in two unit systems.
//
// The canonical value is Size, an int64 number of bytes. Formatted strings
// are derived representations, never the source of truth.
//
// # Unit systems
//
//   - Metric: powers of 1000 (k, M, G, T, P, E, Z, Y), the SI prefixes.
//     This is the default.
//   - Binary: powers of 1024 (Ki, Mi, Gi, Ti, Pi, Ei, Zi, Yi).
//
// Both directions consult a single unit table per system, so a symbol that
// parses always formats and vice versa. The tables are validated once at
// init and are read-only afterwards; every function in the package is a
// pure function of its inputs and safe for concurrent use.
//
// # Parsing
//
//	datasize.Parse("256")                 // 256
//	datasize.Parse("1.45 megabytes")      // 1450000
//	datasize.Parse("23.3G")               // 23300000000
//	datasize.Parse("1,123,456.789 MB")    // 1123456789000
//	datasize.Parse("23.3gib")             // 25018184499 (binary, autodetected)
//	datasize.ParseIn("1 T", datasize.Binary) // 1099511627776
//
// Parse resolves magnitudes in the metric system unless the literal itself
// is explicitly binary ("ib" marker or a kibi/mebi/... word). ParseIn pins
// the system and skips autodetection. Malformed input fails with
// ErrInvalidLiteral; parsing never returns a best-effort approximation.
//
// # Formatting
//
//	datasize.Size(123000).String()     // "123 k"
//	datasize.Size(123456000).String()  // "123.5 M"
//	datasize.Size(2300000000).String() // "2.30 G"
//
// Size.Format takes an Options value for full control over the system, a
// forced unit, precision, unit verbosity and digit grouping:
//
//	o := datasize.DefaultOptions()
//	o.Unit = "M"
//	o.UnitFormat = datasize.UnitWord
//	out, err := datasize.Size(1765432100).Format(o) // "1765.4 megabytes"
//
// # Arithmetic
//
// Size is a defined integer type, so sums, differences and scalar products
// work natively and stay formattable:
//
//	total := datasize.MB + 500*datasize.KB
//	total.String() // "1.5 M"
//
// Sizes above the int64 range (roughly 9.2 EB) cannot be represented; the
// zetta and yotta magnitudes remain in the tables for parsing smaller
// fractional literals and as forced display units.
package datasize
