package datasize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_AutoUnit(t *testing.T) {
	cases := []struct {
		in   Size
		want string
	}{
		{0, "0 b"},
		{1, "1 b"},
		{999, "999 b"},
		{1000, "1 k"},
		{123000, "123 k"},
		{999999, "1000 k"},
		{1500000, "1.5 M"},
		{123456000, "123.5 M"},
		{2300000000, "2.30 G"},
		{1000000000000, "1.00 T"},
		{8000000000000000000, "8.00 E"},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d_%d", i, int64(tc.in)), func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.String())
		})
	}
}

func TestFormat_MetricVariants(t *testing.T) {
	size, err := Parse("1.7654321 G")
	require.NoError(t, err)
	require.Equal(t, Size(1765432100), size)

	format := func(mut func(*Options)) string {
		o := DefaultOptions()
		mut(o)
		out, err := size.Format(o)
		require.NoError(t, err)
		return out
	}

	assert.Equal(t, "1.77 G", format(func(o *Options) {}))
	assert.Equal(t, "1.7654 G", format(func(o *Options) { o.Precision = 4 }))
	assert.Equal(t, "1765.4 M", format(func(o *Options) { o.Unit = "m" }))
	assert.Equal(t, "1765.43 M", format(func(o *Options) { o.Unit = "m"; o.Precision = 2 }))
	assert.Equal(t, "1.77 GB", format(func(o *Options) { o.UnitFormat = UnitShort }))
	assert.Equal(t, "1.77 gigabytes", format(func(o *Options) { o.UnitFormat = UnitWord }))
	assert.Equal(t, "1765 megabytes", format(func(o *Options) {
		o.Unit = "m"
		o.Precision = 0
		o.UnitFormat = UnitWord
	}))
	assert.Equal(t, "1,765,432.100 k", format(func(o *Options) {
		o.Unit = "k"
		o.Precision = 3
		o.Thousands = true
	}))
}

func TestFormat_BinaryVariants(t *testing.T) {
	size, err := ParseIn("1.7654321 G", Binary)
	require.NoError(t, err)
	require.Equal(t, Size(1895618283), size)

	format := func(mut func(*Options)) string {
		o := DefaultOptions()
		o.System = Binary
		mut(o)
		out, err := size.Format(o)
		require.NoError(t, err)
		return out
	}

	assert.Equal(t, "1.77 G", format(func(o *Options) {}))
	assert.Equal(t, "1.7654 G", format(func(o *Options) { o.Precision = 4 }))
	assert.Equal(t, "1807.8 M", format(func(o *Options) { o.Unit = "m" }))
	assert.Equal(t, "1807.80 M", format(func(o *Options) { o.Unit = "m"; o.Precision = 2 }))
	assert.Equal(t, "1.77 GiB", format(func(o *Options) { o.UnitFormat = UnitShort }))
	assert.Equal(t, "1.77 gibibytes", format(func(o *Options) { o.UnitFormat = UnitWord }))
	assert.Equal(t, "1808 mebibytes", format(func(o *Options) {
		o.Unit = "m"
		o.Precision = 0
		o.UnitFormat = UnitWord
	}))
	assert.Equal(t, "1,851,189.729 K", format(func(o *Options) {
		o.Unit = "k"
		o.Precision = 3
		o.Thousands = true
	}))
	assert.Equal(t, "1,851,189.729 kibibytes", format(func(o *Options) {
		o.Unit = "k"
		o.Precision = 3
		o.Thousands = true
		o.UnitFormat = UnitWord
	}))
}

func TestFormat_SystemComparison(t *testing.T) {
	binary1k, err := Parse("1 KiB")
	require.NoError(t, err)
	metric1k, err2 := Parse("1 kB")
	require.NoError(t, err2)

	o := DefaultOptions()
	o.System = Binary

	got, err := binary1k.Format(o)
	require.NoError(t, err)
	assert.Equal(t, "1 K", got)

	got, err = metric1k.Format(o)
	require.NoError(t, err)
	assert.Equal(t, "1000 b", got)
}

func TestFormat_ForcedLargeUnits(t *testing.T) {
	// Z and Y cannot be auto-selected within int64 range, but remain
	// usable as forced display units.
	o := DefaultOptions()
	o.Unit = "Y"
	o.Precision = 6
	got, err := Size(5 * EB).Format(o)
	require.NoError(t, err)
	assert.Equal(t, "0.000005 Y", got)
}

func TestFormat_UnknownUnit(t *testing.T) {
	o := DefaultOptions()
	o.Unit = "l"
	_, err := Size(1000).Format(o)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownUnit)
	assert.Contains(t, err.Error(), `"l"`)
}

func TestFormat_WordPluralisation(t *testing.T) {
	o := DefaultOptions()
	o.UnitFormat = UnitWord

	one, err := Size(1).Format(o)
	require.NoError(t, err)
	assert.Equal(t, "1 byte", one)

	two, err := Size(2).Format(o)
	require.NoError(t, err)
	assert.Equal(t, "2 bytes", two)

	oneK, err := Size(1000).Format(o)
	require.NoError(t, err)
	assert.Equal(t, "1 kilobyte", oneK)
}

func TestFormat_NegativeValues(t *testing.T) {
	assert.Equal(t, "-2.5 M", Size(-2500000).String())
	assert.Equal(t, "-42 b", Size(-42).String())
}

func TestFormat_Separator(t *testing.T) {
	o := DefaultOptions()
	o.Separator = ""
	got, err := Size(1500000).Format(o)
	require.NoError(t, err)
	assert.Equal(t, "1.5M", got)
}

func TestFormat_Deterministic(t *testing.T) {
	o := DefaultOptions()
	o.Precision = 3
	a, err := Size(123456789).Format(o)
	require.NoError(t, err)
	b, err := Size(123456789).Format(o)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGroupThousands(t *testing.T) {
	cases := map[string]string{
		"0":           "0",
		"123":         "123",
		"1234":        "1,234",
		"1234567":     "1,234,567",
		"1234567.89":  "1,234,567.89",
		"-1234567.89": "-1,234,567.89",
		"123.456":     "123.456",
	}
	for in, want := range cases {
		assert.Equal(t, want, groupThousands(in), "input %q", in)
	}
}
