package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ja7ad/datasize/pkg/datasize"
)

type opts struct {
	binary     bool
	bytesOnly  bool
	sum        bool
	unit       string
	precision  int
	unitFormat string
	separator  string
	thousands  bool
	warnAbove  datasize.Size
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "datasize SIZE...",
		Short: "Convert between byte counts and human-readable data sizes",
		Long: `The datasize tool parses data size literals ("256", "23.3G", "1.45 mebibytes",
"1,123,456.789 MB") into exact byte counts and renders them back in a
configurable human-readable form. Magnitudes resolve in the metric system
(base 1000) unless a literal is explicitly binary ("1 KiB") or --binary
pins base 1024 for everything.

Examples:
  datasize 23.3G "1.45 mebibytes" 1048576
  datasize --binary --unit m --precision 2 "1.7654321 G"
  datasize --sum --unit-format short 1.5M 300k "2 GiB"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args)
		},
	}

	fs := root.Flags()
	fs.BoolVarP(&o.binary, "binary", "b", false, "resolve all units with base 1024 (env: DATASIZE_BINARY)")
	fs.BoolVar(&o.bytesOnly, "bytes", false, "print only raw byte counts, one per line (env: DATASIZE_BYTES)")
	fs.BoolVar(&o.sum, "sum", false, "append the total of all sizes (env: DATASIZE_SUM)")
	fs.StringVarP(&o.unit, "unit", "u", "", "force a display unit, e.g. k, MiB, gigabytes (env: DATASIZE_UNIT)")
	fs.IntVarP(&o.precision, "precision", "p", datasize.AutoPrecision, "fraction digits; negative picks per-unit defaults (env: DATASIZE_PRECISION)")
	fs.StringVar(&o.unitFormat, "unit-format", "letter", "unit verbosity: letter, short or word (env: DATASIZE_UNIT_FORMAT)")
	fs.StringVar(&o.separator, "separator", " ", "string between number and unit (env: DATASIZE_SEPARATOR)")
	fs.BoolVar(&o.thousands, "thousands", false, "group digits with commas (env: DATASIZE_THOUSANDS)")
	fs.Var(&o.warnAbove, "warn-above", "log a warning for sizes at or above this threshold (env: DATASIZE_WARN_ABOVE)")

	v := viper.New()
	v.SetEnvPrefix("DATASIZE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(o opts, args []string) error {
	format, err := formatOptions(o)
	if err != nil {
		return err
	}
	// surface a bad --unit before processing any literal
	if _, err := datasize.Size(0).Format(format); err != nil {
		return err
	}

	parse := func(lit string) (datasize.Size, error) {
		if o.binary {
			return datasize.ParseIn(lit, datasize.Binary)
		}
		return datasize.Parse(lit)
	}

	var (
		total  datasize.Size
		failed int
		tw     *tabwriter.Writer
	)
	if !o.bytesOnly {
		tw = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "LITERAL\tBYTES\tHUMAN")
	}

	for _, lit := range args {
		size, err := parse(lit)
		if err != nil {
			failed++
			slog.Error("parse", "literal", lit, "err", err)
			continue
		}
		if o.warnAbove > 0 && size >= o.warnAbove {
			slog.Warn("size above threshold", "literal", lit, "size", size.Int64(), "threshold", o.warnAbove.Int64())
		}
		total += size

		if o.bytesOnly {
			fmt.Println(size.Int64())
			continue
		}
		human, _ := size.Format(format)
		fmt.Fprintf(tw, "%s\t%d\t%s\n", lit, size.Int64(), human)
	}

	if o.sum {
		if o.bytesOnly {
			fmt.Println(total.Int64())
		} else {
			human, _ := total.Format(format)
			fmt.Fprintf(tw, "TOTAL\t%d\t%s\n", total.Int64(), human)
		}
	}
	if tw != nil {
		tw.Flush()
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d literals invalid", failed, len(args))
	}
	return nil
}

func formatOptions(o opts) (*datasize.Options, error) {
	f := datasize.DefaultOptions()
	if o.binary {
		f.System = datasize.Binary
	}
	f.Unit = o.unit
	f.Precision = o.precision
	f.Separator = o.separator
	f.Thousands = o.thousands
	switch o.unitFormat {
	case "", "letter":
		f.UnitFormat = datasize.UnitLetter
	case "short":
		f.UnitFormat = datasize.UnitShort
	case "word":
		f.UnitFormat = datasize.UnitWord
	default:
		return nil, fmt.Errorf("unknown unit format %q (want letter, short or word)", o.unitFormat)
	}
	return f, nil
}
