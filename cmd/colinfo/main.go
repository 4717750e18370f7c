// Command colinfo prints summary statistics for a flat column file and can
// check a code column against its mapping file.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/ivan-cunha/colsynth/internal/dictionary"
	"github.com/ivan-cunha/colsynth/internal/storage"
	"github.com/ivan-cunha/colsynth/pkg/types"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		input       string
		dtype       string
		dictPath    string
		dictFormat  string
		compression string
	)

	fs := flag.NewFlagSet("colinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&input, "in", "", "Column file (required)")
	fs.StringVar(&dtype, "dtype", "", "Element type: u32 or u64 (required)")
	fs.StringVar(&dictPath, "dict", "", "Mapping file to check the codes against")
	fs.StringVar(&dictFormat, "dict-format", string(dictionary.JSON), "Mapping format: json or yaml")
	fs.StringVar(&compression, "compression", "none", "Column file compression: none or snappy")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if input == "" || dtype == "" {
		fmt.Fprintln(stderr, "Error: --in and --dtype are required")
		return 2
	}

	width, err := types.ParseWidth(dtype)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	col, err := storage.ReadColumnFile(input, width, storage.Options{Compression: compression})
	if err != nil {
		fmt.Fprintf(stderr, "Error reading column: %v\n", err)
		return 1
	}

	stats := storage.Stats(col)
	fmt.Fprintf(stdout, "File: %s\n", filepath.Base(input))
	fmt.Fprintf(stdout, "Type: %s\n", stats.Width)
	fmt.Fprintf(stdout, "Count: %d\n", stats.Count)
	if stats.Count > 0 {
		fmt.Fprintf(stdout, "Min: %d\n", stats.Min)
		fmt.Fprintf(stdout, "Max: %d\n", stats.Max)
		fmt.Fprintf(stdout, "Mean: %.6g\n", stats.Mean)
		fmt.Fprintf(stdout, "Normalized mean: %.6f\n", stats.NormalizedMean)
	}

	if dictPath == "" {
		return 0
	}

	format, err := dictionary.ParseFormat(dictFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	table, err := dictionary.ReadFile(dictPath, format)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading mapping: %v\n", err)
		return 1
	}

	codes := make([]uint32, col.Len())
	for i, v := range col.Values {
		if v > math.MaxUint32 {
			fmt.Fprintf(stderr, "Error: value %d at row %d is not a u32 code\n", v, i)
			return 1
		}
		codes[i] = uint32(v)
	}
	if err := dictionary.Verify(codes, table); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Categories: %d (all codes mapped)\n", table.Len())
	return 0
}
