// Command catenc factorizes a categorical CSV column into dense u32 codes and
// writes a code -> label mapping next to it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ivan-cunha/colsynth/internal/categorical"
	"github.com/ivan-cunha/colsynth/internal/dictionary"
	"github.com/ivan-cunha/colsynth/internal/storage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		csvPath     string
		column      string
		outBin      string
		outDict     string
		dictFormat  string
		compression string
	)

	fs := flag.NewFlagSet("catenc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&csvPath, "csv", "", "Input CSV file (required)")
	fs.StringVar(&column, "column", "", "Categorical column name (required)")
	fs.StringVar(&outBin, "out-bin", "", "Output code file, u32 (required)")
	fs.StringVar(&outDict, "out-dict", "", "Output code -> label mapping (required)")
	fs.StringVar(&dictFormat, "dict-format", string(dictionary.JSON), "Mapping format: json or yaml")
	fs.StringVar(&compression, "compression", "none", "Code file compression: none or snappy")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	for _, req := range []struct{ name, value string }{
		{"--csv", csvPath}, {"--column", column}, {"--out-bin", outBin}, {"--out-dict", outDict},
	} {
		if req.value == "" {
			fmt.Fprintf(stderr, "Error: %s is required\n", req.name)
			return 2
		}
	}

	format, err := dictionary.ParseFormat(dictFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	res, err := categorical.Run(categorical.Config{
		CSVPath:    csvPath,
		Column:     column,
		OutBin:     outBin,
		OutDict:    outDict,
		DictFormat: format,
		Storage:    storage.Options{Compression: compression},
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error encoding column: %v\n", err)
		return 1
	}

	for _, line := range res.Summary() {
		fmt.Fprintln(stdout, line)
	}
	return 0
}
