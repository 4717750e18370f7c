package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrColumnNotFound = errors.New("column not found")

// missingValues are the cell texts treated as absent. Matching is exact and
// case-sensitive, the same vocabulary common dataframe loaders use.
var missingValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

func isNull(value string) bool {
	_, ok := missingValues[value]
	return ok
}

// CSVColumn is one column of a CSV file with missing cells removed.
type CSVColumn struct {
	Name    string
	Values  []string
	Rows    int
	Missing int
}

// ReadCSVColumn reads the header, resolves name and collects the non-missing
// cells of that column in row order, rendered in canonical text form. Rows
// shorter than the header count as missing for this column. Stray quotes inside
// unquoted fields are kept as literal text.
func ReadCSVColumn(r io.Reader, name string) (*CSVColumn, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("error reading CSV header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	index := -1
	for i, header := range headers {
		if i == 0 {
			header = strings.TrimPrefix(header, "\ufeff")
		}
		if header == name {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrColumnNotFound, name, strings.Join(headers, ", "))
	}

	col := &CSVColumn{Name: name}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV row %d: %w", col.Rows+1, err)
		}

		col.Rows++
		if index >= len(row) || isNull(row[index]) {
			col.Missing++
			continue
		}
		col.Values = append(col.Values, row[index])
	}
	col.Values = Canonicalize(col.Values, col.Missing > 0)
	return col, nil
}

func ReadCSVColumnFile(path, name string) (*CSVColumn, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer f.Close()

	return ReadCSVColumn(f, name)
}
