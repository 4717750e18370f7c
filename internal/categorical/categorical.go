// Package categorical turns one CSV column into a dense u32 code column and a
// code -> label mapping file.
package categorical

import (
	"fmt"

	"github.com/ivan-cunha/colsynth/internal/dictionary"
	"github.com/ivan-cunha/colsynth/internal/storage"
)

type Config struct {
	CSVPath    string
	Column     string
	OutBin     string
	OutDict    string
	DictFormat dictionary.Format
	Storage    storage.Options
}

type Result struct {
	Rows     int
	Missing  int
	Codes    []uint32
	Table    *dictionary.Table
	BinPath  string
	DictPath string
}

// Encode factorizes the named column in memory. Nothing is written.
func Encode(csvPath, column string) (*Result, error) {
	col, err := storage.ReadCSVColumnFile(csvPath, column)
	if err != nil {
		return nil, err
	}

	codes, table := dictionary.Factorize(col.Values)
	return &Result{
		Rows:    col.Rows,
		Missing: col.Missing,
		Codes:   codes,
		Table:   table,
	}, nil
}

// Run encodes the column and writes the code file followed by the mapping
// file. Input problems surface before either file is created; the two writes
// are not atomic as a pair.
func Run(c Config) (*Result, error) {
	if c.DictFormat == "" {
		c.DictFormat = dictionary.JSON
	}
	if _, err := dictionary.ParseFormat(string(c.DictFormat)); err != nil {
		return nil, err
	}

	res, err := Encode(c.CSVPath, c.Column)
	if err != nil {
		return nil, err
	}

	if err := storage.WriteCodesFile(c.OutBin, res.Codes, c.Storage); err != nil {
		return nil, fmt.Errorf("writing codes: %w", err)
	}
	if err := dictionary.WriteFile(c.OutDict, res.Table, c.DictFormat); err != nil {
		return nil, fmt.Errorf("writing mapping: %w", err)
	}

	res.BinPath = c.OutBin
	res.DictPath = c.OutDict
	return res, nil
}

func (r *Result) Summary() []string {
	return []string{
		fmt.Sprintf("wrote %d rows to %s", len(r.Codes), r.BinPath),
		fmt.Sprintf("distinct categories: %d (mapping -> %s)", r.Table.Len(), r.DictPath),
	}
}
