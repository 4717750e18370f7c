package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ivan-cunha/colsynth/internal/compression"
	"github.com/ivan-cunha/colsynth/internal/encoding"
	"github.com/ivan-cunha/colsynth/pkg/types"
)

type Options struct {
	// Compression names a registered compressor. Empty means raw bytes.
	Compression string
}

type Writer struct {
	w          io.Writer
	compressor compression.Compressor
}

func NewWriter(w io.Writer, opts Options) (*Writer, error) {
	compressor, err := compression.GetCompressor(opts.Compression)
	if err != nil {
		return nil, err
	}
	return &Writer{w: w, compressor: compressor}, nil
}

func (w *Writer) WriteColumn(col *types.Column) error {
	data, err := encoding.EncodeColumn(col)
	if err != nil {
		return err
	}
	return w.write(data)
}

func (w *Writer) WriteCodes(codes []uint32) error {
	return w.write(encoding.PutUint32s(codes))
}

func (w *Writer) write(data []byte) error {
	compressed, err := w.compressor.Compress(data)
	if err != nil {
		return fmt.Errorf("%s compression failed: %w", w.compressor.Name(), err)
	}
	if _, err := w.w.Write(compressed); err != nil {
		return fmt.Errorf("failed to write column data: %w", err)
	}
	return nil
}

// CreateFile creates path, making any missing parent directories first.
func CreateFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating output file: %w", err)
	}
	return f, nil
}

func WriteColumnFile(path string, col *types.Column, opts Options) error {
	return writeFile(path, opts, func(w *Writer) error { return w.WriteColumn(col) })
}

func WriteCodesFile(path string, codes []uint32, opts Options) error {
	return writeFile(path, opts, func(w *Writer) error { return w.WriteCodes(codes) })
}

func writeFile(path string, opts Options, fn func(*Writer) error) error {
	// Resolve the compressor before touching the filesystem.
	if _, err := compression.GetCompressor(opts.Compression); err != nil {
		return err
	}

	f, err := CreateFile(path)
	if err != nil {
		return err
	}

	w, err := NewWriter(f, opts)
	if err != nil {
		f.Close()
		return err
	}
	if err := fn(w); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing %s: %w", path, err)
	}
	return nil
}
