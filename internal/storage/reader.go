package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/ivan-cunha/colsynth/internal/compression"
	"github.com/ivan-cunha/colsynth/internal/encoding"
	"github.com/ivan-cunha/colsynth/pkg/types"
)

type Reader struct {
	r          io.Reader
	compressor compression.Compressor
}

func NewReader(r io.Reader, opts Options) (*Reader, error) {
	compressor, err := compression.GetCompressor(opts.Compression)
	if err != nil {
		return nil, err
	}
	return &Reader{r: r, compressor: compressor}, nil
}

func (r *Reader) ReadColumn(width types.Width) (*types.Column, error) {
	data, err := r.readAll()
	if err != nil {
		return nil, err
	}
	return encoding.DecodeColumn(data, width)
}

func (r *Reader) ReadCodes() ([]uint32, error) {
	data, err := r.readAll()
	if err != nil {
		return nil, err
	}
	return encoding.Uint32s(data)
}

func (r *Reader) readAll() ([]byte, error) {
	raw, err := io.ReadAll(r.r)
	if err != nil {
		return nil, fmt.Errorf("failed to read column data: %w", err)
	}
	data, err := r.compressor.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("%s decompression failed: %w", r.compressor.Name(), err)
	}
	return data, nil
}

func ReadColumnFile(path string, width types.Width, opts Options) (*types.Column, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening column file: %w", err)
	}
	defer f.Close()

	r, err := NewReader(f, opts)
	if err != nil {
		return nil, err
	}
	return r.ReadColumn(width)
}

func ReadCodesFile(path string, opts Options) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening code file: %w", err)
	}
	defer f.Close()

	r, err := NewReader(f, opts)
	if err != nil {
		return nil, err
	}
	return r.ReadCodes()
}
