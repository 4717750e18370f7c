package compression

import (
	"fmt"

	"github.com/golang/snappy"
)

type SnappyCompressor struct{}

func NewSnappyCompressor() *SnappyCompressor {
	return &SnappyCompressor{}
}

func (c *SnappyCompressor) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (c *SnappyCompressor) Decompress(data []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("snappy decode: %w", err)
	}
	return out, nil
}

func (c *SnappyCompressor) Name() string {
	return "snappy"
}

func init() {
	RegisterCompressor("snappy", NewSnappyCompressor())
}
