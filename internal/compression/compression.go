package compression

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

const None = "none"

var (
	ErrCompressorNotFound = errors.New("compressor not found")
	compressors           = make(map[string]Compressor)
	compressorsMu         sync.RWMutex
)

type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Name() string
}

func RegisterCompressor(name string, c Compressor) {
	compressorsMu.Lock()
	defer compressorsMu.Unlock()
	compressors[name] = c
}

// GetCompressor looks up a registered compressor. An empty name selects the
// pass-through compressor so raw column files stay the default.
func GetCompressor(name string) (Compressor, error) {
	if name == "" {
		name = None
	}

	compressorsMu.RLock()
	defer compressorsMu.RUnlock()

	if c, exists := compressors[name]; exists {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q (available: %v)", ErrCompressorNotFound, name, namesLocked())
}

func Names() []string {
	compressorsMu.RLock()
	defer compressorsMu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(compressors))
	for name := range compressors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
