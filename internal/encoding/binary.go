package encoding

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ivan-cunha/colsynth/pkg/types"
)

// Column files are a bare run of fixed-width integers in the host byte order.
// There is no magic number, header or length prefix; readers must know the
// width out of band.
var ByteOrder = binary.NativeEndian

var ErrSizeNotMultiple = errors.New("size not multiple of element width")

func PutUint32s(values []uint32) []byte {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		ByteOrder.PutUint32(buf[i*4:], v)
	}
	return buf
}

func PutUint64s(values []uint64) []byte {
	buf := make([]byte, len(values)*8)
	for i, v := range values {
		ByteOrder.PutUint64(buf[i*8:], v)
	}
	return buf
}

func Uint32s(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("decoding u32 column of %d bytes: %w", len(data), ErrSizeNotMultiple)
	}
	result := make([]uint32, len(data)/4)
	for i := range result {
		result[i] = ByteOrder.Uint32(data[i*4:])
	}
	return result, nil
}

func Uint64s(data []byte) ([]uint64, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("decoding u64 column of %d bytes: %w", len(data), ErrSizeNotMultiple)
	}
	result := make([]uint64, len(data)/8)
	for i := range result {
		result[i] = ByteOrder.Uint64(data[i*8:])
	}
	return result, nil
}

// EncodeColumn narrows the column values to the column width. Values that do
// not fit a u32 column are an error rather than silently wrapped.
func EncodeColumn(col *types.Column) ([]byte, error) {
	if col.Width == types.U64 {
		return PutUint64s(col.Values), nil
	}

	narrow := make([]uint32, len(col.Values))
	for i, v := range col.Values {
		if v > col.Width.Max() {
			return nil, fmt.Errorf("value %d at index %d overflows %s", v, i, col.Width)
		}
		narrow[i] = uint32(v)
	}
	return PutUint32s(narrow), nil
}

func DecodeColumn(data []byte, width types.Width) (*types.Column, error) {
	col := &types.Column{Width: width}
	if width == types.U64 {
		values, err := Uint64s(data)
		if err != nil {
			return nil, err
		}
		col.Values = values
		return col, nil
	}

	values, err := Uint32s(data)
	if err != nil {
		return nil, err
	}
	col.Values = make([]uint64, len(values))
	for i, v := range values {
		col.Values[i] = uint64(v)
	}
	return col, nil
}
