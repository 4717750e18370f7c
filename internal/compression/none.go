package compression

// NoneCompressor leaves column bytes untouched.
type NoneCompressor struct{}

func NewNoneCompressor() *NoneCompressor {
	return &NoneCompressor{}
}

func (c *NoneCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c *NoneCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

func (c *NoneCompressor) Name() string {
	return None
}

func init() {
	RegisterCompressor(None, NewNoneCompressor())
}
