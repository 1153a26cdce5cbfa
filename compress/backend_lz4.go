package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v3"
)

// lz4Codec is the shared compress/decompress machinery for both the "lz4"
// (id 2, fast) and "lz4hc" (id 3, high-compression) rows: an lz4hc-tagged
// packet is decompressed by the ordinary lz4 decoder, so both rows share
// this implementation and differ only in the level they pass to
// lz4.Writer and in which levels ValidateLevel accepts.
type lz4Codec struct{}

func (lz4Codec) compress(level int, in []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	w.Header = lz4.Header{CompressionLevel: level}
	if _, err := w.Write(in); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (lz4Codec) decompress(in []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(in))
	return io.ReadAll(r)
}
