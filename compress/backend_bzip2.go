//go:build !no_bzip2

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
)

// bzip2BuiltIn is false when this binary is compiled with -tags no_bzip2.
const bzip2BuiltIn = true

// bzip2Adapter wraps github.com/dsnet/compress/bzip2, a pure-Go codec
// supporting both directions (stdlib's compress/bzip2 is decode-only, so
// it cannot serve as a back-end here; see DESIGN.md).
type bzip2Adapter struct{}

func newBzip2Adapter() Adapter { return &bzip2Adapter{} }

func (*bzip2Adapter) Load() error { return nil }
func (*bzip2Adapter) Unload()     {}

func (*bzip2Adapter) ValidateLevel(level int) error {
	if level < bzip2.BestSpeed || level > bzip2.BestCompression {
		return fmt.Errorf("bzip2 level %d out of range [%d,%d]", level, bzip2.BestSpeed, bzip2.BestCompression)
	}
	return nil
}

func (*bzip2Adapter) Compress(level int, in []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: level})
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(in); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (*bzip2Adapter) Decompress(in []byte) ([]byte, error) {
	r, err := bzip2.NewReader(bytes.NewReader(in), nil)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
