//go:build !no_zlib

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// zlibBuiltIn reports whether this binary was built with the zlib
// back-end linked in; compiling with -tags no_zlib swaps this file for
// backend_zlib_stub.go, dropping the dependency entirely.
const zlibBuiltIn = true

// zlibAdapter wraps klauspost/compress/zlib, a drop-in faster
// implementation of the stdlib zlib.Writer/Reader API (deflate + zlib
// framing). Stateless per-handle: no StatefulAdapter implementation.
type zlibAdapter struct{}

func newZlibAdapter() Adapter { return &zlibAdapter{} }

func (*zlibAdapter) Load() error { return nil }
func (*zlibAdapter) Unload()     {}

// ValidateLevel accepts the same range as compress/flate:
// zlib.NoCompression(0) .. zlib.BestCompression(9), or -1 for "default".
func (*zlibAdapter) ValidateLevel(level int) error {
	if level == zlib.DefaultCompression {
		return nil
	}
	if level < zlib.NoCompression || level > zlib.BestCompression {
		return fmt.Errorf("level %d out of range [%d,%d]", level, zlib.NoCompression, zlib.BestCompression)
	}
	return nil
}

func (*zlibAdapter) Compress(level int, in []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
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

func (*zlibAdapter) Decompress(in []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
