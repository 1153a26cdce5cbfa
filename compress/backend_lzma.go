//go:build !no_lzma

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// lzmaBuiltIn is false when this binary is compiled with -tags no_lzma.
const lzmaBuiltIn = true

// lzmaAdapter wraps github.com/ulikunitz/xz's lzma package (raw LZMA
// stream, not the xz container format).
//
// level maps to the dictionary size: knet's level is an integer in
// [0,9], scaled to a DictCap between lzma's minimum and a 64MiB ceiling,
// mirroring how the other back-ends here treat "level" as "how hard to
// try," not a literal codec parameter.
type lzmaAdapter struct{}

func newLZMAAdapter() Adapter { return &lzmaAdapter{} }

func (*lzmaAdapter) Load() error { return nil }
func (*lzmaAdapter) Unload()     {}

func (*lzmaAdapter) ValidateLevel(level int) error {
	if level < 0 || level > 9 {
		return fmt.Errorf("lzma level %d out of range [0,9]", level)
	}
	return nil
}

func dictCapForLevel(level int) int {
	const (
		minDictCap = 1 << 16 // 64KiB, lzma.MinDictCap
		maxDictCap = 1 << 26 // 64MiB
	)
	if level <= 0 {
		return minDictCap
	}
	cap := minDictCap << uint(level)
	if cap > maxDictCap {
		return maxDictCap
	}
	return cap
}

func (*lzmaAdapter) Compress(level int, in []byte) ([]byte, error) {
	var buf bytes.Buffer
	cfg := lzma.WriterConfig{DictCap: dictCapForLevel(level)}
	w, err := cfg.NewWriter(&buf)
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

func (*lzmaAdapter) Decompress(in []byte) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}
