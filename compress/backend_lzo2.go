//go:build !no_lzo2

package compress

import (
	"bytes"
	"fmt"

	lzo "github.com/anchore/go-lzo"
)

// lzo2BuiltIn is false when this binary is compiled with -tags no_lzo2.
const lzo2BuiltIn = true

// lzo2Adapter wraps anchore/go-lzo's lzo1x codec. Stateless per-handle.
type lzo2Adapter struct{}

func newLZO2Adapter() Adapter { return &lzo2Adapter{} }

func (*lzo2Adapter) Load() error { return nil }
func (*lzo2Adapter) Unload()     {}

// ValidateLevel: lzo1x has no meaningful level knob in this back-end; only
// the default (0) is accepted.
func (*lzo2Adapter) ValidateLevel(level int) error {
	if level != 0 {
		return fmt.Errorf("lzo2 does not support a compression level, got %d", level)
	}
	return nil
}

func (*lzo2Adapter) Compress(_ int, in []byte) ([]byte, error) {
	out, err := lzo.Compress1X(in)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (*lzo2Adapter) Decompress(in []byte) ([]byte, error) {
	out, err := lzo.Decompress1X(bytes.NewReader(in), len(in), MaxPacketSize)
	if err != nil {
		return nil, err
	}
	return out, nil
}
