//go:build no_lzma

package compress

const lzmaBuiltIn = false

func newLZMAAdapter() Adapter { return nil }
