//go:build no_lz4hc

package compress

const lz4hcBuiltIn = false

func newLZ4HCAdapter() Adapter { return nil }
