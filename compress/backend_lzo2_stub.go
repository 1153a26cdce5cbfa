//go:build no_lzo2

package compress

const lzo2BuiltIn = false

func newLZO2Adapter() Adapter { return nil }
