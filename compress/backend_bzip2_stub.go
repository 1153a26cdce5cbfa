//go:build no_bzip2

package compress

const bzip2BuiltIn = false

func newBzip2Adapter() Adapter { return nil }
