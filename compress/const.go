// Package compress implements the pluggable payload-compression dispatcher
// used on the send and receive paths of the knet transport: a process-wide
// registry of compression back-ends ("models"), lazily loaded on demand,
// with per-handle activation and a rate-limited retry policy on the
// decompression path.
package compress

import "time"

const (
	// MaxCompressMethods bounds the static model table (KNET_MAX_COMPRESS_METHODS).
	MaxCompressMethods = 16

	// DefaultCompressThreshold is used when a handle is configured with
	// threshold == 0 (KNET_COMPRESS_THRESHOLD).
	DefaultCompressThreshold = 100

	// MaxPacketSize bounds the threshold a handle may configure and the
	// largest buffer this dispatcher will be asked to transform.
	MaxPacketSize = 64 * 1024 * 1024

	// sentinelModelID is never assigned to a real row.
	sentinelModelID = 255

	// noneModelID is the identity back-end: compression disabled for a handle.
	noneModelID = 0

	// rateLimitWindow is how long a decompress-path caller must wait after
	// any model's most recent load failure before another load is attempted.
	rateLimitWindow = 10 * time.Second
)
