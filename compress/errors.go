package compress

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the dispatcher. Callers classify a returned error
// with errors.Is against these sentinels; the underlying cause (an unknown
// model name, a codec's own diagnostic, etc.) is kept in the error text so
// it still reaches the log line a human reads. Only a codec's own error is
// also wrapped with %w (see ErrCodec); other causes are text only.
var (
	// ErrInvalidArgument covers an unknown model name, a non-built-in
	// selection, an unsupported level, a threshold above MaxPacketSize, or
	// a received model_id that exceeds the table's max or names a
	// non-built-in row.
	ErrInvalidArgument = errors.New("compress: invalid argument")

	// ErrLoadFailure is returned when a back-end's Load failed. The
	// failure is also recorded in the registry's lastLoadFailure.
	ErrLoadFailure = errors.New("compress: back-end load failed")

	// ErrInitFailure is returned when a back-end's per-handle Init failed;
	// any partial charge against the model is released before returning.
	ErrInitFailure = errors.New("compress: back-end init failed")

	// ErrRateLimited is returned on the decompress path when a load was
	// attempted within rateLimitWindow of a prior failure.
	ErrRateLimited = errors.New("compress: rate limited, try again later")

	// ErrLockFailure is part of the kind vocabulary for API completeness;
	// the in-process Registry backed by sync.RWMutex never produces it, but
	// callers that swap in a different lock implementation may need it.
	ErrLockFailure = errors.New("compress: lock unavailable")

	// ErrCodec wraps an opaque error returned by a back-end's Compress or
	// Decompress. The codec's own error is wrapped with %w alongside it, so
	// its message is preserved unchanged and errors.Is/As can reach it.
	ErrCodec = errors.New("compress: codec error")
)

// wrapf wraps kind with a formatted message, preserving errors.Is(kind)
// while letting the log/error text name the specific model and cause.
func wrapf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{kind}, args...)...)
}
