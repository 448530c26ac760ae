package transfer

import "errors"

var (
	// ErrHashMismatch is an error that occurs when the source and
	// destination checksums disagree after a completed transfer.
	ErrHashMismatch = errors.New("checksum mismatch between source and destination")

	// ErrInvalidBufferSize is an error that occurs when a [Handler] is asked
	// to copy with a buffer size smaller than 1.
	ErrInvalidBufferSize = errors.New("invalid buffer size < 1")
)
