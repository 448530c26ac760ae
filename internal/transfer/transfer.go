// Package transfer implements the rawcopy copy engine on top of the safe
// handle layer.
//
// One loop iteration issues exactly one read system call; each read is
// followed by as many write calls as the kernel needs to accept the bytes
// (short writes are a success at the handle layer, so finishing the
// remainder is this package's policy, not the core's). Interrupted calls
// are not retried anywhere: an EINTR surfaces to the caller as a failed
// transfer.
package transfer

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync/atomic"

	"github.com/zeebo/blake3"
)

type readProvider interface {
	Read(p []byte) (int, error)
}

type writeProvider interface {
	Write(p []byte) (int, error)
	Sync() error
}

// Progress is a point-in-time snapshot of a running transfer.
type Progress struct {
	TotalBytes  uint64
	DoneBytes   uint64
	ProgressPct int
}

// Result describes a completed transfer.
type Result struct {
	BytesCopied uint64
	SourceSum   string
	DestSum     string
}

// Handler is the principal implementation of the copy engine.
type Handler struct {
	BufferSize int
	Verify     bool

	totalBytes atomic.Uint64
	doneBytes  atomic.Uint64
}

// NewHandler returns a pointer to a new transfer [Handler].
func NewHandler(bufferSize int, verify bool) *Handler {
	return &Handler{
		BufferSize: bufferSize,
		Verify:     verify,
	}
}

// Progress reports the current transfer state; it is safe to call from
// another goroutine (the UI polls it) while Copy runs.
func (h *Handler) Progress() Progress {
	total := h.totalBytes.Load()
	done := h.doneBytes.Load()

	pct := 0
	if total > 0 {
		pct = int(done * 100 / total)
	}

	return Progress{
		TotalBytes:  total,
		DoneBytes:   done,
		ProgressPct: pct,
	}
}

// Copy streams src into dst until end of file, hashing both streams when
// verification is enabled and syncing dst before returning. totalSize is
// only used for progress reporting; the copy runs until src reports end of
// file regardless.
func (h *Handler) Copy(ctx context.Context, src readProvider, dst writeProvider, totalSize uint64) (*Result, error) {
	if h.BufferSize < 1 {
		return nil, ErrInvalidBufferSize
	}

	h.totalBytes.Store(totalSize)
	h.doneBytes.Store(0)

	var srcHasher, dstHasher *blake3.Hasher
	if h.Verify {
		srcHasher = blake3.New()
		dstHasher = blake3.New()
	}

	buf := make([]byte, h.BufferSize)

	var copied uint64

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("transfer canceled: %w", context.Canceled)
		}

		n, err := src.Read(buf)
		if err != nil {
			return nil, fmt.Errorf("failed to read source: %w", err)
		}

		if n == 0 {
			break
		}

		if srcHasher != nil {
			srcHasher.Write(buf[:n]) //nolint:errcheck
		}

		chunk := buf[:n]
		for len(chunk) > 0 {
			written, err := dst.Write(chunk)
			if err != nil {
				return nil, fmt.Errorf("failed to write destination: %w", err)
			}

			if dstHasher != nil {
				dstHasher.Write(chunk[:written]) //nolint:errcheck
			}

			copied += uint64(written)
			h.doneBytes.Store(copied)
			chunk = chunk[written:]
		}
	}

	if err := dst.Sync(); err != nil {
		return nil, fmt.Errorf("failed to sync destination: %w", err)
	}

	result := &Result{BytesCopied: copied}

	if h.Verify {
		result.SourceSum = hex.EncodeToString(srcHasher.Sum(nil))
		result.DestSum = hex.EncodeToString(dstHasher.Sum(nil))

		if result.SourceSum != result.DestSum {
			return nil, fmt.Errorf("%w: %s (src) != %s (dst)",
				ErrHashMismatch, result.SourceSum, result.DestSum)
		}
	}

	return result, nil
}
