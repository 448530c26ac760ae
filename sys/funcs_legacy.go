//go:build linux && (amd64 || 386 || arm)

package sys

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Legacy calls that newer architecture ports (arm64, riscv64) never
// received. Portable code should prefer Openat, Dup3 and Ppoll, which exist
// everywhere.

// Open opens a file by path and returns the new raw descriptor value.
func Open(path string, flags int, mode uint32) (int, error) {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return -1, err
	}

	fd, err := invoke(unix.SYS_OPEN, uintptr(unsafe.Pointer(p)), uintptr(flags), uintptr(mode))
	runtime.KeepAlive(p)
	if err != nil {
		return -1, err
	}

	return int(fd), nil
}

// Creat creates a file, equivalent to open with O_CREAT|O_WRONLY|O_TRUNC.
func Creat(path string, mode uint32) (int, error) {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return -1, err
	}

	fd, err := invoke(unix.SYS_CREAT, uintptr(unsafe.Pointer(p)), uintptr(mode))
	runtime.KeepAlive(p)
	if err != nil {
		return -1, err
	}

	return int(fd), nil
}

// Dup2 duplicates oldfd onto newfd.
func Dup2(oldfd, newfd int) (int, error) {
	nfd, err := invoke(unix.SYS_DUP2, uintptr(oldfd), uintptr(newfd))
	if err != nil {
		return -1, err
	}

	return int(nfd), nil
}

// Poll waits for events on the given descriptors with a millisecond timeout
// (-1 blocks indefinitely).
func Poll(fds []unix.PollFd, timeoutMillis int) (int, error) {
	n, err := invoke(unix.SYS_POLL,
		uintptr(unsafe.Pointer(unsafe.SliceData(fds))), uintptr(len(fds)), uintptr(timeoutMillis))
	runtime.KeepAlive(fds)

	return int(n), err
}
