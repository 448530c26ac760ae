//go:build linux && (amd64 || arm64 || riscv64)

package sys

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Lseek repositions the read/write offset of a file descriptor and returns
// the new absolute position. On 64-bit platforms the plain lseek call is
// sufficient for all offsets.
func Lseek(fd int, offset int64, whence int) (int64, error) {
	pos, err := invoke(unix.SYS_LSEEK, uintptr(fd), uintptr(offset), uintptr(whence))
	if err != nil {
		return 0, err
	}

	return int64(pos), nil
}

// Seek is the portable spelling of the reposition operation. It maps to
// lseek here and to _llseek on 32-bit platforms.
func Seek(fd int, offset int64, whence int) (int64, error) {
	return Lseek(fd, offset, whence)
}

// Fstat retrieves file metadata for fd into st.
func Fstat(fd int, st *unix.Stat_t) error {
	_, err := invoke(unix.SYS_FSTAT, uintptr(fd), uintptr(unsafe.Pointer(st)))
	runtime.KeepAlive(st)

	return err
}
