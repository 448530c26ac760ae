//go:build linux && (386 || arm)

package sys

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Llseek repositions the read/write offset of a file descriptor on 32-bit
// platforms, where the 64-bit offset is split across two argument words and
// the resulting position is written through a pointer.
func Llseek(fd int, offset int64, whence int) (int64, error) {
	var pos int64

	_, err := invoke(unix.SYS__LLSEEK,
		uintptr(fd),
		uintptr(uint64(offset)>>32), uintptr(uint64(offset)),
		uintptr(unsafe.Pointer(&pos)), uintptr(whence))
	runtime.KeepAlive(&pos)
	if err != nil {
		return 0, err
	}

	return pos, nil
}

// Seek is the portable spelling of the reposition operation. It maps to
// _llseek here and to lseek on 64-bit platforms.
func Seek(fd int, offset int64, whence int) (int64, error) {
	return Llseek(fd, offset, whence)
}

// Fstat retrieves file metadata for fd into st. The fstat64 variant matches
// the [unix.Stat_t] layout on 32-bit platforms.
func Fstat(fd int, st *unix.Stat_t) error {
	_, err := invoke(unix.SYS_FSTAT64, uintptr(fd), uintptr(unsafe.Pointer(st)))
	runtime.KeepAlive(st)

	return err
}
