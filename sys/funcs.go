package sys

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Read reads from a file descriptor into p, returning the number of bytes
// the kernel actually placed. A short read is not an error.
func Read(fd int, p []byte) (int, error) {
	n, err := invoke(unix.SYS_READ, uintptr(fd), uintptr(bufPtr(p)), uintptr(len(p)))
	runtime.KeepAlive(p)

	return int(n), err
}

// Write writes p to a file descriptor, returning the number of bytes the
// kernel actually accepted. A short write is not an error.
func Write(fd int, p []byte) (int, error) {
	n, err := invoke(unix.SYS_WRITE, uintptr(fd), uintptr(bufPtr(p)), uintptr(len(p)))
	runtime.KeepAlive(p)

	return int(n), err
}

// Pread64 reads from a file descriptor at the given offset without moving
// the file position.
func Pread64(fd int, p []byte, offset int64) (int, error) {
	n, err := invoke(unix.SYS_PREAD64,
		uintptr(fd), uintptr(bufPtr(p)), uintptr(len(p)), uintptr(offset))
	runtime.KeepAlive(p)

	return int(n), err
}

// Pwrite64 writes p to a file descriptor at the given offset without moving
// the file position.
func Pwrite64(fd int, p []byte, offset int64) (int, error) {
	n, err := invoke(unix.SYS_PWRITE64,
		uintptr(fd), uintptr(bufPtr(p)), uintptr(len(p)), uintptr(offset))
	runtime.KeepAlive(p)

	return int(n), err
}

// Readv reads from a file descriptor into multiple buffers.
func Readv(fd int, bufs [][]byte) (int, error) {
	iov := iovecs(bufs)

	n, err := invoke(unix.SYS_READV,
		uintptr(fd), uintptr(unsafe.Pointer(unsafe.SliceData(iov))), uintptr(len(iov)))
	runtime.KeepAlive(iov)
	runtime.KeepAlive(bufs)

	return int(n), err
}

// Writev writes multiple buffers to a file descriptor.
func Writev(fd int, bufs [][]byte) (int, error) {
	iov := iovecs(bufs)

	n, err := invoke(unix.SYS_WRITEV,
		uintptr(fd), uintptr(unsafe.Pointer(unsafe.SliceData(iov))), uintptr(len(iov)))
	runtime.KeepAlive(iov)
	runtime.KeepAlive(bufs)

	return int(n), err
}

// Openat opens path relative to dirfd (or the working directory, for
// [unix.AT_FDCWD]) and returns the new raw descriptor value. The flag and
// mode bits pass through to the kernel uninterpreted.
func Openat(dirfd int, path string, flags int, mode uint32) (int, error) {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return -1, err
	}

	fd, err := invoke(unix.SYS_OPENAT,
		uintptr(dirfd), uintptr(unsafe.Pointer(p)), uintptr(flags), uintptr(mode))
	runtime.KeepAlive(p)
	if err != nil {
		return -1, err
	}

	return int(fd), nil
}

// Close closes a raw file descriptor.
func Close(fd int) error {
	_, err := invoke(unix.SYS_CLOSE, uintptr(fd))

	return err
}

// Dup duplicates a file descriptor, returning a new descriptor referring to
// the same open file description.
func Dup(fd int) (int, error) {
	nfd, err := invoke(unix.SYS_DUP, uintptr(fd))
	if err != nil {
		return -1, err
	}

	return int(nfd), nil
}

// Dup3 duplicates oldfd onto newfd, applying the given flags (O_CLOEXEC is
// the only one the kernel accepts here).
func Dup3(oldfd, newfd, flags int) (int, error) {
	nfd, err := invoke(unix.SYS_DUP3, uintptr(oldfd), uintptr(newfd), uintptr(flags))
	if err != nil {
		return -1, err
	}

	return int(nfd), nil
}

// Ftruncate truncates the file behind fd to the given length.
func Ftruncate(fd int, length int64) error {
	_, err := invoke(unix.SYS_FTRUNCATE, uintptr(fd), uintptr(length))

	return err
}

// Truncate truncates the file at path to the given length.
func Truncate(path string, length int64) error {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return err
	}

	_, err = invoke(unix.SYS_TRUNCATE, uintptr(unsafe.Pointer(p)), uintptr(length))
	runtime.KeepAlive(p)

	return err
}

// Fsync commits the file behind fd, data and metadata, to stable storage.
func Fsync(fd int) error {
	_, err := invoke(unix.SYS_FSYNC, uintptr(fd))

	return err
}

// Fdatasync commits the data of the file behind fd to stable storage,
// skipping metadata that is not needed to read it back.
func Fdatasync(fd int) error {
	_, err := invoke(unix.SYS_FDATASYNC, uintptr(fd))

	return err
}

// Syncfs commits the caches of the whole filesystem containing fd.
func Syncfs(fd int) error {
	_, err := invoke(unix.SYS_SYNCFS, uintptr(fd))

	return err
}

// Sync commits all filesystem caches to disk. It cannot fail.
func Sync() {
	_, _ = invoke(unix.SYS_SYNC)
}

// Ioctl issues a device-specific control operation with an integer-shaped
// argument. The request code and argument pass through uninterpreted; the
// success payload is whatever the driver returns.
func Ioctl(fd int, req, arg uintptr) (uintptr, error) {
	return invoke(unix.SYS_IOCTL, uintptr(fd), req, arg)
}

// IoctlPtr issues a device-specific control operation whose argument is a
// pointer. The pointed-to memory must match whatever layout the driver
// expects for req; the kernel will trust it blindly.
func IoctlPtr(fd int, req uintptr, arg unsafe.Pointer) (uintptr, error) {
	r, err := invoke(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	runtime.KeepAlive(arg)

	return r, err
}

// Fcntl performs a file descriptor control operation with an integer
// argument.
func Fcntl(fd, cmd, arg int) (int, error) {
	r, err := invoke(unix.SYS_FCNTL, uintptr(fd), uintptr(cmd), uintptr(arg))

	return int(r), err
}

// Fchmod changes the mode bits of the file behind fd.
func Fchmod(fd int, mode uint32) error {
	_, err := invoke(unix.SYS_FCHMOD, uintptr(fd), uintptr(mode))

	return err
}

// Fchown changes the owner and group of the file behind fd.
func Fchown(fd, uid, gid int) error {
	_, err := invoke(unix.SYS_FCHOWN, uintptr(fd), uintptr(uid), uintptr(gid))

	return err
}

// Flock applies or removes an advisory lock on the file behind fd.
func Flock(fd, how int) error {
	_, err := invoke(unix.SYS_FLOCK, uintptr(fd), uintptr(how))

	return err
}

// Getdents64 reads directory entries in the raw linux_dirent64 wire format
// into buf, returning the number of bytes placed. A return of 0 means end of
// directory.
func Getdents64(fd int, buf []byte) (int, error) {
	n, err := invoke(unix.SYS_GETDENTS64, uintptr(fd), uintptr(bufPtr(buf)), uintptr(len(buf)))
	runtime.KeepAlive(buf)

	return int(n), err
}

// Mkdirat creates a directory at path relative to dirfd.
func Mkdirat(dirfd int, path string, mode uint32) error {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return err
	}

	_, err = invoke(unix.SYS_MKDIRAT, uintptr(dirfd), uintptr(unsafe.Pointer(p)), uintptr(mode))
	runtime.KeepAlive(p)

	return err
}

// Unlinkat removes the directory entry at path relative to dirfd. Pass
// [unix.AT_REMOVEDIR] in flags to remove a directory instead of a file.
func Unlinkat(dirfd int, path string, flags int) error {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return err
	}

	_, err = invoke(unix.SYS_UNLINKAT, uintptr(dirfd), uintptr(unsafe.Pointer(p)), uintptr(flags))
	runtime.KeepAlive(p)

	return err
}

// Pipe2 creates a pipe, returning the read and write descriptor values.
func Pipe2(flags int) (r, w int, err error) {
	var fds [2]int32

	_, err = invoke(unix.SYS_PIPE2, uintptr(unsafe.Pointer(&fds)), uintptr(flags))
	runtime.KeepAlive(&fds)
	if err != nil {
		return -1, -1, err
	}

	return int(fds[0]), int(fds[1]), nil
}

// Ppoll waits for events on the given descriptors. A nil timeout blocks
// indefinitely. It returns the number of descriptors with pending events,
// with the results written back into the Revents fields of fds.
func Ppoll(fds []unix.PollFd, timeout *unix.Timespec) (int, error) {
	n, err := invoke(unix.SYS_PPOLL,
		uintptr(unsafe.Pointer(unsafe.SliceData(fds))), uintptr(len(fds)),
		uintptr(unsafe.Pointer(timeout)), 0, 0)
	runtime.KeepAlive(fds)
	runtime.KeepAlive(timeout)

	return int(n), err
}

// Getpid returns the process id of the current process. It cannot fail.
func Getpid() int {
	return int(RawCall(unix.SYS_GETPID))
}
