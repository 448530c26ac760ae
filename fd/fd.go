// Package fd provides an ownership-safe handle type over raw Linux file
// descriptors, built exclusively on the raw call layer in package [sys].
//
// A [File] owns exactly one descriptor value. Release happens exactly once:
// explicitly through [File.Close], or implicitly through a runtime cleanup
// when an unclosed File becomes unreachable. After a Close the handle is
// dead and every further method, including a second Close, returns
// [unix.EBADF] without entering the kernel.
//
// The methods are thin translations over single system calls. There is no
// internal buffering, batching or retrying, so callers can reason precisely
// about syscall counts; short reads and short writes are reported as
// successes with the short count. A single File must not be used from
// multiple goroutines without external synchronization: the package adds no
// locking, so concurrent method calls race at the kernel exactly as raw
// concurrent syscalls would.
package fd

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// File is an owned Linux file descriptor.
type File struct {
	sysOps  sysProvider
	raw     int
	cleanup runtime.Cleanup
}

// newFile wraps a raw descriptor the caller just obtained from a successful
// open-shape call and arms the implicit release.
func newFile(sysOps sysProvider, raw int) *File {
	f := &File{sysOps: sysOps, raw: raw}

	// The cleanup must not capture f itself, or it would never run.
	f.cleanup = runtime.AddCleanup(f, func(fd int) {
		_ = sysOps.Close(fd) // nobody is left to observe this error
	}, raw)

	return f
}

// Open opens the file at path and wraps the resulting descriptor in a new
// [File]. The flag and mode bits pass through to the kernel uninterpreted;
// mode is only consulted by the kernel when flags request file creation.
func Open(path string, flags int, mode uint32) (*File, error) {
	return openWith(defaultSys, path, flags, mode)
}

// Create creates (or truncates) the file at path for writing with the given
// permission bits.
func Create(path string, mode uint32) (*File, error) {
	return openWith(defaultSys, path, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC, mode)
}

func openWith(sysOps sysProvider, path string, flags int, mode uint32) (*File, error) {
	raw, err := sysOps.Openat(unix.AT_FDCWD, path, flags, mode)
	if err != nil {
		return nil, err
	}

	return newFile(sysOps, raw), nil
}

// FromRaw wraps an existing raw descriptor value without issuing any kernel
// call. The caller asserts that the process owns raw exclusively: it must
// not belong to an os.File or any other wrapper, and it must not be wrapped
// twice, because each owner will eventually close it.
func FromRaw(raw int) *File {
	return newFile(defaultSys, raw)
}

// Socket creates a socket endpoint and wraps it in a new [File].
func Socket(domain, typ, protocol int) (*File, error) {
	raw, err := defaultSys.Socket(domain, typ, protocol)
	if err != nil {
		return nil, err
	}

	return newFile(defaultSys, raw), nil
}

// Pipe creates a pipe and returns the read and write ends as two
// independently owned Files.
func Pipe(flags int) (r, w *File, err error) {
	rfd, wfd, err := defaultSys.Pipe2(flags)
	if err != nil {
		return nil, nil, err
	}

	return newFile(defaultSys, rfd), newFile(defaultSys, wfd), nil
}

// Raw returns the wrapped descriptor value without transferring ownership.
// The value is only valid while f remains open; callers must not close it.
func (f *File) Raw() int {
	return f.raw
}

// IntoRaw disarms the handle and returns the wrapped descriptor value,
// transferring ownership to the caller. No close will ever be issued for it
// by this package afterwards.
func (f *File) IntoRaw() int {
	raw := f.raw
	f.raw = -1
	f.cleanup.Stop()

	return raw
}

// Close releases the descriptor, issuing exactly one close call, and
// reports the kernel's verdict on it (a close can fail, e.g. when write-back
// errors are flushed at close time). The handle is dead afterwards; a second
// Close returns [unix.EBADF] without entering the kernel, so the descriptor
// value can never be released twice through f even if the kernel has already
// reassigned it.
func (f *File) Close() error {
	if f.raw < 0 {
		return unix.EBADF
	}

	raw := f.raw
	f.raw = -1
	f.cleanup.Stop()

	return f.sysOps.Close(raw)
}

// Read reads into p, returning the number of bytes the kernel actually
// placed. A short read is a success, and a read of 0 bytes with len(p) > 0
// signals end of file.
func (f *File) Read(p []byte) (int, error) {
	if f.raw < 0 {
		return 0, unix.EBADF
	}

	return f.sysOps.Read(f.raw, p)
}

// Write writes p, returning the number of bytes the kernel actually
// accepted. A short write is a success; writing the remainder is caller
// policy.
func (f *File) Write(p []byte) (int, error) {
	if f.raw < 0 {
		return 0, unix.EBADF
	}

	return f.sysOps.Write(f.raw, p)
}

// Pread reads into p at the given file offset without moving the file
// position.
func (f *File) Pread(p []byte, offset int64) (int, error) {
	if f.raw < 0 {
		return 0, unix.EBADF
	}

	return f.sysOps.Pread(f.raw, p, offset)
}

// Pwrite writes p at the given file offset without moving the file
// position.
func (f *File) Pwrite(p []byte, offset int64) (int, error) {
	if f.raw < 0 {
		return 0, unix.EBADF
	}

	return f.sysOps.Pwrite(f.raw, p, offset)
}

// Seek repositions the file offset relative to whence (io.SeekStart,
// io.SeekCurrent or io.SeekEnd, which equal the kernel's SEEK_SET, SEEK_CUR
// and SEEK_END) and returns the new absolute position.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.raw < 0 {
		return 0, unix.EBADF
	}

	return f.sysOps.Seek(f.raw, offset, whence)
}

// Dup creates a new [File] referring to the same open file description. The
// two handles' lifetimes are decoupled: closing one does not affect the
// other. The read/write position is a property of the shared description,
// so repositioning through one handle is visible through the other.
func (f *File) Dup() (*File, error) {
	if f.raw < 0 {
		return nil, unix.EBADF
	}

	raw, err := f.sysOps.Dup(f.raw)
	if err != nil {
		return nil, err
	}

	return newFile(f.sysOps, raw), nil
}

// Truncate truncates the file to the given length.
func (f *File) Truncate(length int64) error {
	if f.raw < 0 {
		return unix.EBADF
	}

	return f.sysOps.Ftruncate(f.raw, length)
}

// Sync commits the file, data and metadata, to stable storage.
func (f *File) Sync() error {
	if f.raw < 0 {
		return unix.EBADF
	}

	return f.sysOps.Fsync(f.raw)
}

// Datasync commits the file data to stable storage, skipping metadata that
// is not needed to read it back.
func (f *File) Datasync() error {
	if f.raw < 0 {
		return unix.EBADF
	}

	return f.sysOps.Fdatasync(f.raw)
}

// Stat retrieves the file metadata.
func (f *File) Stat() (unix.Stat_t, error) {
	var st unix.Stat_t

	if f.raw < 0 {
		return st, unix.EBADF
	}

	err := f.sysOps.Fstat(f.raw, &st)

	return st, err
}

// Chmod changes the file mode bits.
func (f *File) Chmod(mode uint32) error {
	if f.raw < 0 {
		return unix.EBADF
	}

	return f.sysOps.Fchmod(f.raw, mode)
}

// Chown changes the file owner and group.
func (f *File) Chown(uid, gid int) error {
	if f.raw < 0 {
		return unix.EBADF
	}

	return f.sysOps.Fchown(f.raw, uid, gid)
}

// Ioctl issues a device-specific control operation with an integer-shaped
// argument. This is the extension point device wrappers build upon: the
// request code and argument pass through uninterpreted, and the success
// payload is whatever the driver returns. Request codes can be composed with
// [IO], [IOR], [IOW] and [IOWR].
func (f *File) Ioctl(req, arg uintptr) (uintptr, error) {
	if f.raw < 0 {
		return 0, unix.EBADF
	}

	return f.sysOps.Ioctl(f.raw, req, arg)
}

// IoctlPtr issues a device-specific control operation whose argument is a
// pointer. The pointed-to memory must match the layout the driver expects
// for req; the handle layer cannot check that.
func (f *File) IoctlPtr(req uintptr, arg unsafe.Pointer) (uintptr, error) {
	if f.raw < 0 {
		return 0, unix.EBADF
	}

	return f.sysOps.IoctlPtr(f.raw, req, arg)
}

// Fcntl performs a descriptor control operation with an integer argument.
func (f *File) Fcntl(cmd, arg int) (int, error) {
	if f.raw < 0 {
		return 0, unix.EBADF
	}

	return f.sysOps.Fcntl(f.raw, cmd, arg)
}

// SetNonblock sets or clears O_NONBLOCK on the descriptor. This is a
// convenience over two fcntl calls (F_GETFL then F_SETFL), the one place a
// handle method issues more than one kernel call.
func (f *File) SetNonblock(nonblock bool) error {
	if f.raw < 0 {
		return unix.EBADF
	}

	flags, err := f.sysOps.Fcntl(f.raw, unix.F_GETFL, 0)
	if err != nil {
		return err
	}

	if nonblock {
		flags |= unix.O_NONBLOCK
	} else {
		flags &^= unix.O_NONBLOCK
	}

	_, err = f.sysOps.Fcntl(f.raw, unix.F_SETFL, flags)

	return err
}
