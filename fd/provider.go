package fd

import (
	"unsafe"

	"github.com/desertwitch/linuxsys/sys"
	"golang.org/x/sys/unix"
)

// sysProvider is the raw call surface the handle layer depends on. Every
// [File] method issues exactly one call through this interface (plus the one
// implicit close a cleanup may issue), so substituting a mock makes the
// exact kernel traffic of a handle observable in tests.
type sysProvider interface {
	Openat(dirfd int, path string, flags int, mode uint32) (int, error)
	Close(fd int) error
	Read(fd int, p []byte) (int, error)
	Write(fd int, p []byte) (int, error)
	Pread(fd int, p []byte, offset int64) (int, error)
	Pwrite(fd int, p []byte, offset int64) (int, error)
	Seek(fd int, offset int64, whence int) (int64, error)
	Dup(fd int) (int, error)
	Ftruncate(fd int, length int64) error
	Fsync(fd int) error
	Fdatasync(fd int) error
	Fstat(fd int, st *unix.Stat_t) error
	Fchmod(fd int, mode uint32) error
	Fchown(fd, uid, gid int) error
	Ioctl(fd int, req, arg uintptr) (uintptr, error)
	IoctlPtr(fd int, req uintptr, arg unsafe.Pointer) (uintptr, error)
	Fcntl(fd, cmd, arg int) (int, error)
	Getdents64(fd int, buf []byte) (int, error)
	Pipe2(flags int) (r, w int, err error)
	Ppoll(fds []unix.PollFd, timeout *unix.Timespec) (int, error)
	Socket(domain, typ, protocol int) (int, error)
	Bind(fd int, addr []byte) error
	Connect(fd int, addr []byte) error
	Listen(fd, backlog int) error
	Accept4(fd, flags int) (int, error)
	Shutdown(fd, how int) error
	Setsockopt(fd, level, opt int, val []byte) error
	Getsockopt(fd, level, opt int, val []byte) (int, error)
}

// realSys delegates 1:1 to package [sys]. It adds no behavior of its own.
type realSys struct{}

//nolint:gochecknoglobals
var defaultSys sysProvider = realSys{}

func (realSys) Openat(dirfd int, path string, flags int, mode uint32) (int, error) {
	return sys.Openat(dirfd, path, flags, mode)
}

func (realSys) Close(fd int) error {
	return sys.Close(fd)
}

func (realSys) Read(fd int, p []byte) (int, error) {
	return sys.Read(fd, p)
}

func (realSys) Write(fd int, p []byte) (int, error) {
	return sys.Write(fd, p)
}

func (realSys) Pread(fd int, p []byte, offset int64) (int, error) {
	return sys.Pread64(fd, p, offset)
}

func (realSys) Pwrite(fd int, p []byte, offset int64) (int, error) {
	return sys.Pwrite64(fd, p, offset)
}

func (realSys) Seek(fd int, offset int64, whence int) (int64, error) {
	return sys.Seek(fd, offset, whence)
}

func (realSys) Dup(fd int) (int, error) {
	return sys.Dup(fd)
}

func (realSys) Ftruncate(fd int, length int64) error {
	return sys.Ftruncate(fd, length)
}

func (realSys) Fsync(fd int) error {
	return sys.Fsync(fd)
}

func (realSys) Fdatasync(fd int) error {
	return sys.Fdatasync(fd)
}

func (realSys) Fstat(fd int, st *unix.Stat_t) error {
	return sys.Fstat(fd, st)
}

func (realSys) Fchmod(fd int, mode uint32) error {
	return sys.Fchmod(fd, mode)
}

func (realSys) Fchown(fd, uid, gid int) error {
	return sys.Fchown(fd, uid, gid)
}

func (realSys) Ioctl(fd int, req, arg uintptr) (uintptr, error) {
	return sys.Ioctl(fd, req, arg)
}

func (realSys) IoctlPtr(fd int, req uintptr, arg unsafe.Pointer) (uintptr, error) {
	return sys.IoctlPtr(fd, req, arg)
}

func (realSys) Fcntl(fd, cmd, arg int) (int, error) {
	return sys.Fcntl(fd, cmd, arg)
}

func (realSys) Getdents64(fd int, buf []byte) (int, error) {
	return sys.Getdents64(fd, buf)
}

func (realSys) Pipe2(flags int) (r, w int, err error) {
	return sys.Pipe2(flags)
}

func (realSys) Ppoll(fds []unix.PollFd, timeout *unix.Timespec) (int, error) {
	return sys.Ppoll(fds, timeout)
}

func (realSys) Socket(domain, typ, protocol int) (int, error) {
	return sys.Socket(domain, typ, protocol)
}

func (realSys) Bind(fd int, addr []byte) error {
	return sys.Bind(fd, addr)
}

func (realSys) Connect(fd int, addr []byte) error {
	return sys.Connect(fd, addr)
}

func (realSys) Listen(fd, backlog int) error {
	return sys.Listen(fd, backlog)
}

func (realSys) Accept4(fd, flags int) (int, error) {
	return sys.Accept4(fd, flags)
}

func (realSys) Shutdown(fd, how int) error {
	return sys.Shutdown(fd, how)
}

func (realSys) Setsockopt(fd, level, opt int, val []byte) error {
	return sys.Setsockopt(fd, level, opt, val)
}

func (realSys) Getsockopt(fd, level, opt int, val []byte) (int, error) {
	return sys.Getsockopt(fd, level, opt, val)
}
