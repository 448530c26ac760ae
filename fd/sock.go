package fd

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// Socket operations on a [File]. Addresses travel as caller-encoded
// sockaddr bytes; the handle layer passes them through uninterpreted.

// Bind binds the socket to the sockaddr encoded in addr.
func (f *File) Bind(addr []byte) error {
	if f.raw < 0 {
		return unix.EBADF
	}

	return f.sysOps.Bind(f.raw, addr)
}

// Connect connects the socket to the sockaddr encoded in addr.
func (f *File) Connect(addr []byte) error {
	if f.raw < 0 {
		return unix.EBADF
	}

	return f.sysOps.Connect(f.raw, addr)
}

// Listen marks the socket as accepting connections.
func (f *File) Listen(backlog int) error {
	if f.raw < 0 {
		return unix.EBADF
	}

	return f.sysOps.Listen(f.raw, backlog)
}

// Accept accepts a connection, returning the new connection as an
// independently owned [File].
func (f *File) Accept(flags int) (*File, error) {
	if f.raw < 0 {
		return nil, unix.EBADF
	}

	raw, err := f.sysOps.Accept4(f.raw, flags)
	if err != nil {
		return nil, err
	}

	return newFile(f.sysOps, raw), nil
}

// Shutdown shuts down part of a full-duplex connection.
func (f *File) Shutdown(how int) error {
	if f.raw < 0 {
		return unix.EBADF
	}

	return f.sysOps.Shutdown(f.raw, how)
}

// SetsockoptInt sets an integer-valued socket option.
func (f *File) SetsockoptInt(level, opt, value int) error {
	if f.raw < 0 {
		return unix.EBADF
	}

	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], uint32(value))

	return f.sysOps.Setsockopt(f.raw, level, opt, buf[:])
}

// GetsockoptInt reads an integer-valued socket option.
func (f *File) GetsockoptInt(level, opt int) (int, error) {
	if f.raw < 0 {
		return 0, unix.EBADF
	}

	var buf [4]byte

	if _, err := f.sysOps.Getsockopt(f.raw, level, opt, buf[:]); err != nil {
		return 0, err
	}

	return int(int32(binary.NativeEndian.Uint32(buf[:]))), nil
}
