package sys

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Socket wrappers. Addresses travel as caller-encoded sockaddr bytes; this
// layer does not interpret address families or wire layouts, matching the
// opaque pass-through rule for flag and structure arguments.

// Socket creates an endpoint for communication and returns the new raw
// descriptor value.
func Socket(domain, typ, protocol int) (int, error) {
	fd, err := invoke(unix.SYS_SOCKET, uintptr(domain), uintptr(typ), uintptr(protocol))
	if err != nil {
		return -1, err
	}

	return int(fd), nil
}

// Bind binds a socket to the sockaddr encoded in addr.
func Bind(fd int, addr []byte) error {
	_, err := invoke(unix.SYS_BIND, uintptr(fd), uintptr(bufPtr(addr)), uintptr(len(addr)))
	runtime.KeepAlive(addr)

	return err
}

// Connect connects a socket to the sockaddr encoded in addr.
func Connect(fd int, addr []byte) error {
	_, err := invoke(unix.SYS_CONNECT, uintptr(fd), uintptr(bufPtr(addr)), uintptr(len(addr)))
	runtime.KeepAlive(addr)

	return err
}

// Listen marks a socket as accepting connections.
func Listen(fd, backlog int) error {
	_, err := invoke(unix.SYS_LISTEN, uintptr(fd), uintptr(backlog))

	return err
}

// Accept4 accepts a connection on a listening socket, returning the new raw
// descriptor value. The peer address is discarded; callers that need it can
// retrieve it afterwards with getpeername through [Call].
func Accept4(fd, flags int) (int, error) {
	nfd, err := invoke(unix.SYS_ACCEPT4, uintptr(fd), 0, 0, uintptr(flags))
	if err != nil {
		return -1, err
	}

	return int(nfd), nil
}

// Shutdown shuts down part of a full-duplex connection.
func Shutdown(fd, how int) error {
	_, err := invoke(unix.SYS_SHUTDOWN, uintptr(fd), uintptr(how))

	return err
}

// Setsockopt sets a socket option from the caller-encoded value bytes.
func Setsockopt(fd, level, opt int, val []byte) error {
	_, err := invoke(unix.SYS_SETSOCKOPT,
		uintptr(fd), uintptr(level), uintptr(opt), uintptr(bufPtr(val)), uintptr(len(val)))
	runtime.KeepAlive(val)

	return err
}

// Getsockopt reads a socket option into val, returning the number of bytes
// the kernel wrote.
func Getsockopt(fd, level, opt int, val []byte) (int, error) {
	vallen := uint32(len(val))

	_, err := invoke(unix.SYS_GETSOCKOPT,
		uintptr(fd), uintptr(level), uintptr(opt),
		uintptr(bufPtr(val)), uintptr(unsafe.Pointer(&vallen)))
	runtime.KeepAlive(val)
	runtime.KeepAlive(&vallen)
	if err != nil {
		return 0, err
	}

	return int(vallen), nil
}

// Sendto sends p on a socket. For connection-mode sockets addr may be nil.
func Sendto(fd int, p []byte, flags int, addr []byte) (int, error) {
	var addrPtr unsafe.Pointer
	if len(addr) > 0 {
		addrPtr = bufPtr(addr)
	}

	n, err := invoke(unix.SYS_SENDTO,
		uintptr(fd), uintptr(bufPtr(p)), uintptr(len(p)), uintptr(flags),
		uintptr(addrPtr), uintptr(len(addr)))
	runtime.KeepAlive(p)
	runtime.KeepAlive(addr)

	return int(n), err
}

// Recvfrom receives into p from a socket, discarding the sender address.
func Recvfrom(fd int, p []byte, flags int) (int, error) {
	n, err := invoke(unix.SYS_RECVFROM,
		uintptr(fd), uintptr(bufPtr(p)), uintptr(len(p)), uintptr(flags), 0, 0)
	runtime.KeepAlive(p)

	return int(n), err
}
