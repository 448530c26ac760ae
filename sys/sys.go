// Package sys exposes raw Linux system calls as minimally-typed, directly
// invocable functions.
//
// Every wrapper in this package performs exactly one kernel entry and maps
// the kernel's negated-errno return convention onto a typed result. There is
// no retrying (not even on EINTR), no buffering and no ownership tracking;
// those concerns belong to callers or to the [fd] package layered on top.
//
// Calls whose argument shape cannot be expressed as up to six machine words
// (true variadic calls, calls needing complex struct marshalling) have no
// wrapper here and are reachable only through [Call].
package sys

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Errno is the kernel error code type returned by every wrapper in this
// package. It is [unix.Errno], so the complete named catalog from
// golang.org/x/sys/unix applies and callers can compare against unix.ENOENT,
// unix.EINTR, unix.EAGAIN and friends directly.
type Errno = unix.Errno

// maxErrno is the largest errno magnitude the kernel encodes into a raw
// return word. Raw results in [-maxErrno, -1] are errors, everything else is
// a success payload (which may look negative when it is an address).
const maxErrno = 4095

// maxArgs is the number of argument registers the Linux calling convention
// assigns to a system call.
const maxArgs = 6

// Call invokes the system call trap with up to six machine-word arguments
// and returns the raw result word unmodified, with failures encoded as
// negated errno values per the kernel convention.
//
// Call is the generic escape hatch for system calls this package has no
// typed wrapper for. The kernel trusts every pointer-shaped argument it is
// given, so the caller carries the full burden of argument validity: pointer
// liveness, buffer sizing and the pointer/integer distinction per call.
// Prefer the typed wrappers wherever one exists.
func Call(trap uintptr, args ...uintptr) uintptr {
	if len(args) > maxArgs {
		panic("sys: too many system call arguments")
	}

	var a [maxArgs]uintptr
	copy(a[:], args)

	r1, _, errno := unix.Syscall6(trap, a[0], a[1], a[2], a[3], a[4], a[5])
	if errno != 0 {
		return uintptr(-int(errno))
	}

	return r1
}

// RawCall is [Call] without the runtime's blocking-call bookkeeping. It must
// only be used for system calls that are known to never block, such as
// getpid; using it for a call that can block will stall other goroutines on
// the same thread.
func RawCall(trap uintptr, args ...uintptr) uintptr {
	if len(args) > maxArgs {
		panic("sys: too many system call arguments")
	}

	var a [maxArgs]uintptr
	copy(a[:], args)

	r1, _, errno := unix.RawSyscall6(trap, a[0], a[1], a[2], a[3], a[4], a[5])
	if errno != 0 {
		return uintptr(-int(errno))
	}

	return r1
}

// Result splits a raw system call result word into its success payload or
// its [Errno]. The kernel reserves the last maxErrno values of the unsigned
// range for errors; every other word, including large values that look
// negative as a signed integer, is a success payload.
func Result(raw uintptr) (uintptr, error) {
	if v := int(raw); v < 0 && v >= -maxErrno {
		return 0, Errno(-v)
	}

	return raw, nil
}

// invoke performs one kernel entry through [Call] and decodes the raw word
// through [Result]. All typed wrappers funnel through here.
func invoke(trap uintptr, args ...uintptr) (uintptr, error) {
	return Result(Call(trap, args...))
}

// zeroByte gives empty buffers a valid address to pass to the kernel.
var zeroByte byte

// bufPtr returns the base address of p, or a stable dummy address when p is
// empty so that the kernel never sees a dangling pointer with a zero count.
func bufPtr(p []byte) unsafe.Pointer {
	if len(p) == 0 {
		return unsafe.Pointer(&zeroByte)
	}

	return unsafe.Pointer(unsafe.SliceData(p))
}

// iovecs builds the iovec array for the vectored I/O calls.
func iovecs(bufs [][]byte) []unix.Iovec {
	iov := make([]unix.Iovec, len(bufs))
	for i, b := range bufs {
		iov[i].Base = (*byte)(bufPtr(b))
		iov[i].SetLen(len(b))
	}

	return iov
}
