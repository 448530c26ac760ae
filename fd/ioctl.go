package fd

// ioctl request codes encode a transfer direction, a subsystem type byte, a
// per-subsystem request number and the argument size into one word. These
// encoders reproduce the kernel's _IO/_IOR/_IOW/_IOWR macros for the
// architectures this module targets (x86, arm, arm64, riscv64, which all
// share the generic 2-bit direction / 14-bit size layout).
//
// Device wrappers built on [File.Ioctl] and [File.IoctlPtr] use these to
// declare their request constants instead of hard-coding magic words.

const (
	iocNrBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNrShift   = 0
	iocTypeShift = iocNrShift + iocNrBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocNone  = 0
	iocWrite = 1
	iocRead  = 2
)

func ioc(dir, typ, nr, size uintptr) uintptr {
	return dir<<iocDirShift | typ<<iocTypeShift | nr<<iocNrShift | size<<iocSizeShift
}

// IO encodes a request that transfers no payload.
func IO(typ, nr uintptr) uintptr {
	return ioc(iocNone, typ, nr, 0)
}

// IOR encodes a request that reads size bytes from the kernel.
func IOR(typ, nr, size uintptr) uintptr {
	return ioc(iocRead, typ, nr, size)
}

// IOW encodes a request that writes size bytes to the kernel.
func IOW(typ, nr, size uintptr) uintptr {
	return ioc(iocWrite, typ, nr, size)
}

// IOWR encodes a request that transfers size bytes in both directions.
func IOWR(typ, nr, size uintptr) uintptr {
	return ioc(iocRead|iocWrite, typ, nr, size)
}
