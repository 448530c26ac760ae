package fd_test

import (
	"testing"
	"unsafe"

	"github.com/desertwitch/linuxsys/fd"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

// TestIoctlEncoders_KnownRequests tests the request encoders against kernel
// request constants whose encodings are fixed by the uapi headers.
func TestIoctlEncoders_KnownRequests(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"IO_BlockRereadPart", fd.IO(0x12, 95), unix.BLKRRPART},
		{"IOR_RandomEntropyCount", fd.IOR('R', 0, 4), unix.RNDGETENTCNT},
		{"IOR_BlockDeviceSize", fd.IOR(0x12, 114, unsafe.Sizeof(uintptr(0))), unix.BLKGETSIZE64},
		{"IOW_TunSetInterface", fd.IOW('T', 202, 4), unix.TUNSETIFF},
		{"IOWR_FilesystemFreeze", fd.IOWR('X', 119, 4), unix.FIFREEZE},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.got)
		})
	}
}

// TestIoctlEncoders_DirectionsDiffer tests that the four encoders produce
// distinct words for the same type, number and size.
func TestIoctlEncoders_DirectionsDiffer(t *testing.T) {
	t.Parallel()

	words := map[uintptr]struct{}{
		fd.IO('k', 1):      {},
		fd.IOR('k', 1, 8):  {},
		fd.IOW('k', 1, 8):  {},
		fd.IOWR('k', 1, 8): {},
		fd.IOR('k', 1, 16): {},
		fd.IOR('k', 2, 8):  {},
		fd.IOR('m', 1, 8):  {},
	}

	assert.Len(t, words, 7)
}
