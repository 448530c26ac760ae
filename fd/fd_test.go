package fd

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/desertwitch/linuxsys/fd/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// TestOpenClose_ExactlyOneCloseCall tests that the full explicit lifecycle
// of a handle issues exactly one open-shape call and exactly one close call.
func TestOpenClose_ExactlyOneCloseCall(t *testing.T) {
	t.Parallel()

	sysOps := mocks.NewSysProvider(t)
	sysOps.On("Openat", unix.AT_FDCWD, "/some/path", unix.O_RDONLY, uint32(0)).Return(7, nil).Once()
	sysOps.On("Close", 7).Return(nil).Once()

	f, err := openWith(sysOps, "/some/path", unix.O_RDONLY, 0)
	require.NoError(t, err)
	require.Equal(t, 7, f.Raw())

	require.NoError(t, f.Close())

	// The handle is dead; no further kernel traffic may occur through it.
	assert.ErrorIs(t, f.Close(), unix.EBADF)
	assert.ErrorIs(t, f.Close(), unix.EBADF)

	sysOps.AssertNumberOfCalls(t, "Close", 1)
}

// TestOpen_ErrorYieldsNoHandle tests that a failing open produces no handle
// and therefore nothing that could ever be closed.
func TestOpen_ErrorYieldsNoHandle(t *testing.T) {
	t.Parallel()

	sysOps := mocks.NewSysProvider(t)
	sysOps.On("Openat", unix.AT_FDCWD, "/missing", unix.O_RDONLY, uint32(0)).Return(-1, unix.ENOENT).Once()

	f, err := openWith(sysOps, "/missing", unix.O_RDONLY, 0)
	require.ErrorIs(t, err, unix.ENOENT)
	assert.Nil(t, f)

	sysOps.AssertNotCalled(t, "Close", mock.Anything)
}

// TestMethodsAfterClose_NoKernelEntry tests that every operation on a dead
// handle fails fast without reaching the raw call layer.
func TestMethodsAfterClose_NoKernelEntry(t *testing.T) {
	t.Parallel()

	sysOps := mocks.NewSysProvider(t)
	sysOps.On("Openat", unix.AT_FDCWD, "/some/path", unix.O_RDWR, uint32(0)).Return(3, nil).Once()
	sysOps.On("Close", 3).Return(nil).Once()

	f, err := openWith(sysOps, "/some/path", unix.O_RDWR, 0)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	buf := make([]byte, 8)

	_, err = f.Read(buf)
	assert.ErrorIs(t, err, unix.EBADF)

	_, err = f.Write(buf)
	assert.ErrorIs(t, err, unix.EBADF)

	_, err = f.Pread(buf, 0)
	assert.ErrorIs(t, err, unix.EBADF)

	_, err = f.Pwrite(buf, 0)
	assert.ErrorIs(t, err, unix.EBADF)

	_, err = f.Seek(0, 0)
	assert.ErrorIs(t, err, unix.EBADF)

	_, err = f.Dup()
	assert.ErrorIs(t, err, unix.EBADF)

	assert.ErrorIs(t, f.Truncate(0), unix.EBADF)
	assert.ErrorIs(t, f.Sync(), unix.EBADF)
	assert.ErrorIs(t, f.Datasync(), unix.EBADF)

	_, err = f.Stat()
	assert.ErrorIs(t, err, unix.EBADF)

	assert.ErrorIs(t, f.Chmod(0o644), unix.EBADF)
	assert.ErrorIs(t, f.Chown(0, 0), unix.EBADF)

	_, err = f.Ioctl(0, 0)
	assert.ErrorIs(t, err, unix.EBADF)

	_, err = f.Fcntl(unix.F_GETFL, 0)
	assert.ErrorIs(t, err, unix.EBADF)

	assert.ErrorIs(t, f.SetNonblock(true), unix.EBADF)

	sysOps.AssertNumberOfCalls(t, "Close", 1)
	sysOps.AssertNotCalled(t, "Read", mock.Anything, mock.Anything)
	sysOps.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
	sysOps.AssertNotCalled(t, "Seek", mock.Anything, mock.Anything, mock.Anything)
}

// TestRead_ShortCountPassesThrough tests that a short read is reported as a
// success with the kernel's count, untouched by the handle layer.
func TestRead_ShortCountPassesThrough(t *testing.T) {
	t.Parallel()

	sysOps := mocks.NewSysProvider(t)
	sysOps.On("Openat", unix.AT_FDCWD, "/some/path", unix.O_RDONLY, uint32(0)).Return(5, nil).Once()
	sysOps.On("Read", 5, mock.Anything).Return(3, nil).Once()
	sysOps.On("Close", 5).Return(nil).Once()

	f, err := openWith(sysOps, "/some/path", unix.O_RDONLY, 0)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	n, err := f.Read(make([]byte, 64))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	sysOps.AssertNumberOfCalls(t, "Read", 1)
}

// TestWrite_ShortCountPassesThrough tests that a short write is a success
// with the kernel's count and is not retried by the handle layer.
func TestWrite_ShortCountPassesThrough(t *testing.T) {
	t.Parallel()

	sysOps := mocks.NewSysProvider(t)
	sysOps.On("Openat", unix.AT_FDCWD, "/some/path", unix.O_WRONLY, uint32(0)).Return(5, nil).Once()
	sysOps.On("Write", 5, mock.Anything).Return(2, nil).Once()
	sysOps.On("Close", 5).Return(nil).Once()

	f, err := openWith(sysOps, "/some/path", unix.O_WRONLY, 0)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	n, err := f.Write([]byte("longer than two"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	sysOps.AssertNumberOfCalls(t, "Write", 1)
}

// TestDup_DecoupledLifetimes tests that a duplicated handle owns its own
// descriptor value and survives the original being closed.
func TestDup_DecoupledLifetimes(t *testing.T) {
	t.Parallel()

	sysOps := mocks.NewSysProvider(t)
	sysOps.On("Openat", unix.AT_FDCWD, "/some/path", unix.O_RDONLY, uint32(0)).Return(4, nil).Once()
	sysOps.On("Dup", 4).Return(9, nil).Once()
	sysOps.On("Close", 4).Return(nil).Once()
	sysOps.On("Read", 9, mock.Anything).Return(1, nil).Once()
	sysOps.On("Close", 9).Return(nil).Once()

	f, err := openWith(sysOps, "/some/path", unix.O_RDONLY, 0)
	require.NoError(t, err)

	dup, err := f.Dup()
	require.NoError(t, err)
	require.Equal(t, 9, dup.Raw())

	require.NoError(t, f.Close())

	n, err := dup.Read(make([]byte, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, dup.Close())
}

// TestIntoRaw_TransfersOwnership tests that handing out the raw descriptor
// disarms the handle so no close is ever issued for it.
func TestIntoRaw_TransfersOwnership(t *testing.T) {
	t.Parallel()

	sysOps := mocks.NewSysProvider(t)
	sysOps.On("Openat", unix.AT_FDCWD, "/some/path", unix.O_RDONLY, uint32(0)).Return(6, nil).Once()

	f, err := openWith(sysOps, "/some/path", unix.O_RDONLY, 0)
	require.NoError(t, err)

	raw := f.IntoRaw()
	assert.Equal(t, 6, raw)

	// The handle is dead, but the descriptor now belongs to the caller.
	assert.ErrorIs(t, f.Close(), unix.EBADF)

	runtime.GC()
	runtime.GC()

	sysOps.AssertNotCalled(t, "Close", mock.Anything)
}

// TestImplicitRelease_RunsOnceOnUnreachable tests that an unclosed handle is
// eventually released by the runtime when it becomes unreachable.
func TestImplicitRelease_RunsOnceOnUnreachable(t *testing.T) {
	t.Parallel()

	var closes atomic.Int64

	sysOps := &mocks.SysProvider{}
	sysOps.On("Openat", unix.AT_FDCWD, "/some/path", unix.O_RDONLY, uint32(0)).Return(8, nil).Once()
	sysOps.On("Close", 8).Run(func(mock.Arguments) {
		closes.Add(1)
	}).Return(nil)

	f, err := openWith(sysOps, "/some/path", unix.O_RDONLY, 0)
	require.NoError(t, err)
	require.Equal(t, 8, f.Raw())

	f = nil
	_ = f

	require.Eventually(t, func() bool {
		runtime.GC()

		return closes.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)

	// Give a spurious second release a chance to show up.
	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), closes.Load())
}

// TestExplicitClose_DisarmsImplicitRelease tests that an explicitly closed
// handle is never released a second time by the runtime.
func TestExplicitClose_DisarmsImplicitRelease(t *testing.T) {
	t.Parallel()

	var closes atomic.Int64

	sysOps := &mocks.SysProvider{}
	sysOps.On("Openat", unix.AT_FDCWD, "/some/path", unix.O_RDONLY, uint32(0)).Return(11, nil).Once()
	sysOps.On("Close", 11).Run(func(mock.Arguments) {
		closes.Add(1)
	}).Return(nil)

	f, err := openWith(sysOps, "/some/path", unix.O_RDONLY, 0)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f = nil
	_ = f

	runtime.GC()
	runtime.GC()
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int64(1), closes.Load())
}

// TestClose_SurfacesKernelError tests that a failing close still kills the
// handle and reports the kernel's verdict exactly once.
func TestClose_SurfacesKernelError(t *testing.T) {
	t.Parallel()

	sysOps := mocks.NewSysProvider(t)
	sysOps.On("Openat", unix.AT_FDCWD, "/some/path", unix.O_WRONLY, uint32(0)).Return(12, nil).Once()
	sysOps.On("Close", 12).Return(unix.EIO).Once()

	f, err := openWith(sysOps, "/some/path", unix.O_WRONLY, 0)
	require.NoError(t, err)

	require.ErrorIs(t, f.Close(), unix.EIO)

	// Even a failed close consumes the handle.
	assert.ErrorIs(t, f.Close(), unix.EBADF)
	sysOps.AssertNumberOfCalls(t, "Close", 1)
}

// TestSetNonblock_ReadModifyWrite tests the one deliberate two-call method:
// a flag fetch followed by a flag store with O_NONBLOCK toggled.
func TestSetNonblock_ReadModifyWrite(t *testing.T) {
	t.Parallel()

	sysOps := mocks.NewSysProvider(t)
	sysOps.On("Openat", unix.AT_FDCWD, "/some/path", unix.O_RDWR, uint32(0)).Return(13, nil).Once()
	sysOps.On("Fcntl", 13, unix.F_GETFL, 0).Return(unix.O_RDWR, nil).Once()
	sysOps.On("Fcntl", 13, unix.F_SETFL, unix.O_RDWR|unix.O_NONBLOCK).Return(0, nil).Once()
	sysOps.On("Close", 13).Return(nil).Once()

	f, err := openWith(sysOps, "/some/path", unix.O_RDWR, 0)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	require.NoError(t, f.SetNonblock(true))

	sysOps.AssertNumberOfCalls(t, "Fcntl", 2)
}

// TestStat_PassesThroughMetadata tests that stat results reach the caller
// unmodified.
func TestStat_PassesThroughMetadata(t *testing.T) {
	t.Parallel()

	sysOps := mocks.NewSysProvider(t)
	sysOps.On("Openat", unix.AT_FDCWD, "/some/path", unix.O_RDONLY, uint32(0)).Return(14, nil).Once()
	sysOps.On("Fstat", 14, mock.Anything).Run(func(args mock.Arguments) {
		st := args.Get(1).(*unix.Stat_t)
		st.Size = 4096
	}).Return(nil).Once()
	sysOps.On("Close", 14).Return(nil).Once()

	f, err := openWith(sysOps, "/some/path", unix.O_RDONLY, 0)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	st, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(4096), st.Size)
}
