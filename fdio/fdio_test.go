package fdio_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/linuxsys/fd"
	"github.com/desertwitch/linuxsys/fdio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// openWrapped opens path and returns it as an io adapter, closed on test
// cleanup.
func openWrapped(t *testing.T, path string, flags int, mode uint32) *fdio.File {
	t.Helper()

	f, err := fd.Open(path, flags, mode)
	require.NoError(t, err)

	w := fdio.Wrap(f)
	t.Cleanup(func() { _ = w.Close() })

	return w
}

// TestRead_EOFTranslation tests that end of file surfaces as [io.EOF]
// instead of the kernel's zero-count convention.
func TestRead_EOFTranslation(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "short")
	require.NoError(t, os.WriteFile(path, []byte("ab"), 0o600))

	w := openWrapped(t, path, unix.O_RDONLY, 0)

	buf := make([]byte, 8)
	n, err := w.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = w.Read(buf)
	assert.ErrorIs(t, err, io.EOF)
}

// TestErrors_WrappedAsSyscallError tests that kernel errors arrive as
// [*os.SyscallError] values naming the failing call, while remaining
// matchable against the underlying code.
func TestErrors_WrappedAsSyscallError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "readonly")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	w := openWrapped(t, path, unix.O_RDONLY, 0)

	_, err := w.Write([]byte("nope"))
	require.ErrorIs(t, err, unix.EBADF)

	var sysErr *os.SyscallError
	require.ErrorAs(t, err, &sysErr)
	assert.Equal(t, "write", sysErr.Syscall)

	_, err = w.Seek(-1, io.SeekStart)
	require.ErrorIs(t, err, unix.EINVAL)
	require.ErrorAs(t, err, &sysErr)
	assert.Equal(t, "lseek", sysErr.Syscall)
}

// TestClose_SecondCloseWrapped tests that closing twice reports the dead
// handle through the adapter's error convention.
func TestClose_SecondCloseWrapped(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "closed")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	f, err := fd.Open(path, unix.O_RDONLY, 0)
	require.NoError(t, err)

	w := fdio.Wrap(f)
	require.NoError(t, w.Close())

	err = w.Close()
	require.ErrorIs(t, err, unix.EBADF)

	var sysErr *os.SyscallError
	require.ErrorAs(t, err, &sysErr)
	assert.Equal(t, "close", sysErr.Syscall)
}

// TestCopy_RoundTrip tests the adapter against io.Copy end to end.
func TestCopy_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "src")
	dstPath := filepath.Join(dir, "dst")

	payload := bytes.Repeat([]byte("0123456789abcdef"), 1024)
	require.NoError(t, os.WriteFile(srcPath, payload, 0o600))

	src := openWrapped(t, srcPath, unix.O_RDONLY, 0)

	dstFile, err := fd.Create(dstPath, 0o600)
	require.NoError(t, err)
	dst := fdio.Wrap(dstFile)

	n, err := io.Copy(dst, src)
	require.NoError(t, err)
	require.Equal(t, int64(len(payload)), n)
	require.NoError(t, dst.Close())

	got, err := os.ReadFile(dstPath)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(payload, got))
}

// TestReadAt_FullBufferOrEOF tests the io.ReaderAt contract: the buffer is
// either filled completely or the error says why not.
func TestReadAt_FullBufferOrEOF(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "at")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o600))

	w := openWrapped(t, path, unix.O_RDONLY, 0)

	buf := make([]byte, 4)
	n, err := w.ReadAt(buf, 3)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	assert.Equal(t, "3456", string(buf))

	// Reading across the end returns what was there plus io.EOF.
	n, err = w.ReadAt(buf, 8)
	require.True(t, errors.Is(err, io.EOF))
	require.Equal(t, 2, n)
	assert.Equal(t, "89", string(buf[:n]))
}

// TestWriteAt_PlacesBytes tests positioned writing through the adapter.
func TestWriteAt_PlacesBytes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wat")
	require.NoError(t, os.WriteFile(path, []byte("..........."), 0o600))

	w := openWrapped(t, path, unix.O_RDWR, 0)

	n, err := w.WriteAt([]byte("MID"), 4)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "....MID....", string(got))
}

// TestUnwrap_SharesHandle tests that the adapter exposes the handle it
// wraps rather than a duplicate.
func TestUnwrap_SharesHandle(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "shared")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	f, err := fd.Open(path, unix.O_RDONLY, 0)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	w := fdio.Wrap(f)
	assert.Same(t, f, w.Unwrap())
}
