// Package fdio adapts an [fd.File] to the standard library's io interfaces.
//
// It is a veneer over the core contract, depending on package fd but never
// depended on by it. The two translations the core deliberately does not
// perform happen here: a zero-byte read into a non-empty buffer becomes
// [io.EOF], and kernel error codes are wrapped into [*os.SyscallError]
// values naming the failing call, so they compose with errors.Is and the
// rest of the os-flavored error ecosystem.
package fdio

import (
	"io"
	"os"

	"github.com/desertwitch/linuxsys/fd"
)

// File adapts an [fd.File] to io.Reader, io.Writer, io.Seeker, io.ReaderAt,
// io.WriterAt and io.Closer. The underlying handle remains owned by the
// wrapped fd.File; closing the adapter closes it.
type File struct {
	f *fd.File
}

// Wrap returns the io adapter for f. The adapter shares f's handle rather
// than duplicating it, so f must stay open while the adapter is in use.
func Wrap(f *fd.File) *File {
	return &File{f: f}
}

// Unwrap returns the underlying [fd.File].
func (w *File) Unwrap() *fd.File {
	return w.f
}

// Read implements io.Reader, mapping the kernel's end-of-file convention
// (zero bytes read into a non-empty buffer) to [io.EOF].
func (w *File) Read(p []byte) (int, error) {
	n, err := w.f.Read(p)
	if err != nil {
		return n, os.NewSyscallError("read", err)
	}

	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Write implements io.Writer. Per that contract it issues as many write
// calls as needed to consume p entirely, unlike the core's single-call
// Write.
func (w *File) Write(p []byte) (int, error) {
	var done int

	for done < len(p) {
		n, err := w.f.Write(p[done:])
		if err != nil {
			return done, os.NewSyscallError("write", err)
		}

		done += n
	}

	return done, nil
}

// Seek implements io.Seeker; the whence values are numerically identical to
// the kernel's.
func (w *File) Seek(offset int64, whence int) (int64, error) {
	pos, err := w.f.Seek(offset, whence)
	if err != nil {
		return 0, os.NewSyscallError("lseek", err)
	}

	return pos, nil
}

// ReadAt implements io.ReaderAt, issuing pread calls until the buffer is
// full or the file ends, as that contract requires.
func (w *File) ReadAt(p []byte, off int64) (int, error) {
	var done int

	for done < len(p) {
		n, err := w.f.Pread(p[done:], off+int64(done))
		if err != nil {
			return done, os.NewSyscallError("pread", err)
		}

		if n == 0 {
			return done, io.EOF
		}

		done += n
	}

	return done, nil
}

// WriteAt implements io.WriterAt, issuing pwrite calls until p is consumed.
func (w *File) WriteAt(p []byte, off int64) (int, error) {
	var done int

	for done < len(p) {
		n, err := w.f.Pwrite(p[done:], off+int64(done))
		if err != nil {
			return done, os.NewSyscallError("pwrite", err)
		}

		done += n
	}

	return done, nil
}

// Close implements io.Closer, releasing the underlying handle.
func (w *File) Close() error {
	if err := w.f.Close(); err != nil {
		return os.NewSyscallError("close", err)
	}

	return nil
}
