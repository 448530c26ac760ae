package fd

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// direntHeaderLen is the fixed part of a linux_dirent64 record: inode (8),
// offset (8), record length (2) and type (1), with the name following.
const direntHeaderLen = 19

// Dirent is one decoded directory entry from the getdents64 wire format.
type Dirent struct {
	Ino  uint64
	Off  int64
	Type uint8
	Name string
}

// ReadDirents issues one getdents64 call into buf and returns the decoded
// entries. An empty result with a nil error means end of directory. The
// kernel fills as many whole records as fit, so a larger buf means fewer
// calls per directory; callers iterate until the result is empty.
func (f *File) ReadDirents(buf []byte) ([]Dirent, error) {
	if f.raw < 0 {
		return nil, unix.EBADF
	}

	n, err := f.sysOps.Getdents64(f.raw, buf)
	if err != nil {
		return nil, err
	}

	return ParseDirents(buf[:n]), nil
}

// ParseDirents decodes a buffer of raw linux_dirent64 records, as produced
// by getdents64. Truncated or malformed trailing bytes end the decode; the
// kernel never emits partial records, so that only happens on hand-built
// buffers.
func ParseDirents(buf []byte) []Dirent {
	var entries []Dirent

	for len(buf) >= direntHeaderLen {
		reclen := int(binary.NativeEndian.Uint16(buf[16:18]))
		if reclen < direntHeaderLen || reclen > len(buf) {
			break
		}

		name := buf[direntHeaderLen:reclen]
		if i := bytes.IndexByte(name, 0); i >= 0 {
			name = name[:i]
		}

		entries = append(entries, Dirent{
			Ino:  binary.NativeEndian.Uint64(buf[0:8]),
			Off:  int64(binary.NativeEndian.Uint64(buf[8:16])),
			Type: buf[18],
			Name: string(name),
		})

		buf = buf[reclen:]
	}

	return entries
}
