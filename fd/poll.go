package fd

import (
	"time"

	"golang.org/x/sys/unix"
)

// PollRequest names one [File] and the readiness events of interest for a
// [Poll] call. Revents carries the kernel's answer back.
type PollRequest struct {
	File    *File
	Events  int16
	Revents int16
}

// Poll waits until at least one of the requested Files is ready or the
// timeout elapses, whichever comes first. A negative timeout blocks
// indefinitely. It returns the number of ready Files and fills the Revents
// field of every request. One ppoll call is issued; interruption surfaces
// as [unix.EINTR] like everywhere else.
func Poll(reqs []PollRequest, timeout time.Duration) (int, error) {
	if len(reqs) == 0 {
		return 0, nil
	}

	fds := make([]unix.PollFd, len(reqs))
	for i, r := range reqs {
		if r.File == nil || r.File.raw < 0 {
			return 0, unix.EBADF
		}

		fds[i] = unix.PollFd{Fd: int32(r.File.raw), Events: r.Events}
	}

	var ts *unix.Timespec
	if timeout >= 0 {
		t := unix.NsecToTimespec(timeout.Nanoseconds())
		ts = &t
	}

	n, err := reqs[0].File.sysOps.Ppoll(fds, ts)
	if err != nil {
		return 0, err
	}

	for i := range reqs {
		reqs[i].Revents = fds[i].Revents
	}

	return n, nil
}
