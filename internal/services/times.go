package services

import (
	"time"

	"golang.org/x/sys/unix"

	"lss/internal/domain"
)

// withTimesPreserved runs inspect and then puts back the access and
// modification times file had when it was stat'ed, whatever inspect returned.
func withTimesPreserved(file *domain.File, inspect func() error) (err error) {
	atime, mtime := file.Atime(), file.Mtime()
	defer func() {
		if restoreErr := restoreTimes(file.Path(), atime, mtime); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()
	return inspect()
}

func restoreTimes(path string, atime, mtime time.Time) error {
	times := []unix.Timespec{
		unix.NsecToTimespec(atime.UnixNano()),
		unix.NsecToTimespec(mtime.UnixNano()),
	}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, times, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return NewError(OpUtimes, path, err)
	}
	return nil
}
