package services

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// Error wraps a filesystem error with the operation and the path it hit.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(op string, path string, err error) *Error {
	return &Error{Op: op, Path: path, Err: err}
}

const (
	OpStat    = "stat"
	OpReadDir = "readdir"
	OpMarker  = "marker"
	OpUtimes  = "utimes"
)

func isPermissionErr(err error) bool {
	return errors.Is(err, os.ErrPermission)
}

func isNotDirErr(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}
