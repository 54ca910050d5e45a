package domain

import (
	"io/fs"
	"syscall"
	"time"
)

type statFields struct {
	dev   uint64
	ino   uint64
	uid   uint32
	gid   uint32
	atime time.Time
	ctime time.Time
}

func fieldsFromInfo(info fs.FileInfo) statFields {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok || stat == nil {
		return statFields{atime: info.ModTime(), ctime: info.ModTime()}
	}
	return statFields{
		dev:   uint64(stat.Dev),
		ino:   uint64(stat.Ino),
		uid:   stat.Uid,
		gid:   stat.Gid,
		atime: time.Unix(int64(stat.Atim.Sec), int64(stat.Atim.Nsec)),
		ctime: time.Unix(int64(stat.Ctim.Sec), int64(stat.Ctim.Nsec)),
	}
}
