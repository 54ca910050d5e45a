package domain

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// File is a path plus its cached lstat result.
type File struct {
	path    string
	info    fs.FileInfo
	sys     statFields
	isMount bool
}

// NewFile lstats path.
func NewFile(path string) (*File, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return NewFileFromInfo(path, info), nil
}

// NewFileFromInfo wraps an already obtained lstat result.
func NewFileFromInfo(path string, info fs.FileInfo) *File {
	return &File{
		path: path,
		info: info,
		sys:  fieldsFromInfo(info),
	}
}

func (file *File) Path() string { return file.path }
func (file *File) Name() string { return filepath.Base(file.path) }
func (file *File) Info() fs.FileInfo { return file.info }
func (file *File) Mode() fs.FileMode { return file.info.Mode() }
func (file *File) Size() int64 { return file.info.Size() }
func (file *File) Mtime() time.Time { return file.info.ModTime() }
func (file *File) Atime() time.Time { return file.sys.atime }
func (file *File) Ctime() time.Time { return file.sys.ctime }
func (file *File) Dev() uint64 { return file.sys.dev }
func (file *File) Ino() uint64 { return file.sys.ino }
func (file *File) Uid() uint32 { return file.sys.uid }
func (file *File) Gid() uint32 { return file.sys.gid }
func (file *File) IsMount() bool { return file.isMount }
func (file *File) SetMount(mount bool) { file.isMount = mount }

func (file *File) IsDir() bool { return file.Mode().IsDir() }
func (file *File) IsRegular() bool { return file.Mode().IsRegular() }
func (file *File) IsSymlink() bool { return file.Mode()&fs.ModeSymlink != 0 }
func (file *File) IsFifo() bool { return file.Mode()&fs.ModeNamedPipe != 0 }
func (file *File) IsSocket() bool { return file.Mode()&fs.ModeSocket != 0 }

func (file *File) IsCharDevice() bool {
	return file.Mode()&fs.ModeCharDevice != 0
}

func (file *File) IsBlockDevice() bool {
	mode := file.Mode()
	return mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice == 0
}

func (file *File) String() string {
	return "File(" + file.path + ")"
}
