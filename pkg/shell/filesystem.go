package shell

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// OSFileSystem uses the real file system in device
type OSFileSystem struct{}

func (fsys *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (fsys *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// IOFileSystem serves directory queries from an fs.FS. Names are cleaned to
// the slash-separated, unrooted form fs.FS expects.
type IOFileSystem struct {
	fsys fs.FS
}

func NewIOFileSystem(fsys fs.FS) *IOFileSystem {
	return &IOFileSystem{fsys: fsys}
}

func (fsys *IOFileSystem) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(fsys.fsys, ioName(name))
}

func (fsys *IOFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(fsys.fsys, ioName(name))
}

func ioName(name string) string {
	name = strings.TrimPrefix(filepath.ToSlash(filepath.Clean(name)), "/")
	if name == "" {
		return "."
	}
	return name
}

// entryPath appends name to dir without cleaning dir, so "." lists as "./x".
func entryPath(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
