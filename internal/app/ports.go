package app

import "io/fs"

// FileSystem is the filesystem access the scanner and copier depend on.
// Discovery never walks recursively, it lists one level at a time, so the
// interface exposes level-wise operations rather than a tree walk.
type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	DirExists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	CopyFile(src, dst string) error
	Remove(path string) error
}
