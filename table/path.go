package table

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/ardnew/mung"

	"github.com/ardnew/commander/pkg"
)

// Ext lists the file extensions tried by [Find], in order.
var Ext = []string{".yaml", ".yml", ".json"}

// SearchPath returns the directories to search for tables: dirs first, then
// the entries of base, a list separated by [os.PathListSeparator]. Entries
// that are not existing directories are dropped.
func SearchPath(base string, dirs ...string) []string {
	list := mung.Make(
		mung.WithSubjectItems(base),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dirs...),
		mung.WithFilter(isDir),
	).String()

	var path []string

	for _, dir := range filepath.SplitList(list) {
		if dir != "" && !slices.Contains(path, dir) {
			path = append(path, dir)
		}
	}

	return path
}

// DefaultDir is the directory of user tables searched after any explicit
// search path.
func DefaultDir() string {
	return filepath.Join(pkg.ConfigDir(), "tables")
}

// Find resolves name to a table file. A name containing a path separator, or
// naming an existing file, is returned as is. Otherwise each directory of
// path is tried in order, first with name itself and then with each of
// [Ext] appended.
func Find(name string, path []string) (string, error) {
	if isFile(name) {
		return name, nil
	}

	if filepath.Base(name) != name {
		return "", pkg.ErrTableNotFound.Wrapf("%s", name)
	}

	for _, dir := range path {
		for _, ext := range append([]string{""}, Ext...) {
			file := filepath.Join(dir, name+ext)
			if isFile(file) {
				return file, nil
			}
		}
	}

	return "", pkg.ErrTableNotFound.Wrapf("%s (searched %v)", name, path)
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}
