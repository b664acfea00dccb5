package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrIsDir is returned when a file was expected but a directory was found.
var ErrIsDir = errors.New("is a directory")

// Touch ensures path exists as a regular file and reports whether it had to
// create it. An existing file is never opened for writing. A symlink at
// path is followed; when its target is missing, the target is created.
func Touch(path string, perm os.FileMode) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err == nil {
		return true, f.Close()
	}
	if !errors.Is(err, fs.ErrExist) {
		return false, err
	}

	linfo, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	if linfo.Mode()&fs.ModeSymlink == 0 {
		if linfo.IsDir() {
			return false, fmt.Errorf("%s: %w", path, ErrIsDir)
		}
		return false, nil
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return false, fmt.Errorf("%s: %w", path, ErrIsDir)
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		// Without O_EXCL the open follows the link and creates its target.
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, perm)
		if err != nil {
			return false, err
		}
		return true, f.Close()
	default:
		return false, err
	}
}
