package platform

import (
	"os"
	"runtime"

	"github.com/go-git/go-billy/v5"
)

// Chmod sets permissions on path inside fsys. It is a no-op on Windows, which
// lacks Unix permission bits, and on filesystems without billy.Change support.
func Chmod(fsys billy.Filesystem, path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	ch, ok := fsys.(billy.Change)
	if !ok {
		return nil
	}
	return ch.Chmod(path, mode)
}
