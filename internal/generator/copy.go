package generator

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
)

// excludedNames are skipped when copying a template tree.
var excludedNames = map[string]bool{
	".git":        true,
	".DS_Store":   true,
	"__pycache__": true,
}

// copyTree copies the template directory srcDir into dstDir on dst.
func copyTree(src fs.FS, srcDir string, dst billy.Filesystem, dstDir string) error {
	return fs.WalkDir(src, srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if shouldExclude(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel := p[len(srcDir):]
		target := dst.Join(dstDir, rel)

		if d.IsDir() {
			if err := dst.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return copyFile(src, p, dst, target)
	})
}

// copyFile copies one template file to dstPath, creating parent directories.
func copyFile(src fs.FS, srcPath string, dst billy.Filesystem, dstPath string) (err error) {
	in, err := src.Open(srcPath)
	if err != nil {
		return fmt.Errorf("opening template %s: %w", srcPath, err)
	}
	defer in.Close()

	out, err := dst.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dstPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", dstPath, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s to %s: %w", srcPath, dstPath, err)
	}
	return nil
}

func shouldExclude(name string) bool {
	return excludedNames[name]
}

// templatePath joins template-set paths, which always use forward slashes.
func templatePath(elem ...string) string {
	return path.Join(elem...)
}
