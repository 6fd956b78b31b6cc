package renameio

import (
	"io"
	"os"
	"runtime"

	"github.com/hectane/go-acl"
)

// WriteFunc atomically creates or replaces filename with everything fn
// writes. It returns the amount of bytes written. If fn fails, filename is
// left untouched.
func WriteFunc(filename string, perm os.FileMode, fn func(w io.Writer) error) (written int64, err error) {
	t, err := TempFile(filename)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = t.Cleanup()
	}()

	// Set permissions before writing data, in case the data is sensitive.
	if runtime.GOOS == "windows" {
		err = acl.Chmod(t.Name(), perm)
	} else {
		err = t.Chmod(perm)
	}
	if err != nil {
		return 0, err
	}

	// Hide ReadFrom of the embedded file so that every write is counted.
	if err := fn(struct{ io.Writer }{t}); err != nil {
		return 0, err
	}

	if err := t.CloseAtomicallyReplace(); err != nil {
		return 0, err
	}
	return t.Written(), nil
}
