// Package mapped exposes a file's content as a read-only byte slice.  On unix
// systems the content is memory mapped rather than copied.
package mapped

import (
	"fmt"
	"math"
	"os"
)

type File struct {
	Path string

	content []byte
	unmap   func([]byte) error

	// NOTE: the mapping is invalid after close.  Bytes returns nil once
	// closed.
	closed   bool
	closeErr error
}

func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}

	size := info.Size()
	if size > math.MaxInt {
		return nil, fmt.Errorf("%s is too large to map (%d bytes)", path, size)
	}

	file := &File{
		Path: path,
	}

	if size == 0 { // empty files cannot be mapped
		file.content = []byte{}
		return file, nil
	}

	content, unmap, err := mapFile(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("failed to map %s: %w", path, err)
	}

	file.content = content
	file.unmap = unmap
	return file, nil
}

// Bytes returns the file content.  The slice must not be modified, and must
// not be used after Close.
func (file *File) Bytes() []byte {
	if file.closed {
		return nil
	}
	return file.content
}

func (file *File) Len() int {
	return len(file.Bytes())
}

func (file *File) Close() error {
	if file.closed {
		return file.closeErr
	}

	var err error
	if file.unmap != nil {
		err = file.unmap(file.content)
		if err != nil {
			err = fmt.Errorf("failed to unmap %s: %w", file.Path, err)
		}
	}

	file.closed = true
	file.closeErr = err
	file.content = nil

	return err
}
