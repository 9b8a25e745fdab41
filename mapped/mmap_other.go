//go:build !unix

package mapped

import (
	"io"
	"os"
)

func mapFile(f *os.File, size int) ([]byte, func([]byte) error, error) {
	content := make([]byte, size)
	_, err := io.ReadFull(f, content)
	if err != nil {
		return nil, nil, err
	}

	return content, nil, nil
}
