package biopax

import (
	"bufio"
	"fmt"
	"os"
)

const readerBufferSize = 256 * 1024 // 256 KB

// LoadError reports a pathway file that could not be opened or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("biopax: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadFile opens and parses the pathway file at path.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	m, err := ParseOWL(bufio.NewReaderSize(f, readerBufferSize))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return m, nil
}
