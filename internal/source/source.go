package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single input line at 1MB. Measurement logs are
// short lines; anything longer is not data we can chart.
const maxLineSize = 1 << 20

// FromReader reads all lines from r.
func FromReader(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// FromFile reads all lines from the file at path. An unreadable file is a
// whole-source failure and returns an error.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// File is a lazy line source over a single file path. It satisfies the
// pipeline's LineSource contract without reading until the run starts.
type File string

// Lines reads and returns all lines of the file.
func (f File) Lines() ([]string, error) {
	return FromFile(string(f))
}
