package io

import (
	"io"
	"strings"
)

// WriteLines writes the binary lines separated by newlines.
// No newline follows the last line.
func WriteLines(output io.Writer, lines []string) (err error) {
	_, err = io.WriteString(output, strings.Join(lines, "\n"))
	return
}

// WriteBinary writes the binary lines to the file name in fsys.
func WriteBinary(fsys CreateFS, name string, lines []string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrDestination{Name: name, Err: err}
		}
	}()

	ouf, err := fsys.Create(name)
	if err != nil {
		return
	}

	err = WriteLines(ouf, lines)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()
	return
}
