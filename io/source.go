package io

import (
	"bufio"
	"io"
	"io/fs"
)

// ReadLines reads every line of a source program.
func ReadLines(input io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()

	return
}

// ReadSource reads the source program name from fsys.
func ReadSource(fsys fs.FS, name string) (lines []string, err error) {
	defer func() {
		if err != nil {
			lines = nil
			err = &ErrSource{Name: name, Err: err}
		}
	}()

	inf, err := fsys.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	stat, err := inf.Stat()
	if err != nil {
		return
	}
	if stat.IsDir() {
		err = fs.ErrInvalid
		return
	}

	lines, err = ReadLines(inf)
	return
}
