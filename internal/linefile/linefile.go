// Package linefile reads the newline-separated file format shared by word
// lists, mask files and tokenizer corpora (§6: "\n, 0x0A, UTF-8-permissive
// bytes, trailing empty line tolerated"). Unlike smartlist.Load this does
// not deduplicate: duplicate word-list entries and duplicate mask lines are
// both meaningful (a duplicate word-list token multiplies a slot's
// candidate count; a mask file may legitimately repeat a mask).
package linefile

import (
	"bufio"
	"io"

	"github.com/cracken/cracken/internal/errkind"
)

// ReadLines returns every non-empty line of r, CRLF-trimmed, in file order.
func ReadLines(r io.Reader, path string) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := trimCR(scanner.Text())
		if line == "" {
			continue
		}

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, errkind.NewIOReadFailed(path, err)
	}

	return lines, nil
}

func trimCR(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}

	return line
}
