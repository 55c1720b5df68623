package cliutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinPath is the special file path used to indicate reading from stdin.
const StdinPath = "-"

// ReadLines reads non-empty lines from the given file paths in order,
// trimming trailing whitespace from each line. An empty path list or the
// path "-" reads from stdin. When eof is non-empty, reading a line equal to
// eof stops input early; this lets interactive stdin sessions end without
// closing the stream.
func ReadLines(paths []string, eof string) ([]string, error) {
	if len(paths) == 0 {
		return readLines(os.Stdin, eof)
	}

	var lines []string
	for _, path := range paths {
		var (
			read []string
			err  error
		)
		if path == StdinPath {
			read, err = readLines(os.Stdin, eof)
		} else {
			read, err = readFileLines(path, eof)
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, read...)
	}
	return lines, nil
}

// ReadText reads the full contents of the given file paths concatenated in
// order, with stdin handling as in ReadLines. The eof marker is honored
// line-wise for stdin input only.
func ReadText(paths []string, eof string) (string, error) {
	if len(paths) == 0 {
		lines, err := readAllLines(os.Stdin, eof)
		if err != nil {
			return "", err
		}
		return strings.Join(lines, "\n"), nil
	}

	var b strings.Builder
	for _, path := range paths {
		if path == StdinPath {
			lines, err := readAllLines(os.Stdin, eof)
			if err != nil {
				return "", err
			}
			b.WriteString(strings.Join(lines, "\n"))
			b.WriteString("\n")
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		b.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

func readFileLines(path, eof string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	lines, err := readLines(f, eof)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// readLines returns the non-empty trimmed lines of r, stopping at eof.
func readLines(r io.Reader, eof string) ([]string, error) {
	all, err := readAllLines(r, eof)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range all {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// readAllLines returns every trimmed line of r, stopping at eof.
func readAllLines(r io.Reader, eof string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if eof != "" && line == eof {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
