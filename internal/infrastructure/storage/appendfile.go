// Package storage provides the low-level append-only file primitives the
// record store is built on. Files are line-oriented UTF-8 text; every append
// is flushed to disk before it is reported as written. Callers are expected
// to serialize writers themselves; a single in-process writer is assumed.
package storage

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// EnsureDir creates the storage directory if it does not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return nil
}

// Exists reports whether the file at path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AppendLine appends line to the file at path, creating the file when
// absent, and fsyncs before returning. The trailing newline is added here;
// line itself must not contain one.
func AppendLine(path string, line string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	if _, err = file.WriteString(line + "\n"); err != nil {
		file.Close()
		return err
	}
	if err = file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// ForEachLine streams the file's lines in file order, calling fn with the
// 1-based line number and the line without its newline. A missing file is
// not an error: the scan simply visits nothing. A final line without a
// trailing newline is still visited. Returning an error from fn aborts
// the scan.
func ForEachLine(path string, fn func(n int, line []byte) error) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	n := 0
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			n++
			line = bytes.TrimSuffix(line, []byte{'\n'})
			if fnErr := fn(n, line); fnErr != nil {
				return fnErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
