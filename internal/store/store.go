// Package store implements the secrets file, an ordered list of credential
// URIs kept in a flat text file, one URI per line.
package store

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/smallstep/authtui/errs"
	"github.com/smallstep/authtui/internal/otpauth"
)

// FileMode is the permission used when a secrets file is created.
const FileMode os.FileMode = 0600

// Store is the list of credential URIs of a secrets file. Entries are only
// appended, never edited or removed.
type Store struct {
	path  string
	lines []string
}

// New returns a store backed by the given path with the given lines.
func New(path string, lines []string) *Store {
	return &Store{
		path:  path,
		lines: append([]string(nil), lines...),
	}
}

// Load reads the secrets file in the given path. A file that cannot be read,
// because it does not exist or for any other reason, results in an empty
// store.
func Load(path string) *Store {
	lines, err := ReadFile(path)
	if err != nil {
		lines = nil
	}
	return &Store{
		path:  path,
		lines: lines,
	}
}

// ReadFile returns the credential URIs in the given file.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.FileError(err, path)
	}
	defer f.Close()
	return ReadLines(f)
}

// ReadLines returns the lines of r that start with the otpauth:// scheme in
// the order they appear. Any other line is discarded.
func ReadLines(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "error reading secrets")
	}
	if !utf8.Valid(b) {
		return nil, errors.New("error reading secrets: invalid UTF-8 content")
	}

	var lines []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, otpauth.Scheme) {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// WriteFile writes the given lines separated by a new line to the given path,
// replacing the file if it exists.
func WriteFile(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), FileMode); err != nil {
		return errs.FileError(err, path)
	}
	return nil
}

// Merge returns current followed by the incoming lines not present in it, in
// the incoming order. The returned count is the number of incoming lines,
// duplicates included.
func Merge(current, incoming []string) ([]string, int) {
	seen := make(map[string]struct{}, len(current)+len(incoming))
	merged := make([]string, 0, len(current)+len(incoming))
	for _, s := range current {
		seen[s] = struct{}{}
		merged = append(merged, s)
	}
	for _, s := range incoming {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		merged = append(merged, s)
	}
	return merged, len(incoming)
}

// Path returns the path of the secrets file.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.lines)
}

// Lines returns a copy of the entries in the store.
func (s *Store) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Import appends the incoming lines not already in the store. It returns the
// number of incoming lines, including the ones already present.
func (s *Store) Import(incoming []string) int {
	var n int
	s.lines, n = Merge(s.lines, incoming)
	return n
}

// Save writes the store to its secrets file.
func (s *Store) Save() error {
	return errors.Wrap(WriteFile(s.path, s.lines), "failed to save")
}

// Export writes the store to the given path and returns the number of entries
// written.
func (s *Store) Export(path string) (int, error) {
	if err := WriteFile(path, s.lines); err != nil {
		return 0, errors.Wrap(err, "failed to export")
	}
	return len(s.lines), nil
}
