package lines

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// FileSource implements Source for a single input file.
// Both "\n" and "\r\n" terminate a line, in any mix.
type FileSource struct {
	path string

	file    *os.File
	scanner *bufio.Scanner
	lineNum int
	done    bool
}

// NewFileSource creates a Source that reads from path.
// The file is opened lazily on the first call to Next.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Open opens path eagerly and returns a Source positioned at the first line.
// Returns an error wrapping ErrInputNotFound if the file does not exist, so
// callers can reject a missing input before doing any other work.
func Open(path string) (*FileSource, error) {
	s := NewFileSource(path)
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

// Next returns the next line of the file.
// Returns io.EOF when the file has been exhausted.
func (s *FileSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.done {
		return nil, io.EOF
	}

	if s.scanner == nil {
		if err := s.open(); err != nil {
			return nil, err
		}
	}

	if s.scanner.Scan() {
		s.lineNum++
		return &Line{
			Text:   s.scanner.Text(),
			Source: s.path,
			Num:    s.lineNum,
		}, nil
	}

	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	s.done = true
	if err := s.Close(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Close releases the underlying file.
func (s *FileSource) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		s.scanner = nil
		return err
	}
	return nil
}

func (s *FileSource) open() error {
	f, err := os.Open(s.path) // #nosec G304 -- user-provided input path is expected
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, s.path)
		}
		return fmt.Errorf("opening input file %s: %w", s.path, err)
	}

	s.file = f
	s.scanner = bufio.NewScanner(f)
	s.scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	s.lineNum = 0
	return nil
}

// SliceSource serves lines held in memory.
type SliceSource struct {
	lines []string
	pos   int
}

// NewSliceSource creates a Source over the given lines.
func NewSliceSource(lines ...string) *SliceSource {
	return &SliceSource{lines: lines}
}

// FromString splits text on "\n" and "\r\n" the same way FileSource does.
func FromString(text string) *SliceSource {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return NewSliceSource(lines...)
}

// Next returns the next line or io.EOF.
func (s *SliceSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.pos >= len(s.lines) {
		return nil, io.EOF
	}
	s.pos++
	return &Line{Text: s.lines[s.pos-1], Num: s.pos}, nil
}

// Close is a no-op.
func (s *SliceSource) Close() error {
	return nil
}
