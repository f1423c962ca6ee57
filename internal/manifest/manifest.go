package manifest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
)

const (
	// DefaultFileName is the manifest file looked up inside the target directory.
	DefaultFileName = "manifest.txt"
	// DefaultDelimiter separates the transformed name from the original name.
	DefaultDelimiter = "="
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RawLine is one decoded manifest line with its 1-based position in the file.
type RawLine struct {
	Number int
	Text   string
}

// RenamePair maps an on-disk transformed name to the name it should be
// restored to.
type RenamePair struct {
	Line            int
	TransformedName string
	OriginalName    string
}

// Degenerate reports whether the pair came from a line without a delimiter.
func (p RenamePair) Degenerate() bool {
	return p.OriginalName == ""
}

// ParseLine splits raw on delim. Only the first two fields are kept; a line
// without the delimiter becomes a pair with an empty original name.
func ParseLine(raw, delim string) RenamePair {
	if delim == "" {
		delim = DefaultDelimiter
	}
	parts := strings.Split(raw, delim)
	if len(parts) > 1 {
		return RenamePair{TransformedName: parts[0], OriginalName: parts[1]}
	}
	return RenamePair{TransformedName: raw}
}

// Parse converts decoded lines into rename pairs, preserving line numbers.
func Parse(lines []RawLine, delim string) []RenamePair {
	pairs := make([]RenamePair, 0, len(lines))
	for _, line := range lines {
		pair := ParseLine(line.Text, delim)
		pair.Line = line.Number
		pairs = append(pairs, pair)
	}
	return pairs
}

// ReadLines decodes r into lines. Line terminators (LF or CRLF) and a leading
// UTF-8 byte order mark are stripped. Lines that are not valid UTF-8 are skipped.
// Empty lines are kept so they surface as per-line failures; a final line
// terminator does not start a new line.
func ReadLines(r io.Reader) ([]RawLine, error) {
	reader := bufio.NewReader(r)
	var lines []RawLine
	number := 0
	for {
		chunk, err := reader.ReadBytes('\n')
		if len(chunk) > 0 {
			number++
			text := bytes.TrimSuffix(chunk, []byte("\n"))
			text = bytes.TrimSuffix(text, []byte("\r"))
			if number == 1 {
				text = bytes.TrimPrefix(text, utf8BOM)
			}
			if utf8.Valid(text) {
				lines = append(lines, RawLine{Number: number, Text: string(text)})
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return lines, err
		}
	}
}

// Load opens name on fsys and decodes it with ReadLines.
func Load(fsys billy.Filesystem, name string) ([]RawLine, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open manifest %q: %w", name, err)
	}
	defer file.Close()

	lines, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("read manifest %q: %w", name, err)
	}
	return lines, nil
}
