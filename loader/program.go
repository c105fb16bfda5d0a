// Package loader provides loading of hex text programs.
//
// A program file is a sequence of whitespace- or newline-separated
// hexadecimal tokens, each one 32-bit instruction word, with an optional
// 0x prefix. There is no header or length prefix.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedWord is returned for a token that is not a 32-bit hex value.
var ErrMalformedWord = errors.New("malformed instruction word")

// Program represents a loaded program ready to be written into the
// instruction region.
type Program struct {
	// Words contains the instruction words in program order.
	Words []uint32
}

// Size returns the program size in bytes.
func (p *Program) Size() int {
	return len(p.Words) * 4
}

// Load reads a hex text program from a file.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open program file: %w", err)
	}
	defer func() { _ = f.Close() }()

	prog, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return prog, nil
}

// Parse reads hex tokens from r until EOF.
func Parse(r io.Reader) (*Program, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	prog := &Program{}
	for scanner.Scan() {
		tok := scanner.Text()

		word, err := parseWord(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrMalformedWord, len(prog.Words), tok)
		}

		prog.Words = append(prog.Words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}

	return prog, nil
}

func parseWord(tok string) (uint32, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
	if digits == "" {
		return 0, strconv.ErrSyntax
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, err
	}

	return uint32(v), nil
}
